// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errs

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_class01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("class01. names of wrapped conditions")

	chk.String(tst, Class(nil), "")
	chk.String(tst, Class(chk.Err("file %q: %w", "a.dat", ErrMissingInput)), "MissingInput")
	chk.String(tst, Class(chk.Err("line 3: %w", ErrMalformedInput)), "MalformedInput")
	chk.String(tst, Class(chk.Err("scheme %q: %w", "X", ErrConfiguration)), "ConfigurationInconsistency")
	chk.String(tst, Class(chk.Err("%w", ErrInsufficientData)), "InsufficientData")
	chk.String(tst, Class(chk.Err("%w", ErrNumericAnomaly)), "NumericAnomaly")
	chk.String(tst, Class(chk.Err("other")), "error")
}

func Test_fatal01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fatal01. only configuration errors stop a batch")

	if !IsFatal(chk.Err("label: %w", ErrConfiguration)) {
		tst.Errorf("configuration error must be fatal\n")
	}
	for _, e := range []error{ErrMissingInput, ErrMalformedInput, ErrInsufficientData, ErrNumericAnomaly} {
		if IsFatal(chk.Err("wrapped: %w", e)) {
			tst.Errorf("%v must not be fatal\n", e)
		}
	}
	if !IsMissing(chk.Err("f: %w", ErrMissingInput)) {
		tst.Errorf("IsMissing failed\n")
	}
	if IsMissing(ErrMalformedInput) {
		tst.Errorf("malformed input is not missing input\n")
	}
}
