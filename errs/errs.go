// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package errs defines the conditions raised while loading results and producing figures
package errs

import "errors"

// conditions
var (
	ErrMissingInput     = errors.New("missing input")     // a required .dat file is absent
	ErrMalformedInput   = errors.New("malformed input")   // file present but not a valid table
	ErrConfiguration    = errors.New("configuration")     // unknown identifier, style or option
	ErrInsufficientData = errors.New("insufficient data") // too few rows for a derived quantity
	ErrNumericAnomaly   = errors.New("numeric anomaly")   // zero step size, non-finite anchor, empty log axis
)

// Class returns the name of the condition wrapped by err; "error" if none matches
func Class(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingInput):
		return "MissingInput"
	case errors.Is(err, ErrMalformedInput):
		return "MalformedInput"
	case errors.Is(err, ErrConfiguration):
		return "ConfigurationInconsistency"
	case errors.Is(err, ErrInsufficientData):
		return "InsufficientData"
	case errors.Is(err, ErrNumericAnomaly):
		return "NumericAnomaly"
	}
	return "error"
}

// IsFatal tells whether err must stop a batch. Only configuration inconsistencies do:
// continuing would produce mislabeled or wrongly styled figures.
func IsFatal(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsMissing tells whether err reports an absent input file
func IsMissing(err error) bool {
	return errors.Is(err, ErrMissingInput)
}
