// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package batch runs all figure generators in a fixed order and reports their outcome
package batch

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/fdlab/fdplot/errs"
	"github.com/fdlab/fdplot/fig"
	"github.com/fdlab/fdplot/out"
)

// Status is the outcome of a job
type Status int

// outcomes
const (
	Produced Status = iota // figure written
	Skipped                // input missing
	Failed                 // input malformed, too little data or numeric anomaly
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case Produced:
		return "produced"
	case Skipped:
		return "skipped"
	}
	return "failed"
}

// Job generates one figure
type Job struct {
	Name string                             // figure key
	Run  func(env *fig.Env) (string, error) // generator
}

// Entry records the outcome of a job
type Entry struct {
	Name   string // figure key
	Status Status // outcome
	Path   string // written file; empty unless produced
	Err    error  // reason; nil if produced
}

// Report holds the outcome of all jobs run
type Report struct {
	Entries []*Entry
}

// Jobs returns the jobs of a batch: convergence, evolution of each configuration, evolution
// comparison, single-time comparison (if enabled), error of each configuration and error
// comparison
func Jobs(env *fig.Env) (jobs []Job) {
	jobs = append(jobs, Job{out.Key(out.Convergence, nil), fig.Convergence})
	for _, cfg := range env.Methods.Configs() {
		c := cfg
		jobs = append(jobs, Job{out.Key(out.Evolution, &c), func(env *fig.Env) (string, error) {
			return fig.Snapshots(env, c)
		}})
	}
	jobs = append(jobs, Job{out.Key(out.Evolution, nil, "comparison"), fig.SnapshotsAll})
	if t := env.Cfg.Snapshots.CompareAt; t >= 0 {
		jobs = append(jobs, Job{out.Key(out.Comparison, nil, io.Sf("t%g", t)), func(env *fig.Env) (string, error) {
			return fig.SnapshotAt(env, t)
		}})
	}
	for _, cfg := range env.Methods.Configs() {
		c := cfg
		jobs = append(jobs, Job{out.Key(out.ErrorTime, &c), func(env *fig.Env) (string, error) {
			return fig.ErrorTime(env, c)
		}})
	}
	jobs = append(jobs, Job{out.Key(out.ErrorTime, nil, "comparison"), fig.ErrorTimeAll})
	return
}

// Run runs all jobs in order. A configuration error stops the batch and is returned; any
// other error is recorded and the batch continues.
func Run(env *fig.Env) (rep *Report, err error) {
	return RunJobs(env, Jobs(env))
}

// RunJobs runs the given jobs in order; see Run
func RunJobs(env *fig.Env, jobs []Job) (rep *Report, err error) {
	rep = new(Report)
	for _, job := range jobs {
		path, e := job.Run(env)
		if n := env.Out.Open(); n != 0 {
			chk.Panic("job %q left %d figure(s) open", job.Name, n)
		}
		entry := &Entry{Name: job.Name, Path: path, Err: e}
		switch {
		case e == nil:
			entry.Status = Produced
			io.Pfgreen("produced %s\n", filepath.Base(path))
		case errs.IsFatal(e):
			entry.Status = Failed
			rep.Entries = append(rep.Entries, entry)
			io.PfRed("failed   %s: %v\n", job.Name, e)
			return rep, chk.Err("batch stopped at %s: %w", job.Name, e)
		case errs.IsMissing(e):
			entry.Status = Skipped
			io.Pforan("skipped  %s: %v\n", job.Name, e)
		default:
			entry.Status = Failed
			io.PfRed("failed   %s (%s): %v\n", job.Name, errs.Class(e), e)
		}
		rep.Entries = append(rep.Entries, entry)
	}
	return
}

// Produced returns the names of the figures written
func (o *Report) Produced() []string { return o.names(Produced) }

// Skipped returns the names of the figures skipped because of missing input
func (o *Report) Skipped() []string { return o.names(Skipped) }

// Failed returns the names of the figures that could not be drawn
func (o *Report) Failed() []string { return o.names(Failed) }

// Print prints the summary
func (o *Report) Print() {
	io.Pfyel("\nsummary: %d produced, %d skipped, %d failed\n", len(o.Produced()), len(o.Skipped()), len(o.Failed()))
	for _, e := range o.Entries {
		switch e.Status {
		case Produced:
			io.Pf("  %-10s %s\n", e.Status, e.Path)
		case Skipped:
			io.Pforan("  %-10s %s\n", e.Status, e.Name)
		default:
			io.PfRed("  %-10s %s (%s)\n", e.Status, e.Name, errs.Class(e.Err))
		}
	}
}

func (o *Report) names(s Status) (res []string) {
	for _, e := range o.Entries {
		if e.Status == s {
			res = append(res, e.Name)
		}
	}
	return
}
