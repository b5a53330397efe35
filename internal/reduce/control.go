// Package reduce implements the LLL/MLLL/deep-insertion reduction core:
// the Householder QR maintenance, the size-reduction step, and the flat and
// deep outer driver loops described in the specification's component
// design. It is written once, generically over scalar.Trait[F], and
// instantiated for float64, complex128 and *bignumber.BigNumber by the
// top-level package and by bigscalar's high-precision applications.
package reduce

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"io"
	"math"
)

// ErrorKind classifies the non-recoverable failures a reduction call can
// report, per the specification's error handling design.
type ErrorKind int

const (
	// Overflow signals a column norm evaluated to a non-finite value.
	Overflow ErrorKind = iota
	// PrecisionExhausted signals a column norm exceeded 1/eps.
	PrecisionExhausted
	// InvalidArgument signals a malformed control or dimension mismatch.
	InvalidArgument
)

func (k ErrorKind) String() string {
	switch k {
	case Overflow:
		return "Overflow"
	case PrecisionExhausted:
		return "PrecisionExhausted"
	case InvalidArgument:
		return "InvalidArgument"
	default:
		return "Unknown"
	}
}

// Error reports a non-recoverable reduction failure. Kind lets callers
// branch programmatically (errors.As); Error()'s text keeps the teacher's
// caller-chain convention of naming the call site that raised it.
type Error struct {
	Kind   ErrorKind
	Caller string
	msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Caller, e.Kind, e.msg)
}

func newError(kind ErrorKind, caller, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Caller: caller, msg: fmt.Sprintf(format, args...)}
}

// Ctrl is LLLCtrl from the specification's external interfaces (6):
// tunables governing the Lovasz threshold, size-reduction threshold,
// weak/deep variants, presort, reorthogonalization and diagnostics.
type Ctrl struct {
	Delta         float64   // Lovasz parameter, 1/4 < Delta < 1
	Eta           float64   // size-reduction threshold, 1/2 <= Eta < sqrt(Delta)
	Weak          bool      // weak size-reduction: reduce only against column k-1
	Deep          bool      // enable the Schnorr-Euchner deep-insertion driver
	Presort       bool      // sort columns by plain 2-norm before the main loop (no column-pivoted QR)
	SmallestFirst bool      // presort orientation
	ReorthogTol   float64   // fractional shrinkage threshold triggering reorthogonalization
	NumOrthog     int       // number of times ExpandQR re-applies the reflector stack
	ZeroTol       float64   // columns with 2-norm <= this are treated as zero
	Progress      io.Writer // non-nil enables textual progress lines
	Time          bool      // accepted but not read: no timers are kept
}

// DefaultCtrl returns the specification's documented defaults for a scalar
// field whose machine epsilon is eps. Per the resolved Open Question in
// spec 9, Eta uses eps^0.9 (the C++ default, not the C path's eps^0.5).
func DefaultCtrl(eps float64) Ctrl {
	return Ctrl{
		Delta:         0.75,
		Eta:           0.5 + math.Pow(eps, 0.9),
		Weak:          false,
		Deep:          false,
		Presort:       true,
		SmallestFirst: true,
		ReorthogTol:   0,
		NumOrthog:     1,
		ZeroTol:       math.Pow(eps, 0.9),
	}
}

// Validate checks Ctrl against spec 6/7's invariants: Delta and Eta bound
// each other directly (1/2 <= Eta < sqrt(Delta)) independent of the scalar
// field, so no phi(F) term enters here; phi only scales the *achieved* eta
// finalize reports (Info.Eta's doc comment), not this input bound.
func (c Ctrl) Validate(caller string) error {
	caller = fmt.Sprintf("%s-Ctrl.Validate", caller)
	if !(c.Delta > 0.25 && c.Delta < 1) {
		return newError(InvalidArgument, caller, "delta = %g is not in (0.25, 1)", c.Delta)
	}
	sqrtDelta := math.Sqrt(c.Delta)
	if !(c.Eta >= 0.5 && c.Eta < sqrtDelta) {
		return newError(
			InvalidArgument, caller, "eta = %g is not in [0.5, sqrt(delta)=%g)", c.Eta, sqrtDelta,
		)
	}
	if c.ZeroTol < 0 {
		return newError(InvalidArgument, caller, "zeroTol = %g is negative", c.ZeroTol)
	}
	if c.ReorthogTol < 0 {
		return newError(InvalidArgument, caller, "reorthogTol = %g is negative", c.ReorthogTol)
	}
	if c.NumOrthog < 1 {
		return newError(InvalidArgument, caller, "numOrthog = %d is less than 1", c.NumOrthog)
	}
	return nil
}

func (c Ctrl) logf(format string, args ...interface{}) {
	if c.Progress != nil {
		fmt.Fprintf(c.Progress, format+"\n", args...)
	}
}

// Info is LLLInfo from spec 6: the aggregate statistics returned by a
// completed reduction.
type Info struct {
	Delta    float64 // achieved delta (>= ctrl.Delta up to O(eps))
	Eta      float64 // achieved eta (<= phi(F)*ctrl.Eta up to O(eps))
	Rank     int
	Nullity  int
	NumSwaps int
	LogVol   float64
}
