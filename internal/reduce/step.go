package reduce

// Copyright (c) 2025 Colin McRae

import (
	"math"

	"github.com/predrag3141/lllreduce/scalar"
)

// Step performs LLL size reduction of column k against columns 0..k-1
// (spec 4.4): it repeatedly expands QR(:,k), reduces the column against the
// upper-triangular R image using weak or standard reduction, and re-expands
// until the column's norm stops shrinking by more than Ctrl.ReorthogTol,
// then finishes with HouseholderStep. It reports whether column k reduced to
// the zero vector (Pohst/MLLL rank deficiency, spec 4.5).
func (w *Workspace[F]) Step(k int, caller string) (isZero bool, err error) {
	caller = callerf(caller, "Step")
	t := w.Trait
	eps := t.Eps()

	for {
		w.ExpandQR(k)

		oldNorm := t.Nrm2(w.B.Col(k))
		if !isFiniteFloat(oldNorm) {
			return false, newError(Overflow, caller, "column %d has non-finite norm", k)
		}
		if oldNorm > 1/eps {
			return false, newError(PrecisionExhausted, caller, "column %d norm %g exceeds 1/eps", k, oldNorm)
		}
		if oldNorm <= w.Ctrl.ZeroTol {
			w.B.FillCol(k, t.Zero)
			w.QR.FillCol(k, t.Zero)
			w.T[k] = t.FromFloat64(0.5)
			w.D[k] = 1
			return true, nil
		}

		if w.Ctrl.Weak {
			w.reduceWeak(k)
		} else {
			w.reduceStandard(k)
		}

		newNorm := t.Nrm2(w.B.Col(k))
		if !isFiniteFloat(newNorm) {
			return false, newError(Overflow, caller, "column %d has non-finite norm after reduction", k)
		}
		if newNorm > 1/eps {
			return false, newError(PrecisionExhausted, caller, "column %d norm %g exceeds 1/eps after reduction", k, newNorm)
		}

		if newNorm > w.Ctrl.ReorthogTol*oldNorm {
			break
		}
	}

	w.HouseholderStep(k)
	return false, nil
}

// reduceWeak implements weak size reduction: column k is reduced only
// against column k-1.
func (w *Workspace[F]) reduceWeak(k int) {
	if k == 0 {
		return
	}
	t := w.Trait
	i := k - 1
	rii := w.QR.At(i, i)
	if t.Abs(rii) <= w.Ctrl.ZeroTol {
		return
	}
	rik := w.QR.At(i, k)
	chi, err := t.Div(rik, rii)
	if err != nil {
		return
	}
	if !w.overThreshold(chi) {
		return
	}
	chi = t.Round(chi)
	w.applyColumnUpdate(k, i, i, chi)
}

// reduceStandard implements the full backward scan against columns
// k-1..0, deferring the update to B/U/UInv into a single rank-1 pass after
// the scan has determined every coefficient (spec 4.4).
func (w *Workspace[F]) reduceStandard(k int) {
	if k == 0 {
		return
	}
	t := w.Trait
	x := w.scratch[:k]
	for i := k - 1; i >= 0; i-- {
		rii := w.QR.At(i, i)
		if t.Abs(rii) <= w.Ctrl.ZeroTol {
			x[i] = t.Zero()
			continue
		}
		rik := w.QR.At(i, k)
		chi, err := t.Div(rik, rii)
		if err != nil {
			x[i] = t.Zero()
			continue
		}
		if !w.overThreshold(chi) {
			x[i] = t.Zero()
			continue
		}
		chi = t.Round(chi)
		for r := 0; r <= i; r++ {
			w.QR.Set(r, k, t.Sub(w.QR.At(r, k), t.Mul(chi, w.QR.At(r, i))))
		}
		x[i] = chi
	}

	for i := 0; i < k; i++ {
		if isZeroScalar(t, x[i]) {
			continue
		}
		w.applyColumnUpdate(k, i, -1, x[i])
	}
}

// applyColumnUpdate applies col_k -= chi*col_i to B (and U, if tracked), and
// the dual row update UInv(i,:) += chi*UInv(k,:) (if tracked). A
// non-negative rRowLimit also updates rows 0..rRowLimit of R's column k here
// (reduceWeak); a negative one skips R, which the caller (reduceStandard)
// has already updated incrementally.
func (w *Workspace[F]) applyColumnUpdate(k, i, rRowLimit int, chi F) {
	t := w.Trait
	if rRowLimit >= 0 {
		for r := 0; r <= rRowLimit; r++ {
			w.QR.Set(r, k, t.Sub(w.QR.At(r, k), t.Mul(chi, w.QR.At(r, i))))
		}
	}
	neg := t.Neg(chi)
	t.Axpy(neg, w.B.Col(i), w.B.Col(k))
	if w.U != nil {
		t.Axpy(neg, w.U.Col(i), w.U.Col(k))
	}
	w.axpyRowUInv(i, k, chi)
}

func (w *Workspace[F]) overThreshold(chi F) bool {
	t := w.Trait
	eta := w.Ctrl.Eta
	re, im := t.Re(chi), t.Im(chi)
	if re < 0 {
		re = -re
	}
	if im < 0 {
		im = -im
	}
	return re > eta || im > eta
}

func isZeroScalar[F any](t scalar.Trait[F], x F) bool {
	return t.Re(x) == 0 && t.Im(x) == 0
}

func isFiniteFloat(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
