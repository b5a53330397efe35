package reduce

// Copyright (c) 2025 Colin McRae

import "math"

// UnblockedAlg is the flat LLL/MLLL driver (spec 4.5): a single pass over
// columns maintaining the Lovasz condition between adjacent pivots, with
// Pohst/MLLL handling of columns that reduce to zero (linearly dependent
// input columns are pushed to the end of the basis and counted as nullity
// rather than causing an error).
func (w *Workspace[F]) UnblockedAlg(caller string) (Info, error) {
	caller = callerf(caller, "UnblockedAlg")
	if w.Ctrl.Presort {
		w.Presort(caller)
	}

	top := w.n
	if top == 0 {
		return w.finalize(top), nil
	}

	if err := w.stepOrShrink(0, &top, caller); err != nil {
		return Info{}, err
	}

	k := 1
	for k < top {
		if err := w.stepOrShrink(k, &top, caller); err != nil {
			return Info{}, err
		}
		if k >= top {
			// column k reduced to zero and the active range shrank to k;
			// nothing is left to test, so the loop ends here.
			continue
		}
		if w.lovaszHolds(k) {
			k++
			continue
		}
		w.swapColumns(k-1, k)
		w.numSwaps++
		w.Ctrl.logf("%s: swap columns %d,%d (swap #%d)", caller, k-1, k, w.numSwaps)
		if k == 1 {
			// column 0 just received new content; its reflector must be
			// rebuilt before anything downstream reads QR(0,0) again.
			if err := w.stepOrShrink(0, &top, caller); err != nil {
				return Info{}, err
			}
		} else {
			k--
		}
	}

	return w.finalize(top), nil
}

// stepOrShrink runs Step on column k; if it reduces to zero, the column is
// rotated to the current end of the active range [0,*top) and *top is
// decremented, per the Pohst/MLLL rule. moveColumnToEnd shifts a column that
// has never been through ExpandQR/HouseholderStep at position k into k (its
// QR image was built against a different reflector stack, or none at all),
// so Step must be re-run at k against the newly-arrived column rather than
// leaving its factorization stale; this loops until a nonzero column settles
// at k or the active range shrinks to k itself.
func (w *Workspace[F]) stepOrShrink(k int, top *int, caller string) error {
	for {
		isZero, err := w.Step(k, caller)
		if err != nil {
			return err
		}
		if !isZero {
			return nil
		}
		w.moveColumnToEnd(k, *top)
		*top--
		w.nullity++
		w.Ctrl.logf("%s: column %d reduced to zero, rotated to end, active range now [0,%d)", caller, k, *top)
		if k >= *top {
			return nil
		}
	}
}

// lovaszHolds tests the Lovasz condition between the pivots at k-1 and k:
// sqrt(delta)*R(k-1,k-1) <= SafeNorm(R(k,k), |R(k-1,k)|). A zero pivot at
// k-1 (already-detected dependency not yet rotated away) trivially holds.
func (w *Workspace[F]) lovaszHolds(k int) bool {
	t := w.Trait
	rkm1km1 := t.Re(w.QR.At(k-1, k-1))
	if rkm1km1 <= w.Ctrl.ZeroTol {
		return true
	}
	rkk := t.Re(w.QR.At(k, k))
	rkm1k := t.Abs(w.QR.At(k-1, k))
	left := math.Sqrt(w.Ctrl.Delta) * rkm1km1
	right := t.SafeNorm(rkk, rkm1k)
	return left <= right
}

// swapColumns exchanges columns i and j of B (and U, if tracked) and rows
// i,j of UInv (if tracked). QR, T and D for both columns are stale after
// this and are recomputed the next time Step visits them.
func (w *Workspace[F]) swapColumns(i, j int) {
	w.B.SwapCols(i, j)
	if w.U != nil {
		w.U.SwapCols(i, j)
	}
	if w.UInv != nil {
		w.UInv.SwapRows(i, j)
	}
}

// moveColumnToEnd rotates column k of B (and U, UInv) to position top-1,
// shifting columns k+1..top-1 left by one. QR/T/D move along with B/U so a
// later Step recomputes them fresh rather than reading stale state.
func (w *Workspace[F]) moveColumnToEnd(k, top int) {
	if k == top-1 {
		return
	}
	zeroB := w.B.CloneCol(k)
	zeroQR := w.QR.CloneCol(k)
	zeroT, zeroD := w.T[k], w.D[k]
	var zeroU []F
	if w.U != nil {
		zeroU = w.U.CloneCol(k)
	}

	for c := k; c < top-1; c++ {
		w.B.SetCol(c, w.B.CloneCol(c+1))
		w.QR.SetCol(c, w.QR.CloneCol(c+1))
		w.T[c], w.D[c] = w.T[c+1], w.D[c+1]
		if w.U != nil {
			w.U.SetCol(c, w.U.CloneCol(c+1))
		}
	}
	w.B.SetCol(top-1, zeroB)
	w.QR.SetCol(top-1, zeroQR)
	w.T[top-1], w.D[top-1] = zeroT, zeroD
	if w.U != nil {
		w.U.SetCol(top-1, zeroU)
	}

	if w.UInv != nil {
		cols := w.UInv.Cols()
		savedRow := make([]F, cols)
		for c := 0; c < cols; c++ {
			savedRow[c] = w.UInv.At(k, c)
		}
		for r := k; r < top-1; r++ {
			for c := 0; c < cols; c++ {
				w.UInv.Set(r, c, w.UInv.At(r+1, c))
			}
		}
		for c := 0; c < cols; c++ {
			w.UInv.Set(top-1, c, savedRow[c])
		}
	}
}

// makeTrapezoidal zeros QR's strict lower triangle for the active columns,
// turning the implicit Householder factorization into a plain R for callers
// that only want the triangular factor.
func (w *Workspace[F]) makeTrapezoidal(top int) {
	t := w.Trait
	for j := 0; j < top; j++ {
		for i := j + 1; i < w.m; i++ {
			w.QR.Set(i, j, t.Zero())
		}
	}
}

// finalize triangularizes QR and reports Info, including the achieved
// (delta, eta) pair spec 4.5 requires be measured from R rather than echoed
// from Ctrl: delta_ach = min_i (R(i+1,i+1)^2+|R(i,i+1)|^2)/R(i,i)^2 over
// adjacent pivots, eta_ach = max_{i<j} |R(i,j)/R(i,i)|/phi(F) over the whole
// upper triangle. logVol sums log|R(i,i)| over non-zero diagonals only
// (spec 8, property 9), so a trailing (or, before the stepOrShrink fix,
// stray interior) zero pivot cannot drive it to -Inf.
func (w *Workspace[F]) finalize(top int) Info {
	w.makeTrapezoidal(top)
	t := w.Trait
	zeroTol := w.Ctrl.ZeroTol

	logVol := 0.0
	for i := 0; i < top; i++ {
		if t.Re(w.QR.At(i, i)) <= zeroTol {
			continue
		}
		logVol += t.Log(w.QR.At(i, i))
	}

	achievedDelta := w.Ctrl.Delta
	minRatio := math.Inf(1)
	for i := 0; i < top-1; i++ {
		rii := t.Re(w.QR.At(i, i))
		if rii <= zeroTol {
			continue
		}
		rip1ip1 := t.Re(w.QR.At(i+1, i+1))
		rip1 := t.Abs(w.QR.At(i, i+1))
		ratio := (rip1ip1*rip1ip1 + rip1*rip1) / (rii * rii)
		if ratio < minRatio {
			minRatio = ratio
		}
	}
	if !math.IsInf(minRatio, 1) {
		achievedDelta = minRatio
	}

	achievedEta := 0.0
	phi := t.Phi()
	for i := 0; i < top; i++ {
		rii := t.Re(w.QR.At(i, i))
		if rii <= zeroTol {
			continue
		}
		for j := i + 1; j < top; j++ {
			ratio := t.Abs(w.QR.At(i, j)) / rii / phi
			if ratio > achievedEta {
				achievedEta = ratio
			}
		}
	}

	info := Info{
		Delta:    achievedDelta,
		Eta:      achievedEta,
		Rank:     top,
		Nullity:  w.n - top,
		NumSwaps: w.numSwaps,
		LogVol:   logVol,
	}
	w.Ctrl.logf(
		"finalize: rank=%d nullity=%d swaps=%d achieved delta=%g eta=%g logVol=%g",
		info.Rank, info.Nullity, info.NumSwaps, info.Delta, info.Eta, info.LogVol,
	)
	return info
}
