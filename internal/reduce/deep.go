package reduce

// Copyright (c) 2025 Colin McRae

// UnblockedDeepAlg is the Schnorr-Euchner deep-insertion driver (spec 4.6):
// after size-reducing column k, it tests every insertion depth 0..k (not
// just k-1) and, if a shorter placement exists, moves column k there in one
// shift rather than one adjacent transposition at a time. Partial norms are
// always recomputed from the freshly expanded QR column (the LAWN 176
// downdate's "recompute" branch) rather than propagated incrementally,
// trading a constant factor of work for the numerical safety spec 9's
// alwaysRecomputeNorms default calls for.
func (w *Workspace[F]) UnblockedDeepAlg(caller string) (Info, error) {
	caller = callerf(caller, "UnblockedDeepAlg")
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
			continue
		}

		i0 := w.deepInsertPosition(k)
		if i0 == k {
			k++
			continue
		}

		w.deepInsert(i0, k)
		w.numSwaps++
		w.Ctrl.logf("%s: deep-insert column %d at position %d (insert #%d)", caller, k, i0, w.numSwaps)
		if i0 == 0 {
			// column 0 just received the deep-inserted vector; rebuild its
			// reflector before the outer loop reads QR(0,0) again.
			if err := w.stepOrShrink(0, &top, caller); err != nil {
				return Info{}, err
			}
			k = 1
		} else {
			k = i0
		}
	}

	return w.finalize(top), nil
}

// deepInsertPosition returns the smallest i in [0,k) such that
// delta*|R(i,i)|^2 > c_i, where c_i is the squared norm of column k's
// projection onto the orthogonal complement of the first i basis vectors,
// or k when no such i exists (no strictly-shorter placement).
func (w *Workspace[F]) deepInsertPosition(k int) int {
	t := w.Trait
	c := make([]float64, k+1)
	rkk := t.Abs(w.QR.At(k, k))
	c[k] = rkk * rkk
	for j := k - 1; j >= 0; j-- {
		rjk := t.Abs(w.QR.At(j, k))
		c[j] = c[j+1] + rjk*rjk
	}
	for i := 0; i < k; i++ {
		rii := t.Abs(w.QR.At(i, i))
		if w.Ctrl.Delta*rii*rii > c[i] {
			return i
		}
	}
	return k
}

// deepInsert moves column k to position i0, shifting columns i0..k-1 (and
// U's columns, UInv's rows) right by one. QR/T/D for the shifted range are
// carried along for bookkeeping tidiness but are recomputed from B the next
// time Step visits each position; only B (and U/UInv) are load-bearing here.
func (w *Workspace[F]) deepInsert(i0, k int) {
	colB := w.B.CloneCol(k)
	colQR := w.QR.CloneCol(k)
	tK, dK := w.T[k], w.D[k]

	w.B.ShiftColsRight(i0, k)
	w.QR.ShiftColsRight(i0, k)
	for j := k; j > i0; j-- {
		w.T[j], w.D[j] = w.T[j-1], w.D[j-1]
	}
	w.B.SetCol(i0, colB)
	w.QR.SetCol(i0, colQR)
	w.T[i0], w.D[i0] = tK, dK

	if w.U != nil {
		colU := w.U.CloneCol(k)
		w.U.ShiftColsRight(i0, k)
		w.U.SetCol(i0, colU)
	}
	if w.UInv != nil {
		cols := w.UInv.Cols()
		savedRow := make([]F, cols)
		for c := 0; c < cols; c++ {
			savedRow[c] = w.UInv.At(k, c)
		}
		w.UInv.ShiftRowsRight(i0, k)
		for c := 0; c < cols; c++ {
			w.UInv.Set(i0, c, savedRow[c])
		}
	}
}
