package reduce

// Copyright (c) 2025 Colin McRae

// ExpandQR recomputes column k of QR from B(:,k) by applying the reflector
// stack of columns 0..k-1, per spec 4.2. It leaves the diagonal entries
// QR(i,i), i<k, unchanged (they are the reflector heads, restored after use)
// and rewrites only column k of QR.
func (w *Workspace[F]) ExpandQR(k int) {
	t := w.Trait
	dst := w.QR.Col(k)
	copy(dst, w.B.Col(k))
	for orthog := 0; orthog < w.Ctrl.NumOrthog; orthog++ {
		for i := 0; i < k; i++ {
			alpha := w.QR.At(i, i)
			w.QR.Set(i, i, t.One())

			vi := w.QR.ColRange(i, i, w.m) // reflector vector for stage i, rows i..m-1
			vk := w.QR.ColRange(k, i, w.m) // column k, rows i..m-1

			iota := t.Dot(vi, vk) // conj(v_i) . v_k
			coeff := t.Neg(t.Mul(w.T[i], iota))
			t.Axpy(coeff, vi, vk) // v_k -= tau_i * iota * v_i

			// Row i of column k just received its final value for this
			// reflector stage; carry the sign flip fixed when column i's own
			// reflector was created (spec 4.2 step 4).
			entry := w.QR.At(i, k)
			w.QR.Set(i, k, t.Mul(entry, t.FromFloat64(w.D[i])))

			w.QR.Set(i, i, alpha)
		}
	}
}

// HouseholderStep constructs the reflector that zeroes QR(k+1:,k), storing
// its scalar in T[k] and its sign flip in D[k], per spec 4.3. QR(k,k) is
// overwritten with the reflector head, negated if needed so its real part
// is non-negative.
func (w *Workspace[F]) HouseholderStep(k int) {
	t := w.Trait
	alpha := w.QR.At(k, k)
	tail := w.QR.ColRange(k, k+1, w.m)

	beta, tau := t.LeftReflector(alpha, tail)
	w.T[k] = tau

	if t.Re(beta) < 0 {
		w.D[k] = -1
		beta = t.Neg(beta)
	} else {
		w.D[k] = 1
	}
	w.QR.Set(k, k, beta)
}
