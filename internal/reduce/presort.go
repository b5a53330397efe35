package reduce

// Copyright (c) 2025 Colin McRae

// Presort reorders the columns of B by norm before the main reduction loop
// (SPEC_FULL's presort supplement, grounded in the original solver's
// column-pivoted QR presort pass). With Ctrl.SmallestFirst the shortest
// input vector becomes column 0, which in practice sharply cuts the number
// of swaps the flat driver needs to reach a reduced basis.
func (w *Workspace[F]) Presort(caller string) {
	t := w.Trait
	n := w.n
	norms := make([]float64, n)
	for j := 0; j < n; j++ {
		norms[j] = t.Nrm2(w.B.Col(j))
	}

	// Insertion sort: n is the lattice rank, always small relative to the
	// cost of the reduction loop itself, so an O(n^2) sort is not a
	// bottleneck.
	moves := 0
	for i := 1; i < n; i++ {
		j := i
		for j > 0 && w.presortLess(norms, j, j-1) {
			w.swapColumns(j-1, j)
			norms[j-1], norms[j] = norms[j], norms[j-1]
			j--
			moves++
		}
	}
	w.Ctrl.logf("%s: presorted %d columns, smallestFirst=%v, %d moves", caller, n, w.Ctrl.SmallestFirst, moves)
}

func (w *Workspace[F]) presortLess(norms []float64, a, b int) bool {
	if w.Ctrl.SmallestFirst {
		return norms[a] < norms[b]
	}
	return norms[a] > norms[b]
}
