package densemat

// Copyright (c) 2025 Colin McRae

import "testing"

func zeroFloat() float64 { return 0 }

func fill(m *Matrix[float64]) {
	n := 0
	for j := 0; j < m.Cols(); j++ {
		for i := 0; i < m.Rows(); i++ {
			n++
			m.Set(i, j, float64(n))
		}
	}
}

func TestAtSet(t *testing.T) {
	m := New[float64](3, 2, zeroFloat)
	fill(m)
	if m.At(0, 0) != 1 || m.At(2, 1) != 6 {
		t.Errorf("unexpected values: At(0,0)=%v At(2,1)=%v", m.At(0, 0), m.At(2, 1))
	}
}

func TestSwapCols(t *testing.T) {
	m := New[float64](2, 3, zeroFloat)
	fill(m)
	c0 := append([]float64(nil), m.Col(0)...)
	c1 := append([]float64(nil), m.Col(1)...)
	m.SwapCols(0, 1)
	if m.Col(0)[0] != c1[0] || m.Col(1)[0] != c0[0] {
		t.Errorf("SwapCols did not exchange columns")
	}
}

func TestSwapRows(t *testing.T) {
	m := New[float64](3, 2, zeroFloat)
	fill(m)
	before00, before20 := m.At(0, 0), m.At(2, 0)
	m.SwapRows(0, 2)
	if m.At(0, 0) != before20 || m.At(2, 0) != before00 {
		t.Errorf("SwapRows did not exchange rows")
	}
}

func TestShiftColsRight(t *testing.T) {
	m := New[float64](2, 4, zeroFloat)
	fill(m)
	col1 := append([]float64(nil), m.Col(1)...)
	col2 := append([]float64(nil), m.Col(2)...)
	m.ShiftColsRight(1, 3)
	if !equal(m.Col(2), col1) {
		t.Errorf("col2 after shift = %v, want %v", m.Col(2), col1)
	}
	if !equal(m.Col(3), col2) {
		t.Errorf("col3 after shift = %v, want %v", m.Col(3), col2)
	}
}

func TestShiftRowsRight(t *testing.T) {
	m := New[float64](4, 2, zeroFloat)
	fill(m)
	var before []float64
	for j := 0; j < m.Cols(); j++ {
		before = append(before, m.At(1, j), m.At(2, j))
	}
	m.ShiftRowsRight(1, 3)
	for j := 0; j < m.Cols(); j++ {
		if m.At(2, j) != before[j*2] {
			t.Errorf("row2 col%d after shift = %v, want %v", j, m.At(2, j), before[j*2])
		}
		if m.At(3, j) != before[j*2+1] {
			t.Errorf("row3 col%d after shift = %v, want %v", j, m.At(3, j), before[j*2+1])
		}
	}
}

func TestSetIdentity(t *testing.T) {
	m := New[float64](3, 3, zeroFloat)
	m.SetIdentity(0, 1)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if m.At(i, j) != want {
				t.Errorf("At(%d,%d) = %v, want %v", i, j, m.At(i, j), want)
			}
		}
	}
}

func TestCloneColIndependent(t *testing.T) {
	m := New[float64](2, 2, zeroFloat)
	fill(m)
	clone := m.CloneCol(0)
	clone[0] = 999
	if m.At(0, 0) == 999 {
		t.Errorf("CloneCol should return an independent copy")
	}
}

func equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
