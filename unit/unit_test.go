// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"github.com/hstackui/hstack/unit"
)

func TestMetric_Px(t *testing.T) {
	m := unit.Metric{
		PxPerDp: 2,
		PxPerSp: 3,
	}
	for _, tc := range []struct {
		v   unit.Value
		exp int
	}{
		{unit.Px(7), 7},
		{unit.Dp(5), 10},
		{unit.Sp(5), 15},
		{unit.Dp(1.25), 3},
		{unit.Dp(0), 0},
	} {
		if got := m.Px(tc.v); got != tc.exp {
			t.Errorf("Px(%v) = %d, expected %d", tc.v, got, tc.exp)
		}
	}
}

func TestMetric_ZeroScale(t *testing.T) {
	var m unit.Metric
	if got := m.Dp(12); got != 12 {
		t.Errorf("zero Metric Dp(12) = %d, expected 12", got)
	}
	if got := m.Sp(9); got != 9 {
		t.Errorf("zero Metric Sp(9) = %d, expected 9", got)
	}
}

func TestMetric_PxToDp(t *testing.T) {
	m := unit.Metric{
		PxPerDp: 2,
		PxPerSp: 3,
	}

	{
		exp := unit.Dp(5)
		got := m.PxToDp(m.Dp(5))
		if got != exp {
			t.Errorf("PxToDp conversion mismatch %v != %v", exp, got)
		}
	}

	{
		exp := unit.Sp(5)
		got := m.PxToSp(m.Sp(5))
		if got != exp {
			t.Errorf("PxToSp conversion mismatch %v != %v", exp, got)
		}
	}
}

func TestAdd(t *testing.T) {
	m := unit.Metric{PxPerDp: 2}
	if got, exp := unit.Add(m, unit.Dp(3), unit.Dp(4)), unit.Dp(7); got != exp {
		t.Errorf("Add same unit = %v, expected %v", got, exp)
	}
	if got, exp := unit.Add(m, unit.Dp(3), unit.Px(4)), unit.Px(10); got != exp {
		t.Errorf("Add mixed units = %v, expected %v", got, exp)
	}
	if got, exp := unit.Max(m, unit.Dp(3), unit.Px(4)), unit.Px(6); got != exp {
		t.Errorf("Max mixed units = %v, expected %v", got, exp)
	}
}
