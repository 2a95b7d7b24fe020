package analysis

import (
	"math"
	"testing"

	"oceandash/domain/table"
)

func TestCorrelate_PerfectCorrelation(t *testing.T) {
	a := tableOf(
		table.Row{Entity: "A", Year: 2000, Value: 1},
		table.Row{Entity: "A", Year: 2001, Value: 2},
		table.Row{Entity: "B", Year: 2000, Value: 3},
	)
	b := tableOf(
		table.Row{Entity: "A", Year: 2000, Value: 10},
		table.Row{Entity: "A", Year: 2001, Value: 20},
		table.Row{Entity: "B", Year: 2000, Value: 30},
	)

	result := Correlate(a, b)
	if !result.Defined {
		t.Fatal("expected a defined coefficient")
	}
	if len(result.Pairs) != 3 {
		t.Errorf("expected 3 joined pairs, got %d", len(result.Pairs))
	}
	if math.Abs(result.Coefficient-1) > 1e-9 {
		t.Errorf("coefficient = %v, want 1", result.Coefficient)
	}
}

func TestCorrelate_Symmetric(t *testing.T) {
	a := tableOf(
		table.Row{Entity: "A", Year: 2000, Value: 1.2},
		table.Row{Entity: "A", Year: 2001, Value: 5.1},
		table.Row{Entity: "B", Year: 2000, Value: 2.7},
		table.Row{Entity: "C", Year: 2003, Value: 9.9},
	)
	b := tableOf(
		table.Row{Entity: "A", Year: 2000, Value: 4.2},
		table.Row{Entity: "A", Year: 2001, Value: 0.3},
		table.Row{Entity: "B", Year: 2000, Value: 8.8},
		table.Row{Entity: "D", Year: 2003, Value: 1.1},
	)

	ab := Correlate(a, b)
	ba := Correlate(b, a)
	if !ab.Defined || !ba.Defined {
		t.Fatal("expected defined coefficients both ways")
	}
	if math.Abs(ab.Coefficient-ba.Coefficient) > 1e-9 {
		t.Errorf("correlation not symmetric: %v vs %v", ab.Coefficient, ba.Coefficient)
	}
}

func TestCorrelate_DuplicateKeysKeepMultiplicityAndSymmetry(t *testing.T) {
	// (A, 2000) appears twice in the first table. The join must emit one
	// pair per combination, the same count in either direction.
	a := tableOf(
		table.Row{Entity: "A", Year: 2000, Value: 1},
		table.Row{Entity: "A", Year: 2000, Value: 2},
		table.Row{Entity: "A", Year: 2001, Value: 5},
		table.Row{Entity: "B", Year: 2000, Value: 3},
	)
	b := tableOf(
		table.Row{Entity: "A", Year: 2000, Value: 10},
		table.Row{Entity: "A", Year: 2001, Value: 4},
		table.Row{Entity: "B", Year: 2000, Value: 7},
	)

	ab := Correlate(a, b)
	ba := Correlate(b, a)
	if len(ab.Pairs) != 4 || len(ba.Pairs) != 4 {
		t.Fatalf("expected 4 pairs both ways, got %d and %d", len(ab.Pairs), len(ba.Pairs))
	}
	if !ab.Defined || !ba.Defined {
		t.Fatal("expected defined coefficients both ways")
	}
	if math.Abs(ab.Coefficient-ba.Coefficient) > 1e-9 {
		t.Errorf("correlation not symmetric: %v vs %v", ab.Coefficient, ba.Coefficient)
	}

	// Duplicates on both sides join as the cross product, 2*2 for (A, 2000).
	bb := tableOf(
		table.Row{Entity: "A", Year: 2000, Value: 10},
		table.Row{Entity: "A", Year: 2000, Value: 11},
	)
	cross := Correlate(a, bb)
	if len(cross.Pairs) != 4 {
		t.Errorf("expected 2x2 cross product for the duplicated key, got %d pairs", len(cross.Pairs))
	}
}

func TestCorrelate_EmptyJoinIsUndefined(t *testing.T) {
	a := tableOf(table.Row{Entity: "A", Year: 2000, Value: 1})
	b := tableOf(table.Row{Entity: "B", Year: 2001, Value: 2})

	result := Correlate(a, b)
	if result.Defined {
		t.Error("disjoint tables must yield an undefined coefficient, not 0")
	}
	if len(result.Pairs) != 0 {
		t.Errorf("expected no pairs, got %d", len(result.Pairs))
	}
}

func TestCorrelate_JoinMatchesEntityAndYear(t *testing.T) {
	a := tableOf(
		table.Row{Entity: "A", Year: 2000, Value: 1},
		table.Row{Entity: "A", Year: 2001, Value: 2},
	)
	b := tableOf(
		table.Row{Entity: "A", Year: 2001, Value: 5},
		table.Row{Entity: "A", Year: 2002, Value: 6},
	)

	result := Correlate(a, b)
	if len(result.Pairs) != 1 {
		t.Fatalf("expected exactly the (A, 2001) pair, got %+v", result.Pairs)
	}
	pair := result.Pairs[0]
	if pair.Entity != "A" || pair.Year != 2001 || pair.X != 2 || pair.Y != 5 {
		t.Errorf("unexpected joined pair: %+v", pair)
	}
}

func TestInterpretCorrelation_Boundaries(t *testing.T) {
	cases := []struct {
		r    float64
		want string
	}{
		{0.71, "strong"},
		{0.7, "moderate"},
		{-0.9, "strong"},
		{0.31, "moderate"},
		{0.3, "weak"},
		{-0.2, "weak"},
		{0, "weak"},
	}
	for _, tc := range cases {
		if got := InterpretCorrelation(tc.r); got != tc.want {
			t.Errorf("InterpretCorrelation(%v) = %s, want %s", tc.r, got, tc.want)
		}
	}
}
