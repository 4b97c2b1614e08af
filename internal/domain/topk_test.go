package domain

import (
	"testing"
)

func up(name string, days int) Upcoming {
	return Upcoming{Record: EmployeeRecord{FullName: name}, DaysUntil: days}
}

func names(items []Upcoming) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Record.FullName)
	}
	return out
}

func TestTopUpcoming_TieInclusion(t *testing.T) {
	// All entries sharing the k-th distinct value are kept.
	in := []Upcoming{up("A", 5), up("B", 5), up("C", 5), up("D", 7)}
	got := TopUpcoming(in, 2)
	want := []string{"A", "B", "C", "D"}
	if len(got) != 4 {
		t.Fatalf("TopUpcoming = %v, want %v", names(got), want)
	}
	for i, n := range want {
		if got[i].Record.FullName != n {
			t.Fatalf("TopUpcoming = %v, want %v", names(got), want)
		}
	}
}

func TestTopUpcoming_CutsAfterKDistinct(t *testing.T) {
	in := []Upcoming{up("A", 5), up("B", 5), up("C", 5), up("D", 7)}
	got := TopUpcoming(in, 1)
	if len(got) != 3 {
		t.Fatalf("k=1: got %v, want A,B,C", names(got))
	}
	for i, n := range []string{"A", "B", "C"} {
		if got[i].Record.FullName != n {
			t.Fatalf("k=1: got %v, want A,B,C", names(got))
		}
	}
}

func TestTopUpcoming_StableOnTies(t *testing.T) {
	in := []Upcoming{up("X", 3), up("Y", 1), up("Z", 3), up("W", 1)}
	got := TopUpcoming(in, 2)
	want := []string{"Y", "W", "X", "Z"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", names(got), want)
	}
	for i, n := range want {
		if got[i].Record.FullName != n {
			t.Fatalf("got %v, want %v", names(got), want)
		}
	}
}

func TestTopUpcoming_Idempotent(t *testing.T) {
	in := []Upcoming{up("A", 2), up("B", 2), up("C", 4), up("D", 9), up("E", 9), up("F", 11)}
	first := TopUpcoming(in, 3)
	second := TopUpcoming(first, 3)
	if len(first) != len(second) {
		t.Fatalf("not idempotent: %v then %v", names(first), names(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("not idempotent: %v then %v", names(first), names(second))
		}
	}
}

func TestTopUpcoming_Edges(t *testing.T) {
	if got := TopUpcoming(nil, 5); len(got) != 0 {
		t.Errorf("empty input: got %v", names(got))
	}
	if got := TopUpcoming([]Upcoming{up("A", 1)}, 0); len(got) != 0 {
		t.Errorf("k=0: got %v", names(got))
	}
	if got := TopUpcoming([]Upcoming{up("A", 1)}, -3); len(got) != 0 {
		t.Errorf("k<0: got %v", names(got))
	}
	// Fewer distinct values than k returns everything.
	in := []Upcoming{up("A", 1), up("B", 2)}
	if got := TopUpcoming(in, 5); len(got) != 2 {
		t.Errorf("small input: got %v, want all", names(got))
	}
}

func TestTopUpcoming_DoesNotMutateInput(t *testing.T) {
	in := []Upcoming{up("B", 9), up("A", 1)}
	_ = TopUpcoming(in, 1)
	if in[0].Record.FullName != "B" || in[1].Record.FullName != "A" {
		t.Fatalf("input reordered: %v", names(in))
	}
}
