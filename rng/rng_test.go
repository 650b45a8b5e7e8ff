package rng

import (
	"cmp"
	"slices"
	"testing"
)

const (
	min = -1
	max = 11
)

func Test(t *testing.T) {
	for _, test := range []struct {
		r    Range[int]
		want []int
	}{
		{Range[int]{}, nil},
		{From(1).To(3), []int{1, 2, 3}},
		{From(3).Below(4), []int{3}},
		{Above(2).To(5), []int{3, 4, 5}},
		{Above(8).Below(10), []int{9}},
		{From(9).Below(8), nil},
		{Below(2), []int{-1, 0, 1}},
		{To(2), []int{-1, 0, 1, 2}},
		{Above(8), []int{9, 10, 11}},
		{All[int](), []int{-1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
	} {
		got := slice(test.r)
		if !slices.Equal(got, test.want) {
			t.Errorf("%s: got %v, want %v", test.r, got, test.want)
		}
		rb := test.r.Backwards()
		t.Log(rb)
		got = slice(rb)
		want := slices.Clone(test.want)
		slices.Reverse(want)
		if !slices.Equal(got, want) {
			t.Errorf("%s: got %v, want %v", rb, got, want)
		}
	}
}

func TestString(t *testing.T) {
	for _, test := range []struct {
		r    Range[int]
		want string
	}{
		{All[int](), "(-∞, ∞)"},
		{From(1), "[1, ∞)"},
		{Below(3), "(-∞, 3)"},
		{From(1).To(3), "[1, 3]"},
		{Above(1).Below(3).Backwards(), "(1, 3) backwards"},
	} {
		if got := test.r.String(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}

func TestUninitialized(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("To on a bounded range did not panic")
		}
	}()
	From(1).To(3).To(4)
}

// slice lists the integers in [min, max] that r contains, in r's direction.
func slice(r Range[int]) []int {
	var ints []int
	for i := min; i <= max; i++ {
		if r.Contains(cmp.Compare[int], i) {
			ints = append(ints, i)
		}
	}
	if r.IsBackwards() {
		slices.Reverse(ints)
	}
	return ints
}
