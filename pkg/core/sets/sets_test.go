package sets_test

import (
	"testing"

	"github.com/Qendolin/line-set-tool/pkg/core/sets"
	"github.com/matryer/is"
)

func setOf(items ...string) sets.Set {
	s := make(sets.Set, len(items))
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func TestAddCollapsesDuplicates(t *testing.T) {
	is := is.New(t)
	s := setOf("b", "a", "a", "c", "a")
	is.Equal(s.Len(), 3)
	is.True(s.Contains("a"))
	is.True(s.Contains("b"))
	is.True(s.Contains("c"))
	is.True(!s.Contains("d"))
}

func TestMakeSliceIsSorted(t *testing.T) {
	is := is.New(t)
	got := sets.MakeSlice(setOf("b", "", "B", "a", "ab"))
	is.Equal([]string(got), []string{"", "B", "a", "ab", "b"})
	is.Equal(len(sets.MakeSlice(sets.Set{})), 0)
}

func TestOperations(t *testing.T) {
	a := setOf("x", "y", "z")
	b := setOf("y", "z", "w")

	tests := []struct {
		name string
		got  sets.Set
		want sets.Set
	}{
		{"intersection", sets.Intersection(a, b), setOf("y", "z")},
		{"union", sets.Union(a, b), setOf("w", "x", "y", "z")},
		{"subtract a-b", sets.Subtract(a, b), setOf("x")},
		{"subtract b-a", sets.Subtract(b, a), setOf("w")},
		{"intersection with empty", sets.Intersection(a, sets.Set{}), setOf()},
		{"union with empty", sets.Union(sets.Set{}, b), setOf("w", "y", "z")},
		{"subtract empty", sets.Subtract(sets.Set{}, a), setOf()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(tt.got, tt.want)
		})
	}
}

func TestOperationsDoNotMutateInputs(t *testing.T) {
	is := is.New(t)
	a := setOf("1", "2")
	b := setOf("2", "3")
	_ = sets.Union(a, b)
	_ = sets.Intersection(a, b)
	_ = sets.Subtract(a, b)
	is.Equal(a, setOf("1", "2"))
	is.Equal(b, setOf("2", "3"))
}

func TestFormatSetLimit(t *testing.T) {
	is := is.New(t)
	is.Equal(sets.FormatSetLimit(sets.Set{}, 5).String(), "[]")
	is.Equal(sets.FormatSetLimit(setOf("b", "a"), 0).String(), "[a, b]")
	is.Equal(sets.FormatSetLimit(setOf("b", "a"), 2).String(), "[a, b]")
	is.Equal(sets.FormatSetLimit(setOf("c", "b", "a"), 2).String(), "[a, b, ... (1 more)]")
}
