package util

import (
	"testing"

	"github.com/nalgeon/be"
)

// chain builds a successor function from a parent table where -1 marks a root
func chain(parents map[int]int) func(int) (int, bool) {
	return func(n int) (int, bool) {
		p, ok := parents[n]
		if !ok || p == -1 {
			return 0, false
		}

		return p, true
	}
}

func TestHasCycle(t *testing.T) {
	tests := []struct {
		name    string
		parents map[int]int
		start   int
		want    bool
	}{
		{"root only", map[int]int{0: -1}, 0, false},
		{"linear chain", map[int]int{0: 1, 1: 2, 2: -1}, 0, false},
		{"self loop", map[int]int{0: 0}, 0, true},
		{"two cycle", map[int]int{0: 1, 1: 0}, 0, true},
		{"cycle further up", map[int]int{0: 1, 1: 2, 2: 3, 3: 1}, 0, true},
		{"unknown start", map[int]int{}, 7, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			be.Equal(t, HasCycle(test.start, chain(test.parents)), test.want)
		})
	}
}

func TestHasCycleStrings(t *testing.T) {
	next := func(s string) (string, bool) {
		switch s {
		case "A":
			return "B", true
		case "B":
			return "C", true
		}

		return "", false
	}

	be.True(t, !HasCycle("A", next))
}

func TestContainsAndMapErr(t *testing.T) {
	be.True(t, Contains([]int{1, 2, 3}, 2))
	be.True(t, !Contains([]string{"a"}, "b"))

	doubled, err := MapErr([]int{1, 2}, func(i int) (int, error) { return i * 2, nil })
	be.Err(t, err, nil)
	be.Equal(t, doubled, []int{2, 4})
}
