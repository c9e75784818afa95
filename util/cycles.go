package util

import "github.com/hashicorp/go-set/v3"

// HasCycle walks a chain of nodes starting at start: `next` yields the
// successor of a node and false once the chain terminates (eg. a class with no
// superclass).  It returns true if the walk ever reaches a node it has already
// visited.  Nodes are compared by value so T should be an identity such as a
// pool index, not a deep structure.
func HasCycle[T comparable](start T, next func(T) (T, bool)) bool {
	visited := set.New[T](8)
	visited.Insert(start)

	current := start
	for {
		succ, ok := next(current)
		if !ok {
			return false
		}

		// Insert reports false if the node was already in the set
		if !visited.Insert(succ) {
			return true
		}

		current = succ
	}
}
