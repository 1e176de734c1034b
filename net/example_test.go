package net_test

import (
	"fmt"

	"github.com/katalvlaran/groute/net"
)

// Example demonstrates building a 3-pin Steiner tree arena from a builder's
// branch list and reading back its edge lengths.
func Example() {
	branches := []net.Branch{
		{X: 0, Y: 0, N: 3},
		{X: 4, Y: 0, N: 3},
		{X: 2, Y: 3, N: 3},
		{X: 2, Y: 0, N: 3},
	}
	tree, err := net.BuildTreeFromBranches(3, branches)
	if err != nil {
		fmt.Println(err)
		return
	}
	total := 0
	for _, e := range tree.Edges {
		total += e.Len
	}
	fmt.Println(total)
	// Output: 7
}
