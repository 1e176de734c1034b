package layer3d

import (
	"github.com/katalvlaran/groute/grid"
	"github.com/katalvlaran/groute/net"
)

// AssignNet walks tree breadth-first from its first pin node, assigning a
// layer to every tree edge in visitation order so that each edge's source
// endpoint envelope is already fixed by the time it is processed (spec
// §4.5 steps 2-3). It requires InitPinLayers (or an equivalent prior pass)
// to have seeded pin envelopes; AssignEdge seeds an unassigned starting
// node with the full layer range on its own, so calling AssignNet without
// InitPinLayers still terminates, just without the "pins default to layer
// 0" preference.
func AssignNet(g *grid.Grid, tree *net.StTree, cfg Config) error {
	if len(tree.Nodes) == 0 {
		return nil
	}

	visited := make([]bool, len(tree.Nodes))
	root := 0
	visited[root] = true
	queue := []int{root}

	for len(queue) > 0 {
		n1 := queue[0]
		queue = queue[1:]
		node := tree.Nodes[n1]
		for i := 0; i < node.NbrCount; i++ {
			n2 := node.Nbr[i]
			edgeID := node.Edge[i]
			if visited[n2] {
				continue
			}
			visited[n2] = true
			if err := AssignEdge(g, tree, edgeID, n1, n2, cfg); err != nil {
				return err
			}
			queue = append(queue, n2)
		}
	}

	return nil
}
