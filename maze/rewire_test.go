package maze

import (
	"testing"

	"github.com/katalvlaran/groute/net"
)

// manualTree builds the 5-node tree used by the re-parent test:
//
//	A(pin,0,0) --e0-- S(Steiner,2,2) --e1-- B(pin,10,0) --e3(maze)-- D(pin,10,10)
//	                        \
//	                         e2
//	                          \
//	                        C(pin,0,10)
func manualTree(t *testing.T) (*net.StTree, int, int, int, int) {
	t.Helper()
	nodes := []net.TreeNode{
		{X: 0, Y: 0, IsPin: true, PinIndex: 0, Nbr: [3]int{-1, -1, -1}, Edge: [3]int{-1, -1, -1}},
		{X: 10, Y: 0, IsPin: true, PinIndex: 1, Nbr: [3]int{-1, -1, -1}, Edge: [3]int{-1, -1, -1}},
		{X: 0, Y: 10, IsPin: true, PinIndex: 2, Nbr: [3]int{-1, -1, -1}, Edge: [3]int{-1, -1, -1}},
		{X: 2, Y: 2, IsPin: false, PinIndex: -1, Nbr: [3]int{-1, -1, -1}, Edge: [3]int{-1, -1, -1}},
		{X: 10, Y: 10, IsPin: true, PinIndex: 3, Nbr: [3]int{-1, -1, -1}, Edge: [3]int{-1, -1, -1}},
	}
	tree := &net.StTree{Deg: 4, Nodes: nodes, Edges: make([]net.TreeEdge, 4)}

	attach := func(n1, n2, edgeID int) {
		if err := tree.AttachEdge(n1, n2, edgeID); err != nil {
			t.Fatalf("attach %d-%d: %v", n1, n2, err)
		}
	}
	const (
		a, b, c, s, d = 0, 1, 2, 3, 4
		e0, e1, e2, e3 = 0, 1, 2, 3
	)
	attach(s, a, e0)
	attach(s, b, e1)
	attach(s, c, e2)
	attach(b, d, e3)
	tree.Edges[e3].Route = net.Route{
		Type: net.MazeRoute,
		Grid: []net.GridStep{{X: 10, Y: 0}, {X: 10, Y: 5}, {X: 10, Y: 10}},
	}

	return tree, a, s, e0, e3
}

func TestRewireEndpoint_NoopWhenAlreadyAtTarget(t *testing.T) {
	tree, _, s, e0, _ := manualTree(t)
	if err := rewireEndpoint(tree, s, e0, 2, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Nodes[s].X != 2 || tree.Nodes[s].Y != 2 {
		t.Fatalf("node moved when it should not have")
	}
}

func TestRewireEndpoint_PinNeverMoves(t *testing.T) {
	tree, a, _, e0, _ := manualTree(t)
	if err := rewireEndpoint(tree, a, e0, 99, 99); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Nodes[a].X != 0 || tree.Nodes[a].Y != 0 {
		t.Fatalf("pin moved")
	}
}

func TestRewireEndpoint_ReparentsOntoUnrelatedEdge(t *testing.T) {
	tree, _, s, e0, e3 := manualTree(t)

	if err := rewireEndpoint(tree, s, e0, 10, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tree.Nodes[s].X != 10 || tree.Nodes[s].Y != 5 {
		t.Fatalf("Steiner node did not move to (10,5): got (%d,%d)", tree.Nodes[s].X, tree.Nodes[s].Y)
	}

	// S must now be connected to A (unchanged), B (via the relinked e3), and
	// D (via a freshly attached edge reusing the retired e2 slot).
	const a, b, d = 0, 1, 4
	if tree.EdgeID(s, a) < 0 {
		t.Fatalf("S-A edge missing after reparent")
	}
	if tree.EdgeID(s, b) < 0 {
		t.Fatalf("S-B edge missing after reparent")
	}
	if tree.EdgeID(s, d) < 0 {
		t.Fatalf("S-D edge missing after reparent")
	}

	// B and C must now be directly connected (the bypass MergeEdges created).
	const c = 2
	if tree.EdgeID(b, c) < 0 {
		t.Fatalf("B-C bypass edge missing after reparent")
	}

	// D no longer connects directly to B.
	if tree.EdgeID(b, d) >= 0 {
		t.Fatalf("B-D edge should have been severed by the reparent")
	}

	// The relinked edge's stale maze geometry must be cleared.
	if tree.Edges[e3].Route.Type != net.NoRoute {
		t.Fatalf("expected relinked edge's Route to be invalidated, got %v", tree.Edges[e3].Route.Type)
	}
}

func TestFindEdgeContaining_MatchesGridCell(t *testing.T) {
	tree, _, _, e0, e3 := manualTree(t)
	got := findEdgeContaining(tree, 10, 5, e0)
	if got != e3 {
		t.Fatalf("expected to find e3, got %d", got)
	}
}
