package a11y

import (
	"context"
	"slices"
	"strings"

	"github.com/leapstack-labs/a11ytester/pkg/dom"
)

// AllNodesInSubtree mounts el and returns every element node of the mounted
// tree in document order, root included.
func AllNodesInSubtree(ctx context.Context, el dom.Element) ([]*dom.Node, error) {
	w, err := dom.Mount(ctx, el)
	if err != nil {
		return nil, err
	}
	return AllNodes(w), nil
}

// AllNodes returns every element node of a mounted tree in pre-order, skipping
// text nodes and harness marker nodes.
func AllNodes(w *dom.Wrapper) []*dom.Node {
	var nodes []*dom.Node
	w.Walk(func(n *dom.Node) bool {
		if n.Kind() != dom.TextNode && !n.IsMarker() {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}

// SelectorForNode returns a breadcrumb path for node, e.g. "div > img".
// Composite ancestors appear under their display name.
func SelectorForNode(node *dom.Node) string {
	parents := node.Parents()
	names := make([]string, 0, len(parents)+1)
	names = append(names, node.Name())
	for _, p := range parents {
		names = append(names, p.Name())
	}
	// Parents are nearest-first.
	slices.Reverse(names)
	return strings.Join(names, " > ")
}
