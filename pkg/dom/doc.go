// Package dom mounts UI tree descriptions into a traversable node tree.
//
// # Describing a tree
//
// Trees are built from Elements: host elements, text, composite components,
// raw markup and templ components.
//
//	customTable := dom.Define("CustomTable", func(props dom.Props, children []dom.Element) dom.Element {
//		return dom.El("table", nil, dom.El("tbody", nil, dom.El("tr", nil)))
//	})
//
//	tree := dom.El("div", nil,
//		dom.El("img", dom.Props{"src": "image.jpg"}),
//		customTable(nil),
//	)
//
// # Mounting
//
// Mount renders composite components, parses raw and templ markup with
// golang.org/x/net/html, and returns a Wrapper rooted at a harness element
// carrying the MarkerAttr attribute. The harness element is invisible to
// Node.Parents and Node.Parent.
//
//	w, err := dom.Mount(ctx, tree)
//	rows, err := w.Find("tr")
//
// Tag names and prop keys are lower-cased when mounted; className and htmlFor
// are stored as class and for.
package dom
