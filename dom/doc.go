/*
Package dom bridges between HTML parse trees and markup trees.

Parsing HTML is not the business of this module. We rely on the parser of
package golang.org/x/net/html and convert its output into the leaner
representation of package tree: element nodes with tag, attributes and
children, where children are either element nodes or text leafs. Comments,
doctypes and other node types of the HTML parse tree are dropped.

The reverse direction, ToHTML, builds an html.Node tree from a markup tree,
which may then be rendered to text by package html.

    root, err := dom.Parse(strings.NewReader(`<p class="x">Hello <b>World</b></p>`))
    ps, _ := tree.ByClass(root, "x")
    fmt.Println(tree.TextsSpace(ps[0]))   // "Hello  World"

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'marktree.dom'
func tracer() tracing.Trace {
	return tracing.Select("marktree.dom")
}
