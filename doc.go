/*
Package marktree is a toolkit for in-memory markup trees.

Markup trees are what is left of HTML or XML documents after parsing: element
nodes with a tag, attributes and children, where children are either element
nodes or text leafs. The module is organized as follows:

   tree          data model, accessors, search and mutation of markup trees
   maybe         optional values for lookups which may come up empty
   dom           conversion from and to HTML parse trees (golang.org/x/net/html)
   dom/style     inline CSS styles of elements
   dom/domdbg    debugging output for markup trees
   cmd/marktree  command line tool to inspect HTML documents

Parsing and rendering HTML text is left to package golang.org/x/net/html.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package marktree
