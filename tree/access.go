package tree

import "github.com/npillmayer/marktree/maybe"

// Tag returns the tag of an element node.
func Tag(r Ref) string {
	return mustResolve(r).Tag
}

// Attributes returns the attribute mapping of an element node. The mapping
// is not a copy. For a node which has not yet been normalized, the
// result is nil, which reads as an empty mapping.
func Attributes(r Ref) *AttrMap {
	return mustResolve(r).attrs
}

// Children returns the children of an element node. The slice is not a copy
// and must not be modified by clients; use the mutators instead.
func Children(r Ref) []Child {
	return mustResolve(r).children
}

// Attr returns the value of attribute name, or Nothing if the node does
// not carry that attribute.
func Attr(r Ref, name string) maybe.Maybe[string] {
	v, ok := Attributes(r).Get(name)
	return maybe.Of(v, ok)
}
