package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/pkg/errors"
)

/*
We manage a tree of mutable element nodes. Children of an element are either
text leafs or other element nodes, kept in a plain slice. Nodes do not know
their parents; ownership is implied by membership in exactly one children
slice. Clients share *Node handles, so every holder of a handle observes
mutations.
*/

// Child is an entry in the children sequence of an element node. It is
// either a Leaf or a *Node.
type Child interface {
	isChild()
}

// Leaf is a text leaf. It has neither tag, attributes nor children and is
// never a valid node reference.
type Leaf string

func (Leaf) isChild() {}

// Node is an element node, the base type our tree is built of.
type Node struct {
	Tag      string   // tag of the element, e.g. "td"; never empty
	attrs    *AttrMap // nil until normalized, if constructed without attributes
	children []Child  // text leafs and element nodes, in document order
}

func (*Node) isChild() {}

func (node *Node) String() string {
	if node == nil {
		return "(Node <nil>)"
	}
	return fmt.Sprintf("(Node %s #attr=%d #ch=%d)", node.Tag, node.attrs.Len(), len(node.children))
}

// IsNormalized is true if the node has an explicit (possibly empty)
// attribute mapping.
func (node *Node) IsNormalized() bool {
	return node != nil && node.attrs != nil
}

// Seq is a sequence of children. A Seq holding exactly one *Node may be used
// wherever a node reference is expected.
type Seq []Child

// Ref is a reference to an element node: either a *Node or a singleton Seq
// wrapping a *Node.
type Ref interface {
	resolve() (*Node, error)
}

func (node *Node) resolve() (*Node, error) {
	if node == nil {
		return nil, errors.Wrap(ErrMalformedNode, "nil node")
	}
	if node.Tag == "" {
		return nil, errors.Wrap(ErrMalformedNode, "node without tag")
	}
	return node, nil
}

func (seq Seq) resolve() (*Node, error) {
	if len(seq) != 1 {
		return nil, errors.Wrapf(ErrMalformedNode, "sequence of length %d", len(seq))
	}
	switch c := seq[0].(type) {
	case *Node:
		return c.resolve()
	case Leaf:
		return nil, errors.Wrapf(ErrMalformedNode, "text leaf %q", string(c))
	}
	return nil, errors.Wrap(ErrMalformedNode, "sequence holds nil")
}

// Resolve unwraps a node reference, returning the effective element node.
// A nil reference, a text leaf or a sequence not holding exactly one element
// node results in an error wrapping ErrMalformedNode.
func Resolve(r Ref) (*Node, error) {
	if r == nil {
		return nil, errors.Wrap(ErrMalformedNode, "nil reference")
	}
	return r.resolve()
}

// mustResolve is used by read-only functions, where a malformed reference
// is a programming error.
func mustResolve(r Ref) *Node {
	n, err := Resolve(r)
	if err != nil {
		tracer().Errorf(err.Error())
		panic(err)
	}
	return n
}

// --- Attributes ------------------------------------------------------------

// Attribute is a single attribute of an element node.
type Attribute struct {
	Key   string
	Value string
}

// AttrMap is an ordered mapping of attribute names to values. Keys are
// unique; the order of insertion is preserved. A nil *AttrMap behaves like
// an empty mapping for reading.
type AttrMap struct {
	list []Attribute
}

// NewAttrMap creates an attribute mapping from a list of attributes.
// If a key occurs more than once, the last value wins, keeping the position
// of the first occurrence.
func NewAttrMap(attrs ...Attribute) *AttrMap {
	a := &AttrMap{list: make([]Attribute, 0, len(attrs))}
	for _, at := range attrs {
		a.Set(at.Key, at.Value)
	}
	return a
}

// A is a shortcut for creating attributes from alternating keys and values.
// A dangling key gets an empty value.
//
//     attrs := tree.A("class", "btn primary", "id", "ok")
//
func A(kv ...string) *AttrMap {
	a := &AttrMap{list: make([]Attribute, 0, (len(kv)+1)/2)}
	for i := 0; i < len(kv); i += 2 {
		if i+1 < len(kv) {
			a.Set(kv[i], kv[i+1])
		} else {
			a.Set(kv[i], "")
		}
	}
	return a
}

// Len returns the number of attributes.
func (a *AttrMap) Len() int {
	if a == nil {
		return 0
	}
	return len(a.list)
}

// Get returns the value for key, if present.
func (a *AttrMap) Get(key string) (string, bool) {
	if i := a.index(key); i >= 0 {
		return a.list[i].Value, true
	}
	return "", false
}

// Set overwrites the value for key in place, or appends a new attribute
// if key is not yet present.
func (a *AttrMap) Set(key, value string) {
	if i := a.index(key); i >= 0 {
		a.list[i].Value = value
		return
	}
	a.list = append(a.list, Attribute{Key: key, Value: value})
}

// Delete removes key from the mapping. It returns false if key was not present.
func (a *AttrMap) Delete(key string) bool {
	i := a.index(key)
	if i < 0 {
		return false
	}
	last := len(a.list) - 1
	copy(a.list[i:], a.list[i+1:])
	a.list[last] = Attribute{}
	a.list = a.list[:last]
	return true
}

// Keys returns the attribute names in order.
func (a *AttrMap) Keys() []string {
	keys := make([]string, a.Len())
	for i := range keys {
		keys[i] = a.list[i].Key
	}
	return keys
}

// All returns a copy of the attributes in order.
func (a *AttrMap) All() []Attribute {
	r := make([]Attribute, a.Len())
	if a != nil {
		copy(r, a.list)
	}
	return r
}

// Equal compares two mappings, including order.
func (a *AttrMap) Equal(other *AttrMap) bool {
	if a.Len() != other.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.list[i] != other.list[i] {
			return false
		}
	}
	return true
}

func (a *AttrMap) clone() *AttrMap {
	if a == nil {
		return &AttrMap{}
	}
	return &AttrMap{list: a.All()}
}

func (a *AttrMap) index(key string) int {
	if a == nil {
		return -1
	}
	for i, at := range a.list {
		if at.Key == key {
			return i
		}
	}
	return -1
}

func (a *AttrMap) String() string {
	s := "{"
	for i, at := range a.All() {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%s=%q", at.Key, at.Value)
	}
	return s + "}"
}
