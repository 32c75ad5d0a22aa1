package tree

import (
	"github.com/pkg/errors"
)

// NewNode creates a new element node. attrs may be nil. If neither attributes
// nor children are given, the node consists of its tag only and will be
// normalized by the first mutator touching it. If children are given,
// the node always carries an attribute mapping.
//
// Ownership of every child subtree passes to the new node.
//
// An empty tag is a programming error; NewNode panics with an error
// wrapping ErrMalformedNode.
func NewNode(tag string, attrs *AttrMap, children ...Child) *Node {
	if tag == "" {
		err := errors.Wrap(ErrMalformedNode, "cannot create node without tag")
		tracer().Errorf(err.Error())
		panic(err)
	}
	node := &Node{Tag: tag}
	if attrs != nil {
		node.attrs = attrs.clone()
	}
	if len(children) > 0 {
		if node.attrs == nil {
			node.attrs = &AttrMap{}
		}
		node.children = make([]Child, len(children))
		copy(node.children, children)
	}
	return node
}

// EnsureNode resolves a node reference and normalizes the node: if it has
// no attribute slot yet, an empty attribute mapping is added in place.
// EnsureNode is idempotent. It returns the effective node, which clients
// should use for subsequent operations.
func EnsureNode(r Ref) (*Node, error) {
	n, err := Resolve(r)
	if err != nil {
		return nil, err
	}
	if n.attrs == nil {
		tracer().Debugf("normalizing header-only node %s", n.Tag)
		n.attrs = &AttrMap{}
	}
	return n, nil
}

// SetAttributes replaces the whole attribute mapping of a node by a copy of
// attrs. A nil mapping clears all attributes.
func SetAttributes(r Ref, attrs *AttrMap) (*Node, error) {
	n, err := EnsureNode(r)
	if err != nil {
		return nil, err
	}
	n.attrs = attrs.clone()
	return n, nil
}

// SetAttribute sets attribute name to value. An existing attribute is
// overwritten in place, a new one is appended to the end of the mapping.
func SetAttribute(r Ref, name, value string) (*Node, error) {
	n, err := EnsureNode(r)
	if err != nil {
		return nil, err
	}
	n.attrs.Set(name, value)
	return n, nil
}

// RemoveAttribute deletes attribute name from a node, if present.
func RemoveAttribute(r Ref, name string) (*Node, error) {
	n, err := EnsureNode(r)
	if err != nil {
		return nil, err
	}
	n.attrs.Delete(name)
	return n, nil
}

// AppendChild appends child to the children of a node, transferring
// ownership of child. It returns the updated children sequence.
func AppendChild(r Ref, child Child) ([]Child, error) {
	n, err := EnsureNode(r)
	if err != nil {
		return nil, err
	}
	if err = checkInsertable(n, child); err != nil {
		return nil, err
	}
	n.children = append(n.children, child)
	return n.children, nil
}

// InsertChildBefore inserts child immediately before the existing child
// before. If before is nil, child becomes the first child. If before is not
// a child of the node, an error wrapping ErrInvalidReference is returned and
// the children are left unchanged.
//
// Element children are compared by identity, text leafs by value (the first
// equal text leaf is taken).
//
// Clients must use the returned node reference afterwards.
func InsertChildBefore(r Ref, child Child, before Child) (*Node, error) {
	n, err := EnsureNode(r)
	if err != nil {
		return nil, err
	}
	if err = checkInsertable(n, child); err != nil {
		return nil, err
	}
	i := 0
	if before != nil {
		if i = indexOf(n.children, before); i < 0 {
			return nil, errors.Wrapf(ErrInvalidReference, "%v is not a child of %v", before, n)
		}
	}
	n.children = append(n.children, nil) // make room for one child
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	return n, nil
}

// RemoveChild removes child from the children of a node. The child is
// compared like in InsertChildBefore. If child is not found, an error wrapping
// ErrInvalidReference is returned.
func RemoveChild(r Ref, child Child) (*Node, error) {
	n, err := EnsureNode(r)
	if err != nil {
		return nil, err
	}
	i := indexOf(n.children, child)
	if child == nil || i < 0 {
		return nil, errors.Wrapf(ErrInvalidReference, "%v is not a child of %v", child, n)
	}
	last := len(n.children) - 1
	copy(n.children[i:], n.children[i+1:])
	n.children[last] = nil // do not keep the removed subtree reachable
	n.children = n.children[:last]
	return n, nil
}

// IndexOfChild returns the position of child within the children of a node,
// or -1.
func IndexOfChild(r Ref, child Child) int {
	return indexOf(Children(r), child)
}

func indexOf(children []Child, child Child) int {
	for i, ch := range children {
		if ch == child {
			return i
		}
	}
	return -1
}

func checkInsertable(n *Node, child Child) error {
	switch c := child.(type) {
	case nil:
		return errors.Wrap(ErrInvalidReference, "cannot insert nil child")
	case *Node:
		if c == nil {
			return errors.Wrap(ErrInvalidReference, "cannot insert nil node")
		}
		if c == n {
			return errors.Wrapf(ErrInvalidReference, "cannot insert %v into itself", n)
		}
	}
	tracer().Debugf("inserting %v into %v", child, n)
	return nil
}
