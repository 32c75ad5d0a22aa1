package tree

import (
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/npillmayer/marktree/maybe"
	"github.com/pkg/errors"
)

// Walk visits the element nodes of a (sub-)tree in pre-order, left to right,
// starting with (and including) the node referenced by r. If visit returns
// false, the children of the visited node are skipped.
//
// Walk uses an explicit stack instead of recursion.
func Walk(r Ref, visit func(n *Node) bool) {
	stack := []*Node{mustResolve(r)}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(n) {
			continue
		}
		for i := len(n.children) - 1; i >= 0; i-- { // push in reverse => pop left to right
			if ch, ok := n.children[i].(*Node); ok && ch != nil {
				stack = append(stack, ch)
			}
		}
	}
}

// collect returns all nodes of a subtree matching a predicate. A matching
// node precedes the matches found within its own subtree; matches of sibling
// subtrees appear left to right.
func collect(r Ref, pred func(*Node) bool) []*Node {
	var matches []*Node
	Walk(r, func(n *Node) bool {
		if pred(n) {
			matches = append(matches, n)
		}
		return true
	})
	return matches
}

// Text returns the direct text children of a node, joined by a single space.
// Element children are ignored.
func Text(r Ref) string {
	var texts []string
	for _, ch := range Children(r) {
		if t, ok := ch.(Leaf); ok {
			texts = append(texts, string(t))
		}
	}
	return strings.Join(texts, " ")
}

// Texts returns all text leafs of a subtree in document order, joined by sep.
// Element nodes without any text leafs do not contribute to the result.
func Texts(r Ref, sep string) string {
	var texts []string
	stack := []Child{mustResolve(r)}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch c := top.(type) {
		case Leaf:
			texts = append(texts, string(c))
		case *Node:
			if c == nil {
				continue
			}
			for i := len(c.children) - 1; i >= 0; i-- { // push in reverse => pop left to right
				stack = append(stack, c.children[i])
			}
		}
	}
	return strings.Join(texts, sep)
}

// TextsSpace is Texts with a single space as separator.
func TextsSpace(r Ref) string {
	return Texts(r, " ")
}

// ByTag returns all element nodes of a subtree (including its root) with a
// given tag. If the root matches, it is the first entry of the result.
func ByTag(r Ref, tag string) []*Node {
	return collect(r, func(n *Node) bool {
		return n.Tag == tag
	})
}

// ByAttribute returns all element nodes of a subtree (including its root)
// carrying an attribute `name` whose value matches the regular expression
// pattern. Matching is unanchored, i.e. the pattern may match any substring
// of the value. Patterns follow Perl/.NET syntax (package regexp2).
//
// Nodes lacking the attribute do not match, but their subtrees are searched.
func ByAttribute(r Ref, name string, pattern string) ([]*Node, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, errors.Wrapf(err, "attribute pattern for %q", name)
	}
	return ByAttributeMatching(r, name, re), nil
}

// ByAttributeMatching is ByAttribute with a pre-compiled pattern.
func ByAttributeMatching(r Ref, name string, re *regexp2.Regexp) []*Node {
	assertThat(re != nil, "pattern for attribute %q is nil", name)
	return collect(r, func(n *Node) bool {
		v, ok := n.attrs.Get(name)
		if !ok {
			return false
		}
		match, err := re.MatchString(v)
		if err != nil { // only on match timeout
			tracer().Errorf("matching attribute %s=%q: %v", name, v, err)
			return false
		}
		return match
	})
}

// ByClass searches for nodes with a "class" attribute matching pattern.
func ByClass(r Ref, pattern string) ([]*Node, error) {
	return ByAttribute(r, "class", pattern)
}

// ByStyle searches for nodes with a "style" attribute matching pattern.
func ByStyle(r Ref, pattern string) ([]*Node, error) {
	return ByAttribute(r, "style", pattern)
}

// ByID searches for nodes with an "id" attribute matching pattern.
func ByID(r Ref, pattern string) ([]*Node, error) {
	return ByAttribute(r, "id", pattern)
}

// Parent returns the element node within the subtree of root which holds
// target as a direct child. Nodes are compared by identity. If target is not
// part of the subtree, or is root itself, Parent returns Nothing.
func Parent(root Ref, target *Node) maybe.Maybe[*Node] {
	var parent *Node
	if target == nil {
		return maybe.Nothing[*Node]()
	}
	Walk(root, func(n *Node) bool {
		if parent != nil {
			return false
		}
		for _, ch := range n.children {
			if ch == Child(target) {
				parent = n
				return false
			}
		}
		return true
	})
	return maybe.Of(parent, parent != nil)
}
