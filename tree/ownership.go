package tree

import "github.com/pkg/errors"

// CheckOwnership verifies that the subtree referenced by r is a proper tree:
// no element node is its own ancestor, and no element node is a child of
// more than one parent. Mutators do not check this; clients may call
// CheckOwnership for debugging purposes.
func CheckOwnership(r Ref) error {
	type frame struct {
		node *Node
		next int // index of next child to visit
	}
	root, err := Resolve(r)
	if err != nil {
		return err
	}
	seen := map[*Node]bool{root: true}
	onPath := map[*Node]bool{root: true}
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.node.children) {
			delete(onPath, top.node)
			stack = stack[:len(stack)-1]
			continue
		}
		ch, ok := top.node.children[top.next].(*Node)
		top.next++
		if !ok || ch == nil {
			continue
		}
		if onPath[ch] {
			return errors.Wrapf(ErrCycle, "%v", ch)
		}
		if seen[ch] {
			return errors.Wrapf(ErrSharedNode, "%v", ch)
		}
		seen[ch] = true
		onPath[ch] = true
		stack = append(stack, frame{node: ch})
	}
	return nil
}
