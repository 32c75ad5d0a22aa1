/*
Package tree implements an in-memory model of parsed markup trees.

A markup tree is what remains of an HTML or XML document after parsing: element
nodes carrying a tag, an ordered set of attributes and an ordered sequence of
children, where every child is either a nested element or a text leaf.
This package does not parse markup; package dom bridges to an external HTML
parser. Neither does it serialize trees back to text.

The package offers three groups of functions:

Accessors

   Tag(n)                       // tag of an element node
   Attributes(n)                // attribute mapping (a view, not a copy)
   Children(n)                  // children sequence (a view, not a copy)
   Attr(n, name)                // attribute value or maybe.Nothing

Search

   Text(n)                      // direct text children, joined by a space
   Texts(n, sep)                // all text of the subtree
   ByTag(n, tag)                // element nodes with a given tag
   ByAttribute(n, name, regex)  // element nodes with a matching attribute
   ByClass / ByStyle / ByID     // ByAttribute for "class", "style", "id"
   Parent(root, target)         // immediate parent of target, or maybe.Nothing

Mutators

   NewNode(tag, attrs, …)       // construct an element node
   EnsureNode(n)                // resolve and normalize a node reference
   SetAttributes(n, attrs)      // replace the attribute mapping
   SetAttribute(n, key, value)  // set a single attribute
   AppendChild(n, child)        // append a child
   InsertChildBefore(n, c, b)   // insert c before b (or at the front)

Node References

Every function accepts a Ref, which is either a *Node or a Seq holding exactly
one *Node. Both are treated identically. Resolve performs this unwrapping in a
single place. Handing a malformed reference (a nil node, a text leaf, an empty
sequence) to an accessor or a search function is a programming error and
panics with an error wrapping ErrMalformedNode; mutators return that error
instead.

A node freshly constructed by NewNode without attributes and without children
has no attribute slot at all. Mutators normalize such nodes (see EnsureNode)
before writing to them.

Concurrency

The tree is an unsynchronized mutable structure. Concurrent reads are fine as
long as no mutation is in flight; everything else has to be serialized by the
client. Traversal is synchronous and uses an explicit stack, so tree depth is
not limited by the call stack.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'marktree.tree'.
func tracer() tracing.Trace {
	return tracing.Select("marktree.tree")
}

// ErrMalformedNode is returned (or panicked with) if a node reference does not
// denote an element node, e.g. a text leaf or an empty sequence.
var ErrMalformedNode = errors.New("reference is not a well-formed element node")

// ErrInvalidReference is returned if a child or sibling reference supplied
// by a client does not exist where it is claimed to be.
var ErrInvalidReference = errors.New("invalid node reference")

// ErrSharedNode is returned by CheckOwnership if a node is owned by more
// than one parent.
var ErrSharedNode = errors.New("node is shared between parents")

// ErrCycle is returned by CheckOwnership if a node is its own ancestor.
var ErrCycle = errors.New("node is its own ancestor")

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("marktree.tree: "+msg, msgargs...)
		tracer().Errorf(msg)
		panic(msg)
	}
}
