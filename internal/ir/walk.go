package ir

import "errors"

// SkipChildren is returned by a Visitor method to stop Walk from
// descending into that node's children, without treating it as an
// error. Grounded on the teacher's internal/markdown/visitor.go, which
// uses the same sentinel for the same purpose.
var SkipChildren = errors.New("ir: skip children")

// Visitor is called once per node, in document order, as Walk descends
// the tree. A single VisitNode method (rather than the teacher's
// one-method-per-concrete-type interface) keeps the surface small,
// since the IR here has one discriminated Kind rather than the
// teacher's many leaf types.
type Visitor interface {
	VisitNode(n Node) error
}

// VisitorFunc adapts a plain function to a Visitor.
type VisitorFunc func(n Node) error

func (f VisitorFunc) VisitNode(n Node) error { return f(n) }

// Walk performs a depth-first, document-order traversal of root and its
// descendants (including into Section and Grid-cell children), calling
// v.VisitNode on each. Returning SkipChildren from VisitNode stops
// descent into that node only; any other non-nil error aborts the walk
// and is returned to the caller.
func Walk(root Node, v Visitor) error {
	if root == nil {
		return nil
	}

	err := v.VisitNode(root)
	if err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}

		return err
	}

	for _, child := range root.Children() {
		if err := Walk(child, v); err != nil {
			return err
		}
	}

	return nil
}

// Collect walks root and returns every node visited, in document order.
func Collect(root Node) []Node {
	var out []Node
	_ = Walk(root, VisitorFunc(func(n Node) error {
		out = append(out, n)

		return nil
	}))

	return out
}
