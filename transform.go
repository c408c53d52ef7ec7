package exprtree

import (
	"github.com/sirupsen/logrus"
)

// Transformer produces a new expression from each variant of Expr. A
// transformer is invoked through Expr.Transform, which selects the method
// matching the node's variant. Implementations typically recurse into child
// nodes by calling their Transform methods with the same transformer.
//
// Transformers must not modify the nodes they are given; they return new
// nodes instead.
type Transformer interface {
	TransformNumber(n *Number) Expr
	TransformBinaryOperation(b *BinaryOperation) Expr
	TransformFunctionCall(f *FunctionCall) Expr
	TransformVariable(v *Variable) Expr
}

func (n *Number) Transform(t Transformer) Expr          { return t.TransformNumber(n) }
func (b *BinaryOperation) Transform(t Transformer) Expr { return t.TransformBinaryOperation(b) }
func (f *FunctionCall) Transform(t Transformer) Expr    { return t.TransformFunctionCall(f) }
func (v *Variable) Transform(t Transformer) Expr        { return t.TransformVariable(v) }

// Apply transforms e with t.
func Apply(t Transformer, e Expr) Expr {
	return e.Transform(t)
}

// CopySyntaxTree is a Transformer that produces a deep copy of an expression.
// The copy shares no nodes with the original.
type CopySyntaxTree struct{}

func (c CopySyntaxTree) TransformNumber(n *Number) Expr {
	return NewNumber(n.value)
}

func (c CopySyntaxTree) TransformBinaryOperation(b *BinaryOperation) Expr {
	return NewBinaryOperation(b.left.Transform(c), b.op, b.right.Transform(c))
}

func (c CopySyntaxTree) TransformFunctionCall(f *FunctionCall) Expr {
	return NewFunctionCall(f.name, f.arg.Transform(c))
}

func (c CopySyntaxTree) TransformVariable(v *Variable) Expr {
	return NewVariable(v.name)
}

// FoldConstants is a Transformer that replaces every subexpression whose
// operands are all literals with a literal holding its value. Folding proceeds
// bottom-up, so entire constant subtrees collapse in one pass. No algebraic
// identities are applied; an operation folds only when all of its operands
// have become numbers.
type FoldConstants struct {
	// Logger receives a debug entry for each folded subexpression. If nil,
	// nothing is logged.
	Logger logrus.FieldLogger
}

func (c FoldConstants) TransformNumber(n *Number) Expr {
	return NewNumber(n.value)
}

func (c FoldConstants) TransformBinaryOperation(b *BinaryOperation) Expr {
	l := b.left.Transform(c)
	r := b.right.Transform(c)
	e := NewBinaryOperation(l, b.op, r)
	_, lok := l.(*Number)
	_, rok := r.(*Number)
	if lok && rok {
		return c.fold(e)
	}
	return e
}

func (c FoldConstants) TransformFunctionCall(f *FunctionCall) Expr {
	arg := f.arg.Transform(c)
	e := NewFunctionCall(f.name, arg)
	if _, ok := arg.(*Number); ok {
		return c.fold(e)
	}
	return e
}

func (c FoldConstants) TransformVariable(v *Variable) Expr {
	return NewVariable(v.name)
}

// fold replaces e with its value.
func (c FoldConstants) fold(e Expr) *Number {
	n := NewNumber(e.Eval())
	if c.Logger != nil {
		c.Logger.WithFields(logrus.Fields{
			"expr":  e.String(),
			"value": n.value,
		}).Debug("folded constant expression")
	}
	return n
}
