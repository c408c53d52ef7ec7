package exprtree

import (
	"strconv"
	"strings"
)

// Expr is a node in the syntax tree of an arithmetic expression. The set of
// implementations is closed: *Number, *BinaryOperation, *FunctionCall, and
// *Variable. Nodes are immutable once constructed.
type Expr interface {
	// Eval computes the value of the expression. It never fails; domain
	// problems surface as infinities or NaN.
	Eval() float64
	// Transform calls the method of t that matches the node's variant,
	// passing the node itself, and returns its result.
	Transform(t Transformer) Expr
	// String formats the expression with each term grouped by alternating
	// round and square brackets.
	String() string

	fmt(b *strings.Builder, square, alt bool)
}

// Op is a binary arithmetic operator.
type Op int8

const (
	Plus Op = iota
	Minus
	Div
	Mul
)

// String returns the operator's symbol.
func (op Op) String() string {
	switch op {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Div:
		return "/"
	case Mul:
		return "*"
	default:
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
}

// Valid returns whether op is one of the four operators.
func (op Op) Valid() bool {
	return op >= Plus && op <= Mul
}

// Number is a numeric literal.
type Number struct {
	value float64
}

// NewNumber creates a literal holding v.
func NewNumber(v float64) *Number {
	return &Number{value: v}
}

// Value returns the literal's value.
func (n *Number) Value() float64 {
	return n.value
}

// BinaryOperation applies one of the arithmetic operators to two operands.
type BinaryOperation struct {
	left  Expr
	right Expr
	op    Op
}

// NewBinaryOperation creates a node computing left op right. Panics if either
// operand is nil or op is not one of Plus, Minus, Div, or Mul.
func NewBinaryOperation(left Expr, op Op, right Expr) *BinaryOperation {
	if left == nil || right == nil {
		panic("exprtree: nil operand to " + op.String())
	}
	if !op.Valid() {
		panic("exprtree: invalid operator " + op.String())
	}
	return &BinaryOperation{left: left, right: right, op: op}
}

func (b *BinaryOperation) Left() Expr  { return b.left }
func (b *BinaryOperation) Right() Expr { return b.right }
func (b *BinaryOperation) Op() Op      { return b.op }

// FunctionCall applies a named function of one argument.
type FunctionCall struct {
	name string
	arg  Expr
}

// NewFunctionCall creates a call of the function name on arg. Any name is
// accepted; see FunctionCall.Eval for how names are resolved. Panics if arg
// is nil.
func NewFunctionCall(name string, arg Expr) *FunctionCall {
	if arg == nil {
		panic("exprtree: nil argument to " + strconv.Quote(name))
	}
	return &FunctionCall{name: name, arg: arg}
}

func (f *FunctionCall) Name() string { return f.name }
func (f *FunctionCall) Arg() Expr    { return f.arg }

// Variable is a named placeholder. There is no binding mechanism, so a
// variable is never constant.
type Variable struct {
	name string
}

// NewVariable creates a variable.
func NewVariable(name string) *Variable {
	return &Variable{name: name}
}

func (v *Variable) Name() string { return v.name }

func (n *Number) String() string          { return format(n, false) }
func (b *BinaryOperation) String() string { return format(b, false) }
func (f *FunctionCall) String() string    { return format(f, false) }
func (v *Variable) String() string        { return format(v, false) }

// Format formats e like e.String. If alt is true, multiplication and division
// use × and ÷ instead of * and /.
func Format(e Expr, alt bool) string {
	return format(e, alt)
}

func format(e Expr, alt bool) string {
	var b strings.Builder
	e.fmt(&b, false, alt)
	return b.String()
}

func brackets(square bool) (byte, byte) {
	if square {
		return '[', ']'
	}
	return '(', ')'
}

func (n *Number) fmt(b *strings.Builder, square, alt bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	b.WriteString(strconv.FormatFloat(n.value, 'g', -1, 64))
	b.WriteByte(r)
}

func (v *Variable) fmt(b *strings.Builder, square, alt bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	b.WriteString(v.name)
	b.WriteByte(r)
}

func (f *FunctionCall) fmt(b *strings.Builder, square, alt bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	b.WriteString(f.name)
	// The argument list uses the other bracket style, and the argument itself
	// flips back again.
	al, ar := brackets(!square)
	b.WriteByte(al)
	f.arg.fmt(b, square, alt)
	b.WriteByte(ar)
	b.WriteByte(r)
}

func (o *BinaryOperation) fmt(b *strings.Builder, square, alt bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	o.left.fmt(b, !square, alt)
	b.WriteByte(' ')
	switch {
	case alt && o.op == Mul:
		b.WriteString("×")
	case alt && o.op == Div:
		b.WriteString("÷")
	default:
		b.WriteString(o.op.String())
	}
	b.WriteByte(' ')
	o.right.fmt(b, !square, alt)
	b.WriteByte(r)
}
