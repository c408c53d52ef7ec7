package exprtree

// Eval returns the literal's value.
func (n *Number) Eval() float64 {
	return n.value
}

// Eval evaluates both operands, left first, and combines them with IEEE-754
// double arithmetic. Division by zero gives a signed infinity, or NaN for 0/0.
func (b *BinaryOperation) Eval() float64 {
	l := b.left.Eval()
	r := b.right.Eval()
	switch b.op {
	case Plus:
		return l + r
	case Minus:
		return l - r
	case Div:
		return l / r
	case Mul:
		return l * r
	default:
		panic("exprtree: invalid operator " + b.op.String())
	}
}

// Eval evaluates the argument and applies the function named by f. The name
// "sqrt" computes the square root; every other name, including unknown ones,
// computes the absolute value.
func (f *FunctionCall) Eval() float64 {
	x := f.arg.Eval()
	return lookup(f.name)(x)
}

// Eval always returns 0. Variables are never bound to values.
func (v *Variable) Eval() float64 {
	return 0
}
