package exprtree

import "math"

// Vars returns the sorted list of distinct variable names used in e. The
// result is nil if e contains no variables.
func Vars(e Expr) []string {
	seen := make(map[string]bool)
	collect(e, seen)
	if len(seen) == 0 {
		return nil
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

func collect(e Expr, seen map[string]bool) {
	switch e := e.(type) {
	case *Number: // do nothing
	case *BinaryOperation:
		collect(e.left, seen)
		collect(e.right, seen)
	case *FunctionCall:
		collect(e.arg, seen)
	case *Variable:
		seen[e.name] = true
	default:
		panic("exprtree: unknown expression type")
	}
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// Equal reports whether a and b are structurally identical trees. Numbers
// compare equal when their values have the same bits or are both NaN, so a
// folded 0/0 equals NewNumber(math.NaN()) and 0 differs from -0.
func Equal(a, b Expr) bool {
	switch a := a.(type) {
	case *Number:
		b, ok := b.(*Number)
		if !ok {
			return false
		}
		if math.IsNaN(a.value) {
			return math.IsNaN(b.value)
		}
		return math.Float64bits(a.value) == math.Float64bits(b.value)
	case *BinaryOperation:
		b, ok := b.(*BinaryOperation)
		return ok && a.op == b.op && Equal(a.left, b.left) && Equal(a.right, b.right)
	case *FunctionCall:
		b, ok := b.(*FunctionCall)
		return ok && a.name == b.name && Equal(a.arg, b.arg)
	case *Variable:
		b, ok := b.(*Variable)
		return ok && a.name == b.name
	default:
		panic("exprtree: unknown expression type")
	}
}
