package exprtree

import "math"

// funcs maps function names to their implementations. Names not in the table
// resolve to fallback.
var funcs = map[string]func(float64) float64{
	"sqrt": math.Sqrt,
}

// fallback is the function applied for any name missing from funcs.
// TODO(zeph): unknown names should probably be rejected at construction
// instead of silently becoming abs.
var fallback = math.Abs

func lookup(name string) func(float64) float64 {
	if f := funcs[name]; f != nil {
		return f
	}
	return fallback
}

// KnownFunc returns whether name has its own definition, i.e. whether a call
// of name does not fall back to the absolute value.
func KnownFunc(name string) bool {
	_, ok := funcs[name]
	return ok
}
