// Package exprtree implements immutable arithmetic expression trees.
//
// An expression is built from numbers, variables, the binary operators + - * /
// and calls of named functions of one argument, e.g.
//
//	NewFunctionCall("sqrt", NewBinaryOperation(NewNumber(16), Plus, NewNumber(9)))
//
// Trees evaluate to float64 with ordinary IEEE-754 semantics: dividing by zero
// gives an infinity or NaN rather than an error. Variables carry no values and
// evaluate to 0.
//
// New operations on trees are written as Transformers, which receive each
// node through the method for its variant and build a new tree. The package
// provides CopySyntaxTree, which makes a deep copy, and FoldConstants, which
// collapses constant subexpressions into numbers.
//
// Trees are never modified after construction, so they are safe to evaluate
// and transform concurrently.
//
package exprtree
