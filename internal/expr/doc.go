// Package expr compiles textual math expressions into callables over
// complex numbers.
//
// Compilation is a pipeline: two text rewrite passes (implicit
// multiplication insertion, power-operator normalization), a lexer, a
// recursive-descent parser producing a small AST, and a compile-time
// vocabulary check. The permitted names are a closed set of math functions
// and constants plus one free variable, so there is no dynamic name lookup
// and nothing an expression can reach beyond arithmetic.
//
// Evaluation walks the tree with the variable bound to a complex128.
// Domain errors (log of zero, real-only functions fed complex arguments,
// division by zero, overflow) surface as errors rather than silent zeros;
// the numerical routines upstream decide whether to skip or report them.
package expr
