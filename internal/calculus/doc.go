// Package calculus implements the numerical engine: differentiation,
// adaptive Gauss-Kronrod quadrature, contour integration, and
// Newton-Raphson root finding over complex-valued callables.
//
// All routines are total from the caller's perspective. Isolated sample
// failures are absorbed (a skipped quadrature node, a differentiation
// fallback) and reported through a Status tag instead of an error, so
// callers can tell "converged exactly" from "converged via fallback" from
// "degraded to a crude estimate". Structural failures (vanished derivative,
// non-convergence, invalid arguments) come back as explicit errors.
//
// Tolerances are not process globals: every Engine carries its own Params,
// which keeps the routines testable with alternate tolerances and makes
// concurrent use trivial since nothing here mutates shared state.
package calculus
