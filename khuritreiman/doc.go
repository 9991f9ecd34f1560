// Package khuritreiman is the public entry point to this module: it wires
// a contour, a grid, an Omnes function and a two-particle amplitude into a
// solved Khuri-Treiman subtraction basis in one call, the way the umbrella
// graph package re-exports graph/core and graph/algorithms behind a single
// façade. Every lower-level package (numeric, kinematics, curve, grid,
// omnes, curvedomnes, ktkernel, ktbasis, amplitude) remains usable on its
// own for callers who need finer control than Solve provides.
package khuritreiman
