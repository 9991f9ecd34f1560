// Package amplitude collects closed-form two-particle scattering
// amplitudes and the combinators used to build an amplitude from a phase
// or cotangent of a phase, and to continue one across the unitarity cut
// to the second Riemann sheet and back. These are documented collaborator
// inputs to a Khuri-Treiman solve, not solver internals.
package amplitude
