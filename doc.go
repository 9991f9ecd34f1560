// Package khuri is a from-scratch Go implementation of the Khuri-Treiman
// dispersion relations used to reconstruct a two-particle partial wave
// amplitude from its unitarity cut and a set of subtraction constants.
//
// What is khuri?
//
//	A pure-Go dispersion-relation solver bringing together:
//		- Numeric primitives: Gauss-Legendre quadrature, adaptive
//		  complex integration, 1-D interpolation (linear/cubic/Akima/Steffen)
//		- Kinematics: Mandelstam phase-space functions, the Kallen function,
//		  vector-decay and adaptive contour shaping
//		- Piecewise complex contours and their tensor-product grids
//		- Omnes functions, on the first sheet and continued to the second
//		  behind a curved cut
//		- Dense complex kernel assembly and its Neumann-iteration or direct
//		  solve
//		- The discrete-to-analytic basis evaluator that is the solver's
//		  public result
//		- Closed-form chiral perturbation theory amplitudes and the
//		  phase/cotangent combinators used to build others
//
// Under the hood, everything is organized under one package per concern:
//
//	numeric/      — quadrature, integration, interpolation
//	kinematics/   — Mandelstam variables, phase space, critical region
//	curve/        — piecewise complex contours
//	grid/         — Gauss-Legendre grids over a contour
//	omnes/        — the Omnes function and its second-sheet continuation
//	curvedomnes/  — Omnes continued across a curved cut
//	ktkernel/     — kernel assembly and the KT linear system's solve
//	ktbasis/      — the solved, evaluable basis of KT solutions
//	amplitude/    — chiral perturbation theory amplitudes and combinators
//	khuritreiman/ — the Config/Solve entry point tying the above together
//
// Runnable demonstrations are the Example functions in each package's
// example_test.go.
//
//	go get github.com/dispersiv/khuri
package khuri
