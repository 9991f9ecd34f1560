// Package ktkernel assembles the dense integration kernel of a
// Khuri-Treiman equation on a Grid and solves the resulting linear system,
// either by Neumann iteration or by direct matrix inversion, following the
// modified Gasser-Rusetsky method.
package ktkernel
