//go:build cgo
// +build cgo

package utils

import (
	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

// With cgo available, route dense BLAS through the netlib bindings.
func init() {
	blas64.Use(netblas.Implementation{})
}
