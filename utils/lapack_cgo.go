//go:build cgo
// +build cgo

package utils

/*
#cgo LDFLAGS: -lopenblas -lm -lpthread
#include <cblas.h>
*/
import "C"

import (
	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

// The dense LU solve of the assembled system goes through blas64, route it to OpenBLAS
func init() {
	blas64.Use(netblas.Implementation{})
	BLASImplementation = "netlib"
}
