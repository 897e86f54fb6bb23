package utils

// BLASImplementation names the BLAS used by gonum, replaced when cgo is available
var BLASImplementation = "gonum"
