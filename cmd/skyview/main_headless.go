//go:build !cgo
// +build !cgo

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "skyview requires the raylib client build (cgo enabled); use cmd/weathersim for a terminal session.")
	os.Exit(1)
}
