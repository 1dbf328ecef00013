//go:build mage

package main

import (
	"github.com/magefile/mage/sh"
)

// Default target when running mage without arguments
var Default = Build

// Build compiles the psdict binary
func Build() error {
	return sh.RunV("go", "build", "-o", "psdict", "./cmd/psdict")
}

// Test runs all unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet on all packages
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs psdict into GOPATH/bin
func Install() error {
	return sh.RunV("go", "install", "./cmd/psdict")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("psdict")
}
