//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "htmltrans"

// Default target to run when none is specified
var Default = Build

// Build compiles the htmltrans binary
func Build() error {
	fmt.Println("Building", binary)
	return sh.RunV("go", "build", "-o", binary, "./cmd/htmltrans")
}

// Install installs the binary into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/htmltrans")
}

// Test runs all unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet on all packages
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Integration runs the tests that talk to the real provider APIs
func Integration() error {
	if os.Getenv("GEMINI_API_KEY") == "" && os.Getenv("OPENAI_API_KEY") == "" {
		return fmt.Errorf("set GEMINI_API_KEY or OPENAI_API_KEY to run integration tests")
	}
	return sh.RunV("go", "test", "-count=1", "./internal/translation/...", "./internal/models/...")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binary)
}
