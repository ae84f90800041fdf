//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "rusphonetic"

// Default target to run when none is specified
var Default = Build

// Build builds the rusphonetic binary. go-sqlite3 needs cgo.
func Build() error {
	fmt.Println("Building", binary)
	env := map[string]string{"CGO_ENABLED": "1"}
	return sh.RunWith(env, "go", "build", "-o", binary, "./cmd/rusphonetic")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs the binary into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/rusphonetic")
}

// Clean removes build artifacts
func Clean() error {
	return os.RemoveAll(binary)
}
