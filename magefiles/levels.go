//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// List builds the CLI and prints the level IDs of an SLC file.
func List(file string) error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), file, "--list")
}

// Pick builds the CLI and prints one level of an SLC file.
func Pick(file, id string) error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), file, "--id", id)
}
