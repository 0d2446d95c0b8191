//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Convert turns products.txt into products_data.json using the built binary.
// Override paths with RECORDKIT_CONVERT_INPUT and RECORDKIT_CONVERT_OUTPUT.
func Convert() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "convert")
}

// Labels writes C1_Labels_1000.txt using the built binary.
func Labels() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "labels")
}
