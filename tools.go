//go:build tools
// +build tools

package tools

// This file ensures tool dependencies are tracked in go.mod.
// The goose CLI is used to create and inspect migrations during development.

import (
	_ "github.com/pressly/goose/v3/cmd/goose"
)
