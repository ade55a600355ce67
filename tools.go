//go:build tools

// Package tools tracks the lint and formatting tools used to maintain this
// module, so that their versions are pinned in go.mod
package tools

import (
	_ "golang.org/x/tools/cmd/goimports"
	_ "honnef.co/go/tools/cmd/staticcheck"
)
