//go:build tools
// +build tools

package sharedptr

import (
	// mock generator used by go:generate
	_ "github.com/matryer/moq"
	// linter used by make lint
	_ "github.com/mgechev/revive"
)
