//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// These imports are not used at runtime. They keep mockgen, invoked through
// `go generate ./contract/...`, pinned in go.mod so that regenerating
// mocks/ works on a fresh checkout.
package roomchat

import (
	_ "go.uber.org/mock/mockgen"
)
