// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
)

// Severity of a diagnostic.
type Severity int

//go:generate go tool stringer -linecomment -type=Severity
const (
	SEVERITY_WARNING = Severity(0) // warning
	SEVERITY_ERROR   = Severity(1) // error
)

// Diagnostic locates an error or warning in a source file.
type Diagnostic struct {
	File     string
	LineNo   int
	Severity Severity
	Err      error
}

func (diag *Diagnostic) Error() string {
	return fmt.Sprintf("%v:%d: %v: %v", diag.File, diag.LineNo, f(diag.Severity.String()), diag.Err)
}

func (diag *Diagnostic) Unwrap() error {
	return diag.Err
}
