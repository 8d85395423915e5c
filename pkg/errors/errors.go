// Package errors provides the typed errors shared by the generation
// driver and the client façades, with wrapping and classification helpers.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// Generation-related errors
	ErrProtoNotFound   = errors.New("interface description file not found")
	ErrProtoUnclaimed  = errors.New("interface description file not declared in manifest")
	ErrDuplicateModule = errors.New("duplicate module name")
	ErrArtifactMissing = errors.New("generated artifact missing")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")

	// Client-related errors
	ErrNodeNotFound = errors.New("node not found in configuration")
)

// ConfigError represents a manifest or client-configuration problem.
// These always fail the run that detected them; there is no recovery.
type ConfigError struct {
	Component string
	Field     string
	Err       error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config %s.%s: %v", e.Component, e.Field, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Component, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CompilerError carries the external compiler's diagnostics verbatim for
// one module. Generation of the remaining modules is aborted when one of
// these is returned.
type CompilerError struct {
	Module     string
	Diagnostic string // combined stdout/stderr of the compiler
	Err        error
}

func (e *CompilerError) Error() string {
	diag := strings.TrimSpace(e.Diagnostic)
	if diag != "" {
		return fmt.Sprintf("module %s: compiler: %v\n%s", e.Module, e.Err, diag)
	}
	return fmt.Sprintf("module %s: compiler: %v", e.Module, e.Err)
}

func (e *CompilerError) Unwrap() error {
	return e.Err
}

// RemoteError represents an application-level failure reported by a remote
// service: the call itself succeeded but the response carried a non-OK code.
type RemoteError struct {
	Service   string // remote service, e.g. "coordinator"
	Caller    string // name of the calling service, for operator context
	Operation string
	TaskID    string
	Code      int32
	Message   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: operation %s failed for task %s (caller %s): code %d: %s",
		e.Service, e.Operation, e.TaskID, e.Caller, e.Code, e.Message)
}

// Error wrapping constructors

func WrapConfigError(component, field string, err error) error {
	if err == nil {
		return nil
	}
	return &ConfigError{Component: component, Field: field, Err: err}
}

func WrapCompilerError(module, diagnostic string, err error) error {
	if err == nil {
		return nil
	}
	return &CompilerError{Module: module, Diagnostic: diagnostic, Err: err}
}

// Error classification functions

func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

func IsCompilerError(err error) bool {
	var ce *CompilerError
	return errors.As(err, &ce)
}

func IsRemoteError(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

// AsCompilerError returns the CompilerError in err's chain, if any.
// Callers use it to get at the captured diagnostics.
func AsCompilerError(err error) (*CompilerError, bool) {
	var ce *CompilerError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// AsRemoteError returns the RemoteError in err's chain, if any.
func AsRemoteError(err error) (*RemoteError, bool) {
	var re *RemoteError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// Re-exported stdlib helpers so callers only import one errors package.

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

func New(text string) error {
	return errors.New(text)
}
