package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	inner := fmt.Errorf("%w: no modules declared", ErrInvalidConfig)
	err := WrapConfigError("manifest", "modules", inner)

	if !IsConfigError(err) {
		t.Error("expected IsConfigError to be true")
	}
	if !Is(err, ErrInvalidConfig) {
		t.Error("wrapped sentinel should be reachable via Is")
	}
	if got := err.Error(); !strings.Contains(got, "manifest.modules") {
		t.Errorf("expected component.field in message, got %q", got)
	}

	// field is optional
	err = WrapConfigError("client", "", fmt.Errorf("boom"))
	if got := err.Error(); !strings.HasPrefix(got, "config client:") {
		t.Errorf("unexpected message without field: %q", got)
	}
}

func TestWrapNilReturnsNil(t *testing.T) {
	if WrapConfigError("manifest", "modules", nil) != nil {
		t.Error("WrapConfigError(nil) should be nil")
	}
	if WrapCompilerError("mod", "diag", nil) != nil {
		t.Error("WrapCompilerError(nil) should be nil")
	}
}

func TestCompilerError(t *testing.T) {
	exitErr := fmt.Errorf("exit status 1")
	err := WrapCompilerError("service_coordinator", "service_coordinator.proto:3:1: syntax error\n", exitErr)

	if !IsCompilerError(err) {
		t.Error("expected IsCompilerError to be true")
	}

	ce, ok := AsCompilerError(fmt.Errorf("run failed: %w", err))
	if !ok {
		t.Fatal("AsCompilerError should find the error through wrapping")
	}
	if ce.Module != "service_coordinator" {
		t.Errorf("expected module name, got %q", ce.Module)
	}
	if !strings.Contains(ce.Diagnostic, "syntax error") {
		t.Errorf("diagnostics not preserved: %q", ce.Diagnostic)
	}
	if !strings.Contains(err.Error(), "syntax error") {
		t.Errorf("diagnostics should appear in the message: %q", err.Error())
	}
	if !Is(err, exitErr) {
		t.Error("the process error should be reachable via Is")
	}
}

func TestCompilerErrorEmptyDiagnostic(t *testing.T) {
	err := WrapCompilerError("task_monitor", "", fmt.Errorf("exec: protoc: not found"))
	if strings.Contains(err.Error(), "\n") {
		t.Errorf("no trailing diagnostics block expected: %q", err.Error())
	}
}

func TestRemoteError(t *testing.T) {
	err := error(&RemoteError{
		Service:   "coordinator",
		Caller:    "worker-a",
		Operation: "start",
		TaskID:    "task-42",
		Code:      500,
		Message:   "task not registered",
	})

	if !IsRemoteError(err) {
		t.Error("expected IsRemoteError to be true")
	}

	re, ok := AsRemoteError(fmt.Errorf("handoff failed: %w", err))
	if !ok {
		t.Fatal("AsRemoteError should find the error through wrapping")
	}
	if re.Code != 500 || re.Caller != "worker-a" {
		t.Errorf("unexpected fields: %+v", re)
	}

	msg := err.Error()
	for _, want := range []string{"coordinator", "start", "task-42", "worker-a", "500", "task not registered"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in message %q", want, msg)
		}
	}
}

func TestClassifiersRejectOtherErrors(t *testing.T) {
	plain := New("plain error")

	if IsConfigError(plain) || IsCompilerError(plain) || IsRemoteError(plain) {
		t.Error("plain errors should not classify as any typed error")
	}
	if _, ok := AsCompilerError(plain); ok {
		t.Error("AsCompilerError should not match a plain error")
	}
	if _, ok := AsRemoteError(nil); ok {
		t.Error("AsRemoteError(nil) should not match")
	}
}
