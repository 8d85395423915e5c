package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "protokit" {
		t.Errorf("expected Use 'protokit', got %q", rootCmd.Use)
	}
	if rootCmd.Short == "" {
		t.Error("root command should have a short description")
	}
}

func TestGlobalFlags(t *testing.T) {
	got := make(map[string]bool)
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		got[f.Name] = true
	})

	for _, name := range []string{"config", "verbose", "json"} {
		if !got[name] {
			t.Errorf("expected persistent flag --%s to be registered", name)
		}
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"generate": false,
		"verify":   false,
		"version":  false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}

func TestSubcommandsRejectPositionalArgs(t *testing.T) {
	for _, cmd := range rootCmd.Commands() {
		switch cmd.Name() {
		case "generate", "verify", "version":
			if cmd.Args == nil {
				t.Errorf("%s should declare an Args policy", cmd.Name())
				continue
			}
			if err := cmd.Args(cmd, []string{"extra"}); err == nil {
				t.Errorf("%s should reject positional arguments", cmd.Name())
			}
		}
	}
}
