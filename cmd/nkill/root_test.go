package main

import (
	"strconv"
	"strings"
	"testing"

	"nkill/internal/signals"
)

func TestRootCmd_FlagsRegistered(t *testing.T) {
	for _, name := range []string{"signal", "list-signals", "dry-run", "interactive", "json"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag --%s not registered", name)
		}
	}
}

func TestRootCmd_ShorthandFlags(t *testing.T) {
	tests := []struct {
		short string
		long  string
	}{
		{"s", "signal"},
		{"l", "list-signals"},
		{"n", "dry-run"},
		{"i", "interactive"},
	}
	for _, tt := range tests {
		f := rootCmd.Flags().ShorthandLookup(tt.short)
		if f == nil {
			t.Errorf("shorthand -%s not registered", tt.short)
			continue
		}
		if f.Name != tt.long {
			t.Errorf("shorthand -%s = --%s, want --%s", tt.short, f.Name, tt.long)
		}
	}
}

func TestMaxNames_MatchesNativeIntWidth(t *testing.T) {
	if maxNames != strconv.IntSize {
		t.Errorf("maxNames = %d, want %d", maxNames, strconv.IntSize)
	}
}

func TestRootCmd_UsageNamesBinary(t *testing.T) {
	if !strings.HasPrefix(rootCmd.Use, "nkill") {
		t.Errorf("Use = %q, want nkill prefix", rootCmd.Use)
	}
}

func TestDefaultSignalResolvable(t *testing.T) {
	// The built-in default must always resolve against the table.
	if _, ok := signals.Resolve("TERM"); !ok {
		t.Error("default signal TERM does not resolve")
	}
}

func TestRunRoot_NoNames(t *testing.T) {
	if err := runRoot(rootCmd, nil); err == nil {
		t.Error("runRoot with no names should fail")
	}
}

func TestRunRoot_TooManyNames(t *testing.T) {
	names := make([]string, maxNames+1)
	for i := range names {
		names[i] = "x"
	}
	err := runRoot(rootCmd, names)
	if err == nil {
		t.Fatal("runRoot with too many names should fail")
	}
	if !strings.Contains(err.Error(), "too many names") {
		t.Errorf("error = %v, want too-many-names message", err)
	}
}

func TestRunRoot_UnknownSignal(t *testing.T) {
	signalName = "NOTASIGNAL"
	defer func() { signalName = "" }()

	err := runRoot(rootCmd, []string{"anything"})
	if err == nil {
		t.Fatal("runRoot with unknown signal should fail")
	}
	if !strings.Contains(err.Error(), "unknown signal") {
		t.Errorf("error = %v, want unknown-signal message", err)
	}
}
