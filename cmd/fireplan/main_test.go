package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "fireplan" {
		t.Errorf("Expected root command use to be 'fireplan', got %s", rootCmd.Use)
	}
	if rootCmd.Short == "" {
		t.Error("Expected root command to have a short description")
	}
	if rootCmd.Long == "" {
		t.Error("Expected root command to have a long description")
	}
}

func TestRootCommand_Help(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Expected no error for --help, got %v", err)
	}

	output := buf.String()
	for _, want := range []string{"project", "trajectory", "sensitivity", "tui", "init", "version"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected help to list the %q command", want)
		}
	}
}
