package main

import (
	"bytes"
	"testing"
)

func TestRootCmd_Use(t *testing.T) {
	rootCmd := newRootCmd(&app{})
	if rootCmd.Use != "taskboard" {
		t.Errorf("rootCmd.Use = %s, expected taskboard", rootCmd.Use)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	rootCmd := newRootCmd(&app{})

	tests := []struct {
		name   string
		defVal string
	}{
		{"json", "false"},
		{"server", ""},
		{"timeout", "0s"},
		{"verbose", "false"},
	}
	for _, tt := range tests {
		flag := rootCmd.PersistentFlags().Lookup(tt.name)
		if flag == nil {
			t.Errorf("rootCmd should have --%s flag", tt.name)
			continue
		}
		if flag.DefValue != tt.defVal {
			t.Errorf("--%s default = %s, expected %s", tt.name, flag.DefValue, tt.defVal)
		}
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	rootCmd := newRootCmd(&app{})

	paths := [][]string{
		{"signup"}, {"login"}, {"logout"}, {"whoami"},
		{"project", "list"}, {"project", "show"}, {"project", "create"},
		{"section", "list"}, {"section", "create"}, {"section", "edit"}, {"section", "delete"},
		{"task", "list"}, {"task", "show"}, {"task", "create"}, {"task", "edit"},
		{"comment", "add"}, {"comment", "list"},
		{"tag", "list"}, {"tag", "create"}, {"tag", "edit"}, {"tag", "delete"},
		{"user", "show"}, {"serve"},
	}
	for _, path := range paths {
		cmd, _, err := rootCmd.Find(path)
		if err != nil || cmd.Name() != path[len(path)-1] {
			t.Errorf("expected command %v, got %v (%v)", path, cmd, err)
		}
	}
}

func TestTaskEditCmd_ClearFlags(t *testing.T) {
	rootCmd := newRootCmd(&app{})
	editCmd, _, err := rootCmd.Find([]string{"task", "edit"})
	if err != nil {
		t.Fatalf("find task edit: %v", err)
	}

	for _, name := range []string{"name", "description", "due", "assignee", "tag", "clear-due", "clear-assignee", "clear-tags"} {
		if editCmd.Flags().Lookup(name) == nil {
			t.Errorf("task edit should have --%s flag", name)
		}
	}
}

func TestRootCmd_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(&app{}, []string{"--help"}, nil, &stdout, &stderr)

	if code != ExitSuccess {
		t.Errorf("expected exit 0, got %d: %s", code, stderr.String())
	}
	if stdout.Len() == 0 {
		t.Error("Help output should not be empty")
	}
}
