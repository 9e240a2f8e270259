package main

import (
	"strings"
	"testing"

	"github.com/five82/scanboard/internal/config"
)

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"watch", "tail", "reset", "logs"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("Find(%s) = %v, %v", name, cmd, err)
		}
	}
	for _, flag := range []string{"config", "server", "env-file"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Fatalf("missing persistent flag --%s", flag)
		}
	}
	if usage := root.PersistentFlags().Lookup("config").Usage; !strings.Contains(usage, config.DefaultPath()) {
		t.Fatalf("--config usage %q does not name the default path", usage)
	}
}

func TestSubcommandFlags(t *testing.T) {
	root := newRootCmd()

	tail, _, _ := root.Find([]string{"tail"})
	if f := tail.Flags().Lookup("query"); f == nil || f.Shorthand != "q" {
		t.Fatalf("tail --query flag = %+v", f)
	}

	logs, _, _ := root.Find([]string{"logs"})
	f := logs.Flags().Lookup("lines")
	if f == nil || f.Shorthand != "n" || f.DefValue != "50" {
		t.Fatalf("logs --lines flag = %+v", f)
	}
}

func TestExtraArgsFail(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"watch", "extra"})
	if err := root.Execute(); err == nil {
		t.Fatalf("Execute with extra args returned nil error")
	}
}
