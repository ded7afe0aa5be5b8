package cli

import "testing"

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	if root.Use != "cgids" {
		t.Errorf("Use = %q, want cgids", root.Use)
	}

	want := []string{
		"list", "show", "add", "publish", "unpublish", "remove",
		"island", "seed", "serve", "apikey", "version",
	}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}

	for _, flag := range []string{"format", "db"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag %q not registered", flag)
		}
	}
}
