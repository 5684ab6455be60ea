package cli

import (
	"flag"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

func TestGlobalFlags(t *testing.T) {
	if len(GlobalFlags) == 0 {
		t.Fatal("expected GlobalFlags to be defined")
	}

	flagNames := make(map[string]bool)
	for _, f := range GlobalFlags {
		for _, name := range f.Names() {
			flagNames[name] = true
		}
	}

	requiredFlags := []string{"socket", "port", "log-file", "verbose", "config-dir"}
	for _, name := range requiredFlags {
		if !flagNames[name] {
			t.Errorf("expected flag %q to be defined", name)
		}
	}
}

func TestCommandsRegistered(t *testing.T) {
	commands := []*cli.Command{
		inspectCommand(),
		findCommand(),
		tapCommand(),
		inputCommand(),
		scrollCommand(),
		backCommand(),
		launchCommand(),
		infoCommand(),
	}

	want := []string{"inspect", "find", "tap", "input", "scroll", "back", "launch", "info"}
	for i, cmd := range commands {
		if cmd.Name != want[i] {
			t.Errorf("command %d = %q, want %q", i, cmd.Name, want[i])
		}
		if cmd.Usage == "" {
			t.Errorf("command %q has no usage text", cmd.Name)
		}
	}
}

func TestFindBySelectionNoSelector(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("text", "", "")
	set.String("text-pattern", "", "")
	set.String("id-pattern", "", "")
	set.Int("width", 0, "")
	set.Int("height", 0, "")
	set.Int("tolerance", 0, "")
	set.Duration("timeout", 0, "")
	c := cli.NewContext(nil, set, nil)

	_, err := findBySelection(c, nil)
	if err == nil {
		t.Fatal("expected error when no selector flag is set")
	}
	if !strings.Contains(err.Error(), "required") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestInputCommandRequiresText(t *testing.T) {
	app := &cli.App{
		Name:     "test-app",
		Flags:    GlobalFlags,
		Commands: []*cli.Command{inputCommand()},
	}

	err := app.Run([]string{"test-app", "input"})
	if err == nil {
		t.Error("expected error when no TEXT argument provided")
	}
}

func TestLaunchCommandRequiresAppID(t *testing.T) {
	app := &cli.App{
		Name:     "test-app",
		Flags:    GlobalFlags,
		Commands: []*cli.Command{launchCommand()},
	}

	err := app.Run([]string{"test-app", "launch"})
	if err == nil {
		t.Error("expected error when no APP_ID argument provided")
	}
}
