// Package cli provides the command-line interface for uisync.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/uisync/pkg/config"
	"github.com/devicelab-dev/uisync/pkg/driver/uiautomator2"
	"github.com/devicelab-dev/uisync/pkg/engine"
	"github.com/devicelab-dev/uisync/pkg/logger"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "socket",
		Usage:   "Unix socket path of the UIAutomator2 server",
		EnvVars: []string{"UISYNC_SOCKET"},
	},
	&cli.IntFlag{
		Name:    "port",
		Usage:   "TCP port of the UIAutomator2 server (used when --socket is unset)",
		Value:   7001,
		EnvVars: []string{"UISYNC_PORT"},
	},
	&cli.StringFlag{
		Name:    "log-file",
		Usage:   "Path to the log file",
		Value:   "uisync.log",
		EnvVars: []string{"UISYNC_LOG_FILE"},
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Enable debug logging",
		EnvVars: []string{"UISYNC_VERBOSE"},
	},
	&cli.StringFlag{
		Name:    "config-dir",
		Usage:   "Directory containing uisync.yaml",
		Value:   ".",
		EnvVars: []string{"UISYNC_CONFIG_DIR"},
	},
}

// Execute runs the CLI.
func Execute() {
	app := &cli.App{
		Name:    "uisync",
		Usage:   "Synchronized UI interactions against a mobile device",
		Version: Version,
		Description: `uisync drives taps, text input and navigation against a device whose only
observable state is a periodically sampled UI hierarchy, waiting for the
hierarchy to settle and retrying input that had no visible effect.`,
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			inspectCommand(),
			findCommand(),
			tapCommand(),
			inputCommand(),
			scrollCommand(),
			backCommand(),
			launchCommand(),
			infoCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// withEngine builds an engine for one operation, runs fn and closes the
// driver afterward. Each invocation gets its own operation ID in the log.
func withEngine(c *cli.Context, fn func(*engine.Engine) error) error {
	if err := logger.Init(c.String("log-file")); err != nil {
		return err
	}
	defer logger.Close()
	if c.Bool("verbose") {
		logger.SetLevel(zerolog.DebugLevel)
	} else {
		logger.SetLevel(zerolog.InfoLevel)
	}

	cfg, err := config.LoadFromDir(c.String("config-dir"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var client *uiautomator2.Client
	if socket := c.String("socket"); socket != "" {
		client = uiautomator2.NewClient(socket)
	} else {
		client = uiautomator2.NewClientTCP(c.Int("port"))
	}

	if err := client.WaitForReady(30 * time.Second); err != nil {
		return err
	}
	if err := client.CreateSession(uiautomator2.Capabilities{PlatformName: "android"}); err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	opID := uuid.NewString()
	logger.Info("operation %s: %s", opID, c.Command.Name)

	eng := engine.New(uiautomator2.New(client, nil), cfg)
	defer eng.Close()

	if err := fn(eng); err != nil {
		logger.Error("operation %s failed: %v", opID, err)
		return err
	}
	logger.Info("operation %s done", opID)
	return nil
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "Dump the current UI hierarchy as JSON",
		Action: func(c *cli.Context) error {
			return withEngine(c, func(e *engine.Engine) error {
				root, err := e.ViewHierarchy()
				if err != nil {
					return err
				}
				out, err := json.MarshalIndent(root, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			})
		},
	}
}

func findCommand() *cli.Command {
	return &cli.Command{
		Name:  "find",
		Usage: "Locate an element and print its bounds and center",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "text", Usage: "Exact text to match"},
			&cli.StringFlag{Name: "text-pattern", Usage: "Regular expression over element text"},
			&cli.StringFlag{Name: "id-pattern", Usage: "Regular expression over element IDs"},
			&cli.IntFlag{Name: "width", Usage: "Element width in pixels"},
			&cli.IntFlag{Name: "height", Usage: "Element height in pixels"},
			&cli.IntFlag{Name: "tolerance", Usage: "Size tolerance in pixels"},
			&cli.DurationFlag{Name: "timeout", Value: 17 * time.Second},
		},
		Action: func(c *cli.Context) error {
			return withEngine(c, func(e *engine.Engine) error {
				el, err := findBySelection(c, e)
				if err != nil {
					return err
				}
				if el == nil {
					fmt.Println("no match")
					return nil
				}
				fmt.Printf("%s center=(%d, %d)\n", el.Node.Describe(), el.Point.X, el.Point.Y)
				return nil
			})
		},
	}
}

func findBySelection(c *cli.Context, e *engine.Engine) (*engine.Element, error) {
	timeout := c.Duration("timeout")
	switch {
	case c.String("text") != "":
		return e.FindElementByText(c.String("text"), timeout)
	case c.String("text-pattern") != "":
		return e.FindElementByRegexp(c.String("text-pattern"), timeout)
	case c.String("id-pattern") != "":
		return e.FindElementByIDRegex(c.String("id-pattern"), timeout)
	case c.Int("width") > 0 || c.Int("height") > 0:
		return e.FindElementBySize(c.Int("width"), c.Int("height"), c.Int("tolerance"), timeout)
	default:
		return nil, fmt.Errorf("one of --text, --text-pattern, --id-pattern or --width/--height is required")
	}
}

func tapCommand() *cli.Command {
	return &cli.Command{
		Name:  "tap",
		Usage: "Tap an element or a screen coordinate",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "text", Usage: "Exact text of the element to tap"},
			&cli.StringFlag{Name: "id-pattern", Usage: "Regular expression over element IDs"},
			&cli.IntFlag{Name: "x", Value: -1, Usage: "X coordinate"},
			&cli.IntFlag{Name: "y", Value: -1, Usage: "Y coordinate"},
			&cli.DurationFlag{Name: "timeout", Value: 17 * time.Second},
		},
		Action: func(c *cli.Context) error {
			return withEngine(c, func(e *engine.Engine) error {
				if c.Int("x") >= 0 && c.Int("y") >= 0 {
					return e.TapAt(c.Int("x"), c.Int("y"))
				}

				var el *engine.Element
				var err error
				switch {
				case c.String("text") != "":
					el, err = e.FindElementByText(c.String("text"), c.Duration("timeout"))
				case c.String("id-pattern") != "":
					el, err = e.FindElementByIDRegex(c.String("id-pattern"), c.Duration("timeout"))
				default:
					return fmt.Errorf("either --text, --id-pattern or --x/--y is required")
				}
				if err != nil {
					return err
				}
				return e.Tap(el)
			})
		},
	}
}

func inputCommand() *cli.Command {
	return &cli.Command{
		Name:      "input",
		Usage:     "Type text into the focused element",
		ArgsUsage: "TEXT",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("exactly one TEXT argument is required")
			}
			return withEngine(c, func(e *engine.Engine) error {
				return e.InputText(c.Args().First())
			})
		},
	}
}

func scrollCommand() *cli.Command {
	return &cli.Command{
		Name:  "scroll",
		Usage: "Perform one vertical scroll gesture",
		Action: func(c *cli.Context) error {
			return withEngine(c, func(e *engine.Engine) error {
				return e.ScrollVertical()
			})
		},
	}
}

func backCommand() *cli.Command {
	return &cli.Command{
		Name:  "back",
		Usage: "Press the platform back control",
		Action: func(c *cli.Context) error {
			return withEngine(c, func(e *engine.Engine) error {
				return e.BackPress()
			})
		},
	}
}

func launchCommand() *cli.Command {
	return &cli.Command{
		Name:      "launch",
		Usage:     "Launch an app by package ID",
		ArgsUsage: "APP_ID",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("exactly one APP_ID argument is required")
			}
			return withEngine(c, func(e *engine.Engine) error {
				return e.LaunchApp(c.Args().First())
			})
		},
	}
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Print device information",
		Action: func(c *cli.Context) error {
			return withEngine(c, func(e *engine.Engine) error {
				info, err := e.DeviceInfo()
				if err != nil {
					return err
				}
				out, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			})
		},
	}
}
