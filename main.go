package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"taskline/internal/cli"
	"taskline/internal/config"
	"taskline/internal/logs"
	"taskline/internal/tui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	gf, args, err := cli.ExtractGlobalFlags(argv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return cli.ExitUsage
	}

	cfg, err := config.Load(config.CLIFlags{
		ConfigPath: gf.ConfigPath,
		DateFormat: gf.DateFormat,
		DataDir:    gf.DataDir,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return cli.ExitUsage
	}

	if gf.ConfigPath == "" {
		if err := config.EnsureConfigFile(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file: %v\n", err)
		}
	}

	if err := logs.Initialize(cfg.DataDir, gf.Verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}
	defer logs.Close()

	if err := cfg.Validate(); err != nil {
		logs.Logger.Warnw("config has invalid reports", "path", cfg.Path, "error", err)
	}

	env := cli.Env{Config: cfg, Flags: gf}

	if gf.Interactive || (len(args) == 0 && cfg.DefaultCommand == "") {
		tokens, ok, err := tui.Run(cfg, gf.Plain, tea.WithAltScreen())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error running program:", err)
			return cli.ExitInternal
		}
		if !ok {
			return cli.ExitOK
		}
		args = tokens
	}

	return cli.Run(args, env)
}
