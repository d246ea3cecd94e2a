package main

import (
	"fmt"
	"io"
	"os"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	versionInfo := VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	registry := NewCommandRegistry(versionInfo, os.Stdout, os.Stderr)
	registerCommands(registry, os.Stdout)

	if err := registry.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func registerCommands(r *CommandRegistry, out io.Writer) {
	run := &Command{
		Name:        "run",
		Description: "Run one session per variant and print the results",
		Usage:       "family run [--variant N]... [--config path] [--check]",
		Examples: []string{
			"family run",
			"family run --variant 2",
			"family run --variant 1 --variant 2 --check",
			"family run --config family.yaml",
		},
	}
	run.Run = runCommand(run, out)
	r.Register(run)

	serve := &Command{
		Name:        "serve",
		Description: "Serve the session API over HTTP until interrupted",
		Usage:       "family serve [--config path] [--addr host:port]",
		Examples: []string{
			"family serve",
			"family serve --addr 127.0.0.1:9090",
			"curl localhost:8080/sessions/1",
		},
	}
	serve.Run = serveCommand(serve, out)
	r.Register(serve)

	variants := &Command{
		Name:        "variants",
		Description: "List the wired product families",
		Usage:       "family variants",
		Examples:    []string{"family variants"},
	}
	variants.Run = variantsCommand(variants, out)
	r.Register(variants)

	validate := &Command{
		Name:        "validate",
		Description: "Validate a configuration file",
		Usage:       "family validate <config-file>",
		Examples: []string{
			"family validate family.yaml",
		},
	}
	validate.Run = validateCommand(validate, out)
	r.Register(validate)

	versionCmd := &Command{
		Name:        "version",
		Description: "Show version information",
		Usage:       "family version [--verbose]",
		Examples: []string{
			"family version",
			"family version --verbose",
		},
	}
	versionCmd.Run = versionCommand(versionCmd, r.version, out)
	r.Register(versionCmd)

	r.Register(&Command{
		Name:        "help",
		Description: "Show help information",
		Usage:       "family help [command]",
		Examples: []string{
			"family help",
			"family help run",
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return r.PrintCommandHelp(out, args[0])
			}
			r.PrintHelp(out)
			return nil
		},
	})
}
