package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sufield/family/internal/config"
)

func validateCommand(c *Command, out io.Writer) func(args []string) error {
	return func(args []string) error {
		fs := c.NewFlagSet(out)
		if ok, err := parseFlags(fs, args); !ok {
			return err
		}

		if fs.NArg() < 1 {
			fs.Usage()
			return fmt.Errorf("config file path required")
		}
		configPath := fs.Arg(0)

		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		validated, err := config.Validate(cfg)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		names := make([]string, 0, len(validated.Variants))
		for _, v := range validated.Variants {
			names = append(names, v.String())
		}

		fmt.Fprintf(out, "✓ Valid configuration: %s\n", configPath)
		fmt.Fprintln(out, "\nSession settings:")
		fmt.Fprintf(out, "  Variants: %s\n", strings.Join(names, ", "))
		fmt.Fprintln(out, "\nServer settings:")
		fmt.Fprintf(out, "  Listen address: %s\n", validated.ListenAddr)
		fmt.Fprintf(out, "  Read header timeout: %s\n", validated.ReadHeaderTimeout)
		fmt.Fprintf(out, "  Shutdown timeout: %s\n", validated.ShutdownTimeout)
		fmt.Fprintln(out, "\nLogging settings:")
		fmt.Fprintf(out, "  Level: %s\n", validated.LogLevel)
		fmt.Fprintf(out, "  Format: %s\n", validated.LogFormat)
		return nil
	}
}
