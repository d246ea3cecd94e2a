package main

import (
	"context"
	"io"

	"github.com/sufield/family/internal/adapters/inbound/cli"
)

func runCommand(c *Command, out io.Writer) func(args []string) error {
	return func(args []string) error {
		fs := c.NewFlagSet(out)
		var variants stringList
		fs.Var(&variants, "variant", "Variant to run (repeatable; overrides session.variants)")
		configPath := fs.String("config", "", "Path to config file (default $FAMILY_CONFIG, then built-in defaults)")
		check := fs.Bool("check", false, "Fail if any session output mixes product families")

		if ok, err := parseFlags(fs, args); !ok {
			return err
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			return err
		}
		if len(variants) > 0 {
			cfg.Session.Variants = variants
		}

		application, err := bootstrap(cfg)
		if err != nil {
			return err
		}
		defer application.Close()

		var opts []cli.Option
		if *check {
			opts = append(opts, cli.WithConsistencyCheck())
		}
		return cli.New(application, out, opts...).Run(context.Background())
	}
}
