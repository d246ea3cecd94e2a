package main

import (
	"fmt"
	"io"
	"runtime"
)

func versionCommand(c *Command, v VersionInfo, out io.Writer) func(args []string) error {
	return func(args []string) error {
		fs := c.NewFlagSet(out)
		verbose := fs.Bool("verbose", false, "Show build environment details")
		if ok, err := parseFlags(fs, args); !ok {
			return err
		}

		fmt.Fprintf(out, "family %s (commit: %s, built: %s)\n", v.Version, v.Commit, v.Date)
		if *verbose {
			table := NewTableWriter([]string{"Setting", "Value"})
			table.AddRow([]string{"Go version", runtime.Version()})
			table.AddRow([]string{"Platform", runtime.GOOS + "/" + runtime.GOARCH})
			table.Print(out)
		}
		return nil
	}
}
