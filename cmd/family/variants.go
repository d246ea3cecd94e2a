package main

import (
	"fmt"
	"io"

	"github.com/sufield/family/internal/adapters/outbound/compose"
	"github.com/sufield/family/internal/domain"
)

func variantsCommand(c *Command, out io.Writer) func(args []string) error {
	return func(args []string) error {
		fs := c.NewFlagSet(out)
		if ok, err := parseFlags(fs, args); !ok {
			return err
		}

		registry := compose.NewRegistry()
		table := NewTableWriter([]string{"Variant", "Product A", "Product B", "Sample"})
		for _, v := range registry.Variants() {
			factory, err := registry.Factory(v)
			if err != nil {
				return err
			}
			table.AddRow([]string{
				v.String(),
				domain.TokenA(v),
				domain.TokenB(v),
				factory.CreateProductA().UseA(),
			})
		}
		table.Print(out)
		fmt.Fprintf(out, "\n%d variants wired\n", len(registry.Variants()))
		return nil
	}
}
