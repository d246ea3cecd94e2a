// Package family builds families of compatible products through abstract
// factories selected by an explicit variant.
//
// Each variant ships a factory that creates a ProductA and a ProductB of the
// same family. RunSession drives one factory: it creates both products, lets
// B collaborate with A and returns the combined text.
//
// Quick Start:
//
//	f, err := family.NewFactory(family.Variant1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(family.RunSession(f))
//
// Config-driven, one session per configured variant:
//
//	if err := family.Run("family.yaml", os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// Mixing families:
//
// A ProductB accepts any ProductA. Passing a ProductA from another family to
// Collaborate is not an error; the result names both products, for example
// "The result of the B1 collaborating with the (The result of the product A2.)".
// RunSession never mixes families because it takes both products from one
// factory.
package family

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/sufield/family/internal/adapters/inbound/cli"
	"github.com/sufield/family/internal/adapters/outbound/compose"
	"github.com/sufield/family/internal/app"
	"github.com/sufield/family/internal/config"
	"github.com/sufield/family/internal/domain"
	"github.com/sufield/family/internal/ports"
)

type (
	// ProductA is the first product of a family.
	ProductA = ports.ProductA
	// ProductB is the second product of a family; it can collaborate with any ProductA.
	ProductB = ports.ProductB
	// Factory creates the products of one family.
	Factory = ports.Factory
	// Variant selects a product family.
	Variant = domain.Variant
)

// Shipped variants.
const (
	Variant1 = domain.Variant1
	Variant2 = domain.Variant2
)

var (
	// ErrInvalidVariant is returned for input that does not name a variant.
	ErrInvalidVariant = domain.ErrInvalidVariant
	// ErrUnknownVariant is returned for a variant with no factory.
	ErrUnknownVariant = domain.ErrUnknownVariant
)

// NewFactory returns the factory for v.
func NewFactory(v Variant) (Factory, error) {
	return compose.NewRegistry().Factory(v)
}

// ParseVariant parses "1", "v1" or "variant1" (case-insensitive).
func ParseVariant(s string) (Variant, error) {
	return domain.ParseVariant(s)
}

// Variants lists the variants with a shipped factory, ascending.
func Variants() []Variant {
	return compose.NewRegistry().Variants()
}

// RunSession creates a ProductA and a ProductB from f, lets B collaborate
// with A and returns B's own result followed by the collaboration result on
// the next line.
func RunSession(f Factory) string {
	return app.RunSession(f)
}

// Run loads configPath, runs one session per configured variant and writes
// each result to w in configuration order.
//
// Environment overrides (FAMILY_VARIANTS and friends) apply after the file.
func Run(configPath string, w io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	return run(cfg, w)
}

// RunFromEnv is Run with the config path taken from FAMILY_CONFIG.
//
// It returns an error if FAMILY_CONFIG is not set.
func RunFromEnv(w io.Writer) error {
	path, err := config.ResolvePath()
	if err != nil {
		return err
	}
	return Run(path, w)
}

func run(cfg config.FileConfig, w io.Writer) error {
	validated, err := config.Validate(cfg)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	application, err := app.Bootstrap(validated, compose.NewRegistry(), zap.NewNop())
	if err != nil {
		return err
	}
	defer application.Close()

	return cli.New(application, w).Run(context.Background())
}
