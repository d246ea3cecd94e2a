package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Variant identifies one self-consistent product family.
//
// The zero value is not a valid variant. Variants are numbered from 1 so that
// the number can be embedded directly in family tokens ("A1", "B2").
type Variant uint

const (
	// Variant1 is the first shipped product family.
	Variant1 Variant = iota + 1
	// Variant2 is the second shipped product family.
	Variant2
)

// IsValid reports whether v is a usable family number.
// It does not check that a factory is registered for v.
func (v Variant) IsValid() bool {
	return v > 0
}

// Number returns the family number.
func (v Variant) Number() uint {
	return uint(v)
}

// String returns the canonical name, e.g. "variant1".
func (v Variant) String() string {
	return "variant" + strconv.FormatUint(uint64(v), 10)
}

// TokenA returns the marker embedded by family v's product A, e.g. "A1".
func TokenA(v Variant) string {
	return "A" + strconv.FormatUint(uint64(v), 10)
}

// TokenB returns the marker embedded by family v's product B, e.g. "B1".
func TokenB(v Variant) string {
	return "B" + strconv.FormatUint(uint64(v), 10)
}

// ParseVariant parses a variant from user input.
//
// Accepted forms (case-insensitive, surrounding whitespace ignored):
//
//	"1"  "v1"  "variant1"
//
// Returns ErrInvalidVariant for anything else, including "0".
func ParseVariant(s string) (Variant, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	num := strings.TrimPrefix(raw, "variant")
	if num == raw {
		num = strings.TrimPrefix(raw, "v")
	}

	n, err := strconv.ParseUint(num, 10, 32)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidVariant, s)
	}
	return Variant(n), nil
}

// ParseVariants parses a list of variant strings, stopping at the first error.
func ParseVariants(values []string) ([]Variant, error) {
	out := make([]Variant, 0, len(values))
	for _, s := range values {
		v, err := ParseVariant(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
