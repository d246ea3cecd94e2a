package domain

import "strings"

// SessionResult is the outcome of one factory session: products created,
// collaborated, and discarded. Nothing in it refers back to the products.
type SessionResult struct {
	// ID uniquely identifies the session (UUID string).
	ID string `json:"id"`

	// Variant is the family the caller selected.
	Variant Variant `json:"-"`

	// VariantName is Variant.String(), kept for JSON consumers.
	VariantName string `json:"variant"`

	// Output is the text produced by the session.
	Output string `json:"output"`
}

// NewSessionResult builds a result for variant v.
func NewSessionResult(id string, v Variant, output string) SessionResult {
	return SessionResult{
		ID:          id,
		Variant:     v,
		VariantName: v.String(),
		Output:      output,
	}
}

// Consistent reports whether output carries v's token pair and no token of
// any other variant in known.
//
// Token matching is exact: "A1" inside "A12" does not count as "A1".
func Consistent(output string, v Variant, known []Variant) bool {
	if !containsToken(output, TokenA(v)) || !containsToken(output, TokenB(v)) {
		return false
	}
	for _, other := range known {
		if other == v {
			continue
		}
		if containsToken(output, TokenA(other)) || containsToken(output, TokenB(other)) {
			return false
		}
	}
	return true
}

// containsToken finds token in s where it is not followed by another digit.
func containsToken(s, token string) bool {
	for {
		i := strings.Index(s, token)
		if i < 0 {
			return false
		}
		end := i + len(token)
		if end == len(s) || s[end] < '0' || s[end] > '9' {
			return true
		}
		s = s[end:]
	}
}
