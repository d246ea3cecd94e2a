package app_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sufield/family/internal/adapters/outbound/compose"
	"github.com/sufield/family/internal/adapters/outbound/variant1"
	"github.com/sufield/family/internal/adapters/outbound/variant2"
	"github.com/sufield/family/internal/app"
	"github.com/sufield/family/internal/domain"
	"github.com/sufield/family/internal/ports"
)

var known = []domain.Variant{domain.Variant1, domain.Variant2}

func factories() map[domain.Variant]ports.Factory {
	return map[domain.Variant]ports.Factory{
		domain.Variant1: compose.NewVariant1Factory(),
		domain.Variant2: compose.Variant2Factory{},
	}
}

// TestRunSession_Invariant_SameFamily tests the invariant:
// "a session only ever combines products of the factory's own family"
func TestRunSession_Invariant_SameFamily(t *testing.T) {
	t.Parallel()

	for v, f := range factories() {
		t.Run(v.String(), func(t *testing.T) {
			t.Parallel()

			out := app.RunSession(f)
			assert.Contains(t, out, domain.TokenA(v))
			assert.Contains(t, out, domain.TokenB(v))
			assert.True(t, domain.Consistent(out, v, known), "output mixes families: %q", out)
		})
	}
}

func TestRunSession_Variant1Scenario(t *testing.T) {
	t.Parallel()

	out := app.RunSession(compose.Variant1Factory{})

	useB, collaboration, ok := strings.Cut(out, app.SessionSeparator)
	require.True(t, ok, "output must join UseB and collaboration text")

	assert.Equal(t, variant1.ProductB{}.UseB(), useB)
	assert.Contains(t, useB, "B1")
	assert.Contains(t, collaboration, "B1")
	assert.Contains(t, collaboration, "A1")
	assert.Contains(t, collaboration, variant1.ProductA{}.UseA())
}

func TestRunSession_Variant2Scenario(t *testing.T) {
	t.Parallel()

	out := app.RunSession(compose.Variant2Factory{})

	useB, collaboration, ok := strings.Cut(out, app.SessionSeparator)
	require.True(t, ok)

	assert.Contains(t, useB, "B2")
	assert.Contains(t, collaboration, "B2")
	assert.Contains(t, collaboration, "A2")
	assert.NotContains(t, out, "A1")
	assert.NotContains(t, out, "B1")
}

// mixedFactory hands out products of two different families. Nothing in the
// type system prevents it; the session must still complete.
type mixedFactory struct{}

func (mixedFactory) CreateProductA() ports.ProductA { return variant2.ProductA{} }
func (mixedFactory) CreateProductB() ports.ProductB { return variant1.ProductB{} }

func TestCollaborate_MismatchedFamiliesIsWellFormed(t *testing.T) {
	t.Parallel()

	var direct string
	require.NotPanics(t, func() {
		direct = variant1.ProductB{}.Collaborate(variant2.ProductA{})
	})
	assert.Contains(t, direct, "B1")
	assert.Contains(t, direct, "A2")

	out := app.RunSession(mixedFactory{})
	assert.Contains(t, out, "B1")
	assert.Contains(t, out, "A2")
	assert.False(t, domain.Consistent(out, domain.Variant1, known))
	assert.False(t, domain.Consistent(out, domain.Variant2, known))
}

// recordingFactory logs every call a session makes, in order.
type recordingFactory struct {
	calls   *[]string
	created *recordedA
	got     *ports.ProductA
}

type recordedA struct{ id int }

func (a *recordedA) UseA() string { return "The result of the product A1." }

type recordedB struct{ f recordingFactory }

func (b recordedB) UseB() string {
	*b.f.calls = append(*b.f.calls, "UseB")
	return "The result of the product B1."
}

func (b recordedB) Collaborate(a ports.ProductA) string {
	*b.f.calls = append(*b.f.calls, "Collaborate")
	*b.f.got = a
	return "The result of the B1 collaborating with the (" + a.UseA() + ")"
}

func (f recordingFactory) CreateProductA() ports.ProductA {
	*f.calls = append(*f.calls, "A")
	return f.created
}

func (f recordingFactory) CreateProductB() ports.ProductB {
	*f.calls = append(*f.calls, "B")
	return recordedB{f: f}
}

func TestRunSession_CreatesAThenBThenCollaborates(t *testing.T) {
	t.Parallel()

	var calls []string
	var got ports.ProductA
	f := recordingFactory{calls: &calls, created: &recordedA{id: 1}, got: &got}

	out := app.RunSession(f)

	require.GreaterOrEqual(t, len(calls), 3)
	assert.Equal(t, []string{"A", "B"}, calls[:2], "A is created before B")
	assert.Equal(t, "Collaborate", calls[2], "collaboration follows creation")
	assert.Same(t, f.created, got, "B collaborates with the A this session created")
	assert.Equal(t, "The result of the product B1.\nThe result of the B1 collaborating with the (The result of the product A1.)", out)
}

func TestRunSession_Idempotent(t *testing.T) {
	t.Parallel()

	for v, f := range factories() {
		first := app.RunSession(f)
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, app.RunSession(f), "variant %s", v)
		}
	}
}

// TestRunSession_ConcurrentIsolation runs many sessions per family in
// parallel, sharing one factory value per family, and checks no output is
// contaminated by another family.
func TestRunSession_ConcurrentIsolation(t *testing.T) {
	t.Parallel()

	const perVariant = 200

	type outcome struct {
		variant domain.Variant
		output  string
	}

	fs := factories()
	outcomes := make(chan outcome, perVariant*len(fs))

	var wg sync.WaitGroup
	for v, f := range fs {
		for i := 0; i < perVariant; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				outcomes <- outcome{variant: v, output: app.RunSession(f)}
			}()
		}
	}
	wg.Wait()
	close(outcomes)

	counts := map[domain.Variant]int{}
	for o := range outcomes {
		counts[o.variant]++
		assert.True(t, domain.Consistent(o.output, o.variant, known),
			"%s session produced %q", o.variant, o.output)
	}
	for v := range fs {
		assert.Equal(t, perVariant, counts[v])
	}
}
