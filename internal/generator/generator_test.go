package generator_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ndewijer/portfolio-draft-seeder/internal/generator"
	"github.com/ndewijer/portfolio-draft-seeder/internal/model"
)

func TestGenerator_PortfolioStep(t *testing.T) {
	t.Run("csp and dod components stay within their enumerations", func(t *testing.T) {
		g := generator.New(7, "foobartest.mil")

		for i := 0; i < 200; i++ {
			step := g.PortfolioStep()

			if len(step.CSP) < 1 || len(step.CSP) > len(model.CloudServiceProviders) {
				t.Fatalf("Expected 1..%d csp entries, got %d", len(model.CloudServiceProviders), len(step.CSP))
			}
			for _, csp := range step.CSP {
				if !model.IsCloudServiceProvider(csp) {
					t.Errorf("Unexpected csp %q", csp)
				}
			}

			if len(step.DoDComponents) < 1 || len(step.DoDComponents) > len(model.DoDComponents) {
				t.Fatalf("Expected 1..%d dod components, got %d", len(model.DoDComponents), len(step.DoDComponents))
			}
			for _, c := range step.DoDComponents {
				if !slices.Contains(model.DoDComponents, c) {
					t.Errorf("Unexpected dod component %q", c)
				}
			}
		}
	})

	t.Run("has exactly one manager under the configured domain", func(t *testing.T) {
		g := generator.New(11, "example.mil")

		for i := 0; i < 50; i++ {
			step := g.PortfolioStep()
			if len(step.PortfolioManagers) != 1 {
				t.Fatalf("Expected 1 portfolio manager, got %d", len(step.PortfolioManagers))
			}
			email := step.PortfolioManagers[0]
			local, domain, ok := strings.Cut(email, "@")
			if !ok || local == "" {
				t.Fatalf("Expected an email address, got %q", email)
			}
			if domain != "example.mil" {
				t.Errorf("Expected domain 'example.mil', got '%s'", domain)
			}
		}
	})

	t.Run("name is three words and description is a sentence", func(t *testing.T) {
		g := generator.New(3, "foobartest.mil")
		step := g.PortfolioStep()

		if n := len(strings.Fields(step.Name)); n != 3 {
			t.Errorf("Expected 3 words in name, got %d (%q)", n, step.Name)
		}
		if step.Description == "" {
			t.Error("Expected a non-empty description")
		}
	})

	t.Run("same seed yields the same sequence", func(t *testing.T) {
		a := generator.New(1234, "foobartest.mil")
		b := generator.New(1234, "foobartest.mil")

		for i := 0; i < 5; i++ {
			if diff := cmp.Diff(a.PortfolioStep(), b.PortfolioStep()); diff != "" {
				t.Fatalf("Iteration %d differs (-a +b):\n%s", i, diff)
			}
		}
	})
}

func TestGenerator_RandomChoices(t *testing.T) {
	t.Run("returns nil for an empty set", func(t *testing.T) {
		g := generator.New(1, "foobartest.mil")
		if got := g.RandomChoices(nil); got != nil {
			t.Errorf("Expected nil, got %v", got)
		}
	})

	t.Run("single element set always yields that element once", func(t *testing.T) {
		g := generator.New(1, "foobartest.mil")
		if diff := cmp.Diff([]string{"only"}, g.RandomChoices([]string{"only"})); diff != "" {
			t.Errorf("RandomChoices mismatch (-want +got):\n%s", diff)
		}
	})
}
