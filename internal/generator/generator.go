// Package generator synthesizes randomized portfolio steps for seeding a drafts API.
//
// All randomness flows through an embedded gofakeit Faker built from an explicit seed,
// so tests can pin the sequence and a seed of 0 gives a fresh sequence per run.
package generator

import (
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/ndewijer/portfolio-draft-seeder/internal/model"
)

const (
	nameWords       = 3
	sentenceMinWord = 3
	sentenceMaxWord = 8
)

// Generator produces fake portfolio data from a single random source.
type Generator struct {
	*gofakeit.Faker
	emailDomain string
}

// New creates a Generator seeded with seed. A seed of 0 draws the initial
// seed from crypto/rand, making the output differ across runs.
func New(seed int64, emailDomain string) *Generator {
	return &Generator{
		Faker:       gofakeit.New(seed),
		emailDomain: emailDomain,
	}
}

// Words returns n random words.
func (g *Generator) Words(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = strings.ToLower(g.Word())
	}
	return words
}

// RandomSentence returns one capitalized sentence terminated by a period.
func (g *Generator) RandomSentence() string {
	return g.Sentence(g.Number(sentenceMinWord, sentenceMaxWord))
}

// RandomChoices picks between 1 and len(elements) values from elements with
// replacement, so the result may contain repeats. Returns nil for an empty set.
func (g *Generator) RandomChoices(elements []string) []string {
	if len(elements) == 0 {
		return nil
	}
	n := g.Number(1, len(elements))
	out := make([]string, n)
	for i := range out {
		out[i] = g.RandomString(elements)
	}
	return out
}

// Email returns a lower-case address under domain. The local part keeps only
// letters, digits, dots and underscores.
func (g *Generator) Email(domain string) string {
	local := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_':
			return r
		}
		return -1
	}, strings.ToLower(g.Username()))
	if local == "" {
		local = "user"
	}
	return local + "@" + domain
}

// PortfolioStep builds one randomized portfolio step.
func (g *Generator) PortfolioStep() model.PortfolioStep {
	return model.PortfolioStep{
		Name:              strings.Join(g.Words(nameWords), " "),
		Description:       g.RandomSentence(),
		CSP:               g.RandomChoices(model.CloudServiceProviders),
		DoDComponents:     g.RandomChoices(model.DoDComponents),
		PortfolioManagers: []string{g.Email(g.emailDomain)},
	}
}

// EmailDomain returns the domain used for portfolio manager addresses.
func (g *Generator) EmailDomain() string {
	return g.emailDomain
}
