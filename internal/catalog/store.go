package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cardmatch-ai/cardmatch/internal/observability"
)

// Store is an immutable snapshot of the card catalog. It is built once at
// startup and only read afterwards, so it is safe for concurrent use.
type Store struct {
	cards  []Card
	byName map[string]int
}

// Load reads the catalog from a JSON file. A missing or unparsable file is
// the engine's only fatal condition.
func Load(path string, logger *observability.Logger) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var raw []Card
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	cards := make([]Card, 0, len(raw))
	byName := make(map[string]int, len(raw))
	for _, c := range raw {
		if c.Name == "" {
			logger.Warn().Int("index", len(cards)).Msg("Skipping catalog entry without a name")
			continue
		}
		if _, dup := byName[c.Name]; dup {
			logger.Warn().Str("card", c.Name).Msg("Duplicate card name, keeping first occurrence")
			continue
		}
		byName[c.Name] = len(cards)
		cards = append(cards, c)
	}

	if len(cards) == 0 {
		return nil, fmt.Errorf("catalog %s contains no usable cards", path)
	}

	logger.Info().
		Int("cards", len(cards)).
		Str("path", path).
		Msg("Catalog loaded")

	return &Store{cards: cards, byName: byName}, nil
}

// NewStore builds a store from in-memory cards. Used by tests and by the
// enrichment tooling, which rewrites the dataset rather than serving it.
func NewStore(cards []Card) *Store {
	byName := make(map[string]int, len(cards))
	for i := range cards {
		if _, dup := byName[cards[i].Name]; !dup {
			byName[cards[i].Name] = i
		}
	}
	return &Store{cards: cards, byName: byName}
}

// Cards returns the catalog entries in load order. Callers must not mutate.
func (s *Store) Cards() []Card {
	return s.cards
}

// Len returns the number of cards.
func (s *Store) Len() int {
	return len(s.cards)
}

// Card returns the card at index i.
func (s *Store) Card(i int) Card {
	return s.cards[i]
}

// IndexByName looks up a card's catalog index by its exact display name.
// A miss means no constraint applies to that card, never an error.
func (s *Store) IndexByName(name string) (int, bool) {
	i, ok := s.byName[name]
	return i, ok
}

// DescriptionCorpus builds the "informed description" document for every
// card: editorial take and pros, then issuer, the card name repeated to
// inflate its term weight, and the category repeated.
func (s *Store) DescriptionCorpus() []string {
	docs := make([]string, len(s.cards))
	for i, c := range s.cards {
		nameTag := fmt.Sprintf("card name: %s/%s", c.Name, c.ShortName)
		catTag := fmt.Sprintf("category: %s", c.Category)
		docs[i] = fmt.Sprintf("%s %s issuer: %s %s %s %s %s %s",
			c.OurTake, c.Pros, c.Issuer, nameTag, nameTag, nameTag, catTag, catTag)
	}
	return docs
}

// ReviewCorpus builds one document per card from its user reviews, joined
// with a run of spaces as a soft token boundary.
func (s *Store) ReviewCorpus() []string {
	docs := make([]string, len(s.cards))
	for i, c := range s.cards {
		docs[i] = strings.Join(c.UserReviews, "     ")
	}
	return docs
}
