package host

import (
	"fmt"
	"strings"

	"github.com/haruki7049/lat/internal/grammar"
	"github.com/haruki7049/lat/internal/lat"
)

// Trigger decides when a cast resets the sandbox.
type Trigger struct {
	keywords map[string]struct{}
	spells   []*lat.SpellDescriptor
}

// NewTrigger builds a trigger from reset keywords and reset spells.
// Keywords match the whole trimmed input, ignoring case. Spells are parsed
// here and match casts with the same effect; emphasis is ignored.
func NewTrigger(keywords, spells []string, parser *grammar.Parser) (*Trigger, error) {
	if parser == nil {
		parser = grammar.Default()
	}

	t := &Trigger{keywords: make(map[string]struct{}, len(keywords))}
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			t.keywords[k] = struct{}{}
		}
	}

	for _, text := range spells {
		spell, err := parser.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("parsing reset spell %q: %w", text, err)
		}
		t.spells = append(t.spells, spell)
	}

	return t, nil
}

// MatchKeyword reports whether text is a reset keyword.
func (t *Trigger) MatchKeyword(text string) bool {
	if t == nil {
		return false
	}
	_, ok := t.keywords[strings.ToLower(strings.TrimSpace(text))]
	return ok
}

// MatchSpell reports whether spell has the effect of a reset spell.
func (t *Trigger) MatchSpell(spell *lat.SpellDescriptor) bool {
	if t == nil || spell == nil {
		return false
	}
	for _, s := range t.spells {
		if s.SameEffect(spell) {
			return true
		}
	}
	return false
}
