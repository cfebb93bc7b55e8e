// Package grammar parses spell text into a lat.SpellDescriptor.
package grammar

import (
	"sync"

	"github.com/haruki7049/lat/internal/dictionary"
	"github.com/haruki7049/lat/internal/lat"
)

// Expectation descriptions used in UnexpectedComponent errors.
const (
	expectExtension      = "Preposition or Emphasis"
	expectAfterTarget    = "end of input or Origin/Emphasis"
	expectAfterOrigin    = "end of input or Target/Emphasis"
	expectTargetCategory = "Target"
	expectOriginCategory = "Origin"
)

var extensionFilter = lat.SetOf(lat.CategoryPreposition, lat.CategoryEmphasis)

// state is a position in the spell grammar.
type state int

const (
	stateExpectAction state = iota
	stateExpectElement
	stateExpectModifier
	stateExtensionLoop
)

// Parser turns spell text into descriptors. It holds no mutable state and
// is safe for concurrent use.
type Parser struct {
	dict *dictionary.Dictionary
}

// NewParser creates a parser over the given dictionary.
func NewParser(dict *dictionary.Dictionary) *Parser {
	if dict == nil {
		dict = dictionary.Default()
	}
	return &Parser{dict: dict}
}

var defaultParser = sync.OnceValue(func() *Parser {
	return NewParser(dictionary.Default())
})

// Default returns the parser over the default dictionary.
func Default() *Parser {
	return defaultParser()
}

// Parse parses text with the default parser.
func Parse(text string) (*lat.SpellDescriptor, error) {
	return Default().Parse(text)
}

// Dictionary returns the dictionary the parser resolves words against.
func (p *Parser) Dictionary() *dictionary.Dictionary {
	return p.dict
}

// cursor walks the token list left to right.
type cursor struct {
	tokens []Token
	next   int
	end    lat.Position
}

func (c *cursor) take() (Token, bool) {
	if c.next >= len(c.tokens) {
		return Token{}, false
	}
	t := c.tokens[c.next]
	c.next++
	return t, true
}

// Parse parses a single spell. On failure the error is a *lat.ParseError
// and no descriptor is returned.
func (p *Parser) Parse(text string) (*lat.SpellDescriptor, error) {
	tokens, end, err := Tokenize(text)
	if err != nil {
		// Unreachable with the lexer rules; report the whole input.
		return nil, lat.UnknownWord(text, lat.Position{Line: 1, Column: 1})
	}

	c := &cursor{tokens: tokens, end: end}
	spell := &lat.SpellDescriptor{SourceText: text}

	for st := stateExpectAction; ; {
		switch st {
		case stateExpectAction:
			e, err := p.expectCore(c, lat.CategoryAction, lat.CoreAction)
			if err != nil {
				return nil, err
			}
			spell.Action = lat.Action(e.Variant)
			st = stateExpectElement

		case stateExpectElement:
			e, err := p.expectCore(c, lat.CategoryElement, lat.CoreElement)
			if err != nil {
				return nil, err
			}
			spell.Element = lat.Element(e.Variant)
			st = stateExpectModifier

		case stateExpectModifier:
			e, err := p.expectCore(c, lat.CategoryModifier, lat.CoreModifier)
			if err != nil {
				return nil, err
			}
			spell.Modifier = lat.Modifier(e.Variant)
			st = stateExtensionLoop

		case stateExtensionLoop:
			tok, ok := c.take()
			if !ok {
				return spell, nil
			}
			if err := p.extend(c, spell, tok); err != nil {
				return nil, err
			}
		}
	}
}

// expectCore consumes one mandatory word of the given category.
func (p *Parser) expectCore(c *cursor, cat lat.Category, slot lat.CoreComponent) (dictionary.Entry, error) {
	tok, ok := c.take()
	if !ok {
		return dictionary.Entry{}, lat.MissingCoreComponent(slot, c.end)
	}
	return p.resolve(tok, lat.SetOf(cat), cat.String())
}

// extend applies one extension phrase starting at tok.
func (p *Parser) extend(c *cursor, spell *lat.SpellDescriptor, tok Token) error {
	e, err := p.resolve(tok, extensionFilter, expectExtension)
	if err != nil {
		return err
	}

	if e.Category == lat.CategoryEmphasis {
		spell.EmphasisPhrases = append(spell.EmphasisPhrases, lat.Emphasis(e.Variant))
		return nil
	}

	arg, ok := c.take()
	if !ok {
		return lat.IncompleteExtensionPhrase(tok.Text, tok.Pos)
	}

	switch lat.Preposition(e.Variant) {
	case lat.PrepositionToTarget:
		t, err := p.resolve(arg, lat.SetOf(lat.CategoryTarget), expectTargetCategory)
		if err != nil {
			return err
		}
		if spell.Target != nil {
			return lat.UnexpectedComponent(expectAfterTarget, lat.CategoryTarget.String(), tok.Pos)
		}
		target := lat.Target(t.Variant)
		spell.Target = &target

	case lat.PrepositionFromOrigin:
		o, err := p.resolve(arg, lat.SetOf(lat.CategoryOrigin), expectOriginCategory)
		if err != nil {
			return err
		}
		if spell.Origin != nil {
			return lat.UnexpectedComponent(expectAfterOrigin, lat.CategoryOrigin.String(), tok.Pos)
		}
		origin := lat.Origin(o.Variant)
		spell.Origin = &origin
	}

	return nil
}

// resolve looks a token up under the allowed categories. The word's full
// category set is only used to describe a mismatch.
func (p *Parser) resolve(tok Token, allowed lat.CategorySet, expected string) (dictionary.Entry, error) {
	if e, ok := p.dict.LookupIn(tok.Text, allowed); ok {
		return e, nil
	}
	found := p.dict.Categories(tok.Text)
	if found.Empty() {
		return dictionary.Entry{}, lat.UnknownWord(tok.Text, tok.Pos)
	}
	return dictionary.Entry{}, lat.UnexpectedComponent(expected, found.String(), tok.Pos)
}
