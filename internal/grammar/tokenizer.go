package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/haruki7049/lat/internal/lat"
)

// spellLexer splits on runs of Unicode whitespace. The two rules cover
// every rune, so lexing itself never fails.
var spellLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Word", Pattern: `[^\s\v\x{85}\p{Z}]+`},
	{Name: "Whitespace", Pattern: `[\s\v\x{85}\p{Z}]+`},
})

var wordType = spellLexer.Symbols()["Word"]

// Token is one whitespace-delimited word of a spell.
type Token struct {
	Text string       // Verbatim substring of the input
	Pos  lat.Position // Where the word starts
}

// Tokenize splits text into words. It also returns the position just past
// the end of the input, used when a mandatory word is missing.
func Tokenize(text string) ([]Token, lat.Position, error) {
	lex, err := spellLexer.LexString("", text)
	if err != nil {
		return nil, lat.Position{}, err
	}
	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, lat.Position{}, err
	}

	end := lat.Position{Offset: len(text), Line: 1, Column: 1}
	var tokens []Token
	for i, t := range raw {
		if t.EOF() {
			end = position(t.Pos)
			continue
		}
		if t.Type != wordType {
			continue
		}
		tokens = append(tokens, Token{Text: verbatim(text, raw, i), Pos: position(t.Pos)})
	}
	return tokens, end, nil
}

// verbatim slices raw[i] out of text up to the start of the next token, so
// invalid UTF-8 bytes survive unchanged.
func verbatim(text string, raw []lexer.Token, i int) string {
	start := raw[i].Pos.Offset
	stop := len(text)
	if i+1 < len(raw) {
		stop = min(raw[i+1].Pos.Offset, stop)
	}
	if start < 0 || start >= stop {
		return raw[i].Value
	}
	return text[start:stop]
}

func position(p lexer.Position) lat.Position {
	return lat.Position{Offset: p.Offset, Line: p.Line, Column: p.Column}
}
