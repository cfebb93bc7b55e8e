// Package describe renders parsed spells as text.
package describe

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/haruki7049/lat/internal/dictionary"
	"github.com/haruki7049/lat/internal/lat"
)

// Built-in style names.
const (
	StyleGloss     = "gloss"
	StyleCanonical = "canonical"
	StyleSummary   = "summary"
)

var styles = map[string]string{
	StyleGloss:     GlossTemplate,
	StyleCanonical: CanonicalTemplate,
	StyleSummary:   SummaryTemplate,
}

// Styles returns the names of the built-in styles.
func Styles() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Narrator renders spells through a text template.
type Narrator struct {
	dict     *dictionary.Dictionary
	template *template.Template
}

// NewNarrator creates a narrator using the gloss style.
func NewNarrator(dict *dictionary.Dictionary) *Narrator {
	if dict == nil {
		dict = dictionary.Default()
	}
	return &Narrator{
		dict:     dict,
		template: template.Must(template.New("spell").Parse(GlossTemplate)),
	}
}

// SetStyle switches to one of the built-in styles.
func (n *Narrator) SetStyle(name string) error {
	tmpl, ok := styles[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown style %q (want one of %s)", name, strings.Join(Styles(), ", "))
	}
	return n.SetTemplate(tmpl)
}

// SetTemplate sets a custom template. The template receives a SpellData.
func (n *Narrator) SetTemplate(tmpl string) error {
	t, err := template.New("spell").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}
	n.template = t
	return nil
}

// Word is one resolved part of a spell.
type Word struct {
	Variant  string // e.g. "Ignis"
	Spelling string // Canonical surface form, e.g. "ignis"
	Gloss    string // English meaning, e.g. "fire"
}

// SpellData is the template input.
type SpellData struct {
	Action   Word
	Element  Word
	Modifier Word
	Target   *Word
	Origin   *Word
	Emphasis []Word

	To   string // Spelling of the target preposition
	From string // Spelling of the origin preposition

	Source    string
	QuickCast bool
}

// BuildSpellData resolves the spelling and gloss of every part of spell.
func (n *Narrator) BuildSpellData(spell *lat.SpellDescriptor) SpellData {
	data := SpellData{
		Action:    n.word(lat.CategoryAction, string(spell.Action)),
		Element:   n.word(lat.CategoryElement, string(spell.Element)),
		Modifier:  n.word(lat.CategoryModifier, string(spell.Modifier)),
		To:        n.dict.Spelling(lat.CategoryPreposition, string(lat.PrepositionToTarget)),
		From:      n.dict.Spelling(lat.CategoryPreposition, string(lat.PrepositionFromOrigin)),
		Source:    spell.SourceText,
		QuickCast: spell.IsQuickCast(),
	}

	if spell.Target != nil {
		w := n.word(lat.CategoryTarget, string(*spell.Target))
		data.Target = &w
	}
	if spell.Origin != nil {
		w := n.word(lat.CategoryOrigin, string(*spell.Origin))
		data.Origin = &w
	}
	for _, e := range spell.EmphasisPhrases {
		data.Emphasis = append(data.Emphasis, n.word(lat.CategoryEmphasis, string(e)))
	}

	return data
}

func (n *Narrator) word(c lat.Category, variant string) Word {
	return Word{
		Variant:  variant,
		Spelling: n.dict.Spelling(c, variant),
		Gloss:    lat.Gloss(c, variant),
	}
}

// Narrate renders spell with the current template.
func (n *Narrator) Narrate(spell *lat.SpellDescriptor) (string, error) {
	var buf bytes.Buffer
	if err := n.template.Execute(&buf, n.BuildSpellData(spell)); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// Canonical returns the canonical spelling of spell using variant names,
// e.g. "Ure Ignis Magnus ad Hostis Nunc". It parses back to the same spell.
func Canonical(spell *lat.SpellDescriptor) string {
	n := NewNarrator(nil)
	_ = n.SetTemplate(CanonicalTemplate)
	out, err := n.Narrate(spell)
	if err != nil {
		return spell.Core()
	}
	return out
}

// GlossTemplate reads the spell as an English sentence.
const GlossTemplate = `{{ .Action.Gloss }} with {{ .Modifier.Gloss }} {{ .Element.Gloss }}
{{- if .Target }} toward {{ .Target.Gloss }}{{ end }}
{{- if .Origin }}, drawn from {{ .Origin.Gloss }}{{ end }}
{{- range .Emphasis }}, {{ .Gloss }}{{ end }}.`

// CanonicalTemplate re-spells the spell with canonical words.
const CanonicalTemplate = `{{ .Action.Variant }} {{ .Element.Variant }} {{ .Modifier.Variant }}
{{- if .Target }} {{ .To }} {{ .Target.Variant }}{{ end }}
{{- if .Origin }} {{ .From }} {{ .Origin.Variant }}{{ end }}
{{- range .Emphasis }} {{ .Variant }}{{ end }}`

// SummaryTemplate lists the fields on one line.
const SummaryTemplate = `action={{ .Action.Variant }} element={{ .Element.Variant }} modifier={{ .Modifier.Variant }}
{{- if .Target }} target={{ .Target.Variant }}{{ end }}
{{- if .Origin }} origin={{ .Origin.Variant }}{{ end }}
{{- if .Emphasis }} emphasis={{ range $i, $e := .Emphasis }}{{ if $i }},{{ end }}{{ $e.Variant }}{{ end }}{{ end }}`
