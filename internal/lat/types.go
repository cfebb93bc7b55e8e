// Package lat provides the core value types of the spell language.
package lat

import "strings"

// Action is the verb of a spell. It always fills the first slot.
type Action string

const (
	ActionUre     Action = "Ure"     // Burn
	ActionSana    Action = "Sana"    // Heal
	ActionDefende Action = "Defende" // Defend
	ActionFeri    Action = "Feri"    // Strike
)

// Element is the medium of a spell. It always fills the second slot.
type Element string

const (
	ElementIgnis  Element = "Ignis"  // Fire
	ElementAqua   Element = "Aqua"   // Water
	ElementVentus Element = "Ventus" // Wind
	ElementTerra  Element = "Terra"  // Earth
	ElementLumen  Element = "Lumen"  // Light
	ElementUmbra  Element = "Umbra"  // Shadow
)

// Modifier describes the scale or form of a spell. It always fills the third slot.
type Modifier string

const (
	ModifierMagnus Modifier = "Magnus" // Large / great
	ModifierParvus Modifier = "Parvus" // Small
	ModifierCeler  Modifier = "Celer"  // Fast
	ModifierFortis Modifier = "Fortis" // Strong
)

// Target is the optional recipient of a spell, introduced by "ad".
type Target string

const (
	TargetHostis Target = "Hostis" // Enemy
	TargetAmicus Target = "Amicus" // Ally
	TargetMe     Target = "Me"     // Self
	TargetArea   Target = "Area"   // Area
)

// Origin is the optional source of a spell, introduced by "ex".
type Origin string

const (
	OriginCaelum Origin = "Caelum" // From the sky
	OriginTerra  Origin = "Terra"  // From the earth
)

// Emphasis strengthens a spell. Any number may follow the core.
type Emphasis string

const (
	EmphasisNunc   Emphasis = "Nunc"   // Now
	EmphasisCumVi  Emphasis = "CumVi"  // With force
	EmphasisTandem Emphasis = "Tandem" // At last
)

// Preposition introduces an extension phrase.
type Preposition string

const (
	PrepositionToTarget   Preposition = "ToTarget"
	PrepositionFromOrigin Preposition = "FromOrigin"
)

// Variant lists. Order matches the constant declarations above.
var (
	Actions      = []Action{ActionUre, ActionSana, ActionDefende, ActionFeri}
	Elements     = []Element{ElementIgnis, ElementAqua, ElementVentus, ElementTerra, ElementLumen, ElementUmbra}
	Modifiers    = []Modifier{ModifierMagnus, ModifierParvus, ModifierCeler, ModifierFortis}
	Targets      = []Target{TargetHostis, TargetAmicus, TargetMe, TargetArea}
	Origins      = []Origin{OriginCaelum, OriginTerra}
	Emphases     = []Emphasis{EmphasisNunc, EmphasisCumVi, EmphasisTandem}
	Prepositions = []Preposition{PrepositionToTarget, PrepositionFromOrigin}
)

var glosses = map[string]string{
	"Action/Ure":      "Burn",
	"Action/Sana":     "Heal",
	"Action/Defende":  "Defend",
	"Action/Feri":     "Strike",
	"Element/Ignis":   "fire",
	"Element/Aqua":    "water",
	"Element/Ventus":  "wind",
	"Element/Terra":   "earth",
	"Element/Lumen":   "light",
	"Element/Umbra":   "shadow",
	"Modifier/Magnus": "great",
	"Modifier/Parvus": "small",
	"Modifier/Celer":  "swift",
	"Modifier/Fortis": "strong",
	"Target/Hostis":   "the enemy",
	"Target/Amicus":   "an ally",
	"Target/Me":       "oneself",
	"Target/Area":     "the area",
	"Origin/Caelum":   "the sky",
	"Origin/Terra":    "the earth",
	"Emphasis/Nunc":   "now",
	"Emphasis/CumVi":  "with force",
	"Emphasis/Tandem": "at last",

	"Preposition/ToTarget":   "toward",
	"Preposition/FromOrigin": "from",
}

// Gloss returns the English meaning of a variant of the given category.
func Gloss(c Category, variant string) string {
	return glosses[c.String()+"/"+variant]
}

func (a Action) Gloss() string      { return Gloss(CategoryAction, string(a)) }
func (e Element) Gloss() string     { return Gloss(CategoryElement, string(e)) }
func (m Modifier) Gloss() string    { return Gloss(CategoryModifier, string(m)) }
func (t Target) Gloss() string      { return Gloss(CategoryTarget, string(t)) }
func (o Origin) Gloss() string      { return Gloss(CategoryOrigin, string(o)) }
func (e Emphasis) Gloss() string    { return Gloss(CategoryEmphasis, string(e)) }
func (p Preposition) Gloss() string { return Gloss(CategoryPreposition, string(p)) }

// SpellDescriptor is the result of parsing one spell.
type SpellDescriptor struct {
	// Spell core, always present.
	Action   Action   `yaml:"action" json:"action"`
	Element  Element  `yaml:"element" json:"element"`
	Modifier Modifier `yaml:"modifier" json:"modifier"`

	// Extensions.
	Target          *Target    `yaml:"target,omitempty" json:"target,omitempty"`
	Origin          *Origin    `yaml:"origin,omitempty" json:"origin,omitempty"`
	EmphasisPhrases []Emphasis `yaml:"emphasis_phrases,omitempty" json:"emphasis_phrases,omitempty"`

	SourceText string `yaml:"source_text" json:"source_text"`
}

// IsQuickCast reports whether the spell has no extension phrases.
func (s *SpellDescriptor) IsQuickCast() bool {
	return s.Target == nil && s.Origin == nil && len(s.EmphasisPhrases) == 0
}

// SameEffect reports whether two spells share core, target and origin.
// Emphasis and source text are ignored.
func (s *SpellDescriptor) SameEffect(o *SpellDescriptor) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.Action != o.Action || s.Element != o.Element || s.Modifier != o.Modifier {
		return false
	}
	if (s.Target == nil) != (o.Target == nil) || (s.Target != nil && *s.Target != *o.Target) {
		return false
	}
	if (s.Origin == nil) != (o.Origin == nil) || (s.Origin != nil && *s.Origin != *o.Origin) {
		return false
	}
	return true
}

// Core returns the spell core as "Action Element Modifier".
func (s *SpellDescriptor) Core() string {
	return strings.Join([]string{string(s.Action), string(s.Element), string(s.Modifier)}, " ")
}

// Position locates a token within the spell text.
type Position struct {
	Offset int `yaml:"offset" json:"offset"` // Byte offset
	Line   int `yaml:"line" json:"line"`     // 1-based
	Column int `yaml:"column" json:"column"` // 1-based, in runes
}
