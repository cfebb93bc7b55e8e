package lat

import (
	"fmt"
	"strings"
)

// Category is the grammatical class a dictionary word belongs to.
type Category int

const (
	CategoryAction Category = iota
	CategoryElement
	CategoryModifier
	CategoryTarget
	CategoryOrigin
	CategoryEmphasis
	CategoryPreposition
)

// Categories lists every category in declaration order.
var Categories = []Category{
	CategoryAction,
	CategoryElement,
	CategoryModifier,
	CategoryTarget,
	CategoryOrigin,
	CategoryEmphasis,
	CategoryPreposition,
}

var categoryNames = [...]string{
	CategoryAction:      "Action",
	CategoryElement:     "Element",
	CategoryModifier:    "Modifier",
	CategoryTarget:      "Target",
	CategoryOrigin:      "Origin",
	CategoryEmphasis:    "Emphasis",
	CategoryPreposition: "Preposition",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(c.String(), name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CategorySet is a set of categories.
type CategorySet uint8

// SetOf builds a set from the given categories.
func SetOf(cats ...Category) CategorySet {
	var s CategorySet
	for _, c := range cats {
		s |= 1 << c
	}
	return s
}

// Has reports whether c is in the set.
func (s CategorySet) Has(c Category) bool {
	return s&(1<<c) != 0
}

// Add returns the set with c included.
func (s CategorySet) Add(c Category) CategorySet {
	return s | 1<<c
}

// Empty reports whether the set has no members.
func (s CategorySet) Empty() bool {
	return s == 0
}

// Members returns the categories in declaration order.
func (s CategorySet) Members() []Category {
	var out []Category
	for _, c := range Categories {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// String joins the members with " or ", e.g. "Element or Origin".
func (s CategorySet) String() string {
	members := s.Members()
	if len(members) == 0 {
		return "nothing"
	}
	names := make([]string, len(members))
	for i, c := range members {
		names[i] = c.String()
	}
	return strings.Join(names, " or ")
}
