// Package dictionary maps spell words to the grammatical categories they can fill.
package dictionary

import (
	"sort"
	"strings"
	"sync"

	"github.com/haruki7049/lat/internal/lat"
)

// Entry is one reading of a word.
type Entry struct {
	Word     string       `yaml:"word" json:"word"`         // Canonical lower-case surface form
	Category lat.Category `yaml:"category" json:"category"` // Grammatical class
	Variant  string       `yaml:"variant" json:"variant"`   // Enum value within the category, e.g. "Terra"
}

// Gloss returns the English meaning of the entry.
func (e Entry) Gloss() string {
	return lat.Gloss(e.Category, e.Variant)
}

// Dictionary holds the spell vocabulary. It is never mutated after New returns.
type Dictionary struct {
	entries   map[string][]Entry
	spellings map[string]string
	words     []Entry
}

// New builds a dictionary from rows. Words are normalized to lower case;
// the first row registered for a (category, variant) pair is its canonical spelling.
func New(rows []Entry) *Dictionary {
	d := &Dictionary{
		entries:   make(map[string][]Entry),
		spellings: make(map[string]string),
	}

	for _, row := range rows {
		row.Word = normalize(row.Word)
		if row.Word == "" {
			continue
		}
		if d.has(row) {
			continue
		}
		d.entries[row.Word] = append(d.entries[row.Word], row)
		d.words = append(d.words, row)

		key := spellingKey(row.Category, row.Variant)
		if _, ok := d.spellings[key]; !ok {
			d.spellings[key] = row.Word
		}
	}

	sort.SliceStable(d.words, func(i, j int) bool {
		if d.words[i].Category != d.words[j].Category {
			return d.words[i].Category < d.words[j].Category
		}
		return d.words[i].Word < d.words[j].Word
	})

	return d
}

var defaultDictionary = sync.OnceValue(func() *Dictionary {
	return New(vocabulary)
})

// Default returns the process-wide dictionary built from the compiled-in vocabulary.
func Default() *Dictionary {
	return defaultDictionary()
}

// Lookup returns every reading of a word, or nil if the word is unknown.
func (d *Dictionary) Lookup(word string) []Entry {
	found := d.entries[normalize(word)]
	if len(found) == 0 {
		return nil
	}
	out := make([]Entry, len(found))
	copy(out, found)
	return out
}

// LookupIn resolves a word constrained to the allowed categories.
// It succeeds only when exactly one reading falls inside allowed.
func (d *Dictionary) LookupIn(word string, allowed lat.CategorySet) (Entry, bool) {
	var (
		match Entry
		count int
	)
	for _, e := range d.entries[normalize(word)] {
		if allowed.Has(e.Category) {
			match = e
			count++
		}
	}
	if count != 1 {
		return Entry{}, false
	}
	return match, true
}

// Categories returns the set of categories a word belongs to.
func (d *Dictionary) Categories(word string) lat.CategorySet {
	var set lat.CategorySet
	for _, e := range d.entries[normalize(word)] {
		set = set.Add(e.Category)
	}
	return set
}

// Contains reports whether the word is known under any category.
func (d *Dictionary) Contains(word string) bool {
	return len(d.entries[normalize(word)]) > 0
}

// Spelling returns the canonical surface form of a variant, or "" if none is registered.
func (d *Dictionary) Spelling(c lat.Category, variant string) string {
	return d.spellings[spellingKey(c, variant)]
}

// Words returns the vocabulary sorted by category, then word.
func (d *Dictionary) Words() []Entry {
	out := make([]Entry, len(d.words))
	copy(out, d.words)
	return out
}

// WordsIn returns the vocabulary of a single category.
func (d *Dictionary) WordsIn(c lat.Category) []Entry {
	var out []Entry
	for _, e := range d.words {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// Size returns the number of distinct surface forms.
func (d *Dictionary) Size() int {
	return len(d.entries)
}

func (d *Dictionary) has(row Entry) bool {
	for _, e := range d.entries[row.Word] {
		if e.Category == row.Category && e.Variant == row.Variant {
			return true
		}
	}
	return false
}

func normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

func spellingKey(c lat.Category, variant string) string {
	return c.String() + "/" + variant
}
