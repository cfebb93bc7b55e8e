package lat

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per ParseError kind.
var (
	ErrUnknownWord               = errors.New("unknown word")
	ErrMissingCoreComponent      = errors.New("missing core spell component")
	ErrUnexpectedComponent       = errors.New("unexpected component")
	ErrIncompleteExtensionPhrase = errors.New("incomplete extension phrase")
	ErrUnexpectedEOF             = errors.New("unexpected end of input")
)

// CoreComponent names a mandatory slot of the spell core.
type CoreComponent string

const (
	CoreAction   CoreComponent = "Action"   // Verb
	CoreElement  CoreComponent = "Element"  // Noun
	CoreModifier CoreComponent = "Modifier" // Adjective
)

// ErrorKind tags a ParseError.
type ErrorKind int

const (
	KindUnknownWord ErrorKind = iota + 1
	KindMissingCoreComponent
	KindUnexpectedComponent
	KindIncompleteExtensionPhrase
	KindUnexpectedEOF
)

var kindNames = map[ErrorKind]string{
	KindUnknownWord:               "UnknownWord",
	KindMissingCoreComponent:      "MissingCoreComponent",
	KindUnexpectedComponent:       "UnexpectedComponent",
	KindIncompleteExtensionPhrase: "IncompleteExtensionPhrase",
	KindUnexpectedEOF:             "UnexpectedEof",
}

var kindSentinels = map[ErrorKind]error{
	KindUnknownWord:               ErrUnknownWord,
	KindMissingCoreComponent:      ErrMissingCoreComponent,
	KindUnexpectedComponent:       ErrUnexpectedComponent,
	KindIncompleteExtensionPhrase: ErrIncompleteExtensionPhrase,
	KindUnexpectedEOF:             ErrUnexpectedEOF,
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseError describes why a spell could not be parsed.
// Only the fields relevant to Kind are set.
type ParseError struct {
	Kind      ErrorKind
	Word      string        // UnknownWord, IncompleteExtensionPhrase
	Component CoreComponent // MissingCoreComponent
	Expected  string        // UnexpectedComponent
	Found     string        // UnexpectedComponent
	Pos       Position
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindUnknownWord:
		return fmt.Sprintf("unknown word %q", e.Word)
	case KindMissingCoreComponent:
		return fmt.Sprintf("missing core spell component %s", e.Component)
	case KindUnexpectedComponent:
		return fmt.Sprintf("unexpected component: expected %s but found %s", e.Expected, e.Found)
	case KindIncompleteExtensionPhrase:
		return fmt.Sprintf("incomplete extension phrase starting with %q", e.Word)
	case KindUnexpectedEOF:
		return "unexpected end of input"
	default:
		return "invalid spell"
	}
}

// Unwrap returns the sentinel error for the kind.
func (e *ParseError) Unwrap() error {
	return kindSentinels[e.Kind]
}

// UnknownWord reports a word absent from the dictionary.
func UnknownWord(word string, pos Position) *ParseError {
	return &ParseError{Kind: KindUnknownWord, Word: word, Pos: pos}
}

// MissingCoreComponent reports input that ended before a mandatory slot was filled.
func MissingCoreComponent(c CoreComponent, pos Position) *ParseError {
	return &ParseError{Kind: KindMissingCoreComponent, Component: c, Pos: pos}
}

// UnexpectedComponent reports a known word in a position that does not permit it.
func UnexpectedComponent(expected, found string, pos Position) *ParseError {
	return &ParseError{Kind: KindUnexpectedComponent, Expected: expected, Found: found, Pos: pos}
}

// IncompleteExtensionPhrase reports a preposition with nothing after it.
func IncompleteExtensionPhrase(preposition string, pos Position) *ParseError {
	return &ParseError{Kind: KindIncompleteExtensionPhrase, Word: preposition, Pos: pos}
}

// UnexpectedEOF reports truncated input not covered by the other kinds.
func UnexpectedEOF(pos Position) *ParseError {
	return &ParseError{Kind: KindUnexpectedEOF, Pos: pos}
}
