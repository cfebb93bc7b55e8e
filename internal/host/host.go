// Package host exposes the parser as a stateless request/response boundary.
//
// Each request is handled on its own: the host keeps no session and no
// record of earlier casts. Reset conditions are decided by a Trigger.
package host

import (
	"errors"
	"log/slog"

	"github.com/haruki7049/lat/internal/grammar"
	"github.com/haruki7049/lat/internal/lat"
)

// KindInvalidRequest tags payloads for requests that could not be decoded.
const KindInvalidRequest = "InvalidRequest"

// Request carries one spell to parse.
type Request struct {
	Text string `json:"text"`
}

// Response is the result of one request. Exactly one of Spell and Error is
// set, unless Resetting was triggered by a keyword, in which case neither is.
type Response struct {
	Spell     *lat.SpellDescriptor `json:"spell,omitempty"`
	Error     *ErrorPayload        `json:"error,omitempty"`
	Resetting bool                 `json:"resetting"`
}

// OK reports whether the request parsed or reset without error.
func (r Response) OK() bool {
	return r.Error == nil
}

// ErrorPayload is the wire form of a parse failure.
type ErrorPayload struct {
	Kind      string `json:"kind"`
	Word      string `json:"word,omitempty"`
	Component string `json:"component,omitempty"`
	Expected  string `json:"expected,omitempty"`
	Found     string `json:"found,omitempty"`
	Line      int    `json:"line,omitempty"`
	Column    int    `json:"column,omitempty"`
	Message   string `json:"message"`
}

// NewErrorPayload converts err into a payload. Errors other than
// *lat.ParseError keep only their message.
func NewErrorPayload(err error) *ErrorPayload {
	var perr *lat.ParseError
	if !errors.As(err, &perr) {
		return &ErrorPayload{Kind: "Error", Message: err.Error()}
	}
	return &ErrorPayload{
		Kind:      perr.Kind.String(),
		Word:      perr.Word,
		Component: string(perr.Component),
		Expected:  perr.Expected,
		Found:     perr.Found,
		Line:      perr.Pos.Line,
		Column:    perr.Pos.Column,
		Message:   perr.Error(),
	}
}

// Handler parses requests.
type Handler struct {
	parser  *grammar.Parser
	trigger *Trigger
	logger  *slog.Logger
}

// New creates a handler. A nil trigger never resets; a nil logger uses slog.Default.
func New(parser *grammar.Parser, trigger *Trigger, logger *slog.Logger) *Handler {
	if parser == nil {
		parser = grammar.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{parser: parser, trigger: trigger, logger: logger}
}

// Handle parses one request.
func (h *Handler) Handle(req Request) Response {
	if h.trigger.MatchKeyword(req.Text) {
		h.logger.Debug("reset keyword", "text", req.Text)
		return Response{Resetting: true}
	}

	spell, err := h.parser.Parse(req.Text)
	if err != nil {
		h.logger.Debug("spell rejected", "text", req.Text, "error", err)
		return Response{Error: NewErrorPayload(err)}
	}

	resetting := h.trigger.MatchSpell(spell)
	h.logger.Debug("spell parsed",
		"action", spell.Action,
		"element", spell.Element,
		"modifier", spell.Modifier,
		"resetting", resetting,
	)
	return Response{Spell: spell, Resetting: resetting}
}
