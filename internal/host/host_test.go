package host

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/haruki7049/lat/internal/lat"
	"github.com/haruki7049/lat/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) *Handler {
	t.Helper()
	trigger, err := NewTrigger([]string{"reset", " Clear "}, []string{"Sana Lumen Magnus"}, nil)
	require.NoError(t, err)
	return New(nil, trigger, logging.Discard())
}

func TestHandle(t *testing.T) {
	h := newHandler(t)

	tests := []struct {
		name      string
		text      string
		spell     bool
		kind      string
		resetting bool
	}{
		{"quick cast", "Ure Ignis Magnus", true, "", false},
		{"extended", "Feri Ventus Celer ad Hostem Nunc", true, "", false},
		{"reset keyword", "  RESET ", false, "", true},
		{"second keyword", "clear", false, "", true},
		{"reset spell", "sana lumen magno", true, "", true},
		{"reset spell with emphasis", "Sana Lumen Magnus Nunc CumVi", true, "", true},
		{"reset spell with target", "Sana Lumen Magnus ad Me", true, "", false},
		{"unknown word", "Ure Xyzzy Magnus", false, "UnknownWord", false},
		{"missing core", "Ure Ignis", false, "MissingCoreComponent", false},
		{"empty", "", false, "MissingCoreComponent", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := h.Handle(Request{Text: tt.text})
			assert.Equal(t, tt.spell, resp.Spell != nil)
			assert.Equal(t, tt.resetting, resp.Resetting)
			if tt.kind == "" {
				assert.Nil(t, resp.Error)
				assert.True(t, resp.OK())
			} else {
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.kind, resp.Error.Kind)
				assert.False(t, resp.OK())
			}
		})
	}
}

func TestHandle_NoTrigger(t *testing.T) {
	h := New(nil, nil, logging.Discard())

	resp := h.Handle(Request{Text: "reset"})
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UnknownWord", resp.Error.Kind)

	resp = h.Handle(Request{Text: "Sana Lumen Magnus"})
	assert.NotNil(t, resp.Spell)
	assert.False(t, resp.Resetting)
}

func TestNewTrigger_BadSpell(t *testing.T) {
	_, err := NewTrigger(nil, []string{"Sana Lumen"}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, lat.ErrMissingCoreComponent)
	assert.Contains(t, err.Error(), `"Sana Lumen"`)
}

func TestErrorPayload(t *testing.T) {
	resp := newHandler(t).Handle(Request{Text: "Ure Ignis Magnus\nad Ignis"})
	require.NotNil(t, resp.Error)

	assert.Equal(t, &ErrorPayload{
		Kind:     "UnexpectedComponent",
		Expected: "Target",
		Found:    "Element",
		Line:     2,
		Column:   4,
		Message:  "unexpected component: expected Target but found Element",
	}, resp.Error)
}

func TestServe(t *testing.T) {
	h := newHandler(t)

	in := strings.Join([]string{
		`{"text":"Ure Ignis Magnus"}`,
		``,
		`not json`,
		`{"text":"reset"}`,
		`{"text":"Ure"}`,
	}, "\n")

	var out strings.Builder
	require.NoError(t, h.Serve(context.Background(), strings.NewReader(in), &out))

	var responses []Response
	scanner := bufio.NewScanner(strings.NewReader(out.String()))
	for scanner.Scan() {
		var r Response
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &r))
		responses = append(responses, r)
	}
	require.Len(t, responses, 4)

	require.NotNil(t, responses[0].Spell)
	assert.Equal(t, lat.ActionUre, responses[0].Spell.Action)

	require.NotNil(t, responses[1].Error)
	assert.Equal(t, KindInvalidRequest, responses[1].Error.Kind)

	assert.True(t, responses[2].Resetting)
	assert.Nil(t, responses[2].Spell)

	require.NotNil(t, responses[3].Error)
	assert.Equal(t, "MissingCoreComponent", responses[3].Error.Kind)
	assert.Equal(t, "Element", responses[3].Error.Component)
}

func TestServe_Cancel(t *testing.T) {
	h := newHandler(t)
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- h.Serve(ctx, pr, io.Discard)
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not stop after cancellation")
	}
}
