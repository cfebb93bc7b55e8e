package describe

import (
	"testing"

	"github.com/haruki7049/lat/internal/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNarrate_Styles(t *testing.T) {
	tests := []struct {
		spell string
		style string
		want  string
	}{
		{"Ure Ignis Magnus", StyleGloss, "Burn with great fire."},
		{"ure ignis magno ad hostem Nunc", StyleGloss, "Burn with great fire toward the enemy, now."},
		{"Feri Ventus Celer ex Caelo CumVi Tandem", StyleGloss, "Strike with swift wind, drawn from the sky, with force, at last."},
		{"ure ignis magno ad hostem", StyleCanonical, "Ure Ignis Magnus ad Hostis"},
		{"Defende Terra Fortis ex terra nunc nunc", StyleCanonical, "Defende Terra Fortis ex Terra Nunc Nunc"},
		{"Sana Aqua Parvus", StyleSummary, "action=Sana element=Aqua modifier=Parvus"},
		{"Sana Aqua Parvus ad Me ex Caelum Nunc CumVi", StyleSummary, "action=Sana element=Aqua modifier=Parvus target=Me origin=Caelum emphasis=Nunc,CumVi"},
	}

	for _, tt := range tests {
		t.Run(tt.style+"/"+tt.spell, func(t *testing.T) {
			spell, err := grammar.Parse(tt.spell)
			require.NoError(t, err)

			n := NewNarrator(nil)
			require.NoError(t, n.SetStyle(tt.style))
			got, err := n.Narrate(spell)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonical_RoundTrip(t *testing.T) {
	inputs := []string{
		"ure ignis magno",
		"FERI umbra forti ex caelo ad aream tandem cumvi",
		"Defende Terra Parvo ex Terra",
	}

	for _, input := range inputs {
		spell, err := grammar.Parse(input)
		require.NoError(t, err)

		again, err := grammar.Parse(Canonical(spell))
		require.NoError(t, err, Canonical(spell))

		assert.True(t, spell.SameEffect(again))
		assert.Equal(t, spell.EmphasisPhrases, again.EmphasisPhrases)
	}
}

func TestSetStyle_Unknown(t *testing.T) {
	n := NewNarrator(nil)
	err := n.SetStyle("haiku")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "canonical, gloss, summary")
}

func TestSetTemplate(t *testing.T) {
	n := NewNarrator(nil)
	require.NoError(t, n.SetTemplate(`{{ .Action.Spelling }}/{{ .Source }}/{{ .QuickCast }}`))

	spell, err := grammar.Parse("URE Ignis Magnus")
	require.NoError(t, err)
	got, err := n.Narrate(spell)
	require.NoError(t, err)
	assert.Equal(t, "ure/URE Ignis Magnus/true", got)

	assert.Error(t, n.SetTemplate(`{{ .Action`))
}
