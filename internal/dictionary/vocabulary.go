package dictionary

import "github.com/haruki7049/lat/internal/lat"

func row(word string, c lat.Category, variant string) Entry {
	return Entry{Word: word, Category: c, Variant: variant}
}

// vocabulary is the compiled-in word table. The first row of each variant
// is its canonical spelling. Additional rows are fixed literal forms, not
// inflection rules.
var vocabulary = []Entry{
	// Actions
	row("ure", lat.CategoryAction, string(lat.ActionUre)),
	row("sana", lat.CategoryAction, string(lat.ActionSana)),
	row("defende", lat.CategoryAction, string(lat.ActionDefende)),
	row("feri", lat.CategoryAction, string(lat.ActionFeri)),

	// Elements
	row("ignis", lat.CategoryElement, string(lat.ElementIgnis)),
	row("aqua", lat.CategoryElement, string(lat.ElementAqua)),
	row("ventus", lat.CategoryElement, string(lat.ElementVentus)),
	row("terra", lat.CategoryElement, string(lat.ElementTerra)),
	row("lumen", lat.CategoryElement, string(lat.ElementLumen)),
	row("umbra", lat.CategoryElement, string(lat.ElementUmbra)),

	// Modifiers
	row("magnus", lat.CategoryModifier, string(lat.ModifierMagnus)),
	row("magno", lat.CategoryModifier, string(lat.ModifierMagnus)),
	row("magna", lat.CategoryModifier, string(lat.ModifierMagnus)),
	row("parvus", lat.CategoryModifier, string(lat.ModifierParvus)),
	row("parvo", lat.CategoryModifier, string(lat.ModifierParvus)),
	row("celer", lat.CategoryModifier, string(lat.ModifierCeler)),
	row("fortis", lat.CategoryModifier, string(lat.ModifierFortis)),
	row("forti", lat.CategoryModifier, string(lat.ModifierFortis)),

	// Targets
	row("hostis", lat.CategoryTarget, string(lat.TargetHostis)),
	row("hostem", lat.CategoryTarget, string(lat.TargetHostis)),
	row("amicus", lat.CategoryTarget, string(lat.TargetAmicus)),
	row("amicum", lat.CategoryTarget, string(lat.TargetAmicus)),
	row("me", lat.CategoryTarget, string(lat.TargetMe)),
	row("area", lat.CategoryTarget, string(lat.TargetArea)),
	row("aream", lat.CategoryTarget, string(lat.TargetArea)),

	// Origins. "terra" is also an Element; position decides.
	row("caelum", lat.CategoryOrigin, string(lat.OriginCaelum)),
	row("caelo", lat.CategoryOrigin, string(lat.OriginCaelum)),
	row("terra", lat.CategoryOrigin, string(lat.OriginTerra)),

	// Emphasis
	row("nunc", lat.CategoryEmphasis, string(lat.EmphasisNunc)),
	row("cumvi", lat.CategoryEmphasis, string(lat.EmphasisCumVi)),
	row("tandem", lat.CategoryEmphasis, string(lat.EmphasisTandem)),

	// Prepositions
	row("ad", lat.CategoryPreposition, string(lat.PrepositionToTarget)),
	row("ex", lat.CategoryPreposition, string(lat.PrepositionFromOrigin)),
}
