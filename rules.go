package blogseed

import "slices"

// Replacement maps a substring to its slug-safe equivalent. An empty New deletes Old.
type Replacement struct {
	Old string
	New string
}

// CategoryRule assigns Category when any keyword appears in the lowercased hashtags.
type CategoryRule struct {
	Category string
	Keywords []string
}

// Rules holds every fixed table and threshold the transformer works with.
// A Transformer keeps its own copy, so changing a Rules value after
// NewTransformer has no effect on it.
type Rules struct {
	SlugReplacements []Replacement

	// CategoryRules are tried in order; the first match wins.
	CategoryRules   []CategoryRule
	DefaultCategory string

	// Themes lists image theme keywords per category.
	Themes   map[string][]string
	ImageURL string

	MinContentLength int    // content shorter than this gets the reflection paragraph
	Reflection       string // appended after a blank line
	Conclusion       string // appended after a blank line
	ConclusionMarker string // searched in the whole content
	KeyMarker        string // searched in the tail of the content
	KeyWindow        int    // size of that tail, in characters

	ExcerptLength int
	Ellipsis      string
}

const (
	defaultImageURL = "https://images.unsplash.com/photo-1516534775068-ba3e7458af70?w=800&auto=format&fit=crop&q=60&ixlib=rb-4.0.3"

	reflectionParagraph = "**Reflexión práctica:** Este concepto se aplica directamente en tu vida diaria. " +
		"Cada vez que sientes resistencia interna, pregúntate: ¿esto es miedo protector o miedo limitante? " +
		"La diferencia marca el camino entre estancamiento y crecimiento."

	conclusionParagraph = "**Conclusión:** El cambio real comienza con la comprensión de tus patrones mentales. " +
		"No se trata de eliminar emociones, sino de aprender a interpretarlas y usarlas como brújula para tu crecimiento personal."
)

// DefaultRules returns the rules used for the Spanish personal-growth blog.
func DefaultRules() Rules {
	return Rules{
		SlugReplacements: []Replacement{
			{"á", "a"}, {"é", "e"}, {"í", "i"}, {"ó", "o"}, {"ú", "u"},
			{"ñ", "n"},
			{"¿", ""}, {"?", ""}, {"¡", ""}, {"!", ""},
		},
		CategoryRules: []CategoryRule{
			{Category: CategoryMindset, Keywords: []string{"mindset", "motivation"}},
			{Category: CategorySaludMental, Keywords: []string{"mentalhealth", "ansiedad"}},
			{Category: CategoryHabitos, Keywords: []string{"habitos", "disciplina"}},
			{Category: CategoryCrecimientoPersonal, Keywords: []string{"selfgrowth", "selfimprovement"}},
		},
		DefaultCategory: CategoryDesarrolloPersonal,
		Themes: map[string][]string{
			CategoryMindset:             {"mind", "meditation", "thinking", "focus", "reflection"},
			CategorySaludMental:         {"wellness", "peace", "calm", "nature", "relax"},
			CategoryHabitos:             {"routine", "journal", "desk", "morning", "coffee"},
			CategoryCrecimientoPersonal: {"growth", "mountain", "journey", "path", "adventure"},
			CategoryDesarrolloPersonal:  {"books", "learning", "education", "study", "light"},
		},
		ImageURL:         defaultImageURL,
		MinContentLength: 250,
		Reflection:       reflectionParagraph,
		Conclusion:       conclusionParagraph,
		ConclusionMarker: "conclusión",
		KeyMarker:        "clave",
		KeyWindow:        200,
		ExcerptLength:    150,
		Ellipsis:         "...",
	}
}

// clone returns a deep copy so the caller's slices and maps are never shared.
func (r Rules) clone() Rules {
	out := r
	out.SlugReplacements = slices.Clone(r.SlugReplacements)
	out.CategoryRules = make([]CategoryRule, len(r.CategoryRules))
	for i, cr := range r.CategoryRules {
		out.CategoryRules[i] = CategoryRule{Category: cr.Category, Keywords: slices.Clone(cr.Keywords)}
	}
	out.Themes = make(map[string][]string, len(r.Themes))
	for k, v := range r.Themes {
		out.Themes[k] = slices.Clone(v)
	}
	return out
}

// Categories returns every category the rules can produce, default last.
func (r Rules) Categories() []string {
	out := make([]string, 0, len(r.CategoryRules)+1)
	for _, cr := range r.CategoryRules {
		out = append(out, cr.Category)
	}
	return append(out, r.DefaultCategory)
}
