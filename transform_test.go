package blogseed

import (
	"regexp"
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slugPattern = regexp.MustCompile(`^([a-z0-9]+(-[a-z0-9]+)*)?$`)

func newTestTransformer() *Transformer {
	return NewTransformer(DefaultRules())
}

func TestSlugify(t *testing.T) {
	tr := newTestTransformer()
	tests := []struct {
		input    string
		expected string
	}{
		{"¿Cómo Salir de Relaciones Tóxicas?", "como-salir-de-relaciones-toxicas"},
		{"Cómo Identificar (Y Salir De) Relaciones Tóxicas", "como-identificar-y-salir-de-relaciones-toxicas"},
		{"¡Hábitos que CAMBIAN tu vida!", "habitos-que-cambian-tu-vida"},
		{"El Año del Niño", "el-ano-del-nino"},
		{"  --Hello,   World--  ", "hello-world"},
		{"10 claves para 2024", "10-claves-para-2024"},
		{"¿?¡!", ""},
		{"", ""},
		{"Über naïve", "ber-na-ve"},
	}
	for _, tt := range tests {
		got := tr.Slugify(tt.input)
		if got != tt.expected {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSlugifyShapeAndIdempotence(t *testing.T) {
	tr := newTestTransformer()
	titles := []string{
		"¿Cómo Salir de Relaciones Tóxicas?",
		"Ansiedad: 5 pasos — de verdad",
		"___",
		"a--b",
		"-lead and trail-",
		"Mañana empiezo (otra vez)",
		"ÁÉÍÓÚ Ñ",
		"emoji 🚀 rocket",
		"tab\tand\nnewline",
	}
	for _, title := range titles {
		slug := tr.Slugify(title)
		assert.Regexp(t, slugPattern, slug, "Slugify(%q)", title)
		assert.Equal(t, slug, tr.Slugify(slug), "Slugify is not idempotent for %q", title)
	}
}

func TestCategorize(t *testing.T) {
	tr := newTestTransformer()
	tests := []struct {
		hashtags string
		expected string
	}{
		{"#Mindset #Growth", CategoryMindset},
		{"#motivation", CategoryMindset},
		{"#MentalHealth #Ansiedad", CategorySaludMental},
		{"#ansiedad", CategorySaludMental},
		{"#Habitos #Disciplina", CategoryHabitos},
		{"#SelfGrowth", CategoryCrecimientoPersonal},
		{"#selfimprovement", CategoryCrecimientoPersonal},
		{"#Amor #Pareja", CategoryDesarrolloPersonal},
		{"", CategoryDesarrolloPersonal},
		// priority order: mindset beats everything after it
		{"#SelfGrowth #Ansiedad #Mindset", CategoryMindset},
		{"#SelfGrowth #Disciplina", CategoryHabitos},
	}
	for _, tt := range tests {
		got := tr.Categorize(tt.hashtags)
		if got != tt.expected {
			t.Errorf("Categorize(%q) = %q, want %q", tt.hashtags, got, tt.expected)
		}
	}
}

func TestCategorizeClosedSet(t *testing.T) {
	tr := newTestTransformer()
	categories := tr.Rules().Categories()
	require.Len(t, categories, 5)
	for _, h := range []string{"", "#x", "#MINDSET", "mentalhealthhabitos", "#self growth", "¿?"} {
		assert.Contains(t, categories, tr.Categorize(h))
	}
}

func TestSelectImageIsConstant(t *testing.T) {
	tr := newTestTransformer()
	want := DefaultRules().ImageURL
	for _, cat := range append(tr.Rules().Categories(), "unknown") {
		for i := 0; i < 7; i++ {
			if got := tr.SelectImage(cat, i); got != want {
				t.Fatalf("SelectImage(%q, %d) = %q, want %q", cat, i, got, want)
			}
		}
	}
}

func TestTheme(t *testing.T) {
	tr := newTestTransformer()
	assert.Equal(t, "mind", tr.Theme(CategoryMindset, 0))
	assert.Equal(t, "reflection", tr.Theme(CategoryMindset, 4))
	assert.Equal(t, "mind", tr.Theme(CategoryMindset, 5))
	assert.Equal(t, "calm", tr.Theme(CategorySaludMental, 7))
	// unknown categories fall back to the default list
	assert.Equal(t, "learning", tr.Theme("nope", 1))
	assert.Equal(t, "light", tr.Theme(CategoryDesarrolloPersonal, -1))
}

func TestAugmentShortContent(t *testing.T) {
	tr := newTestTransformer()
	rules := DefaultRules()
	content := strings.Repeat("x", 100)

	got := tr.Augment(content)

	want := content + "\n\n" + rules.Reflection + "\n\n" + rules.Conclusion
	if got != want {
		t.Fatalf("Augment(short) = %q, want %q", got, want)
	}
	reflection := strings.Index(got, "**Reflexión práctica:**")
	conclusion := strings.Index(got, "**Conclusión:**")
	require.True(t, reflection > 0 && conclusion > reflection, "reflection must come before conclusion")
}

func TestAugmentKeepsExistingConclusion(t *testing.T) {
	tr := newTestTransformer()
	content := "En CONCLUSIÓN, " + strings.Repeat("texto largo ", 40)
	assert.Equal(t, content, tr.Augment(content))
}

func TestAugmentKeyWordOnlyCountsInTail(t *testing.T) {
	tr := newTestTransformer()
	rules := DefaultRules()
	filler := strings.Repeat("palabra ", 50)

	inTail := filler + "Esta es la idea Clave."
	assert.Equal(t, inTail, tr.Augment(inTail))

	atStart := "La clave es " + filler
	assert.Equal(t, atStart+"\n\n"+rules.Conclusion, tr.Augment(atStart))
}

func TestAugmentLengthsInCharacters(t *testing.T) {
	tr := newTestTransformer()
	// 249 two-byte characters are still shorter than 250 characters
	short := strings.Repeat("ñ", 249)
	assert.True(t, strings.HasPrefix(tr.Augment(short), short+"\n\n**Reflexión práctica:**"))

	exact := strings.Repeat("ñ", 250) + " conclusión"
	assert.Equal(t, exact, tr.Augment(exact))
}

func TestAugmentNeverShrinks(t *testing.T) {
	tr := newTestTransformer()
	for _, c := range []string{"", "a", strings.Repeat("b", 249), strings.Repeat("c ", 300), "conclusión", "clave"} {
		got := tr.Augment(c)
		require.True(t, strings.HasPrefix(got, c))
		n := utf8.RuneCountInString(got)
		assert.GreaterOrEqual(t, n, max(250, utf8.RuneCountInString(c)))
	}
}

func TestExcerpt(t *testing.T) {
	tr := newTestTransformer()
	tests := []struct {
		name     string
		content  string
		max      int
		expected string
	}{
		{"short kept", "hola mundo", 150, "hola mundo"},
		{"newlines flattened", "linea uno\nlinea dos\r\nfin", 150, "linea uno linea dos  fin"},
		{"cut at last space", "uno dos tres cuatro", 10, "uno dos..."},
		{"no space keeps prefix", strings.Repeat("A", 400), 150, strings.Repeat("A", 150) + "..."},
		{"space right after cut", "abcde fghij", 5, "abcde..."},
		{"exact length", "abcde", 5, "abcde"},
		{"default on zero", strings.Repeat("B", 200), 0, strings.Repeat("B", 150) + "..."},
		{"multibyte", "ñññ ñññ ñññ", 8, "ñññ ñññ..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tr.Excerpt(tt.content, tt.max)
			if got != tt.expected {
				t.Errorf("Excerpt(%q, %d) = %q, want %q", tt.content, tt.max, got, tt.expected)
			}
		})
	}
}

func TestExcerptBounds(t *testing.T) {
	tr := newTestTransformer()
	inputs := []string{
		"",
		"corto",
		strings.Repeat("palabra ", 100),
		strings.Repeat("x", 1000),
		"a\nb\rc " + strings.Repeat("ñ", 300),
	}
	for _, c := range inputs {
		for _, m := range []int{1, 10, 150, 500} {
			got := tr.Excerpt(c, m)
			assert.LessOrEqual(t, utf8.RuneCountInString(got), m+3)
			if utf8.RuneCountInString(c) <= m {
				flat := strings.NewReplacer("\n", " ", "\r", " ").Replace(c)
				assert.Equal(t, flat, got)
			}
		}
	}
}

func TestTransform(t *testing.T) {
	tr := newTestTransformer()
	rec := InputRecord{
		Title:    "  ¿Cómo Salir de Relaciones Tóxicas?  ",
		Hashtags: " #Mindset #Growth ",
		Content:  "  Contenido breve.  ",
	}

	post := tr.Transform(rec, 3)

	assert.Equal(t, "¿Cómo Salir de Relaciones Tóxicas?", post.Title)
	assert.Equal(t, "como-salir-de-relaciones-toxicas", post.Slug)
	assert.Equal(t, "#Mindset #Growth", post.Hashtags)
	assert.Equal(t, CategoryMindset, post.Category)
	assert.Equal(t, DefaultRules().ImageURL, post.ImageURL)
	assert.Equal(t, 3, post.Index)
	assert.True(t, strings.HasPrefix(post.Content, "Contenido breve.\n\n"))
	assert.Equal(t, tr.Excerpt(post.Content, 150), post.Excerpt)
	assert.True(t, strings.HasSuffix(post.Excerpt, "..."))
	assert.Equal(t, "/blog/como-salir-de-relaciones-toxicas", post.Link())
}

func TestTransformerOwnsItsRules(t *testing.T) {
	rules := DefaultRules()
	tr := NewTransformer(rules)

	rules.CategoryRules[0].Keywords[0] = "growth"
	rules.Themes[CategoryMindset][0] = "changed"
	rules.SlugReplacements = nil

	assert.Equal(t, CategoryDesarrolloPersonal, tr.Categorize("#growth"))
	assert.Equal(t, "mind", tr.Theme(CategoryMindset, 0))

	copied := tr.Rules()
	copied.Themes[CategoryMindset][0] = "again"
	assert.Equal(t, "mind", tr.Theme(CategoryMindset, 0))
	assert.True(t, slices.Contains(copied.Categories(), CategoryHabitos))
}
