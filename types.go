package blogseed

// InputRecord is one row of the source dataset with a non-empty title.
type InputRecord struct {
	Title    string
	Hashtags string
	Content  string
}

// Post is a fully enriched blog post ready to be written as seed data.
// It is built once by Transformer.Transform and never modified afterwards.
type Post struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Hashtags string `json:"hashtags"`
	Content  string `json:"content"`
	Excerpt  string `json:"excerpt"`
	Category string `json:"category"`
	ImageURL string `json:"image_url"`
	Index    int    `json:"index"`
}

// Link returns the public path of the post on the blog.
func (p Post) Link() string {
	return "/blog/" + p.Slug
}

// Categories assigned by Categorize.
const (
	CategoryMindset             = "mindset"
	CategorySaludMental         = "salud-mental"
	CategoryHabitos             = "habitos"
	CategoryCrecimientoPersonal = "crecimiento-personal"
	CategoryDesarrolloPersonal  = "desarrollo-personal"
)
