package domain

// Category is the typeface classification reported by the catalog provider
type Category string

const (
	CategoryAll         Category = "all"
	CategorySansSerif   Category = "sans-serif"
	CategorySerif       Category = "serif"
	CategoryDisplay     Category = "display"
	CategoryHandwriting Category = "handwriting"
	CategoryMonospace   Category = "monospace"
)

// Categories lists the selectable filters in display order, "all" first
var Categories = []Category{
	CategoryAll,
	CategorySansSerif,
	CategorySerif,
	CategoryDisplay,
	CategoryHandwriting,
	CategoryMonospace,
}

// Label returns the short button label for the category
func (c Category) Label() string {
	switch c {
	case CategoryAll:
		return "All"
	case CategorySansSerif:
		return "Sans"
	case CategorySerif:
		return "Serif"
	case CategoryDisplay:
		return "Display"
	case CategoryHandwriting:
		return "Script"
	case CategoryMonospace:
		return "Mono"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the known categories (including "all")
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// FontDescriptor identifies one selectable font family.
// Family is unique within a catalog; descriptors are never mutated.
type FontDescriptor struct {
	Family   string   `json:"family"`
	Category Category `json:"category"`
}

// CatalogResult is the outcome of a catalog load.
// Fallback is true when the static list was substituted for the remote one.
type CatalogResult struct {
	Fonts    []FontDescriptor
	Fallback bool
}
