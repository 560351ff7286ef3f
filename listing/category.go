package listing

import "github.com/jackfish212/srv/types"

// Category is one of the fixed display groups of a directory listing.
type Category int

const (
	Folders Category = iota
	Videos
	Images
	Documents
	Other

	numCategories = int(Other) + 1
)

var categoryInfo = [numCategories]struct {
	name   string
	prefix string
}{
	Folders:   {"Folders", "📁"},
	Videos:    {"Videos", "🎬"},
	Images:    {"Images", "🖼"},
	Documents: {"Documents", "📄"},
	Other:     {"Other", ""},
}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{Folders, Videos, Images, Documents, Other}
}

// Name is the display label.
func (c Category) Name() string { return categoryInfo[c].name }

// Prefix is the glyph shown before the label. Other has none.
func (c Category) Prefix() string { return categoryInfo[c].prefix }

func (c Category) String() string { return c.Name() }

// Extension sets are matched case-sensitively against types.Entry.Ext.
var (
	videoExts = extSet(".mp4", ".avi", ".mov", ".m4v")
	imageExts = extSet(".png", ".gif", ".jpeg", ".tif", ".tiff", ".jpg", ".bmp", ".svg")
	docExts   = extSet(".doc", ".docx", ".pdf", ".txt", ".rtf", ".html", ".epub")
)

func extSet(exts ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		m[e] = struct{}{}
	}
	return m
}

// Classify returns the category of an entry. Directories always land in
// Folders; files are matched by extension and fall back to Other.
func Classify(e types.Entry) Category {
	if e.IsDir {
		return Folders
	}
	ext := e.Ext()
	if _, ok := videoExts[ext]; ok {
		return Videos
	}
	if _, ok := imageExts[ext]; ok {
		return Images
	}
	if _, ok := docExts[ext]; ok {
		return Documents
	}
	return Other
}
