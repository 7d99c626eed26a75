package scanner

import (
	"path/filepath"
	"strings"

	"github.com/rahulvramesh/filetriage/internal/types"
)

// extensionCategories maps lowercase extensions (without the dot) to categories.
// Anything missing from the table is Binary.
var extensionCategories = map[string]types.Category{
	// Text files
	"txt": types.Text, "md": types.Text, "rs": types.Text, "py": types.Text,
	"js": types.Text, "ts": types.Text, "jsx": types.Text, "tsx": types.Text,
	"json": types.Text, "yaml": types.Text, "yml": types.Text, "toml": types.Text,
	"xml": types.Text, "html": types.Text, "css": types.Text, "sh": types.Text,
	"bash": types.Text, "c": types.Text, "cpp": types.Text, "h": types.Text,
	"hpp": types.Text, "java": types.Text, "go": types.Text, "rb": types.Text,
	"php": types.Text, "swift": types.Text, "kt": types.Text, "cs": types.Text,
	"sql": types.Text,

	// Images
	"png": types.Image, "jpg": types.Image, "jpeg": types.Image, "gif": types.Image,
	"bmp": types.Image, "webp": types.Image, "svg": types.Image, "ico": types.Image,

	"pdf": types.Pdf,
}

// CategoryFromExtension classifies an extension, with or without its leading dot.
func CategoryFromExtension(ext string) types.Category {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if c, ok := extensionCategories[ext]; ok {
		return c
	}
	return types.Binary
}

// CategoryFromName classifies a file by the extension of its name.
// Dotfiles such as ".bashrc" have no extension and are Binary.
func CategoryFromName(name string) types.Category {
	ext := filepath.Ext(name)
	if ext == name {
		return types.Binary
	}
	return CategoryFromExtension(ext)
}
