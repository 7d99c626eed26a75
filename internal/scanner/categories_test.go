package scanner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rahulvramesh/filetriage/internal/types"
)

func TestCategoryFromExtension(t *testing.T) {
	t.Parallel()

	tests := map[types.Category][]string{
		types.Text: {"txt", "md", "rs", "py", "js", "ts", "jsx", "tsx", "json", "yaml", "yml",
			"toml", "xml", "html", "css", "sh", "bash", "c", "cpp", "h", "hpp", "java", "go",
			"rb", "php", "swift", "kt", "cs", "sql"},
		types.Image:  {"png", "jpg", "jpeg", "gif", "bmp", "webp", "svg", "ico"},
		types.Pdf:    {"pdf"},
		types.Binary: {"exe", "bin", "unknown", "", "tar.gz", "docx", "jpgx"},
	}

	for want, exts := range tests {
		for _, ext := range exts {
			assert.Equal(t, want, CategoryFromExtension(ext), ext)
			assert.Equal(t, want, CategoryFromExtension(strings.ToUpper(ext)), "upper "+ext)
			if ext != "" {
				assert.Equal(t, want, CategoryFromExtension("."+ext), "dotted "+ext)
			}
		}
	}
}

func TestCategoryFromExtensionMixedCase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, types.Image, CategoryFromExtension("PnG"))
	assert.Equal(t, types.Text, CategoryFromExtension("Txt"))
	assert.Equal(t, types.Pdf, CategoryFromExtension("PDF"))
}

func TestCategoryFromName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want types.Category
	}{
		{"notes.txt", types.Text},
		{"archive.tar.gz", types.Binary},
		{"photo.final.JPEG", types.Image},
		{"Makefile", types.Binary},
		{".bashrc", types.Binary},
		{".hidden.txt", types.Text},
		{"trailing.", types.Binary},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryFromName(tt.name), tt.name)
	}
}
