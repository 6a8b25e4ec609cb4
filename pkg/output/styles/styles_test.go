package styles

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func colorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.TrueColor)
	return r
}

func TestDefault(t *testing.T) {
	reg := Default(colorRenderer())

	for _, name := range []string{
		"Title", "Key", "Path", "Kind",
		"Verified", "Unverified", "Rejected",
		"Error", "Code", "Muted",
	} {
		assert.True(t, reg.Has(name), "style %s should exist", name)
	}
}

func TestGet_MissingStyleIsPlain(t *testing.T) {
	reg := Default(colorRenderer())
	assert.False(t, reg.Has("Nope"))
	assert.Equal(t, "text", reg.Render("Nope", "text"))
}

func TestRender_AppliesColor(t *testing.T) {
	reg := Default(colorRenderer())
	out := reg.Render("Error", "bad")
	assert.Contains(t, out, "bad")
	assert.NotEqual(t, "bad", out)
}

func TestRender_AsciiProfileStripsColor(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)
	reg := Default(r)
	assert.Equal(t, "plain", reg.Render("Muted", "plain"))
}

func TestParse_UnknownColor(t *testing.T) {
	_, err := Parse([]byte("styles:\n  Bad:\n    foreground: nowhere\n"), colorRenderer())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nowhere")
}

func TestLoadStyles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
colors:
  pink:
    light: "#ff00ff"
    dark: "#ff88ff"
styles:
  Title:
    underline: true
    foreground: pink
`), 0644))

	reg, err := LoadStyles(path, colorRenderer())
	require.NoError(t, err)
	assert.True(t, reg.Has("Title"))
	assert.False(t, reg.Has("Key"))

	_, err = LoadStyles(filepath.Join(t.TempDir(), "missing.yaml"), colorRenderer())
	assert.Error(t, err)
}
