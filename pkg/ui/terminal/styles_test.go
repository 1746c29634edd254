package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	styles, err := LoadStyles(embeddedStyles)
	require.NoError(t, err)

	for _, name := range []string{"Header", "Label", "Path", "Muted", "Removed", "Error"} {
		_, ok := styles[name]
		assert.True(t, ok, "missing style %s", name)
	}
	assert.True(t, styles.Get("Label").GetBold())
}

func TestLoadStylesInvalid(t *testing.T) {
	_, err := LoadStyles([]byte("colors: [unclosed"))
	assert.Error(t, err)
}

func TestGetUnknownStyle(t *testing.T) {
	assert.Equal(t, "plain", Styles{}.Get("Nope").Render("plain"))
}
