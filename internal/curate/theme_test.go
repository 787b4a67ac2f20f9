package curate

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainTheme_RendersUnchanged(t *testing.T) {
	th := PlainTheme()

	assert.Equal(t, "CURATION COMPLETE", th.heading("CURATION COMPLETE"))
	assert.Equal(t, "✓", th.success("✓"))
	assert.Equal(t, "⚠ careful", th.warning("⚠ careful"))
	assert.Equal(t, "hint", th.hint("hint"))
}

func TestThemeFor_NonTerminalIsPlain(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, ThemeFor(&buf).plain)

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()
	assert.True(t, ThemeFor(f).plain)
}

func TestOutputTheme(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, OutputTheme(&buf, true).plain)
	assert.Equal(t, ThemeFor(&buf), OutputTheme(&buf, false))
}
