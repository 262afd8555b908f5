package style

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstallAndRemove(t *testing.T) {
	reg := NewRegistry(ModeCSSClass)
	require.NoError(t, reg.Add("pink", "#FFB8EBA6"))
	require.NoError(t, reg.Add("red", "#FF5582A6"))

	css := Install(reg)
	require.Contains(t, css, ".hltr-pink {\n  background: #FFB8EBA6;\n}\n")
	require.Contains(t, css, ".hltr-red {\n  background: #FF5582A6;\n}\n")

	active, ok := Sheet()
	require.True(t, ok)
	require.Equal(t, css, active)

	Remove()
	active, ok = Sheet()
	require.False(t, ok)
	require.Empty(t, active)
}

func TestInstallReplacesPreviousSheet(t *testing.T) {
	first := NewRegistry(ModeCSSClass)
	require.NoError(t, first.Add("pink", "#FFB8EBA6"))
	Install(first)

	second := NewRegistry(ModeCSSClass)
	require.NoError(t, second.Add("cyan", "#ABF7F7A6"))
	css := Install(second)
	defer Remove()

	require.NotContains(t, css, "hltr-pink", "stale rules must not survive a re-install")
	require.Contains(t, css, "hltr-cyan")
}
