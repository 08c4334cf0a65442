package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, theme.Primary)
	assert.NotEmpty(t, theme.Error)
	assert.NotEmpty(t, theme.User)
	assert.NotEmpty(t, theme.Bot)
	assert.NotEmpty(t, theme.Summary)
}

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	require.NotNil(t, s.Theme())
	assert.Equal(t, DefaultTheme().Primary, s.Theme().Primary)
}

func TestNewStyles_CustomTheme(t *testing.T) {
	theme := DefaultTheme()
	theme.Primary = "#FFFFFF"

	s := NewStyles(theme)

	assert.Equal(t, theme, s.Theme())
}

func TestDefaultStyles_RenderDistinctBubbles(t *testing.T) {
	s := DefaultStyles()

	user := s.UserBubble.Render("hello")
	bot := s.BotBubble.Render("hello")

	assert.NotEmpty(t, user)
	assert.NotEmpty(t, bot)
}
