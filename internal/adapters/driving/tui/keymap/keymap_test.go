package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
	assert.Equal(t, []string{"ctrl+c"}, km.Quit.Keys())
	assert.Equal(t, []string{"enter"}, km.Send.Keys())
	assert.Equal(t, []string{"tab"}, km.Documents.Keys())
	assert.Equal(t, []string{"esc"}, km.Back.Keys())
}

func TestKeyMap_Matches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("tab", km.Documents))
	assert.True(t, Matches("k", km.Up))
	assert.True(t, Matches("up", km.Up))
	assert.False(t, Matches("q", km.Quit))
}

func TestKeyMap_ChatHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ChatHelp()

	require.Len(t, help, 3)
	assert.Equal(t, "enter", help[0].Help().Key)
}

func TestKeyMap_DocumentsHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.DocumentsHelp(), 4)
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := DefaultKeyMap()

	full := km.FullHelp()

	require.Len(t, full, 3)
	for _, group := range full {
		assert.NotEmpty(t, group)
	}
}
