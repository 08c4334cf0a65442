package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papyrus-labs/pdfchat-cli/internal/core/ports/driven"
)

func TestNewPromptStore_WithCustomDir(t *testing.T) {
	dir := t.TempDir()

	store, err := NewPromptStore(dir)

	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())
}

func TestNewPromptStore_DefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot determine home directory")
	}

	store, err := NewPromptStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".pdfchat", "prompts"), store.Dir())
}

func TestPromptStore_Load_CreatesDefaultFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	// Load triggers lazy init
	_, err = store.Load(driven.PromptToneNeutral)
	require.NoError(t, err)

	files := []string{
		"tone_neutral.txt",
		"tone_formal.txt",
		"tone_casual.txt",
		"tone_technical.txt",
		"answer_rules.txt",
		"summary_short.txt",
		"summary_detailed.txt",
		"summary_detailed_bullets.txt",
		"summary_tabular.txt",
		"README.md",
	}
	for _, f := range files {
		_, err := os.Stat(filepath.Join(dir, f))
		assert.NoError(t, err, "expected file %s to exist", f)
	}
}

func TestPromptStore_Load_ReturnsDefaultContent(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptToneFormal)

	require.NoError(t, err)
	assert.Equal(t, "You are a highly professional and formal pdf-document chatbot.", prompt)
}

func TestPromptStore_Load_ReturnsCustomContent(t *testing.T) {
	dir := t.TempDir()

	// Create custom prompt before store init
	customContent := "You are a pirate chatbot."
	err := os.WriteFile(
		filepath.Join(dir, "tone_neutral.txt"),
		[]byte(customContent),
		0600,
	)
	require.NoError(t, err)

	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptToneNeutral)

	require.NoError(t, err)
	assert.Equal(t, customContent, prompt)
}

func TestPromptStore_Load_FallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	// Delete the file after init creates it
	_, _ = store.Load(driven.PromptSummaryShort) // Trigger init
	os.Remove(filepath.Join(dir, "summary_short.txt"))
	store.Reload() // Clear cache

	prompt, err := store.Load(driven.PromptSummaryShort)

	require.NoError(t, err)
	assert.Contains(t, prompt, "no more than 2 sentences")
}

func TestPromptStore_Load_UnknownPrompt(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("nonexistent_prompt")

	assert.Error(t, err)
}

func TestPromptStore_Reload_PicksUpEdits(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	_, err = store.Load(driven.PromptAnswerRules)
	require.NoError(t, err)

	edited := "Answer in haiku form only."
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "answer_rules.txt"), []byte(edited), 0600))
	store.Reload()

	prompt, err := store.Load(driven.PromptAnswerRules)
	require.NoError(t, err)
	assert.Equal(t, edited, prompt)
}
