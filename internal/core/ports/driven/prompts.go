package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files or embed them in the binary.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// If the prompt is not found, implementations should return a
	// sensible default or an error, depending on whether the prompt is
	// required.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next
	// access. Useful when prompts have been edited on disk.
	Reload()
}

// Well-known prompt names used throughout the application.
// These constants define the contract between prompt consumers and providers.
const (
	// PromptToneNeutral is the system tone for neutral answers.
	PromptToneNeutral = "tone_neutral"

	// PromptToneFormal is the system tone for formal answers.
	PromptToneFormal = "tone_formal"

	// PromptToneCasual is the system tone for casual answers.
	PromptToneCasual = "tone_casual"

	// PromptToneTechnical is the system tone for technical answers.
	PromptToneTechnical = "tone_technical"

	// PromptAnswerRules is the fixed answering instruction appended to
	// the personality tone. No format placeholders.
	PromptAnswerRules = "answer_rules"

	// PromptSummaryShort asks for a summary of at most two sentences.
	PromptSummaryShort = "summary_short"

	// PromptSummaryDetailed asks for a 6-8 line summary.
	PromptSummaryDetailed = "summary_detailed"

	// PromptSummaryDetailedBullets asks for a bulleted 6-8 line summary.
	PromptSummaryDetailedBullets = "summary_detailed_bullets"

	// PromptSummaryTabular asks for a table of at most 6-7 points.
	PromptSummaryTabular = "summary_tabular"
)

// PromptStoreAware is an optional interface for services that can use
// custom prompts. Services implementing it can have their templates
// customised by injecting a PromptStore after construction.
type PromptStoreAware interface {
	// SetPromptStore sets the prompt store for loading customisable
	// prompts. If not set, the service uses hardcoded defaults.
	SetPromptStore(store PromptStore)
}
