// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Extractor: Turns uploaded file bytes into plain text
//   - LLMService: Chat-completion backend, streaming and blocking
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - PromptStore: User-editable prompt templates. Without it, embedded
//     defaults are used.
//   - ConversationExporter: Conversation download artifact. Without it,
//     export is disabled.
//   - UploadWatcher: Directory watching for automatic ingestion.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
