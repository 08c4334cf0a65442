// Package file provides file-based configuration and prompt storage.
//
// Configuration lives in a TOML file under the pdfchat config directory
// (~/.pdfchat by default). Prompts are plain text files the user can edit
// to customise the chatbot's tone and summary directives.
package file
