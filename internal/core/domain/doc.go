// Package domain contains the core business entities for pdfchat:
// documents, conversation entries, personalities, summaries, tables,
// and search results. It has no dependencies on adapters or services.
package domain
