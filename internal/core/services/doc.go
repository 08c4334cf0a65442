// Package services implements the core business logic of pdfchat:
// parallel document ingestion, model query orchestration with streaming
// aggregation, keyword search, table recovery, and conversation export.
//
// Services implement the driving ports and depend only on domain types
// and driven ports, never on adapters.
package services
