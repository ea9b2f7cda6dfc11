// Package driven defines the outbound (secondary) ports: interfaces
// the core services depend on and infrastructure adapters implement.
//
//   - SectionStore: persistence for the active document's sections
//   - PageExtractor: per-page text extraction from source files
//   - AIResponder: optional external model for answers and summaries
//
// Adapters live under internal/adapters/driven and must satisfy these
// interfaces; the core never imports an adapter package.
package driven
