// Package services implements the driving ports over the driven
// ports. It contains the retrieval-answer composer, the ingest
// pipeline, and the summary and narration-script services.
//
// All core operations are synchronous, single-threaded transforms
// over in-memory text. The only asynchronous boundary is the optional
// external AI responder, which is awaited and abandoned in favour of
// the deterministic pipeline on any failure.
package services
