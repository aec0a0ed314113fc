// Package pipeline fans batches of read files out to extraction workers and
// funnels their records through a single writer.
//
// The only contract to implement is Extractor (ProcessFiles).
// This keeps the pipeline swappable and testable.
package pipeline
