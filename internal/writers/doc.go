// Package writers serializes feature records to the output sink.
//
// Design:
//   - A Sink is owned by exactly one goroutine (the pipeline writer).
//   - Every WriteBatch is followed by Flush, so a batch is on disk as a unit.
//   - Formats are registered by name; "tsv" is the model-input format.
package writers
