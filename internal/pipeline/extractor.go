// internal/pipeline/extractor.go
package pipeline

import (
	"math/rand"

	"nanofeat/core/feature"
)

// Extractor is the minimal capability the pipeline needs.
// The feature assembler (and fakes in tests) satisfy it.
type Extractor interface {
	ProcessFiles(paths []string, rng *rand.Rand) feature.BatchResult
}
