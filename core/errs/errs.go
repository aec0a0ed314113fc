// Package errs holds the error classes shared by the extraction packages.
//
// Callers wrap one of these with fmt.Errorf("...: %w", ...) and check the
// class at a boundary with errors.Is.
package errs

import "errors"

var (
	// ErrIO marks a read file that could not be opened or decoded.
	ErrIO = errors.New("read i/o error")

	// ErrStructure marks a read whose segmentation or alignment data is absent or inconsistent.
	ErrStructure = errors.New("read structure error")

	// ErrConfig marks invalid extraction parameters. Always fatal.
	ErrConfig = errors.New("invalid configuration")

	// ErrDomain marks a value outside the domain an operation accepts.
	ErrDomain = errors.New("domain error")
)

// Class returns a short label for the error class of err, or "other".
func Class(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrIO):
		return "io"
	case errors.Is(err, ErrStructure):
		return "structure"
	case errors.Is(err, ErrConfig):
		return "config"
	case errors.Is(err, ErrDomain):
		return "domain"
	default:
		return "other"
	}
}
