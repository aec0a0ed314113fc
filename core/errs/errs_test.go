package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClass(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"io", fmt.Errorf("open x: %w", ErrIO), "io"},
		{"structure", fmt.Errorf("no events: %w", ErrStructure), "structure"},
		{"config", fmt.Errorf("kmer: %w", ErrConfig), "config"},
		{"domain", fmt.Errorf("method: %w", ErrDomain), "domain"},
		{"other", errors.New("boom"), "other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Class(tt.err))
		})
	}
}
