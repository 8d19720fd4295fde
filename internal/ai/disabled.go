package ai

import (
	"context"
	"errors"
)

var errDisabled = errors.New("generation disabled: no API key configured")

// Disabled is a Generator stand-in used when no API key is configured. Every
// call fails, which the insight layer downgrades to its fallback message.
type Disabled struct{}

func (Disabled) Generate(ctx context.Context, prompt string) (string, error) {
	return "", errDisabled
}
