package ai

import "context"

// Completer answers a single stateless prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
