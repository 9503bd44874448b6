package audit

import (
	"context"
)

// Logger records mutations performed by the domain services.
// Open source version implements logger to stdout
type Logger interface {
	Log(ctx context.Context, action string, resource string, details map[string]interface{})
}

// Nop discards every event.
type Nop struct{}

func (Nop) Log(context.Context, string, string, map[string]interface{}) {}
