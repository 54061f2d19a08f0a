package event

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// JSONTarget writes every event as one JSON document per line.
type JSONTarget struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewJSONTarget creates a target writing to w.
//
// Example:
//
//	emitter.ThenDispatch(prices, event.NewJSONTarget(os.Stdout), "price.updated")
func NewJSONTarget(w io.Writer) *JSONTarget {
	return &JSONTarget{enc: json.NewEncoder(w)}
}

// Dispatch implements Target.
func (t *JSONTarget) Dispatch(ctx context.Context, evt Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.enc.Encode(evt); err != nil {
		return fmt.Errorf("failed to encode event %s: %w", evt.Name, err)
	}
	return nil
}
