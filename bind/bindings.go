package bind

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Bindings maps parameter names to their wire records.
// It is not safe for concurrent mutation; AssembleBindings handles its own locking.
type Bindings map[string]*ParameterBinding

// Set encodes v and stores it under name, replacing any previous binding.
// On failure the map is left untouched.
func (b Bindings) Set(name string, v Value) error {
	binding, err := NewParameterBinding(v)
	if err != nil {
		return fmt.Errorf("failed to bind parameter %q: %w", name, err)
	}
	b[name] = binding
	return nil
}

// Names returns the parameter names in sorted order.
func (b Bindings) Names() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AssembleBindings encodes every value concurrently. After the first failure,
// entries not yet started are skipped and no partial map is returned.
func AssembleBindings(ctx context.Context, values map[string]Value) (Bindings, error) {
	var (
		mu  sync.Mutex
		ret = make(Bindings, len(values))
	)
	eg, ctx := errgroup.WithContext(ctx)
	for name, value := range values {
		name, value := name, value
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			binding, err := NewParameterBinding(value)
			if err != nil {
				return fmt.Errorf("failed to bind parameter %q: %w", name, err)
			}
			mu.Lock()
			ret[name] = binding
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}
