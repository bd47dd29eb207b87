package feature

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// MemoryProvider keeps flags in memory. It is safe for concurrent use.
type MemoryProvider struct {
	mu    sync.RWMutex
	flags map[string]Flag
}

// NewMemoryProvider copies the given flags. Nil flags are skipped.
func NewMemoryProvider(flags ...*Flag) (*MemoryProvider, error) {
	m := &MemoryProvider{flags: make(map[string]Flag, len(flags))}
	for _, f := range flags {
		if f == nil {
			continue
		}
		if err := m.Set(*f); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Set creates or replaces a flag.
func (m *MemoryProvider) Set(f Flag) error {
	if f.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidFlag)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[f.Name] = f
	return nil
}

// IsEnabled evaluates the named flag for ctx.
func (m *MemoryProvider) IsEnabled(ctx context.Context, name string) (bool, error) {
	f, err := m.GetFlag(name)
	if err != nil {
		return false, err
	}
	if !f.Enabled {
		return false, nil
	}
	if f.Strategy == nil {
		return true, nil
	}
	return f.Strategy.Evaluate(ctx)
}

func (m *MemoryProvider) GetFlag(name string) (Flag, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.flags[name]
	if !ok {
		return Flag{}, fmt.Errorf("%w: %s", ErrFlagNotFound, name)
	}
	return f, nil
}

// ListFlags returns all flags sorted by name.
func (m *MemoryProvider) ListFlags() []Flag {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := slices.Sorted(maps.Keys(m.flags))
	out := make([]Flag, 0, len(names))
	for _, n := range names {
		out = append(out, m.flags[n])
	}
	return out
}

// Evaluate resolves every flag for ctx. Flags whose strategy fails count as
// off.
func (m *MemoryProvider) Evaluate(ctx context.Context) map[string]bool {
	flags := m.ListFlags()
	out := make(map[string]bool, len(flags))
	for _, f := range flags {
		on, err := m.IsEnabled(ctx, f.Name)
		out[f.Name] = on && err == nil
	}
	return out
}
