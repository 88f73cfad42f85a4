// SPDX-License-Identifier: EPL-2.0

package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Memory keeps assets in a map. Safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	assets map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{assets: make(map[string][]byte)}
}

func (m *Memory) Load(_ context.Context, name string) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.assets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, name)
	}
	return slices.Clone(data), nil
}

func (m *Memory) Save(_ context.Context, name string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.assets[name] = slices.Clone(data)
	return nil
}

// Names returns the stored asset names, sorted.
func (m *Memory) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.assets))
	for k := range m.assets {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

var _ Store = (*Memory)(nil)
