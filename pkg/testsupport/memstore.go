package testsupport

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-promptform/pkg/promptstore"
	"github.com/goliatone/go-promptform/pkg/save"
)

// MemoryStore is an in-memory promptstore.Store for tests and examples.
// Last write wins; there is no optimistic locking, matching the
// single-operator persistence model.
type MemoryStore struct {
	mu      sync.Mutex
	prompts map[string]promptstore.PromptEntity
	now     func() time.Time
}

var _ promptstore.Store = (*MemoryStore)(nil)

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		prompts: make(map[string]promptstore.PromptEntity),
		now:     time.Now,
	}
}

// ListPrompts returns prompts matching the filter in name order.
func (s *MemoryStore) ListPrompts(_ context.Context, filter promptstore.ListFilter) ([]promptstore.PromptEntity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]promptstore.PromptEntity, 0, len(s.prompts))
	for _, entity := range s.prompts {
		if filter.PublicOnly && !entity.IsPublic {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(entity.Name), strings.ToLower(filter.Name)) {
			continue
		}
		out = append(out, entity)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// CreatePrompt stores a prompt, minting an id when absent.
func (s *MemoryStore) CreatePrompt(_ context.Context, input promptstore.PromptEntity) (promptstore.PromptEntity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.ID == "" {
		input.ID = uuid.NewString()
	}
	input.Layout = input.Layout.Clone()
	input.UpdatedAt = s.now()
	s.prompts[input.ID] = input
	return input, nil
}

// UpdatePrompt applies a partial patch.
func (s *MemoryStore) UpdatePrompt(_ context.Context, id string, patch promptstore.PatchInput) (promptstore.PromptEntity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entity, ok := s.prompts[id]
	if !ok {
		return promptstore.PromptEntity{}, promptstore.ErrNotFound
	}
	if patch.Name != nil {
		entity.Name = *patch.Name
	}
	if patch.Layout != nil {
		entity.Layout = patch.Layout.Clone()
	}
	if patch.Content != nil {
		entity.Content = *patch.Content
	}
	if patch.IsPublic != nil {
		entity.IsPublic = *patch.IsPublic
	}
	if patch.ExecutionMode != nil {
		entity.ExecutionMode = *patch.ExecutionMode
	}
	entity.UpdatedAt = s.now()
	s.prompts[id] = entity
	return entity, nil
}

// DeletePrompt removes a prompt.
func (s *MemoryStore) DeletePrompt(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.prompts[id]; !ok {
		return promptstore.ErrNotFound
	}
	delete(s.prompts, id)
	return nil
}

// MemorySink is a save.Sink recording every snapshot it receives. Err, when
// set, is returned to the caller to exercise failure paths.
type MemorySink struct {
	mu    sync.Mutex
	saves []save.Snapshot

	Err error
}

var _ save.Sink = (*MemorySink)(nil)

// SavePrompt records the snapshot unless Err is set.
func (s *MemorySink) SavePrompt(_ context.Context, snapshot save.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.saves = append(s.saves, snapshot)
	return nil
}

// Saves returns the snapshots persisted so far.
func (s *MemorySink) Saves() []save.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]save.Snapshot(nil), s.saves...)
}
