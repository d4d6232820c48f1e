// Package promptstore defines the persistence collaborator interfaces the
// editor and execution surfaces depend on. Implementations (SQL, HTTP, CRUD
// action layers) live outside this module; pkg/testsupport ships an
// in-memory one for tests and examples.
package promptstore

import (
	"context"
	"errors"
	"time"

	"github.com/goliatone/go-promptform/pkg/layout"
)

// ErrNotFound is returned when a prompt id does not exist.
var ErrNotFound = errors.New("promptstore: prompt not found")

// PromptEntity is a persisted prompt: the layout document plus its metadata.
type PromptEntity struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Layout        layout.PromptLayout `json:"layout"`
	Content       string              `json:"content,omitempty"`
	IsPublic      bool                `json:"isPublic"`
	ExecutionMode string              `json:"executionMode,omitempty"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// ListFilter narrows List results. Zero value lists everything.
type ListFilter struct {
	Name       string
	PublicOnly bool
}

// PatchInput is a partial prompt update; nil fields are untouched.
type PatchInput struct {
	Name          *string
	Layout        *layout.PromptLayout
	Content       *string
	IsPublic      *bool
	ExecutionMode *string
}

// Store is the generic prompt CRUD collaborator.
type Store interface {
	ListPrompts(ctx context.Context, filter ListFilter) ([]PromptEntity, error)
	CreatePrompt(ctx context.Context, input PromptEntity) (PromptEntity, error)
	UpdatePrompt(ctx context.Context, id string, patch PatchInput) (PromptEntity, error)
	DeletePrompt(ctx context.Context, id string) error
}
