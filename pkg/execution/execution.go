// Package execution drives a multi-prompt execution resource through its
// asynchronous lifecycle: polling for state transitions, exposing the bound
// prompt layouts through form sessions (read-only or editable depending on
// status), and submitting the filled data exactly once.
package execution

import (
	"context"
	"time"

	"github.com/goliatone/go-promptform/pkg/layout"
)

// BoundPrompt is one prompt attached to an execution, in display order.
type BoundPrompt struct {
	ID         string              `json:"id"`
	PromptName string              `json:"promptName"`
	Layout     layout.PromptLayout `json:"layout"`
	Order      int                 `json:"order"`
}

// PromptExecution is the server-tracked execution resource as fetched from
// the collaborator. InputData prefills the rendered forms; ResponseData is
// what a completed execution was submitted with.
type PromptExecution struct {
	ID           string         `json:"id"`
	Status       Status         `json:"status"`
	InputData    map[string]any `json:"inputData,omitempty"`
	ResponseData map[string]any `json:"responseData,omitempty"`
	ExpiresAt    *time.Time     `json:"expiresAt,omitempty"`
	Prompts      []BoundPrompt  `json:"prompts"`
}

// Expired reports whether the soft client-side deadline has passed. The
// deadline is advisory: past-expiry executions turn read-only locally no
// matter what the server still reports.
func (e PromptExecution) Expired(now time.Time) bool {
	return e.ExpiresAt != nil && now.After(*e.ExpiresAt)
}

// Client is the collaborator that owns execution persistence and transport.
type Client interface {
	FetchExecution(ctx context.Context, executionID string) (PromptExecution, error)
	SubmitExecution(ctx context.Context, executionID string, responseData map[string]any) error
}
