// Package session stores the per-session state of the sheet: the history log
// and the current resource pools
package session

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/KirkDiggler/rpg-sheet/internal/repositories/session Repository

// DefaultTTL is how long an idle session is kept
const DefaultTTL = 12 * time.Hour

const (
	errSessionIDEmpty = "session ID cannot be empty"
	errEntryNil       = "entry cannot be nil"
	errLimitInvalid   = "limit must be at least 1"
)

// AppendHistoryInput adds an entry at the head of the history, keeping at most Limit entries
type AppendHistoryInput struct {
	SessionID string
	Entry     *entities.HistoryEntry
	Limit     int
}

// AppendHistoryOutput reports the history size after the append
type AppendHistoryOutput struct {
	Size int
}

// ListHistoryInput lists the newest entries. Limit 0 lists everything.
type ListHistoryInput struct {
	SessionID string
	Limit     int
}

// ListHistoryOutput holds entries newest first
type ListHistoryOutput struct {
	Entries []*entities.HistoryEntry
}

// ClearHistoryInput removes the history of a session
type ClearHistoryInput struct {
	SessionID string
}

// ClearHistoryOutput reports how many entries were removed
type ClearHistoryOutput struct {
	EntriesDeleted int
}

// GetResourcesInput reads the resource pools of a session
type GetResourcesInput struct {
	SessionID string
}

// GetResourcesOutput holds the stored pools
type GetResourcesOutput struct {
	Resources entities.Resources
}

// SaveResourcesInput stores the resource pools of a session
type SaveResourcesInput struct {
	SessionID string
	Resources entities.Resources
}

// Repository defines the storage operations of a sheet session.
// Every write refreshes the session's TTL.
type Repository interface {
	// AppendHistory pushes an entry to the head of the history and trims the tail
	AppendHistory(ctx context.Context, input AppendHistoryInput) (*AppendHistoryOutput, error)

	// ListHistory returns entries newest first
	ListHistory(ctx context.Context, input ListHistoryInput) (*ListHistoryOutput, error)

	// ClearHistory removes every entry of the session
	ClearHistory(ctx context.Context, input ClearHistoryInput) (*ClearHistoryOutput, error)

	// GetResources returns NotFound when nothing was saved for the session
	GetResources(ctx context.Context, input GetResourcesInput) (*GetResourcesOutput, error)

	// SaveResources replaces the stored pools
	SaveResources(ctx context.Context, input SaveResourcesInput) error
}

func validateSessionID(sessionID string) error {
	if sessionID == "" {
		return errors.InvalidArgument(errSessionIDEmpty)
	}
	return nil
}

func validateAppend(input AppendHistoryInput) error {
	if err := validateSessionID(input.SessionID); err != nil {
		return err
	}
	if input.Entry == nil {
		return errors.InvalidArgument(errEntryNil)
	}
	if input.Limit < 1 {
		return errors.InvalidArgument(errLimitInvalid)
	}
	return nil
}
