package session

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
)

// InMemoryConfig holds the configuration for the in-memory repository
type InMemoryConfig struct {
	Clock clock.Clock
	TTL   time.Duration
}

type memorySession struct {
	history   []*entities.HistoryEntry
	resources *entities.Resources
	expiresAt time.Time
}

// InMemoryRepository implements Repository for a single process without Redis
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	ttl   time.Duration
	store map[string]*memorySession
}

// NewInMemory creates a new in-memory repository
func NewInMemory(cfg *InMemoryConfig) *InMemoryRepository {
	repo := &InMemoryRepository{
		clock: clock.New(),
		ttl:   DefaultTTL,
		store: make(map[string]*memorySession),
	}
	if cfg != nil {
		if cfg.Clock != nil {
			repo.clock = cfg.Clock
		}
		if cfg.TTL > 0 {
			repo.ttl = cfg.TTL
		}
	}
	return repo
}

var _ Repository = (*InMemoryRepository)(nil)

// live returns the session if it exists and has not expired. Callers hold the lock.
func (r *InMemoryRepository) live(sessionID string) (*memorySession, bool) {
	s, ok := r.store[sessionID]
	if !ok || !r.clock.Now().Before(s.expiresAt) {
		return nil, false
	}
	return s, true
}

// touch returns the live session or a fresh one, with its expiry refreshed. Callers hold the write lock.
func (r *InMemoryRepository) touch(sessionID string) *memorySession {
	s, ok := r.live(sessionID)
	if !ok {
		s = &memorySession{}
		r.store[sessionID] = s
	}
	s.expiresAt = r.clock.Now().Add(r.ttl)
	return s
}

// AppendHistory pushes an entry to the head of the history and trims the tail
func (r *InMemoryRepository) AppendHistory(ctx context.Context, input AppendHistoryInput) (*AppendHistoryOutput, error) {
	if err := validateAppend(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.touch(input.SessionID)
	history := make([]*entities.HistoryEntry, 0, len(s.history)+1)
	history = append(history, copyEntry(input.Entry))
	history = append(history, s.history...)
	if len(history) > input.Limit {
		history = history[:input.Limit]
	}
	s.history = history

	return &AppendHistoryOutput{Size: len(history)}, nil
}

// ListHistory returns entries newest first
func (r *InMemoryRepository) ListHistory(ctx context.Context, input ListHistoryInput) (*ListHistoryOutput, error) {
	if err := validateSessionID(input.SessionID); err != nil {
		return nil, err
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit cannot be negative")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := []*entities.HistoryEntry{}
	if s, ok := r.live(input.SessionID); ok {
		history := s.history
		if input.Limit > 0 && len(history) > input.Limit {
			history = history[:input.Limit]
		}
		for _, entry := range history {
			entries = append(entries, copyEntry(entry))
		}
	}

	return &ListHistoryOutput{Entries: entries}, nil
}

// ClearHistory removes every entry of the session
func (r *InMemoryRepository) ClearHistory(ctx context.Context, input ClearHistoryInput) (*ClearHistoryOutput, error) {
	if err := validateSessionID(input.SessionID); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.live(input.SessionID)
	if !ok {
		return &ClearHistoryOutput{}, nil
	}
	deleted := len(s.history)
	s.history = nil

	return &ClearHistoryOutput{EntriesDeleted: deleted}, nil
}

// GetResources returns NotFound when nothing was saved for the session
func (r *InMemoryRepository) GetResources(ctx context.Context, input GetResourcesInput) (*GetResourcesOutput, error) {
	if err := validateSessionID(input.SessionID); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.live(input.SessionID)
	if !ok || s.resources == nil {
		return nil, errors.NotFound("session resources not found")
	}

	return &GetResourcesOutput{Resources: *s.resources}, nil
}

// SaveResources replaces the stored pools
func (r *InMemoryRepository) SaveResources(ctx context.Context, input SaveResourcesInput) error {
	if err := validateSessionID(input.SessionID); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	resources := input.Resources
	r.touch(input.SessionID).resources = &resources
	return nil
}

// copyEntry keeps stored entries independent of the caller's pointer
func copyEntry(entry *entities.HistoryEntry) *entities.HistoryEntry {
	c := *entry
	return &c
}
