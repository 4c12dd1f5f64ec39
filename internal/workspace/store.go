package workspace

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("workspace not found")

// Store keeps live workspaces in memory. Sessions are ephemeral: nothing
// survives a restart, and idle sessions get pruned.
type Store struct {
	mu         sync.RWMutex
	workspaces map[uuid.UUID]*Workspace
}

func NewStore() *Store {
	return &Store{
		workspaces: make(map[uuid.UUID]*Workspace),
	}
}

// Create registers a fresh workspace and returns a copy of it.
func (s *Store) Create(name string) *Workspace {
	ws := New(name)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.workspaces[ws.ID] = ws
	return ws.clone()
}

// Get returns a copy; callers never share memory with the store.
func (s *Store) Get(id uuid.UUID) (*Workspace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ws, ok := s.workspaces[id]
	if !ok {
		return nil, ErrNotFound
	}
	return ws.clone(), nil
}

// List returns copies of all workspaces, most recently updated first.
func (s *Store) List() []*Workspace {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*Workspace, 0, len(s.workspaces))
	for _, ws := range s.workspaces {
		list = append(list, ws.clone())
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].UpdatedAt.After(list[j].UpdatedAt)
	})
	return list
}

func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.workspaces[id]; !ok {
		return ErrNotFound
	}
	delete(s.workspaces, id)
	return nil
}

// Update applies mutate to the live workspace under the write lock and
// returns a copy of the result. UpdatedAt advances only when mutate
// succeeds.
func (s *Store) Update(id uuid.UUID, mutate func(*Workspace) error) (*Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws, ok := s.workspaces[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := mutate(ws); err != nil {
		return nil, err
	}
	ws.UpdatedAt = time.Now()
	return ws.clone(), nil
}

// PruneIdle drops workspaces untouched for longer than maxIdle and
// returns how many went away.
func (s *Store) PruneIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	count := 0
	for id, ws := range s.workspaces {
		if ws.UpdatedAt.Before(cutoff) {
			delete(s.workspaces, id)
			count++
		}
	}
	return count
}

// StartCleanupLoop prunes idle workspaces in the background until ctx is
// cancelled.
func (s *Store) StartCleanupLoop(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := s.PruneIdle(maxIdle); n > 0 {
					slog.Info("Pruned idle workspaces", "count", n)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}
