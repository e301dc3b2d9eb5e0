package guess

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Service tracks multiple concurrent game sessions keyed by ID.
// It is safe for concurrent use.
type Service struct {
	mu    sync.RWMutex
	games map[uuid.UUID]*Game
}

// NewService returns an empty session store.
func NewService() *Service {
	return &Service{
		games: make(map[uuid.UUID]*Game),
	}
}

// Start creates a new game from cfg and returns its session ID.
func (s *Service) Start(cfg Config, opts ...Option) (uuid.UUID, error) {
	game, err := NewGame(cfg, opts...)
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()

	s.mu.Lock()
	s.games[id] = game
	s.mu.Unlock()

	return id, nil
}

// Get returns the game with the given session ID.
func (s *Service) Get(id uuid.UUID) (*Game, error) {
	s.mu.RLock()
	game, ok := s.games[id]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return game, nil
}

// Submit forwards a guess to the game with the given session ID.
func (s *Service) Submit(id uuid.UUID, raw int64) (Outcome, error) {
	game, err := s.Get(id)
	if err != nil {
		return "", err
	}
	return game.Submit(raw)
}

// End removes the game with the given session ID.
func (s *Service) End(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(s.games, id)
	return nil
}

// Active returns the number of tracked game sessions.
func (s *Service) Active() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
