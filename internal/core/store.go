package core

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/julien-sobczak/the-moodwriter/pkg/filesystem"
	"github.com/julien-sobczak/the-moodwriter/pkg/resync"
)

var (
	// Lazy-load and ensure a single read
	storeOnce      resync.Once
	storeSingleton *Store
)

// Store holds the application state and persists it between invocations.
type Store struct {
	mu    sync.Mutex
	path  string
	state AppState
}

// CurrentStore loads the state of the current home.
// The profile is always refreshed from the configuration.
func CurrentStore() *Store {
	storeOnce.Do(func() {
		config := CurrentConfig()
		store, err := LoadStore(config.StatePath(), config.ConfigFile.Core.User)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to load state: %v\n", err)
			os.Exit(1)
		}
		store.Dispatch(SetProfile{Profile: config.Profile()})
		storeSingleton = store
	})
	return storeSingleton
}

// NewStore creates an in-memory store. Save() is a no-op when path is empty.
func NewStore(path string, state AppState) *Store {
	return &Store{
		path:  path,
		state: state.Clone(),
	}
}

// LoadStore reads the state snapshot, or starts from the initial state when missing.
// A game profile is created for new users.
func LoadStore(path string, user string) (*Store, error) {
	state := InitialState(user)

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("unable to read state %s: %w", path, err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &state); err != nil {
			return nil, fmt.Errorf("invalid state %s: %w", path, err)
		}
		CurrentLogger().Debugf("State read from %s", path)
	}

	store := NewStore(path, state)
	if store.state.GameProfile == nil {
		store.Dispatch(SetGameProfile{GameProfile: NewGameProfile(user)})
	}
	return store, nil
}

// State returns a copy of the current state.
func (s *Store) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch applies the actions in order and returns the resulting state.
func (s *Store) Dispatch(actions ...Action) AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, action := range actions {
		CurrentLogger().Tracef("Dispatching %s", action.Type())
		s.state = Reduce(s.state, action)
	}
	return s.state.Clone()
}

// Save writes the state snapshot.
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}
	s.mu.Lock()
	data, err := yaml.Marshal(s.state)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("unable to encode state: %w", err)
	}
	if err := filesystem.WriteAtomic(s.path, data); err != nil {
		return fmt.Errorf("unable to write state %s: %w", s.path, err)
	}
	CurrentLogger().Debugf("State saved to %s", s.path)
	return nil
}
