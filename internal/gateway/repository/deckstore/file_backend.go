package deckstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"
)

type fileState struct {
	Users []User       `json:"users"`
	Decks []DeckRecord `json:"decks"`
}

func (s *Store) ensureLoadedFile() {
	s.loadOnce.Do(func() {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return
		}
		var state fileState
		if err := json.Unmarshal(b, &state); err != nil {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, u := range state.Users {
			u = normalizeUser(u)
			if u.Email != "" {
				s.users[u.Email] = u
			}
		}
		for _, d := range state.Decks {
			if d.ID != "" {
				s.decks[d.ID] = d
			}
		}
	})
}

// saveFile snapshots under the read lock, then writes outside any lock.
func (s *Store) saveFile() {
	s.mu.RLock()
	state := fileState{
		Users: make([]User, 0, len(s.users)),
		Decks: make([]DeckRecord, 0, len(s.decks)),
	}
	for _, u := range s.users {
		state.Users = append(state.Users, u)
	}
	for _, d := range s.decks {
		state.Decks = append(state.Decks, d)
	}
	s.mu.RUnlock()

	sort.Slice(state.Users, func(i, j int) bool { return state.Users[i].Email < state.Users[j].Email })
	sort.Slice(state.Decks, func(i, j int) bool { return state.Decks[i].ID < state.Decks[j].ID })

	b, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(s.path), 0o755)
	_ = os.WriteFile(s.path, b, 0o644)
}

func (s *Store) createUserFile(u User) (User, error) {
	s.ensureLoadedFile()
	s.mu.Lock()
	if _, exists := s.users[u.Email]; exists {
		s.mu.Unlock()
		return User{}, ErrEmailTaken
	}
	u.CreatedAt = time.Now().UTC()
	s.users[u.Email] = u
	s.mu.Unlock()
	s.saveFile()
	return u, nil
}

func (s *Store) getUserFile(email string) (User, bool) {
	s.ensureLoadedFile()
	s.mu.RLock()
	u, ok := s.users[email]
	s.mu.RUnlock()
	return u, ok
}

func (s *Store) debitCoinsFile(email string, n int) (int, error) {
	s.ensureLoadedFile()
	s.mu.Lock()
	u, ok := s.users[email]
	if !ok {
		s.mu.Unlock()
		return 0, ErrInsufficientCoin
	}
	if u.Coins < n {
		s.mu.Unlock()
		return 0, ErrInsufficientCoin
	}
	u.Coins -= n
	s.users[email] = u
	s.mu.Unlock()
	s.saveFile()
	return u.Coins, nil
}

func (s *Store) saveDeckFile(rec DeckRecord) error {
	s.ensureLoadedFile()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	s.decks[rec.ID] = rec
	s.mu.Unlock()
	s.saveFile()
	return nil
}

func (s *Store) getDeckFile(id, email string) (DeckRecord, bool) {
	s.ensureLoadedFile()
	s.mu.RLock()
	rec, ok := s.decks[id]
	s.mu.RUnlock()
	if !ok || rec.Email != email {
		return DeckRecord{}, false
	}
	return rec, true
}

func (s *Store) listDecksFile(email string) ([]DeckSummary, error) {
	s.ensureLoadedFile()
	s.mu.RLock()
	out := make([]DeckSummary, 0, 16)
	for _, rec := range s.decks {
		if rec.Email == email {
			out = append(out, summaryOf(rec))
		}
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
