package deckstore

import (
	"database/sql"
	"errors"
	"strings"
)

func (s *Store) ensureSchema() error {
	if s == nil || s.db == nil {
		return nil
	}
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.Exec(`
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  coins INTEGER NOT NULL DEFAULT 10,
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS decks (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL,
  title TEXT NOT NULL DEFAULT 'Untitled',
  num_slides INTEGER NOT NULL DEFAULT 0,
  payload JSONB NOT NULL,
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_decks_email ON decks (email);
`)
	})
	return s.schemaErr
}

func scanUserDB(row rowScanner) (User, bool) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Coins, &u.CreatedAt)
	if err != nil {
		return User{}, false
	}
	return normalizeUser(u), true
}

func (s *Store) createUserDB(u User) (User, error) {
	if err := s.ensureSchema(); err != nil {
		return User{}, err
	}
	_, err := s.db.Exec(`
INSERT INTO users (id, email, password_hash, coins, created_at)
VALUES ($1, $2, $3, $4, NOW())`,
		u.ID, u.Email, u.PasswordHash, u.Coins)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return User{}, ErrEmailTaken
		}
		return User{}, err
	}
	created, ok := s.getUserDB(u.Email)
	if !ok {
		return u, nil
	}
	return created, nil
}

func (s *Store) getUserDB(email string) (User, bool) {
	if err := s.ensureSchema(); err != nil {
		return User{}, false
	}
	row := s.db.QueryRow(`SELECT id, email, password_hash, coins, created_at
FROM users WHERE email = $1`, email)
	return scanUserDB(row)
}

func (s *Store) debitCoinsDB(email string, n int) (int, error) {
	if err := s.ensureSchema(); err != nil {
		return 0, err
	}
	var remaining int
	err := s.db.QueryRow(`
UPDATE users SET coins = coins - $2
WHERE email = $1 AND coins >= $2
RETURNING coins`, email, n).Scan(&remaining)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrInsufficientCoin
	}
	if err != nil {
		return 0, err
	}
	return remaining, nil
}

func (s *Store) saveDeckDB(rec DeckRecord) error {
	if err := s.ensureSchema(); err != nil {
		return err
	}
	_, err := s.db.Exec(`
INSERT INTO decks (id, email, title, num_slides, payload, created_at)
VALUES ($1, $2, $3, $4, $5, NOW())
ON CONFLICT (id)
DO UPDATE SET title = EXCLUDED.title,
  num_slides = EXCLUDED.num_slides,
  payload = EXCLUDED.payload`,
		rec.ID, rec.Email, summaryOf(rec).Title, rec.NumSlides, []byte(rec.Payload))
	return err
}

func (s *Store) getDeckDB(id, email string) (DeckRecord, bool) {
	if err := s.ensureSchema(); err != nil {
		return DeckRecord{}, false
	}
	var rec DeckRecord
	var payload []byte
	err := s.db.QueryRow(`SELECT id, email, title, num_slides, payload, created_at
FROM decks WHERE id = $1 AND email = $2`, id, email).
		Scan(&rec.ID, &rec.Email, &rec.Title, &rec.NumSlides, &payload, &rec.CreatedAt)
	if err != nil {
		return DeckRecord{}, false
	}
	rec.Payload = payload
	return rec, true
}

func (s *Store) listDecksDB(email string) ([]DeckSummary, error) {
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	rows, err := s.db.Query(`SELECT id, title, num_slides, created_at
FROM decks WHERE email = $1 ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]DeckSummary, 0, 16)
	for rows.Next() {
		var d DeckSummary
		if err := rows.Scan(&d.DeckID, &d.Title, &d.NumSlides, &d.CreatedAt); err != nil {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}
