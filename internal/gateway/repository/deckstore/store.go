// Package deckstore persists users and their saved decks, backed by Postgres
// when DECK_STORE_PG_DSN is set and by a JSON file otherwise.
package deckstore

import (
	"database/sql"
	"errors"
	"os"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	ErrEmailTaken       = errors.New("deckstore: email already registered")
	ErrInsufficientCoin = errors.New("deckstore: insufficient coins")
)

type Store struct {
	path string
	db   *sql.DB

	loadOnce sync.Once
	mu       sync.RWMutex
	users    map[string]User // keyed by lowercase email
	decks    map[string]DeckRecord

	schemaOnce sync.Once
	schemaErr  error

	listCache *lru.Cache[string, []DeckSummary]
}

func New(path string) *Store {
	cache, _ := lru.New[string, []DeckSummary](256)
	return &Store{
		path:      path,
		users:     make(map[string]User),
		decks:     make(map[string]DeckRecord),
		listCache: cache,
	}
}

func NewPostgres(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	cache, err := lru.New[string, []DeckSummary](256)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, listCache: cache}, nil
}

// NewFromEnv prefers Postgres and silently falls back to the file backend so
// local runs need no database.
func NewFromEnv(path string) *Store {
	dsn := strings.TrimSpace(os.Getenv("DECK_STORE_PG_DSN"))
	if dsn == "" {
		return New(path)
	}
	s, err := NewPostgres(dsn)
	if err != nil {
		return New(path)
	}
	return s
}

func (s *Store) EnsureLoaded() {
	if s == nil {
		return
	}
	if s.db != nil {
		_ = s.ensureSchema()
		return
	}
	s.ensureLoadedFile()
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// CreateUser registers a new account with the starting coin balance.
func (s *Store) CreateUser(id, email, passwordHash string) (User, error) {
	u := normalizeUser(User{ID: id, Email: email, PasswordHash: passwordHash, Coins: StartingCoins})
	if s.db != nil {
		return s.createUserDB(u)
	}
	return s.createUserFile(u)
}

func (s *Store) GetUserByEmail(email string) (User, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return User{}, false
	}
	if s.db != nil {
		return s.getUserDB(email)
	}
	return s.getUserFile(email)
}

// DebitCoins atomically deducts n coins and returns the remaining balance.
// ErrInsufficientCoin leaves the balance untouched.
func (s *Store) DebitCoins(email string, n int) (int, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if n <= 0 {
		u, ok := s.GetUserByEmail(email)
		if !ok {
			return 0, errors.New("deckstore: unknown user")
		}
		return u.Coins, nil
	}
	if s.db != nil {
		return s.debitCoinsDB(email, n)
	}
	return s.debitCoinsFile(email, n)
}

func (s *Store) SaveDeck(rec DeckRecord) error {
	rec.Email = strings.ToLower(strings.TrimSpace(rec.Email))
	if rec.ID == "" || rec.Email == "" {
		return errors.New("deckstore: deck id and email required")
	}
	var err error
	if s.db != nil {
		err = s.saveDeckDB(rec)
	} else {
		err = s.saveDeckFile(rec)
	}
	if err == nil && s.listCache != nil {
		s.listCache.Remove(rec.Email)
	}
	return err
}

func (s *Store) GetDeck(id, email string) (DeckRecord, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	if id == "" {
		return DeckRecord{}, false
	}
	if s.db != nil {
		return s.getDeckDB(id, email)
	}
	return s.getDeckFile(id, email)
}

// ListDecks returns the user's saved decks, newest first. Listings are
// cached per user and invalidated on save.
func (s *Store) ListDecks(email string) ([]DeckSummary, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, nil
	}
	if s.listCache != nil {
		if cached, ok := s.listCache.Get(email); ok {
			return cached, nil
		}
	}
	var (
		out []DeckSummary
		err error
	)
	if s.db != nil {
		out, err = s.listDecksDB(email)
	} else {
		out, err = s.listDecksFile(email)
	}
	if err != nil {
		return nil, err
	}
	if s.listCache != nil {
		s.listCache.Add(email, out)
	}
	return out, nil
}
