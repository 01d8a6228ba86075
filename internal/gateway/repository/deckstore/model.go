package deckstore

import (
	"encoding/json"
	"strings"
	"time"
)

// StartingCoins is the balance granted at signup. Generating a deck costs
// one coin per slide.
const StartingCoins = 10

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Coins        int       `json:"coins"`
	CreatedAt    time.Time `json:"created_at"`
}

// DeckRecord is a saved deck. Payload keeps the deck opaque: the store never
// reinterprets what the assembler produced.
type DeckRecord struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Title     string          `json:"title"`
	NumSlides int             `json:"num_slides"`
	Payload   json.RawMessage `json:"deck"`
	CreatedAt time.Time       `json:"created_at"`
}

// DeckSummary is the listing row shown on the user's saved-decks page.
type DeckSummary struct {
	DeckID    string    `json:"deck_id"`
	Title     string    `json:"title"`
	NumSlides int       `json:"num_slides"`
	CreatedAt time.Time `json:"created_at"`
}

func normalizeUser(u User) User {
	u.ID = strings.TrimSpace(u.ID)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Coins < 0 {
		u.Coins = 0
	}
	return u
}

func summaryOf(r DeckRecord) DeckSummary {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		title = "Untitled"
	}
	return DeckSummary{
		DeckID:    r.ID,
		Title:     title,
		NumSlides: r.NumSlides,
		CreatedAt: r.CreatedAt,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}
