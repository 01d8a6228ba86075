// Package handler holds the gateway's HTTP handlers.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pitchmate/internal/assembler"
	"pitchmate/internal/auth"
	"pitchmate/internal/gateway/progress"
	"pitchmate/internal/gateway/repository/archive"
	"pitchmate/internal/gateway/repository/deckstore"
	"pitchmate/internal/util/jsonutil"
)

type DeckHandler struct {
	svc     *assembler.Service
	store   *deckstore.Store
	archive *archive.S3Store // nil disables archiving
	hub     *progress.Hub
	log     *logrus.Logger
}

func NewDeckHandler(svc *assembler.Service, store *deckstore.Store, arc *archive.S3Store, hub *progress.Hub, log *logrus.Logger) *DeckHandler {
	return &DeckHandler{svc: svc, store: store, archive: arc, hub: hub, log: log}
}

type generateRequest struct {
	assembler.Request
	RequestID string `json:"request_id"`
}

// Generate handles POST /generate_slides. The coin balance gates the call
// before any completion is spent; the debit lands only after generation
// succeeds.
func (h *DeckHandler) Generate(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, ok := h.store.GetUserByEmail(claims.Email)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return
	}
	if user.Coins < req.NumSlides {
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "Insufficient coins to generate slides."})
		return
	}

	requestID := strings.TrimSpace(req.RequestID)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Progress = func(stage string) { h.hub.Publish(requestID, stage) }

	d, err := h.svc.GenerateDeck(c.Request.Context(), &req.Request)
	if err != nil {
		var inputErr *assembler.InputError
		if errors.As(err, &inputErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": inputErr.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "deck generation failed"})
		return
	}

	remaining, err := h.store.DebitCoins(claims.Email, req.NumSlides)
	if err != nil {
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "Insufficient coins to generate slides."})
		return
	}

	payload, err := jsonutil.MarshalNoEscape(d)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "serialize deck"})
		return
	}

	deckID := uuid.NewString()
	title := "Untitled"
	if len(d.Slides) > 0 && d.Slides[0].Title != "" {
		title = d.Slides[0].Title
	}
	rec := deckstore.DeckRecord{
		ID:        deckID,
		Email:     claims.Email,
		Title:     title,
		NumSlides: req.NumSlides,
		Payload:   payload,
	}
	if err := h.store.SaveDeck(rec); err != nil {
		h.log.WithError(err).Warn("save generated deck failed")
	}
	h.archiveDeck(deckID, payload)

	c.JSON(http.StatusOK, gin.H{
		"deck_id":    deckID,
		"request_id": requestID,
		"coins":      remaining,
		"deck":       d,
	})
}

// archiveDeck uploads in the background so object-store latency never sits
// on the response path.
func (h *DeckHandler) archiveDeck(deckID string, payload []byte) {
	if h.archive == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := h.archive.ArchiveDeck(ctx, deckID, payload); err != nil {
			h.log.WithError(err).WithField("deck_id", deckID).Warn("deck archive failed")
		}
	}()
}

type saveDeckRequest struct {
	Title     string         `json:"title"`
	NumSlides int            `json:"num_slides"`
	Deck      map[string]any `json:"deck"`
}

// Save handles POST /save_deck for decks edited client side.
func (h *DeckHandler) Save(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	var req saveDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Deck) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deck is required"})
		return
	}

	payload, err := jsonutil.MarshalNoEscape(req.Deck)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deck is not serializable"})
		return
	}
	deckID := uuid.NewString()
	rec := deckstore.DeckRecord{
		ID:        deckID,
		Email:     claims.Email,
		Title:     req.Title,
		NumSlides: req.NumSlides,
		Payload:   payload,
	}
	if err := h.store.SaveDeck(rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save deck failed"})
		return
	}
	h.archiveDeck(deckID, payload)
	c.JSON(http.StatusOK, gin.H{"deck_id": deckID})
}

// List handles GET /my_decks.
func (h *DeckHandler) List(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	decks, err := h.store.ListDecks(claims.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list decks failed"})
		return
	}
	if decks == nil {
		decks = []deckstore.DeckSummary{}
	}
	c.JSON(http.StatusOK, gin.H{"decks": decks})
}

// Get handles GET /decks/:id and returns the stored deck payload.
func (h *DeckHandler) Get(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	rec, ok := h.store.GetDeck(strings.TrimSpace(c.Param("id")), claims.Email)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "deck not found"})
		return
	}
	c.Data(http.StatusOK, "application/json", rec.Payload)
}
