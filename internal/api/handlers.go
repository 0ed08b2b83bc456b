package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/youruser/hearthdeck/internal/cards"
	"github.com/youruser/hearthdeck/internal/deck"
	"github.com/youruser/hearthdeck/internal/deckcode"
	imagepkg "github.com/youruser/hearthdeck/internal/image"
)

// Server holds the handlers' shared dependencies.
type Server struct {
	store *cards.Store
}

func NewServer(store *cards.Store) *Server {
	return &Server{store: store}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// getDeck decodes a deck code and returns the hydrated deck.
func (s *Server) getDeck(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code parameter"})
		return
	}
	s.respondDeck(c, "", code)
}

// parseDeck accepts raw pasted deck text in the body and handles title
// extraction as well.
func (s *Server) parseDeck(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<16))
	if err != nil || len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing deck text body"})
		return
	}
	title, code := deckcode.ExtractTitleAndCode(string(body))
	s.respondDeck(c, title, code)
}

func (s *Server) respondDeck(c *gin.Context, title, code string) {
	raw, err := deckcode.Decode(code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if mode := c.Query("mode"); mode != "" {
		raw.Format = deckcode.ParseFormat(mode)
	}
	if err := s.store.Ensure(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	d := deck.Build(code, raw, s.store)
	d.Title = title
	c.JSON(http.StatusOK, d)
}

// deckQR renders the deck code as a PNG QR image. The code is validated
// before rendering so broken codes fail loudly here, not at scan time.
func (s *Server) deckQR(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code parameter"})
		return
	}
	if _, err := deckcode.Decode(code); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil {
		size = v
	}
	png, err := imagepkg.QRPNG(code, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// searchCards looks cards up by name/text words.
func (s *Server) searchCards(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing q parameter"})
		return
	}
	if err := s.store.Ensure(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	found := s.store.Search(q)
	if len(found) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no cards match " + strconv.Quote(q)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(found), "cards": found})
}
