package api

import "github.com/gin-gonic/gin"

func (s *Server) Register(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.GET("/deck", s.getDeck)
		api.POST("/deck/parse", s.parseDeck)
		api.GET("/deck/qr", s.deckQR)
		api.GET("/card", s.searchCards)
	}
}
