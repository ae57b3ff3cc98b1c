package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListCards returns every card definition.
func (h *BattleHandler) ListCards(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Catalog().Cards)
}

// ListCharacters returns every playable character with its starter deck.
func (h *BattleHandler) ListCharacters(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Catalog().Characters)
}

func (h *BattleHandler) ListEnemies(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Catalog().Enemies)
}

func (h *BattleHandler) ListEncounters(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Catalog().Encounters)
}
