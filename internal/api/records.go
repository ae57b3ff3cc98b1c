package api

import (
	"errors"
	"net/http"

	"github.com/umaydie-cyber/promotion/internal/constants"
	"github.com/umaydie-cyber/promotion/internal/service"
	"github.com/umaydie-cyber/promotion/internal/storage"

	"github.com/gin-gonic/gin"
)

// ListRecords returns finished battles, newest first, optionally filtered
// by ?character=ID.
func (h *BattleHandler) ListRecords(c *gin.Context) {
	recs, err := h.svc.History(c.Query(constants.QueryCharacter), listLimit(c))
	if err != nil {
		if errors.Is(err, service.ErrUnknownCharacter) {
			respondError(c, err)
			return
		}
		abortWithError(c, http.StatusInternalServerError, constants.CodeInternal, constants.ErrFailedFetchRecords)
		return
	}
	out, err := MarshalIntoSnakeKeys(recs)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, constants.CodeInternal, constants.ErrFailedFetchRecords)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListLeaderboard returns characters by wins (desc).
func (h *BattleHandler) ListLeaderboard(c *gin.Context) {
	top, err := h.svc.Leaderboard(listLimit(c))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, constants.CodeInternal, constants.ErrFailedFetchLeaderboard)
		return
	}
	out, err := MarshalIntoSnakeKeys(top)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, constants.CodeInternal, constants.ErrFailedFetchLeaderboard)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetCharacterStats returns the aggregate record of one character.
func (h *BattleHandler) GetCharacterStats(c *gin.Context) {
	st, err := h.svc.CharacterStats(c.Param(constants.ParamCharacterID))
	if err != nil {
		if errors.Is(err, service.ErrUnknownCharacter) || errors.Is(err, storage.ErrNotFound) {
			respondError(c, err)
			return
		}
		abortWithError(c, http.StatusInternalServerError, constants.CodeInternal, constants.ErrFailedFetchStats)
		return
	}
	out, err := MarshalIntoSnakeKeys(st)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, constants.CodeInternal, constants.ErrFailedFetchStats)
		return
	}
	c.JSON(http.StatusOK, out)
}
