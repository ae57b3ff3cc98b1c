package api

import (
	"net/http"

	"github.com/umaydie-cyber/promotion/internal/constants"
	"github.com/umaydie-cyber/promotion/internal/engine"
	"github.com/umaydie-cyber/promotion/internal/service"

	"github.com/gin-gonic/gin"
)

type StartBattlePayload struct {
	CharacterID string   `json:"character_id" binding:"required"`
	EncounterID string   `json:"encounter_id"`
	EnemyIDs    []string `json:"enemy_ids"`
	Seed        *int64   `json:"seed"`
}

type PlayCardPayload struct {
	// Pointer so a missing index is not read as slot 0.
	HandIndex *int `json:"hand_index" binding:"required"`
}

type ConfirmTargetPayload struct {
	TargetID string `json:"target_id" binding:"required"`
}

// StartBattle creates a battle and returns its opening view.
func (h *BattleHandler) StartBattle(c *gin.Context) {
	var req StartBattlePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, constants.CodeInvalidRequest, constants.ErrInvalidRequest)
		return
	}
	view, err := h.svc.StartBattle(service.StartBattleRequest{
		CharacterID: req.CharacterID,
		EncounterID: req.EncounterID,
		EnemyIDs:    req.EnemyIDs,
		Seed:        req.Seed,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetBattle returns the current snapshot of a battle.
func (h *BattleHandler) GetBattle(c *gin.Context) {
	id, ok := battleIDParam(c)
	if !ok {
		abortWithError(c, http.StatusBadRequest, constants.CodeInvalidRequest, constants.ErrInvalidBattleID)
		return
	}
	view, err := h.svc.Snapshot(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header(constants.CacheControlHeader, constants.CacheControlNoCache)
	c.JSON(http.StatusOK, view)
}

// PlayCard plays a card from the hand. Attack cards answer with the valid
// targets and wait for ConfirmTarget.
func (h *BattleHandler) PlayCard(c *gin.Context) {
	id, ok := battleIDParam(c)
	if !ok {
		abortWithError(c, http.StatusBadRequest, constants.CodeInvalidRequest, constants.ErrInvalidBattleID)
		return
	}
	var req PlayCardPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, constants.CodeInvalidRequest, constants.ErrInvalidRequest)
		return
	}
	res, err := h.svc.PlayCard(id, *req.HandIndex)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ConfirmTarget resolves the pending attack card against an enemy.
func (h *BattleHandler) ConfirmTarget(c *gin.Context) {
	id, ok := battleIDParam(c)
	if !ok {
		abortWithError(c, http.StatusBadRequest, constants.CodeInvalidRequest, constants.ErrInvalidBattleID)
		return
	}
	var req ConfirmTargetPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, constants.CodeInvalidRequest, constants.ErrInvalidRequest)
		return
	}
	rep, err := h.svc.ConfirmTarget(id, req.TargetID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

func (h *BattleHandler) CancelTargeting(c *gin.Context) {
	id, ok := battleIDParam(c)
	if !ok {
		abortWithError(c, http.StatusBadRequest, constants.CodeInvalidRequest, constants.ErrInvalidBattleID)
		return
	}
	cancelled, err := h.svc.CancelTargeting(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": cancelled})
}

// EndTurn ends the player turn; the response describes the enemy phase.
func (h *BattleHandler) EndTurn(c *gin.Context) {
	id, ok := battleIDParam(c)
	if !ok {
		abortWithError(c, http.StatusBadRequest, constants.CodeInvalidRequest, constants.ErrInvalidBattleID)
		return
	}
	rep, err := h.svc.EndTurn(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// ListEvents returns the events after ?after=N.
func (h *BattleHandler) ListEvents(c *gin.Context) {
	id, ok := battleIDParam(c)
	if !ok {
		abortWithError(c, http.StatusBadRequest, constants.CodeInvalidRequest, constants.ErrInvalidBattleID)
		return
	}
	after, ok := queryInt(c, constants.QueryAfter, 0)
	if !ok {
		abortWithError(c, http.StatusBadRequest, constants.CodeInvalidRequest, constants.ErrInvalidRequest)
		return
	}
	events, err := h.svc.Events(id, after)
	if err != nil {
		respondError(c, err)
		return
	}
	if events == nil {
		events = []engine.Event{}
	}
	c.Header(constants.CacheControlHeader, constants.CacheControlNoCache)
	c.JSON(http.StatusOK, events)
}
