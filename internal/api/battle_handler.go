package api

import (
	"github.com/umaydie-cyber/promotion/internal/service"
)

// BattleHandler groups all battle-related HTTP handlers.
type BattleHandler struct {
	svc *service.BattleService
}

// NewBattleHandler creates a BattleHandler backed by svc.
func NewBattleHandler(svc *service.BattleService) *BattleHandler {
	return &BattleHandler{svc: svc}
}
