package api

import (
	"github.com/umaydie-cyber/promotion/internal/constants"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the health probe and every /api route on router.
func RegisterRoutes(router *gin.Engine, h *BattleHandler) {
	router.GET(constants.RouteHealth, Health)

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, Version)

		// Catalog
		apiRoutes.GET(constants.RouteCards, h.ListCards)
		apiRoutes.GET(constants.RouteCharacters, h.ListCharacters)
		apiRoutes.GET(constants.RouteEnemies, h.ListEnemies)
		apiRoutes.GET(constants.RouteEncounters, h.ListEncounters)

		// Battles
		apiRoutes.POST(constants.RouteBattles, h.StartBattle)
		apiRoutes.GET(constants.RouteBattleByID, h.GetBattle)
		apiRoutes.POST(constants.RouteBattlePlay, h.PlayCard)
		apiRoutes.POST(constants.RouteBattleTarget, h.ConfirmTarget)
		apiRoutes.POST(constants.RouteBattleCancel, h.CancelTargeting)
		apiRoutes.POST(constants.RouteBattleEndTurn, h.EndTurn)
		apiRoutes.GET(constants.RouteBattleEvents, h.ListEvents)
		apiRoutes.GET(constants.RouteBattleStream, h.StreamEvents)

		// History
		apiRoutes.GET(constants.RouteRecords, h.ListRecords)
		apiRoutes.GET(constants.RouteLeaderboard, h.ListLeaderboard)
		apiRoutes.GET(constants.RouteCharacterStats, h.GetCharacterStats)
	}
}
