package api

import (
	"errors"
	"net/http"

	"github.com/umaydie-cyber/promotion/internal/constants"
	"github.com/umaydie-cyber/promotion/internal/engine"
	"github.com/umaydie-cyber/promotion/internal/service"
	"github.com/umaydie-cyber/promotion/internal/storage"

	"github.com/gin-gonic/gin"
)

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		constants.JSONKeyError: message,
		constants.JSONKeyCode:  code,
	})
}

// respondError maps service and engine errors to a status and a stable code.
// Rule rejections keep their own message since it already reads well.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBattleNotFound):
		abortWithError(c, http.StatusNotFound, constants.CodeBattleNotFound, constants.ErrBattleNotFound)
	case errors.Is(err, storage.ErrNotFound):
		abortWithError(c, http.StatusNotFound, constants.CodeStatsNotFound, constants.ErrStatsNotFound)

	case errors.Is(err, service.ErrUnknownCharacter),
		errors.Is(err, service.ErrUnknownEnemy),
		errors.Is(err, service.ErrUnknownEncounter),
		errors.Is(err, service.ErrUnknownCard):
		abortWithError(c, http.StatusUnprocessableEntity, constants.CodeUnknownCatalogID, err.Error())
	case errors.Is(err, service.ErrEmptyRoster),
		errors.Is(err, service.ErrAmbiguousEncounter),
		errors.Is(err, engine.ErrInvalidSetup):
		abortWithError(c, http.StatusUnprocessableEntity, constants.CodeInvalidRequest, err.Error())

	case errors.Is(err, engine.ErrInvalidHandIndex):
		abortWithError(c, http.StatusBadRequest, constants.CodeInvalidHandIndex, err.Error())
	case errors.Is(err, engine.ErrInvalidTarget):
		abortWithError(c, http.StatusBadRequest, constants.CodeInvalidTarget, err.Error())
	case errors.Is(err, engine.ErrInsufficientEnergy):
		abortWithError(c, http.StatusUnprocessableEntity, constants.CodeInsufficientEnergy, err.Error())

	case errors.Is(err, engine.ErrTargetingInProgress):
		abortWithError(c, http.StatusConflict, constants.CodeTargetingInProgress, err.Error())
	case errors.Is(err, engine.ErrNoActiveTargetingSession):
		abortWithError(c, http.StatusConflict, constants.CodeNoTargetingSession, err.Error())
	case errors.Is(err, engine.ErrBattleAlreadyOver):
		abortWithError(c, http.StatusConflict, constants.CodeBattleAlreadyOver, err.Error())

	case errors.Is(err, engine.ErrInvariantViolation):
		abortWithError(c, http.StatusInternalServerError, constants.CodeInvariantViolation, constants.ErrBattleCorrupted)
	default:
		abortWithError(c, http.StatusInternalServerError, constants.CodeInternal, constants.ErrInternal)
	}
}
