package constants

// HTTP headers and content types
const (
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"

	CacheControlHeader  = "Cache-Control"
	CacheControlNoCache = "no-cache, no-store, must-revalidate"
)

// Routes used by the backend router
const (
	RouteHealth         = "/healthz"
	RouteAPIPrefix      = "/api"
	RouteVersion        = "/version"
	RouteCards          = "/cards"
	RouteCharacters     = "/characters"
	RouteCharacterStats = "/characters/:characterID/stats"
	RouteEnemies        = "/enemies"
	RouteEncounters     = "/encounters"
	RouteBattles        = "/battles"
	RouteBattleByID     = "/battles/:battleID"
	RouteBattlePlay     = "/battles/:battleID/play"
	RouteBattleTarget   = "/battles/:battleID/target"
	RouteBattleCancel   = "/battles/:battleID/cancel"
	RouteBattleEndTurn  = "/battles/:battleID/end-turn"
	RouteBattleEvents   = "/battles/:battleID/events"
	RouteBattleStream   = "/battles/:battleID/stream"
	RouteRecords        = "/records"
	RouteLeaderboard    = "/leaderboard"
	ParamBattleID       = "battleID"
	ParamCharacterID    = "characterID"
	QueryAfter          = "after"
	QueryCharacter      = "character"
	QueryLimit          = "limit"
	DefaultListLimit    = 20
	MaxListLimit        = 100
)

// Common JSON response keys
const (
	JSONKeyError = "error"
	JSONKeyCode  = "code"
)

// Machine-readable error codes returned next to the error message.
const (
	CodeInvalidRequest      = "invalid_request"
	CodeBattleNotFound      = "battle_not_found"
	CodeStatsNotFound       = "stats_not_found"
	CodeUnknownCatalogID    = "unknown_catalog_id"
	CodeInsufficientEnergy  = "insufficient_energy"
	CodeInvalidHandIndex    = "invalid_hand_index"
	CodeInvalidTarget       = "invalid_target"
	CodeNoTargetingSession  = "no_active_targeting_session"
	CodeTargetingInProgress = "targeting_in_progress"
	CodeBattleAlreadyOver   = "battle_already_over"
	CodeInvariantViolation  = "invariant_violation"
	CodeInternal            = "internal_error"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest         = "Invalid request"
	ErrInvalidBattleID        = "Invalid battle ID"
	ErrBattleNotFound         = "Battle not found"
	ErrFailedFetchRecords     = "Failed to fetch battle records"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedFetchStats       = "Failed to fetch stats"
	ErrStatsNotFound          = "No stats for this character yet"
	ErrBattleCorrupted        = "Battle state is corrupted and was stopped"
	ErrInternal               = "Internal error"
)

// Logging field names
const (
	LogFieldBattleID    = "battle_id"
	LogFieldCharacterID = "character_id"
	LogFieldEncounter   = "encounter"
	LogFieldSeed        = "seed"
	LogFieldOutcome     = "outcome"
	LogFieldTurns       = "turns"
	LogFieldCount       = "count"
	LogFieldAddr        = "addr"
	LogFieldPath        = "path"
)
