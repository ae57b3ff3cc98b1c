package game

import (
	"time"

	"gorm.io/gorm"
)

// Outcome is how a battle ended, as stored in the battle history.
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"

	// OutcomeAbandoned marks a battle closed by the idle scanner before it
	// reached a terminal phase. It never counts as a win or a loss.
	OutcomeAbandoned Outcome = "abandoned"
)

// BattleRecord is the summary written once a battle is over. Live battle
// state is never persisted; only this outcome row is.
type BattleRecord struct {
	gorm.Model
	BattleID      string    `json:"battle_id" gorm:"uniqueIndex;size:36"`
	CharacterID   string    `json:"character_id" gorm:"index"`
	EncounterKey  string    `json:"encounter_key" gorm:"index"`
	Seed          int64     `json:"seed"`
	Outcome       Outcome   `json:"outcome"`
	Turns         int       `json:"turns"`
	CardsPlayed   int       `json:"cards_played"`
	DamageDealt   int       `json:"damage_dealt"`
	DamageTaken   int       `json:"damage_taken"`
	DamageBlocked int       `json:"damage_blocked"`
	FinalHP       int       `json:"final_hp"`
	FinishedAt    time.Time `json:"finished_at"`
}

func (BattleRecord) TableName() string { return "battle_records" }

// CharacterStats aggregates battle outcomes per character.
type CharacterStats struct {
	gorm.Model
	CharacterID string `json:"character_id" gorm:"uniqueIndex"`
	Battles     int    `json:"battles"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	Abandoned   int    `json:"abandoned"`

	// BestWinTurns is the fewest turns taken to win a battle; 0 until the
	// first win.
	BestWinTurns int       `json:"best_win_turns"`
	LastPlayedAt time.Time `json:"last_played_at"`
}

func (CharacterStats) TableName() string { return "character_stats" }
