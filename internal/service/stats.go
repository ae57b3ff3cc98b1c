package service

import (
	"fmt"

	"github.com/umaydie-cyber/promotion/internal/dedupe"
	"github.com/umaydie-cyber/promotion/internal/game"
)

// Leaderboard returns the characters with the most wins. Concurrent calls
// with the same limit share one query.
func (s *BattleService) Leaderboard(limit int) ([]game.CharacterStats, error) {
	v, err, _ := dedupe.LeaderboardGroup.Do(fmt.Sprintf("leaderboard:%d", limit), func() (interface{}, error) {
		return s.repo.GetTopCharacters(limit)
	})
	if err != nil {
		return nil, err
	}
	return v.([]game.CharacterStats), nil
}

// CharacterStats returns the aggregate record of one catalog character.
// storage.ErrNotFound means the character has not finished a battle yet.
func (s *BattleService) CharacterStats(characterID string) (*game.CharacterStats, error) {
	ch, ok := s.catalog.Character(characterID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharacter, characterID)
	}
	v, err, _ := dedupe.StatsGroup.Do("stats:"+ch.ID, func() (interface{}, error) {
		return s.repo.GetCharacterStats(ch.ID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*game.CharacterStats), nil
}

// History lists finished battles, newest first. An empty characterID lists
// every character.
func (s *BattleService) History(characterID string, limit int) ([]game.BattleRecord, error) {
	if characterID != "" {
		ch, ok := s.catalog.Character(characterID)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCharacter, characterID)
		}
		characterID = ch.ID
	}
	return s.repo.ListBattleRecords(characterID, limit)
}
