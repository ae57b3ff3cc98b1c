package dedupe

// Package dedupe provides shared singleflight groups used to collapse
// concurrent reads of the same aggregate (leaderboard, character stats)
// into one database query.

import "golang.org/x/sync/singleflight"

// StatsGroup deduplicates per-character stats lookups keyed by
// "stats:<character id>".
var StatsGroup singleflight.Group

// LeaderboardGroup deduplicates leaderboard queries keyed by
// "leaderboard:<limit>".
var LeaderboardGroup singleflight.Group
