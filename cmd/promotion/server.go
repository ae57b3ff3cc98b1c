package main

import (
	"time"

	"github.com/umaydie-cyber/promotion/internal/service"
)

// startIdleScanner expires idle battles once a minute, or more often for
// short TTLs.
func startIdleScanner(svc *service.BattleService, ttl time.Duration) {
	every := time.Minute
	if ttl/2 < every {
		every = ttl / 2
	}
	if every <= 0 {
		every = time.Second
	}
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for now := range ticker.C {
			svc.ExpireIdle(now, ttl)
		}
	}()
}
