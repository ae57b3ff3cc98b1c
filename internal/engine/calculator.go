package engine

// DamageResult splits an incoming hit into the part absorbed by block and
// the part taken as health loss.
type DamageResult struct {
	Blocked int `json:"blocked"`
	Taken   int `json:"taken"`
}

// ResolveIncomingDamage applies amount to a, block first. Health never drops
// below zero; Taken still reports the full unblocked amount.
func ResolveIncomingDamage(a *Actor, amount int) DamageResult {
	if amount < 0 {
		amount = 0
	}
	blocked := min(a.Block, amount)
	taken := amount - blocked
	a.Block -= blocked
	a.HP = max(0, a.HP-taken)
	return DamageResult{Blocked: blocked, Taken: taken}
}
