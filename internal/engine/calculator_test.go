package engine

import "testing"

func TestResolveIncomingDamage(t *testing.T) {
	cases := []struct {
		name      string
		block, hp int
		amount    int
		want      DamageResult
		wantBlock int
		wantHP    int
	}{
		{"partially blocked", 5, 20, 8, DamageResult{Blocked: 5, Taken: 3}, 0, 17},
		{"fully blocked", 10, 20, 8, DamageResult{Blocked: 8, Taken: 0}, 2, 20},
		{"no block", 0, 20, 8, DamageResult{Blocked: 0, Taken: 8}, 0, 12},
		{"health clamps at zero", 0, 4, 9, DamageResult{Blocked: 0, Taken: 9}, 0, 0},
		{"negative amount is ignored", 3, 10, -5, DamageResult{}, 3, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := &Actor{HP: tc.hp, MaxHP: 20, Block: tc.block}
			got := ResolveIncomingDamage(a, tc.amount)
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
			if a.Block != tc.wantBlock || a.HP != tc.wantHP {
				t.Fatalf("expected block=%d hp=%d, got block=%d hp=%d", tc.wantBlock, tc.wantHP, a.Block, a.HP)
			}
		})
	}
}

func TestIntentGenerator_StaysInRange(t *testing.T) {
	g := NewIntentGenerator(NewRNG(5), DefaultIntentMin, DefaultIntentMax)
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		v := g.Next()
		if v < DefaultIntentMin || v > DefaultIntentMax {
			t.Fatalf("intent %d outside [%d,%d]", v, DefaultIntentMin, DefaultIntentMax)
		}
		seen[v] = true
	}
	if len(seen) != DefaultIntentMax-DefaultIntentMin+1 {
		t.Fatalf("expected every value in range to appear, saw %v", seen)
	}
}
