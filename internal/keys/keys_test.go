package keys

import "testing"

func TestEncounterKeyFromIDs(t *testing.T) {
	cases := []struct {
		ids  []string
		want string
	}{
		{[]string{"red_scale_wolf"}, "red_scale_wolf"},
		{[]string{"Wolf", " bandit ", "wolf"}, "bandit+wolf+wolf"},
		{[]string{"Stone Golem", "", "ash crow"}, "ash_crow+stone_golem"},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := EncounterKeyFromIDs(tc.ids); got != tc.want {
			t.Fatalf("EncounterKeyFromIDs(%v) = %q, want %q", tc.ids, got, tc.want)
		}
	}
}
