package game

import "strings"

// CardKind tells the engine how a card resolves.
type CardKind string

const (
	// CardAttack deals damage to one chosen enemy and needs a target.
	CardAttack CardKind = "attack"
	// CardSkill resolves on play and grants block to the player.
	CardSkill CardKind = "skill"
)

// Valid reports whether k is a kind the engine knows how to resolve.
func (k CardKind) Valid() bool {
	return k == CardAttack || k == CardSkill
}

// CardDefinition is the immutable template every card instance refers to.
type CardDefinition struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Cost        int      `json:"cost" yaml:"cost"`
	Kind        CardKind `json:"kind" yaml:"kind"`
	Magnitude   int      `json:"magnitude" yaml:"magnitude"`
	Description string   `json:"description" yaml:"description"`
}

// DeckEntry is one line of a deck list: a card id and how many copies.
type DeckEntry struct {
	Card  string `json:"card" yaml:"card"`
	Count int    `json:"count" yaml:"count"`
}

// Realm is a cultivation stage a character belongs to.
type Realm string

const (
	RealmQiRefining     Realm = "qi_refining"
	RealmFoundation     Realm = "foundation"
	RealmGoldenCore     Realm = "golden_core"
	RealmNascentSoul    Realm = "nascent_soul"
	RealmSpiritSevering Realm = "spirit_severing"
)

// Realms lists every realm from lowest to highest.
var Realms = []Realm{RealmQiRefining, RealmFoundation, RealmGoldenCore, RealmNascentSoul, RealmSpiritSevering}

// Valid reports whether r is one of Realms.
func (r Realm) Valid() bool {
	for _, x := range Realms {
		if x == r {
			return true
		}
	}
	return false
}

// Character is a playable hero with its battle stats and starter deck.
type Character struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Realm       Realm       `json:"realm"`
	MaxHP       int         `json:"max_hp"`
	MaxEnergy   int         `json:"max_energy"`
	Description string      `json:"description"`
	Deck        []DeckEntry `json:"deck"`
}

// EnemyTemplate describes one kind of enemy. OpeningIntent is the damage
// it declares for the first enemy turn; 0 means roll one.
type EnemyTemplate struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	MaxHP         int    `json:"max_hp"`
	OpeningIntent int    `json:"opening_intent"`
}

// Encounter is a named, ordered enemy roster.
type Encounter struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Enemies []string `json:"enemies"`
}

// Catalog holds all static definitions loaded from configuration. Lookups
// are case-insensitive on ids.
type Catalog struct {
	Cards      []CardDefinition
	Characters []Character
	Enemies    []EnemyTemplate
	Encounters []Encounter
}

func normID(id string) string { return strings.ToLower(strings.TrimSpace(id)) }

// Card returns the card definition with the given id.
func (c *Catalog) Card(id string) (CardDefinition, bool) {
	for _, d := range c.Cards {
		if normID(d.ID) == normID(id) {
			return d, true
		}
	}
	return CardDefinition{}, false
}

// Character returns the character with the given id.
func (c *Catalog) Character(id string) (Character, bool) {
	for _, ch := range c.Characters {
		if normID(ch.ID) == normID(id) {
			return ch, true
		}
	}
	return Character{}, false
}

// Enemy returns the enemy template with the given id.
func (c *Catalog) Enemy(id string) (EnemyTemplate, bool) {
	for _, e := range c.Enemies {
		if normID(e.ID) == normID(id) {
			return e, true
		}
	}
	return EnemyTemplate{}, false
}

// Encounter returns the encounter with the given id.
func (c *Catalog) Encounter(id string) (Encounter, bool) {
	for _, e := range c.Encounters {
		if normID(e.ID) == normID(id) {
			return e, true
		}
	}
	return Encounter{}, false
}

// ExpandDeck turns a deck list into one definition per card copy, in list
// order. The second return value names the first unknown card id, if any.
func (c *Catalog) ExpandDeck(entries []DeckEntry) ([]CardDefinition, string) {
	out := make([]CardDefinition, 0, len(entries)*5)
	for _, e := range entries {
		def, ok := c.Card(e.Card)
		if !ok {
			return nil, e.Card
		}
		for i := 0; i < e.Count; i++ {
			out = append(out, def)
		}
	}
	return out, ""
}
