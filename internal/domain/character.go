package domain

import "time"

// Character is a player-owned entity. Money is the character's wallet balance.
type Character struct {
	ID        int64     `json:"character_id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Health    int       `json:"health"`
	Power     int       `json:"power"`
	Money     int       `json:"money"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats returns the character's current derived stats.
func (c *Character) Stats() Stats {
	return Stats{Health: c.Health, Power: c.Power}
}

// OwnedBy reports whether userID owns the character.
func (c *Character) OwnedBy(userID string) bool {
	return userID != "" && c.UserID == userID
}

// CharacterView is what a caller sees of a character. Money is only
// populated for the owner.
type CharacterView struct {
	ID     int64  `json:"character_id"`
	Name   string `json:"name"`
	Health int    `json:"health"`
	Power  int    `json:"power"`
	Money  *int   `json:"money,omitempty"`
}

// ViewFor projects c for the given caller.
func (c *Character) ViewFor(userID string) CharacterView {
	v := CharacterView{ID: c.ID, Name: c.Name, Health: c.Health, Power: c.Power}
	if c.OwnedBy(userID) {
		money := c.Money
		v.Money = &money
	}
	return v
}

// StatsResult is returned by equip and unequip.
type StatsResult struct {
	CharacterID int64 `json:"character_id"`
	Health      int   `json:"health"`
	Power       int   `json:"power"`
}

// BalanceResult is returned by wallet-mutating operations.
type BalanceResult struct {
	CharacterID int64 `json:"character_id"`
	Balance     int   `json:"balance"`
}
