package domain

import (
	"fmt"
	"time"
)

// ImageKey identifies a unique piece of card artwork and a unique Card.
type ImageKey struct {
	VariantID int64 `json:"character_variant"`
	RarityID  int64 `json:"rarity"`
	StyleID   int64 `json:"style"`
	ThemeID   int64 `json:"theme"`
}

func (k ImageKey) String() string {
	return fmt.Sprintf("v%d/r%d/s%d/t%d", k.VariantID, k.RarityID, k.StyleID, k.ThemeID)
}

// Card is a realized (variant, rarity, style, theme) tuple.
type Card struct {
	ID        int64 `json:"id"`
	VariantID int64 `json:"character_variant"`
	RarityID  int64 `json:"rarity"`
	StyleID   int64 `json:"style"`
	ThemeID   int64 `json:"theme"`
	Legacy    bool  `json:"legacy"`
}

// Key returns the card's identity tuple.
func (c Card) Key() ImageKey {
	return ImageKey{VariantID: c.VariantID, RarityID: c.RarityID, StyleID: c.StyleID, ThemeID: c.ThemeID}
}

// UserCard records ownership. Count stacks duplicates and ObtainedAt keeps
// the first acquisition time.
type UserCard struct {
	ID         int64     `json:"id"`
	PlayerID   int64     `json:"player"`
	CardID     int64     `json:"card"`
	Count      int       `json:"count"`
	ObtainedAt time.Time `json:"obtained_at"`
}

// OwnedCard joins a card with the player's ownership row. UserCard is nil
// when the player does not own the card.
type OwnedCard struct {
	Card     Card
	UserCard *UserCard
}

// Grant is the ledger outcome for one drop.
type Grant struct {
	Card     Card
	UserCard UserCard
	IsNew    bool
}
