package collection

import (
	"strconv"
	"strings"
	"time"

	"github.com/osse101/GatchaLife_Go/internal/catalog"
	"github.com/osse101/GatchaLife_Go/internal/domain"
	"github.com/osse101/GatchaLife_Go/internal/gacha"
)

// CardView is the public representation of a card.
type CardView struct {
	ID                   int64   `json:"id"`
	CharacterVariant     int64   `json:"character_variant"`
	CharacterVariantName string  `json:"character_variant_name"`
	CharacterName        string  `json:"character_name"`
	SeriesName           string  `json:"series_name"`
	Rarity               int64   `json:"rarity"`
	RarityName           string  `json:"rarity_name"`
	Style                int64   `json:"style"`
	StyleName            string  `json:"style_name"`
	Theme                int64   `json:"theme"`
	ThemeName            string  `json:"theme_name"`
	ImageURL             *string `json:"image_url"`
	Pose                 string  `json:"pose"`
	VisualOverride       string  `json:"visual_override"`
	Description          string  `json:"description"`
	IsArchived           bool    `json:"is_archived"`
	ThumbnailURL         *string `json:"thumbnail_url"`
}

// UserCardView is a card as owned by a player. Unowned cards listed with
// show_all have a zero ID and Count.
type UserCardView struct {
	ID         int64      `json:"id"`
	Card       CardView   `json:"card"`
	Count      int        `json:"count"`
	ObtainedAt *time.Time `json:"obtained_at"`
}

// ImageURL returns the public URL of a stored image.
func ImageURL(baseURL string, imageID int64) string {
	return strings.TrimRight(baseURL, "/") + MediaPathPrefix + strconv.FormatInt(imageID, 10)
}

// BuildCardView resolves the card's catalog rows from snap. image is the
// active artwork, or nil.
func BuildCardView(snap *catalog.Snapshot, card domain.Card, image *domain.GeneratedImage, baseURL string) CardView {
	view := CardView{
		ID:               card.ID,
		CharacterVariant: card.VariantID,
		Rarity:           card.RarityID,
		Style:            card.StyleID,
		Theme:            card.ThemeID,
		IsArchived:       card.Legacy,
	}

	if image != nil {
		url := ImageURL(baseURL, image.ID)
		view.ImageURL = &url
		view.ThumbnailURL = &url
	}

	rarity, okR := snap.Rarity(card.RarityID)
	style, okS := snap.Style(card.StyleID)
	theme, okT := snap.Theme(card.ThemeID)
	if okR {
		view.RarityName = rarity.Name
	}
	if okS {
		view.StyleName = style.Name
	}
	if okT {
		view.ThemeName = theme.Name
	}

	variant, ok := snap.Variant(card.VariantID)
	if !ok {
		return view
	}
	view.CharacterVariantName = variant.Name
	view.VisualOverride = variant.VisualOverride
	view.Description = variant.Description
	view.IsArchived = view.IsArchived || variant.IsLegacy()
	if c := variant.Character; c != nil {
		view.CharacterName = c.Name
		view.SeriesName = c.SeriesName
	}

	if okR && okS && okT {
		view.Pose = gacha.PoseFor(variant, *rarity, *style, *theme)
		if cfg := gacha.MatchConfiguration(variant, *rarity, style, theme); cfg != nil && cfg.Legacy {
			view.IsArchived = true
		}
	}
	return view
}

// BuildUserCardView wraps a card view with ownership data.
func BuildUserCardView(card CardView, uc *domain.UserCard) UserCardView {
	view := UserCardView{Card: card}
	if uc != nil {
		view.ID = uc.ID
		view.Count = uc.Count
		obtained := uc.ObtainedAt
		view.ObtainedAt = &obtained
	}
	return view
}
