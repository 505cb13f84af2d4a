package handler

import (
	"net/http"

	"github.com/osse101/GatchaLife_Go/internal/collection"
	"github.com/osse101/GatchaLife_Go/internal/domain"
	"github.com/osse101/GatchaLife_Go/internal/gacha"
	"github.com/osse101/GatchaLife_Go/internal/logger"
	"github.com/osse101/GatchaLife_Go/internal/middleware"
)

// DropResponse is one card delivered by a roll
type DropResponse struct {
	UserCard collection.UserCardView `json:"user_card"`
	IsNew    bool                    `json:"is_new"`
	RollInfo gacha.RollInfo          `json:"roll_info"`
	HasImage bool                    `json:"has_image"`
}

// RollResponse is the result of a batch roll
type RollResponse struct {
	Drops          []DropResponse `json:"drops"`
	RemainingCoins int            `json:"remaining_coins"`
	Warning        string         `json:"warning,omitempty"`
	Requested      int            `json:"requested"`
	Delivered      int            `json:"delivered"`
}

// GachaHandler handles roll requests
type GachaHandler struct {
	gachaSvc      gacha.Service
	collectionSvc collection.Service
}

// NewGachaHandler creates a new gacha handler
func NewGachaHandler(gachaSvc gacha.Service, collectionSvc collection.Service) *GachaHandler {
	return &GachaHandler{
		gachaSvc:      gachaSvc,
		collectionSvc: collectionSvc,
	}
}

// Roll handles a batch roll for the current player
// @Summary Roll a batch of cards
// @Description Debits the roll cost once and grants a batch of cards, generating missing artwork
// @Tags gacha
// @Produce json
// @Param X-Player-ID header int false "Player id"
// @Success 200 {object} RollResponse
// @Failure 400 {object} ErrorResponse "Not enough coins"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Failure 500 {object} ErrorResponse "Catalog misconfigured"
// @Router /gamification/gatcha/roll/ [post]
func (h *GachaHandler) Roll(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	playerID := middleware.GetPlayerID(r.Context())

	result, err := h.gachaSvc.Roll(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, OpRoll, err)
		return
	}

	cards := make([]domain.Card, len(result.Drops))
	for i, d := range result.Drops {
		cards[i] = d.Grant.Card
	}
	// The roll is already paid for and granted, so a rendering failure still
	// returns the drops with bare card ids.
	views, err := h.collectionSvc.CardViews(r.Context(), cards)
	if err != nil || len(views) != len(cards) {
		log.Error("Failed to render rolled cards, returning bare cards",
			"operation", OpRenderCards, "player_id", playerID, "error", err)
		views = make([]collection.CardView, len(cards))
		for i, c := range cards {
			views[i] = bareCardView(c)
		}
	}

	resp := RollResponse{
		Drops:          make([]DropResponse, len(result.Drops)),
		RemainingCoins: result.RemainingCoins,
		Warning:        result.Warning,
		Requested:      result.Requested,
		Delivered:      result.Delivered,
	}
	for i, d := range result.Drops {
		uc := d.Grant.UserCard
		resp.Drops[i] = DropResponse{
			UserCard: collection.BuildUserCardView(views[i], &uc),
			IsNew:    d.Grant.IsNew,
			RollInfo: d.Candidate.Roll,
			HasImage: d.Image.HasImage(),
		}
	}

	log.Info("Roll completed",
		"player_id", playerID,
		"delivered", result.Delivered,
		"remaining_coins", result.RemainingCoins)

	respondJSON(w, http.StatusOK, resp)
}

func bareCardView(c domain.Card) collection.CardView {
	return collection.CardView{
		ID:               c.ID,
		CharacterVariant: c.VariantID,
		Rarity:           c.RarityID,
		Style:            c.StyleID,
		Theme:            c.ThemeID,
	}
}
