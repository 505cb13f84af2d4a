package handler

import (
	"net/http"

	"github.com/osse101/GatchaLife_Go/internal/collection"
	"github.com/osse101/GatchaLife_Go/internal/logger"
	"github.com/osse101/GatchaLife_Go/internal/middleware"
)

// URL parameter holding a user card id
const URLParamID = "id"

// CollectionHandler handles collection and player requests
type CollectionHandler struct {
	collectionSvc collection.Service
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(collectionSvc collection.Service) *CollectionHandler {
	return &CollectionHandler{collectionSvc: collectionSvc}
}

// List returns the player's collection
// @Summary List collection
// @Description Lists owned cards, optionally including unowned and archived cards
// @Tags collection
// @Produce json
// @Param rarity query string false "Rarity name"
// @Param style query string false "Style name"
// @Param theme query string false "Theme name"
// @Param character query string false "Character name"
// @Param series query string false "Series name"
// @Param show_all query bool false "Include cards the player does not own"
// @Param show_archived query bool false "Include archived cards"
// @Success 200 {array} collection.UserCardView
// @Failure 400 {object} ErrorResponse
// @Router /gamification/collection/ [get]
func (h *CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
	showAll, ok := GetBoolQueryParam(r, w, QueryParamShowAll)
	if !ok {
		return
	}
	showArchived, ok := GetBoolQueryParam(r, w, QueryParamShowArchived)
	if !ok {
		return
	}

	filter := collection.Filter{
		Rarity:       GetOptionalQueryParam(r, QueryParamRarity, ""),
		Style:        GetOptionalQueryParam(r, QueryParamStyle, ""),
		Theme:        GetOptionalQueryParam(r, QueryParamTheme, ""),
		Character:    GetOptionalQueryParam(r, QueryParamCharacter, ""),
		Series:       GetOptionalQueryParam(r, QueryParamSeries, ""),
		ShowAll:      showAll,
		ShowArchived: showArchived,
	}

	cards, err := h.collectionSvc.List(r.Context(), middleware.GetPlayerID(r.Context()), filter)
	if err != nil {
		respondServiceError(w, r, OpListCards, err)
		return
	}

	logger.FromContext(r.Context()).Debug("Collection listed", "count", len(cards))
	respondJSON(w, http.StatusOK, cards)
}

// Get returns one owned card
// @Summary Get collection card
// @Tags collection
// @Produce json
// @Param id path int true "User card id"
// @Success 200 {object} collection.UserCardView
// @Failure 404 {object} ErrorResponse
// @Router /gamification/collection/{id}/ [get]
func (h *CollectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, URLParamID)
	if !ok {
		return
	}

	card, err := h.collectionSvc.Get(r.Context(), middleware.GetPlayerID(r.Context()), id)
	if err != nil {
		respondServiceError(w, r, OpGetCard, err)
		return
	}

	respondJSON(w, http.StatusOK, card)
}

// RerollImage regenerates the artwork of an owned card
// @Summary Reroll card artwork
// @Description Forces one new image generation for the card and returns the refreshed card
// @Tags collection
// @Produce json
// @Param id path int true "User card id"
// @Success 200 {object} collection.UserCardView
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Reroll already running for this card"
// @Failure 502 {object} ErrorResponse "Image generation failed"
// @Router /gamification/collection/{id}/reroll_image/ [post]
func (h *CollectionHandler) RerollImage(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, URLParamID)
	if !ok {
		return
	}

	playerID := middleware.GetPlayerID(r.Context())
	card, err := h.collectionSvc.RerollImage(r.Context(), playerID, id)
	if err != nil {
		respondServiceError(w, r, OpRerollImage, err)
		return
	}

	logger.FromContext(r.Context()).Info("Card image rerolled", "player_id", playerID, "user_card_id", id)
	respondJSON(w, http.StatusOK, card)
}

// Player returns the current player
// @Summary Get current player
// @Tags player
// @Produce json
// @Success 200 {object} domain.Player
// @Failure 404 {object} ErrorResponse
// @Router /gamification/player/ [get]
func (h *CollectionHandler) Player(w http.ResponseWriter, r *http.Request) {
	player, err := h.collectionSvc.Player(r.Context(), middleware.GetPlayerID(r.Context()))
	if err != nil {
		respondServiceError(w, r, OpGetPlayer, err)
		return
	}

	respondJSON(w, http.StatusOK, player)
}
