package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GatchaLife_Go/internal/collection"
	"github.com/osse101/GatchaLife_Go/internal/domain"
	"github.com/osse101/GatchaLife_Go/internal/gacha"
	"github.com/osse101/GatchaLife_Go/internal/handler"
	"github.com/osse101/GatchaLife_Go/internal/imagegen"
	"github.com/osse101/GatchaLife_Go/mocks"
)

func rollResult() *gacha.Result {
	obtained := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &gacha.Result{
		Drops: []gacha.Drop{
			{
				Grant: domain.Grant{
					Card:     domain.Card{ID: 11, VariantID: 1, RarityID: 2, StyleID: 3, ThemeID: 4},
					UserCard: domain.UserCard{ID: 21, PlayerID: testPlayerID, CardID: 11, Count: 1, ObtainedAt: obtained},
					IsNew:    true,
				},
				Candidate: gacha.Candidate{Roll: gacha.RollInfo{BaseRoll: 90, FinalRoll: 90, Rarity: "Rare"}},
				Image:     imagegen.Outcome{Status: imagegen.StatusGenerated, ImageID: 5},
			},
			{
				Grant: domain.Grant{
					Card:     domain.Card{ID: 12, VariantID: 1, RarityID: 1, StyleID: 3, ThemeID: 4},
					UserCard: domain.UserCard{ID: 22, PlayerID: testPlayerID, CardID: 12, Count: 3, ObtainedAt: obtained},
				},
				Candidate: gacha.Candidate{Roll: gacha.RollInfo{BaseRoll: 10, FinalRoll: 10, Rarity: "Common"}},
				Image:     imagegen.Outcome{Status: imagegen.StatusFailed, Err: assert.AnError},
			},
		},
		RemainingCoins: 900,
		Requested:      2,
		Delivered:      2,
	}
}

func TestGachaHandler_Roll(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// ARRANGE
		gachaSvc := mocks.NewMockGachaService(t)
		collectionSvc := mocks.NewMockCollectionService(t)
		h := handler.NewGachaHandler(gachaSvc, collectionSvc)

		gachaSvc.On("Roll", mock.Anything, testPlayerID).Return(rollResult(), nil)
		collectionSvc.On("CardViews", mock.Anything, []domain.Card{
			{ID: 11, VariantID: 1, RarityID: 2, StyleID: 3, ThemeID: 4},
			{ID: 12, VariantID: 1, RarityID: 1, StyleID: 3, ThemeID: 4},
		}).Return([]collection.CardView{{ID: 11, RarityName: "Rare"}, {ID: 12, RarityName: "Common"}}, nil)

		req := withPlayer(httptest.NewRequest(http.MethodPost, "/gamification/gatcha/roll/", nil))
		w := httptest.NewRecorder()

		// ACT
		h.Roll(w, req)

		// ASSERT
		require.Equal(t, http.StatusOK, w.Code)
		var resp handler.RollResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 900, resp.RemainingCoins)
		assert.Equal(t, 2, resp.Requested)
		assert.Equal(t, 2, resp.Delivered)
		assert.Empty(t, resp.Warning)
		require.Len(t, resp.Drops, 2)

		first := resp.Drops[0]
		assert.True(t, first.IsNew)
		assert.True(t, first.HasImage)
		assert.Equal(t, int64(21), first.UserCard.ID)
		assert.Equal(t, 1, first.UserCard.Count)
		assert.Equal(t, "Rare", first.RollInfo.Rarity)
		assert.Equal(t, "Rare", first.UserCard.Card.RarityName)

		second := resp.Drops[1]
		assert.False(t, second.IsNew)
		assert.False(t, second.HasImage)
		assert.Equal(t, 3, second.UserCard.Count)
	})

	t.Run("Short batch carries warning", func(t *testing.T) {
		gachaSvc := mocks.NewMockGachaService(t)
		collectionSvc := mocks.NewMockCollectionService(t)
		h := handler.NewGachaHandler(gachaSvc, collectionSvc)

		result := rollResult()
		result.Drops = result.Drops[:1]
		result.Requested = 5
		result.Delivered = 1
		result.Warning = "Only 1 of 5 cards could be drawn"
		gachaSvc.On("Roll", mock.Anything, testPlayerID).Return(result, nil)
		collectionSvc.On("CardViews", mock.Anything, mock.Anything).
			Return([]collection.CardView{{ID: 11}}, nil)

		w := httptest.NewRecorder()
		h.Roll(w, withPlayer(httptest.NewRequest(http.MethodPost, "/gamification/gatcha/roll/", nil)))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"warning":"Only 1 of 5 cards could be drawn"`)
		assert.Contains(t, w.Body.String(), `"requested":5`)
	})

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{"Insufficient funds", domain.ErrInsufficientFunds, http.StatusBadRequest, handler.ErrMsgNotEnoughCoinsError},
		{"Player missing", domain.ErrPlayerNotFound, http.StatusNotFound, handler.ErrMsgPlayerNotFoundError},
		{"No rarities", domain.ErrNoRarities, http.StatusInternalServerError, handler.ErrMsgNoRaritiesError},
		{"Catalog incomplete", domain.ErrCatalogIncomplete, http.StatusInternalServerError, handler.ErrMsgCatalogIncompleteErr},
		{"Database failure", assert.AnError, http.StatusInternalServerError, handler.ErrMsgGenericServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gachaSvc := mocks.NewMockGachaService(t)
			collectionSvc := mocks.NewMockCollectionService(t)
			h := handler.NewGachaHandler(gachaSvc, collectionSvc)

			gachaSvc.On("Roll", mock.Anything, testPlayerID).Return(nil, tt.err)

			w := httptest.NewRecorder()
			h.Roll(w, withPlayer(httptest.NewRequest(http.MethodPost, "/gamification/gatcha/roll/", nil)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body handler.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedError, body.Error)
		})
	}

	t.Run("Card rendering fails still returns paid drops", func(t *testing.T) {
		gachaSvc := mocks.NewMockGachaService(t)
		collectionSvc := mocks.NewMockCollectionService(t)
		h := handler.NewGachaHandler(gachaSvc, collectionSvc)

		gachaSvc.On("Roll", mock.Anything, testPlayerID).Return(rollResult(), nil)
		collectionSvc.On("CardViews", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		w := httptest.NewRecorder()
		h.Roll(w, withPlayer(httptest.NewRequest(http.MethodPost, "/gamification/gatcha/roll/", nil)))

		require.Equal(t, http.StatusOK, w.Code)
		var resp handler.RollResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 900, resp.RemainingCoins)
		require.Len(t, resp.Drops, 2)

		first := resp.Drops[0]
		assert.Equal(t, int64(21), first.UserCard.ID)
		assert.Equal(t, int64(11), first.UserCard.Card.ID)
		assert.Equal(t, int64(2), first.UserCard.Card.Rarity)
		assert.Empty(t, first.UserCard.Card.RarityName)
		assert.Equal(t, "Rare", first.RollInfo.Rarity)
		assert.True(t, first.IsNew)
		assert.Equal(t, int64(12), resp.Drops[1].UserCard.Card.ID)
	})
}
