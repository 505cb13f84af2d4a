package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GatchaLife_Go/internal/collection"
	"github.com/osse101/GatchaLife_Go/internal/domain"
	"github.com/osse101/GatchaLife_Go/internal/handler"
	"github.com/osse101/GatchaLife_Go/mocks"
)

func TestCollectionHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedFilter *collection.Filter
		expectedStatus int
	}{
		{
			name:           "No filters",
			query:          "",
			expectedFilter: &collection.Filter{},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "All filters",
			query: "?rarity=rare&style=Watercolor&theme=Beach&character=Aki&series=S1&show_all=true&show_archived=1",
			expectedFilter: &collection.Filter{
				Rarity:       "rare",
				Style:        "Watercolor",
				Theme:        "Beach",
				Character:    "Aki",
				Series:       "S1",
				ShowAll:      true,
				ShowArchived: true,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Malformed show_all",
			query:          "?show_all=maybe",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed show_archived",
			query:          "?show_archived=yes",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			svc := mocks.NewMockCollectionService(t)
			h := handler.NewCollectionHandler(svc)
			if tt.expectedFilter != nil {
				svc.On("List", mock.Anything, testPlayerID, *tt.expectedFilter).
					Return([]collection.UserCardView{{ID: 1, Count: 2}}, nil)
			}

			req := withPlayer(httptest.NewRequest(http.MethodGet, "/gamification/collection/"+tt.query, nil))
			w := httptest.NewRecorder()

			// ACT
			h.List(w, req)

			// ASSERT
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var cards []collection.UserCardView
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cards))
				assert.Len(t, cards, 1)
			}
		})
	}

	t.Run("Service error", func(t *testing.T) {
		svc := mocks.NewMockCollectionService(t)
		h := handler.NewCollectionHandler(svc)
		svc.On("List", mock.Anything, testPlayerID, collection.Filter{}).Return(nil, assert.AnError)

		w := httptest.NewRecorder()
		h.List(w, withPlayer(httptest.NewRequest(http.MethodGet, "/gamification/collection/", nil)))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}

func TestCollectionHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		setupMock      func(*mocks.MockCollectionService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Found",
			id:   "21",
			setupMock: func(m *mocks.MockCollectionService) {
				m.On("Get", mock.Anything, testPlayerID, int64(21)).
					Return(&collection.UserCardView{ID: 21, Count: 1}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Not owned",
			id:   "99",
			setupMock: func(m *mocks.MockCollectionService) {
				m.On("Get", mock.Anything, testPlayerID, int64(99)).Return(nil, domain.ErrUserCardNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  handler.ErrMsgUserCardNotFoundError,
		},
		{
			name:           "Non numeric id",
			id:             "abc",
			setupMock:      func(m *mocks.MockCollectionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  handler.ErrMsgInvalidID,
		},
		{
			name:           "Zero id",
			id:             "0",
			setupMock:      func(m *mocks.MockCollectionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  handler.ErrMsgInvalidID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockCollectionService(t)
			tt.setupMock(svc)
			h := handler.NewCollectionHandler(svc)

			req := httptest.NewRequest(http.MethodGet, "/gamification/collection/"+tt.id+"/", nil)
			req = withPlayer(withURLParam(req, handler.URLParamID, tt.id))
			w := httptest.NewRecorder()

			h.Get(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				var body handler.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedError, body.Error)
			}
		})
	}
}

func TestCollectionHandler_RerollImage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockCollectionService(t)
		h := handler.NewCollectionHandler(svc)
		url := "/media/generated/9"
		svc.On("RerollImage", mock.Anything, testPlayerID, int64(21)).
			Return(&collection.UserCardView{ID: 21, Card: collection.CardView{ImageURL: &url}}, nil)

		req := httptest.NewRequest(http.MethodPost, "/gamification/collection/21/reroll_image/", nil)
		w := httptest.NewRecorder()
		h.RerollImage(w, withPlayer(withURLParam(req, handler.URLParamID, "21")))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"image_url":"/media/generated/9"`)
	})

	t.Run("Generation failed", func(t *testing.T) {
		svc := mocks.NewMockCollectionService(t)
		h := handler.NewCollectionHandler(svc)
		svc.On("RerollImage", mock.Anything, testPlayerID, int64(21)).Return(nil, domain.ErrImageGeneration)

		req := httptest.NewRequest(http.MethodPost, "/gamification/collection/21/reroll_image/", nil)
		w := httptest.NewRecorder()
		h.RerollImage(w, withPlayer(withURLParam(req, handler.URLParamID, "21")))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), handler.ErrMsgImageGenerationError)
	})
}

func TestCollectionHandler_Player(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockCollectionService(t)
		h := handler.NewCollectionHandler(svc)
		svc.On("Player", mock.Anything, testPlayerID).
			Return(&domain.Player{ID: testPlayerID, Username: "aki", Level: 3, XP: 40, Coins: 1000}, nil)

		w := httptest.NewRecorder()
		h.Player(w, withPlayer(httptest.NewRequest(http.MethodGet, "/gamification/player/", nil)))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":7,"username":"aki","level":3,"xp":40,"gatcha_coins":1000}`, w.Body.String())
	})

	t.Run("Not found", func(t *testing.T) {
		svc := mocks.NewMockCollectionService(t)
		h := handler.NewCollectionHandler(svc)
		svc.On("Player", mock.Anything, testPlayerID).Return(nil, domain.ErrPlayerNotFound)

		w := httptest.NewRecorder()
		h.Player(w, withPlayer(httptest.NewRequest(http.MethodGet, "/gamification/player/", nil)))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
