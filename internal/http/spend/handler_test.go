package spend_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/arjunsachdev/regretly/internal/auth"
	spendHandler "github.com/arjunsachdev/regretly/internal/http/spend"
	"github.com/arjunsachdev/regretly/internal/spend"
)

type fixedRate float64

func (r fixedRate) Rate() float64 { return float64(r) }

func newRouter(repo spend.Repository) http.Handler {
	router := chi.NewRouter()
	spendHandler.NewHandler(spend.NewSessions(repo, fixedRate(10))).Routes(router)

	return router
}

func doRequest(t *testing.T, router http.Handler, method, target, body string, userID uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if userID != uuid.Nil {
		req = req.WithContext(auth.WithUserID(req.Context(), userID))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	repo := spend.NewMockRepository(ctrl)
	repo.EXPECT().ListSpends(gomock.Any(), userID).Return(nil, nil)
	repo.EXPECT().
		CreateSpend(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, sp *spend.Spend) error {
			sp.ID = uuid.New()
			sp.CreatedAt = time.Now()
			return nil
		})

	router := newRouter(repo)

	body := `{"amount": 250, "category": "food", "mood": "hungry", "date": "2024-06-10", "description": "pizza"}`
	rec := doRequest(t, router, http.MethodPost, "/", body, userID)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"regret"`)
	assert.Contains(t, rec.Body.String(), `"future_value"`)
}

func TestHandler_Create_StatusCodes(t *testing.T) {
	type testCase struct {
		name       string
		body       string
		repoErr    error
		wantStatus int
	}

	tests := []testCase{
		{
			name:       "InvalidAmount",
			body:       `{"amount": 0, "category": "food", "mood": "hungry", "date": "2024-06-10"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "UnknownCategory",
			body:       `{"amount": 100, "category": "crypto", "mood": "hungry", "date": "2024-06-10"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "BadDate",
			body:       `{"amount": 100, "category": "food", "mood": "hungry", "date": "10/06/2024"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "StoreDown",
			body:       `{"amount": 100, "category": "food", "mood": "hungry", "date": "2024-06-10"}`,
			repoErr:    errors.New("connection refused"),
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userID := uuid.New()

			repo := spend.NewMockRepository(ctrl)
			repo.EXPECT().ListSpends(gomock.Any(), userID).Return(nil, nil)

			if tt.repoErr != nil {
				repo.EXPECT().
					CreateSpend(gomock.Any(), userID, gomock.Any()).
					Return(tt.repoErr)
			}

			rec := doRequest(t, newRouter(repo), http.MethodPost, "/", tt.body, userID)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Create_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := spend.NewMockRepository(ctrl)

	body := `{"amount": 100, "category": "food", "mood": "hungry", "date": "2024-06-10"}`
	rec := doRequest(t, newRouter(repo), http.MethodPost, "/", body, uuid.Nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Classify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	id := uuid.New()

	repo := spend.NewMockRepository(ctrl)
	repo.EXPECT().
		ListSpends(gomock.Any(), userID).
		Return([]*spend.Spend{{ID: id, Amount: 100, Category: spend.CategoryFood}}, nil)
	repo.EXPECT().UpdateType(gomock.Any(), userID, id, spend.TypeImpulse).Return(nil)

	router := newRouter(repo)

	rec := doRequest(t, router, http.MethodPatch, "/"+id.String()+"/type", `{"type": "impulse"}`, userID)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_Classify_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	repo := spend.NewMockRepository(ctrl)
	repo.EXPECT().ListSpends(gomock.Any(), userID).Return(nil, nil)

	rec := doRequest(t, newRouter(repo), http.MethodPatch, "/"+uuid.NewString()+"/type", `{"type": "need"}`, userID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	repo := spend.NewMockRepository(ctrl)
	repo.EXPECT().
		ListSpends(gomock.Any(), userID).
		Return([]*spend.Spend{
			{ID: uuid.New(), Amount: 100, Category: spend.CategoryFood, Mood: spend.MoodHungry, Date: time.Now()},
		}, nil)

	rec := doRequest(t, newRouter(repo), http.MethodGet, "/", "", userID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"amount":100`)
}
