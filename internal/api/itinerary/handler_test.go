package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appMiddleware "github.com/FACorreiaa/go-trip-itinerary/app/middleware"
	"github.com/FACorreiaa/go-trip-itinerary/internal/api/session"
	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) GenerateItinerary(ctx context.Context, req types.TripRequest) (*types.TripPlan, error) {
	args := m.Called(ctx, req)
	plan, _ := args.Get(0).(*types.TripPlan)
	return plan, args.Error(1)
}

func setupRouter(t *testing.T, svc Service) (http.Handler, *session.Store) {
	t.Helper()
	store := session.NewStore(discardLogger(), time.Hour, time.Hour, nil)
	h := NewHandlerImpl(svc, discardLogger())

	r := chi.NewRouter()
	r.Route("/sessions/{sessionID}", func(r chi.Router) {
		r.Use(appMiddleware.SessionCtx(store))
		r.Post("/itinerary", h.CreateItinerary)
		r.Get("/itinerary", h.GetItinerary)
		r.Delete("/itinerary", h.ResetItinerary)
	})
	return r, store
}

const kyotoBody = `{"origin":"Taipei","destination":"Kyoto","startDate":"2024-11-01","endDate":"2024-11-05","style":"foodie","transportMode":"Public Transport","language":"zh-TW"}`

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func generatedPlan() *types.TripPlan {
	return &types.TripPlan{
		Destination: "Kyoto",
		Duration:    "5",
		StartDate:   "2024-11-01",
		EndDate:     "2024-11-05",
		Language:    types.LanguageZhTW,
		Days:        []types.DayPlan{{DayNumber: 1, Title: "抵達"}},
	}
}

func TestCreateItinerary(t *testing.T) {
	svc := new(MockService)
	svc.On("GenerateItinerary", mock.Anything, kyotoRequest()).Return(generatedPlan(), nil).Once()
	router, store := setupRouter(t, svc)
	sess := store.Create(context.Background())

	rr := do(router, http.MethodPost, "/sessions/"+sess.ID+"/itinerary", kyotoBody)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var view PlanView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Equal(t, "Kyoto 5 日遊", view.Headline)
	require.Len(t, view.Days, 1)
	assert.Equal(t, "2024-11-01", view.Days[0].Date)
	assert.Equal(t, "Kyoto", sess.Plan().Destination)

	rr = do(router, http.MethodGet, "/sessions/"+sess.ID+"/itinerary", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestCreateItineraryValidation(t *testing.T) {
	svc := new(MockService)
	router, store := setupRouter(t, svc)
	sess := store.Create(context.Background())

	body := `{"origin":"Taipei","destination":"Kyoto","startDate":"2024-11-05","endDate":"2024-11-01","style":"foodie","transportMode":"car","language":"en"}`
	rr := do(router, http.MethodPost, "/sessions/"+sess.ID+"/itinerary", body)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ValidationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "endDate", resp.Fields[0].Field)
	assert.Equal(t, "End date must be after start date", resp.Fields[0].Message)
	assert.Nil(t, sess.Plan())
	svc.AssertNotCalled(t, "GenerateItinerary", mock.Anything, mock.Anything)
}

func TestCreateItineraryBadBody(t *testing.T) {
	router, store := setupRouter(t, new(MockService))
	sess := store.Create(context.Background())

	rr := do(router, http.MethodPost, "/sessions/"+sess.ID+"/itinerary", `{"origin":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateItineraryGenerationFailureKeepsPreviousPlan(t *testing.T) {
	svc := new(MockService)
	svc.On("GenerateItinerary", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: upstream 500", types.ErrGeneration)).Once()
	router, store := setupRouter(t, svc)
	sess := store.Create(context.Background())

	tok, err := sess.BeginGeneration()
	require.NoError(t, err)
	require.NoError(t, sess.FinishGeneration(tok, generatedPlan()))

	rr := do(router, http.MethodPost, "/sessions/"+sess.ID+"/itinerary", kyotoBody)
	require.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), types.GenerationFailedMessage)
	assert.NotContains(t, rr.Body.String(), "upstream")
	assert.NotNil(t, sess.Plan())

	_, err = sess.BeginGeneration()
	assert.NoError(t, err, "a failed request must release the session")
}

func TestCreateItineraryWhileBusy(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	svc := new(MockService)
	svc.On("GenerateItinerary", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(generatedPlan(), nil).Once()
	router, store := setupRouter(t, svc)
	sess := store.Create(context.Background())

	done := make(chan *httptest.ResponseRecorder)
	go func() { done <- do(router, http.MethodPost, "/sessions/"+sess.ID+"/itinerary", kyotoBody) }()
	<-started

	rr := do(router, http.MethodPost, "/sessions/"+sess.ID+"/itinerary", kyotoBody)
	assert.Equal(t, http.StatusConflict, rr.Code)

	close(release)
	assert.Equal(t, http.StatusCreated, (<-done).Code)
	svc.AssertExpectations(t)
}

func TestResetDuringGenerationDiscardsResult(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	svc := new(MockService)
	svc.On("GenerateItinerary", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(generatedPlan(), nil).Once()
	router, store := setupRouter(t, svc)
	sess := store.Create(context.Background())

	done := make(chan *httptest.ResponseRecorder)
	go func() { done <- do(router, http.MethodPost, "/sessions/"+sess.ID+"/itinerary", kyotoBody) }()
	<-started

	rr := do(router, http.MethodDelete, "/sessions/"+sess.ID+"/itinerary", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	close(release)
	assert.Equal(t, http.StatusConflict, (<-done).Code)
	assert.Nil(t, sess.Plan())
}

func TestGetItineraryWithoutPlan(t *testing.T) {
	router, store := setupRouter(t, new(MockService))
	sess := store.Create(context.Background())

	rr := do(router, http.MethodGet, "/sessions/"+sess.ID+"/itinerary", "")
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestUnknownSession(t *testing.T) {
	router, _ := setupRouter(t, new(MockService))

	rr := do(router, http.MethodGet, "/sessions/4f9c2a4e-1d7b-4c55-9a43-0d4cf1d7b2aa/itinerary", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(router, http.MethodPost, "/sessions/not-a-uuid/itinerary", kyotoBody)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestServiceValidationErrorIsReturnedAsFields(t *testing.T) {
	svc := new(MockService)
	verr := &ValidationError{Fields: []FieldError{{Field: "startDate", Message: "bad"}}}
	svc.On("GenerateItinerary", mock.Anything, mock.Anything).Return(nil, verr).Once()
	router, store := setupRouter(t, svc)
	sess := store.Create(context.Background())

	rr := do(router, http.MethodPost, "/sessions/"+sess.ID+"/itinerary", kyotoBody)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	var resp ValidationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "bad", resp.Fields[0].Message)
	assert.True(t, errors.Is(verr, types.ErrInvalidInput))
}
