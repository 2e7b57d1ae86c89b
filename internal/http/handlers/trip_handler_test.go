// README: Handler tests for trip generation status mapping and owner scoping.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"tripgen/internal/http/handlers"
	httpmiddleware "tripgen/internal/http/middleware"
	"tripgen/internal/infra"
	"tripgen/internal/modules/prompt"
	"tripgen/internal/modules/tripplan"
	"tripgen/internal/modules/trips"
	"tripgen/internal/service"
)

// stubTokenVerifier is a test double for infra.TokenVerifier.
type stubTokenVerifier struct{ uid string }

func (s *stubTokenVerifier) VerifyIDToken(_ context.Context, _ string) (*infra.FirebaseToken, error) {
	return &infra.FirebaseToken{UID: s.uid, Claims: map[string]interface{}{"email": s.uid + "@example.com"}}, nil
}

// stubTrips records the last generate input and answers with canned values.
type stubTrips struct {
	genErr   error
	gotInput service.GenerateInput
	gotOwner trips.Owner
	store    map[string]*trips.Trip
}

func (s *stubTrips) Generate(_ context.Context, owner trips.Owner, in service.GenerateInput) (*trips.Trip, error) {
	s.gotOwner, s.gotInput = owner, in
	if s.genErr != nil {
		return nil, s.genErr
	}
	t := trips.New(owner, trips.Choice{Request: in.Request}, &tripplan.Plan{TripSummary: "ok"}, time.Now())
	s.store[t.ID] = t
	return t, nil
}

func (s *stubTrips) Get(_ context.Context, owner trips.Owner, id string) (*trips.Trip, error) {
	t, ok := s.store[id]
	if !ok || t.UserID != owner.UID {
		return nil, trips.ErrNotFound
	}
	return t, nil
}

func (s *stubTrips) List(_ context.Context, owner trips.Owner) ([]*trips.Trip, error) {
	var out []*trips.Trip
	for _, t := range s.store {
		if t.UserID == owner.UID {
			out = append(out, t)
		}
	}
	return out, nil
}

func buildTestRouter(svc handlers.TripService, uid string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(httpmiddleware.Auth(&stubTokenVerifier{uid: uid}))
	h := handlers.NewTripHandler(svc, time.Second)
	r.POST("/api/trips", h.Create)
	r.GET("/api/trips", h.List)
	r.GET("/api/trips/:id", h.Get)
	return r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTripPassesRequestThrough(t *testing.T) {
	svc := &stubTrips{store: map[string]*trips.Trip{}}
	r := buildTestRouter(svc, "alice")

	w := doRequest(r, http.MethodPost, "/api/trips", `{"destination":"Paris","placeId":"p1","days":3,"travelingWith":"couple","budget":1500,"travelers":"2"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	in := svc.gotInput
	if in.Request.Destination != "Paris" || in.Request.Days != 3 || in.Request.TravelingWith != prompt.CompanionsCouple {
		t.Fatalf("unexpected request %+v", in.Request)
	}
	if in.Request.Budget != "1500" || in.PlaceID != "p1" || in.Travelers != "2" {
		t.Fatalf("unexpected input %+v", in)
	}
	if svc.gotOwner.UID != "alice" || svc.gotOwner.Email != "alice@example.com" {
		t.Fatalf("unexpected owner %+v", svc.gotOwner)
	}

	var body struct {
		Trip trips.Trip `json:"trip"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Trip.ID == "" || body.Trip.UserID != "alice" {
		t.Fatalf("unexpected trip in response %+v", body.Trip)
	}
}

func TestCreateTripInvalidJSON(t *testing.T) {
	r := buildTestRouter(&stubTrips{store: map[string]*trips.Trip{}}, "alice")
	if w := doRequest(r, http.MethodPost, "/api/trips", `{"destination":`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateTripErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		reason string
	}{
		{name: "bad request", err: &service.GenerationError{Kind: service.KindBadRequest, Message: "days out of range"}, status: http.StatusBadRequest},
		{name: "quota", err: &service.GenerationError{Kind: service.KindQuota, Message: "no generations left"}, status: http.StatusTooManyRequests},
		{name: "overloaded", err: &service.GenerationError{Kind: service.KindOverloaded, Message: "busy"}, status: http.StatusServiceUnavailable},
		{name: "backend", err: &service.GenerationError{Kind: service.KindBackend, Message: "failed"}, status: http.StatusBadGateway},
		{name: "invalid plan", err: &service.GenerationError{Kind: service.KindInvalidPlan, Message: "bad plan", Reason: tripplan.ReasonNoItinerary}, status: http.StatusUnprocessableEntity, reason: tripplan.ReasonNoItinerary},
		{name: "storage", err: &service.GenerationError{Kind: service.KindStorage, Message: "save failed", Err: errors.New("disk")}, status: http.StatusInternalServerError},
		{name: "untyped", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := buildTestRouter(&stubTrips{genErr: tt.err, store: map[string]*trips.Trip{}}, "alice")
			w := doRequest(r, http.MethodPost, "/api/trips", map[string]any{"destination": "Paris", "days": 3})
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
			var body struct {
				Error  string `json:"error"`
				Reason string `json:"reason"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error == "" || body.Reason != tt.reason {
				t.Fatalf("unexpected error body %s", w.Body.String())
			}
		})
	}
}

func TestGetAndListTrips(t *testing.T) {
	svc := &stubTrips{store: map[string]*trips.Trip{}}
	alice := buildTestRouter(svc, "alice")
	bob := buildTestRouter(svc, "bob")

	w := doRequest(alice, http.MethodPost, "/api/trips", map[string]any{"destination": "Paris", "days": 3})
	var created struct {
		Trip trips.Trip `json:"trip"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if w := doRequest(alice, http.MethodGet, "/api/trips/"+created.Trip.ID, nil); w.Code != http.StatusOK {
		t.Fatalf("owner get: expected 200, got %d", w.Code)
	}
	if w := doRequest(bob, http.MethodGet, "/api/trips/"+created.Trip.ID, nil); w.Code != http.StatusNotFound {
		t.Fatalf("other user get: expected 404, got %d", w.Code)
	}

	w = doRequest(bob, http.MethodGet, "/api/trips", nil)
	if w.Code != http.StatusOK || w.Body.String() != `{"trips":[]}` {
		t.Fatalf("expected empty list for bob, got %d %s", w.Code, w.Body.String())
	}

	w = doRequest(alice, http.MethodGet, "/api/trips", nil)
	var listed struct {
		Trips []trips.Trip `json:"trips"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil || len(listed.Trips) != 1 {
		t.Fatalf("expected one trip for alice, got %s (%v)", w.Body.String(), err)
	}
}
