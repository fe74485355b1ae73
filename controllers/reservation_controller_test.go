package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/clubcaddy/backend/models"
)

type fakeReservationAPI struct {
	created *models.EnrichedReservation
	list    []models.EnrichedReservation
	err     error

	lastUserID    string
	lastCourse    string
	lastDate      string
	lastClubs     []string
	lastSaveToBag bool
}

func (f *fakeReservationAPI) CreateReservation(ctx context.Context, userID, course, date string, clubIDs []string, saveToBag bool) (*models.EnrichedReservation, error) {
	f.lastUserID, f.lastCourse, f.lastDate, f.lastClubs, f.lastSaveToBag = userID, course, date, clubIDs, saveToBag
	return f.created, f.err
}

func (f *fakeReservationAPI) ListReservations(ctx context.Context, userID string) ([]models.EnrichedReservation, error) {
	f.lastUserID = userID
	return f.list, f.err
}

func reservationRouter(api *fakeReservationAPI, middlewares ...gin.HandlerFunc) *gin.Engine {
	controller := NewReservationController(api)
	r := gin.New()
	group := r.Group("/reservations", middlewares...)
	group.POST("", controller.CreateReservation)
	group.GET("", controller.GetReservations)
	return r
}

func TestCreateReservation(t *testing.T) {
	api := &fakeReservationAPI{created: &models.EnrichedReservation{Course: "Pebble Creek", Status: models.ReservationConfirmed}}
	router := reservationRouter(api, asUser("u1"))

	w, envelope := performRequest(t, router, http.MethodPost, "/reservations",
		`{"course":"Pebble Creek","date":"2025-06-10","clubs":["c1"],"saveToBag":true}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if !envelope.Success {
		t.Error("success = false, want true")
	}
	if api.lastUserID != "u1" || api.lastCourse != "Pebble Creek" || api.lastDate != "2025-06-10" {
		t.Errorf("service call: %+v", api)
	}
	if !api.lastSaveToBag {
		t.Error("saveToBag not forwarded")
	}
}

func TestCreateReservationMissingFields(t *testing.T) {
	router := reservationRouter(&fakeReservationAPI{}, asUser("u1"))

	for _, body := range []string{
		`{}`,
		`{"course":"Pebble Creek"}`,
		`{"course":"Pebble Creek","date":"2025-06-10"}`,
	} {
		w, envelope := performRequest(t, router, http.MethodPost, "/reservations", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, w.Code)
		}
		if envelope.Success {
			t.Errorf("body %s: success = true, want false", body)
		}
	}
}

func TestCreateReservationWithoutAuthContext(t *testing.T) {
	router := reservationRouter(&fakeReservationAPI{})

	w, _ := performRequest(t, router, http.MethodPost, "/reservations", `{"course":"x","date":"y","clubs":["c1"]}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestGetReservations(t *testing.T) {
	api := &fakeReservationAPI{list: []models.EnrichedReservation{{Course: "Pebble Creek"}}}
	router := reservationRouter(api, asUser("u1"))

	w, envelope := performRequest(t, router, http.MethodGet, "/reservations", "")
	if w.Code != http.StatusOK || !envelope.Success {
		t.Fatalf("status=%d success=%v", w.Code, envelope.Success)
	}
	if api.lastUserID != "u1" {
		t.Errorf("userID = %q", api.lastUserID)
	}
}
