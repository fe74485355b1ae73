package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/clubcaddy/backend/models"
)

func courseRouter(catalogue *fakeCatalogueAPI, availability *fakeAvailabilityAPI) *gin.Engine {
	controller := NewCourseController(catalogue, availability)
	r := gin.New()
	r.GET("/courses", controller.GetCourses)
	r.GET("/courses/:locationId/available-dates", controller.GetAvailableDates)
	return r
}

func TestGetCourses(t *testing.T) {
	catalogue := &fakeCatalogueAPI{courses: []models.Course{
		{ID: "l1", Name: "Pebble Creek", Address: "1 Fairway Dr, Augusta"},
	}}
	router := courseRouter(catalogue, &fakeAvailabilityAPI{})

	w, envelope := performRequest(t, router, http.MethodGet, "/courses", "")
	if w.Code != http.StatusOK || !envelope.Success {
		t.Fatalf("status=%d success=%v", w.Code, envelope.Success)
	}
	courses, ok := envelope.Data.([]interface{})
	if !ok || len(courses) != 1 {
		t.Fatalf("unexpected data: %v", envelope.Data)
	}
}

func TestGetAvailableDates(t *testing.T) {
	availability := &fakeAvailabilityAPI{dates: []string{"2025-06-15", "2025-06-16"}}
	router := courseRouter(&fakeCatalogueAPI{}, availability)

	w, envelope := performRequest(t, router, http.MethodGet, "/courses/loc-1/available-dates?year=2025&month=6", "")
	if w.Code != http.StatusOK || !envelope.Success {
		t.Fatalf("status=%d success=%v", w.Code, envelope.Success)
	}
	data, ok := envelope.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected data: %v", envelope.Data)
	}
	dates, ok := data["dates"].([]interface{})
	if !ok || len(dates) != 2 {
		t.Errorf("dates = %v", data["dates"])
	}
}

func TestGetAvailableDatesRequiresYearAndMonth(t *testing.T) {
	router := courseRouter(&fakeCatalogueAPI{}, &fakeAvailabilityAPI{})

	for _, path := range []string{
		"/courses/loc-1/available-dates",
		"/courses/loc-1/available-dates?year=2025",
		"/courses/loc-1/available-dates?year=2025&month=june",
	} {
		w, envelope := performRequest(t, router, http.MethodGet, path, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, w.Code)
		}
		if envelope.Success {
			t.Errorf("%s: success = true, want false", path)
		}
	}
}
