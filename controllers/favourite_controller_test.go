package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/clubcaddy/backend/models"
	"github.com/clubcaddy/backend/repository"
)

type fakeFavouriteAPI struct {
	created *models.EnrichedFavourite
	list    []models.EnrichedFavourite
	got     *models.EnrichedFavourite
	updated *models.EnrichedFavourite
	deleted bool
	err     error

	lastUserID  string
	lastSetName string
	lastClubs   []string
	lastUpdate  repository.FavouriteUpdate
}

func (f *fakeFavouriteAPI) CreateFavourite(ctx context.Context, userID, setName string, clubIDs []string) (*models.EnrichedFavourite, error) {
	f.lastUserID, f.lastSetName, f.lastClubs = userID, setName, clubIDs
	return f.created, f.err
}

func (f *fakeFavouriteAPI) ListFavourites(ctx context.Context, userID string) ([]models.EnrichedFavourite, error) {
	f.lastUserID = userID
	return f.list, f.err
}

func (f *fakeFavouriteAPI) GetFavourite(ctx context.Context, userID, id string) (*models.EnrichedFavourite, error) {
	f.lastUserID = userID
	return f.got, f.err
}

func (f *fakeFavouriteAPI) UpdateFavourite(ctx context.Context, userID, id string, update repository.FavouriteUpdate) (*models.EnrichedFavourite, error) {
	f.lastUserID, f.lastUpdate = userID, update
	return f.updated, f.err
}

func (f *fakeFavouriteAPI) DeleteFavourite(ctx context.Context, userID, id string) (bool, error) {
	f.lastUserID = userID
	return f.deleted, f.err
}

// asUser mimics what RequireAuth stashes after validating a bearer token.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func favouriteRouter(api *fakeFavouriteAPI, middlewares ...gin.HandlerFunc) *gin.Engine {
	controller := NewFavouriteController(api)
	r := gin.New()
	group := r.Group("/favourites", middlewares...)
	group.POST("", controller.CreateFavourite)
	group.GET("", controller.GetFavourites)
	group.GET("/:id", controller.GetFavouriteByID)
	group.PUT("/:id", controller.UpdateFavourite)
	group.DELETE("/:id", controller.DeleteFavourite)
	return r
}

func TestCreateFavourite(t *testing.T) {
	api := &fakeFavouriteAPI{created: &models.EnrichedFavourite{SetName: "Sunday Bag"}}
	router := favouriteRouter(api, asUser("u1"))

	w, envelope := performRequest(t, router, http.MethodPost, "/favourites", `{"setName":"Sunday Bag","clubs":["c1","c2"]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if !envelope.Success || envelope.StatusCode != http.StatusCreated {
		t.Errorf("unexpected envelope: %+v", envelope)
	}
	if api.lastUserID != "u1" || api.lastSetName != "Sunday Bag" || len(api.lastClubs) != 2 {
		t.Errorf("service call: user=%q name=%q clubs=%v", api.lastUserID, api.lastSetName, api.lastClubs)
	}
}

func TestCreateFavouriteMissingName(t *testing.T) {
	router := favouriteRouter(&fakeFavouriteAPI{}, asUser("u1"))

	w, envelope := performRequest(t, router, http.MethodPost, "/favourites", `{"clubs":["c1"]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if envelope.Success {
		t.Error("success = true, want false")
	}
}

func TestFavouritesWithoutAuthContext(t *testing.T) {
	router := favouriteRouter(&fakeFavouriteAPI{})

	w, envelope := performRequest(t, router, http.MethodGet, "/favourites", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if envelope.Success {
		t.Error("success = true, want false")
	}
}

func TestGetFavouriteByIDNotFoundIs200(t *testing.T) {
	router := favouriteRouter(&fakeFavouriteAPI{}, asUser("u1"))

	w, envelope := performRequest(t, router, http.MethodGet, "/favourites/64b0c1d2e3f4a5b6c7d8e9f0", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if envelope.Success || envelope.Data != nil {
		t.Errorf("unexpected envelope: %+v", envelope)
	}
	if envelope.Message != "Favourite set not found" {
		t.Errorf("message = %q", envelope.Message)
	}
}

func TestUpdateFavouriteForwardsPatch(t *testing.T) {
	api := &fakeFavouriteAPI{updated: &models.EnrichedFavourite{SetName: "Renamed"}}
	router := favouriteRouter(api, asUser("u1"))

	w, envelope := performRequest(t, router, http.MethodPut, "/favourites/64b0c1d2e3f4a5b6c7d8e9f0",
		`{"setName":"Renamed","addClubs":["c9"],"removeClubs":["c1"]}`)
	if w.Code != http.StatusOK || !envelope.Success {
		t.Fatalf("status=%d success=%v", w.Code, envelope.Success)
	}
	if api.lastUpdate.SetName == nil || *api.lastUpdate.SetName != "Renamed" {
		t.Errorf("setName not forwarded: %+v", api.lastUpdate)
	}
	if api.lastUpdate.Clubs != nil {
		t.Error("clubs replacement should be nil when omitted")
	}
	if len(api.lastUpdate.AddClubs) != 1 || len(api.lastUpdate.RemoveClubs) != 1 {
		t.Errorf("add/remove not forwarded: %+v", api.lastUpdate)
	}
}

func TestDeleteFavourite(t *testing.T) {
	api := &fakeFavouriteAPI{deleted: true}
	router := favouriteRouter(api, asUser("u1"))

	w, envelope := performRequest(t, router, http.MethodDelete, "/favourites/64b0c1d2e3f4a5b6c7d8e9f0", "")
	if w.Code != http.StatusOK || !envelope.Success {
		t.Fatalf("status=%d success=%v", w.Code, envelope.Success)
	}
}

func TestDeleteFavouriteMissIs200(t *testing.T) {
	router := favouriteRouter(&fakeFavouriteAPI{deleted: false}, asUser("u1"))

	w, envelope := performRequest(t, router, http.MethodDelete, "/favourites/64b0c1d2e3f4a5b6c7d8e9f0", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if envelope.Success {
		t.Error("success = true, want false")
	}
}
