package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubcaddy/backend/middleware"
	"github.com/clubcaddy/backend/repository"
)

type CreateFavouriteRequest struct {
	SetName string   `json:"setName" binding:"required"`
	Clubs   []string `json:"clubs"`
}

type UpdateFavouriteRequest struct {
	SetName     *string   `json:"setName"`
	Clubs       *[]string `json:"clubs"`
	AddClubs    []string  `json:"addClubs"`
	RemoveClubs []string  `json:"removeClubs"`
}

type FavouriteController struct {
	favourites FavouriteAPI
}

func NewFavouriteController(favourites FavouriteAPI) *FavouriteController {
	return &FavouriteController{favourites: favourites}
}

func (fc *FavouriteController) CreateFavourite(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		respondFailure(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateFavouriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "setName is required")
		return
	}

	fav, svcErr := fc.favourites.CreateFavourite(c.Request.Context(), userID, req.SetName, req.Clubs)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	respondSuccess(c, http.StatusCreated, "Favourite set created", fav)
}

func (fc *FavouriteController) GetFavourites(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		respondFailure(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	favs, svcErr := fc.favourites.ListFavourites(c.Request.Context(), userID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	respondSuccess(c, http.StatusOK, "Favourite sets fetched", favs)
}

func (fc *FavouriteController) GetFavouriteByID(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		respondFailure(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	fav, svcErr := fc.favourites.GetFavourite(c.Request.Context(), userID, c.Param("id"))
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	if fav == nil {
		respondNotFound(c, "Favourite set not found")
		return
	}
	respondSuccess(c, http.StatusOK, "Favourite set fetched", fav)
}

func (fc *FavouriteController) UpdateFavourite(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		respondFailure(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateFavouriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	fav, svcErr := fc.favourites.UpdateFavourite(c.Request.Context(), userID, c.Param("id"), repository.FavouriteUpdate{
		SetName:     req.SetName,
		Clubs:       req.Clubs,
		AddClubs:    req.AddClubs,
		RemoveClubs: req.RemoveClubs,
	})
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	if fav == nil {
		respondNotFound(c, "Favourite set not found")
		return
	}
	respondSuccess(c, http.StatusOK, "Favourite set updated", fav)
}

func (fc *FavouriteController) DeleteFavourite(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		respondFailure(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	deleted, svcErr := fc.favourites.DeleteFavourite(c.Request.Context(), userID, c.Param("id"))
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	if !deleted {
		respondNotFound(c, "Favourite set not found")
		return
	}
	respondSuccess(c, http.StatusOK, "Favourite set deleted", nil)
}
