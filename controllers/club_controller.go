package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clubcaddy/backend/services"
)

type ClubController struct {
	catalogue    CatalogueAPI
	availability AvailabilityAPI
}

func NewClubController(catalogue CatalogueAPI, availability AvailabilityAPI) *ClubController {
	return &ClubController{catalogue: catalogue, availability: availability}
}

// GetClubs lists the catalogue with filters, search and pagination.
func (cc *ClubController) GetClubs(c *gin.Context) {
	params := services.ListClubsParams{
		Search:   c.Query("search"),
		Brand:    c.Query("brand"),
		Category: c.Query("category"),
		Archived: parseArchivedFilter(c),
		Page:     parseIntQuery(c, "page", 1),
		Limit:    parseIntQuery(c, "limit", 10),
	}

	result, err := cc.catalogue.ListClubs(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Clubs fetched successfully", result)
}

// GetClubByID returns a single club, or the not-found envelope when the id
// does not resolve upstream.
func (cc *ClubController) GetClubByID(c *gin.Context) {
	club, err := cc.catalogue.GetClub(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if club == nil {
		respondNotFound(c, "Club not found")
		return
	}
	respondSuccess(c, http.StatusOK, "Club fetched successfully", club)
}

// GetAvailableClubs lists availability for a course, optionally on a date.
func (cc *ClubController) GetAvailableClubs(c *gin.Context) {
	course := c.Query("course")
	date := c.Query("date")

	clubs, err := cc.availability.GetAvailableClubs(c.Request.Context(), course, date)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Available clubs fetched successfully", clubs)
}

// parseArchivedFilter maps the archived/isActive query parameters onto the
// catalogue filter. Default excludes archived clubs; archived=true or
// isActive=false flips to archived-only; "all" on either disables the
// filter.
func parseArchivedFilter(c *gin.Context) services.ArchivedFilter {
	archived := c.Query("archived")
	isActive := c.Query("isActive")

	if archived == "all" || isActive == "all" {
		return services.AllClubs
	}
	if archived == "true" || isActive == "false" {
		return services.ArchivedOnly
	}
	return services.ActiveOnly
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return v
}
