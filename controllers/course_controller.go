package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	catalogue    CatalogueAPI
	availability AvailabilityAPI
}

func NewCourseController(catalogue CatalogueAPI, availability AvailabilityAPI) *CourseController {
	return &CourseController{catalogue: catalogue, availability: availability}
}

// GetCourses lists every course.
func (cc *CourseController) GetCourses(c *gin.Context) {
	courses, err := cc.catalogue.ListCourses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Courses fetched successfully", courses)
}

// GetAvailableDates returns the bookable dates of a month at a course.
func (cc *CourseController) GetAvailableDates(c *gin.Context) {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil {
		respondFailure(c, http.StatusBadRequest, "year and month are required")
		return
	}

	dates, err := cc.availability.AvailableDates(c.Param("locationId"), year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Available dates fetched successfully", gin.H{"dates": dates})
}
