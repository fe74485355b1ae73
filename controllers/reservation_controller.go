package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubcaddy/backend/middleware"
)

type CreateReservationRequest struct {
	Course    string   `json:"course" binding:"required"`
	Date      string   `json:"date" binding:"required"`
	Clubs     []string `json:"clubs" binding:"required"`
	SaveToBag bool     `json:"saveToBag"`
}

type ReservationController struct {
	reservations ReservationAPI
}

func NewReservationController(reservations ReservationAPI) *ReservationController {
	return &ReservationController{reservations: reservations}
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		respondFailure(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "course, date and clubs are required")
		return
	}

	reservation, svcErr := rc.reservations.CreateReservation(c.Request.Context(), userID, req.Course, req.Date, req.Clubs, req.SaveToBag)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	respondSuccess(c, http.StatusCreated, "Reservation created", reservation)
}

func (rc *ReservationController) GetReservations(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		respondFailure(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	reservations, svcErr := rc.reservations.ListReservations(c.Request.Context(), userID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	respondSuccess(c, http.StatusOK, "Reservations fetched", reservations)
}
