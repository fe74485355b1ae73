package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/clubcaddy/backend/controllers"
	"github.com/clubcaddy/backend/middleware"
	"github.com/clubcaddy/backend/services"
)

// RegisterRoutes wires every endpoint. Catalogue and auth routes are public;
// favourites and reservations sit behind the bearer-token gate.
func RegisterRoutes(
	r *gin.Engine,
	tokens *services.TokenService,
	authLimiter *middleware.RateLimiter,
	authController *controllers.AuthController,
	clubController *controllers.ClubController,
	courseController *controllers.CourseController,
	favouriteController *controllers.FavouriteController,
	reservationController *controllers.ReservationController,
) {
	auth := r.Group("/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/requestMagicLink", authController.RequestMagicLink)
		auth.POST("/verify", authController.Verify)
		auth.POST("/login", authController.Login)
	}

	clubs := r.Group("/clubs")
	{
		clubs.GET("", clubController.GetClubs)
		clubs.GET("/available", clubController.GetAvailableClubs)
		clubs.GET("/:id", clubController.GetClubByID)
	}

	courses := r.Group("/courses")
	{
		courses.GET("", courseController.GetCourses)
		courses.GET("/:locationId/available-dates", courseController.GetAvailableDates)
	}

	favourites := r.Group("/favourites")
	favourites.Use(middleware.RequireAuth(tokens))
	{
		favourites.POST("", favouriteController.CreateFavourite)
		favourites.GET("", favouriteController.GetFavourites)
		favourites.GET("/:id", favouriteController.GetFavouriteByID)
		favourites.PUT("/:id", favouriteController.UpdateFavourite)
		favourites.DELETE("/:id", favouriteController.DeleteFavourite)
	}

	reservations := r.Group("/reservations")
	reservations.Use(middleware.RequireAuth(tokens))
	{
		reservations.POST("", reservationController.CreateReservation)
		reservations.GET("", reservationController.GetReservations)
	}
}
