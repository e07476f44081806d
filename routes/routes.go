package routes

import (
	"github.com/akber360/QA-Cinema/config"
	"github.com/akber360/QA-Cinema/controllers"
	"github.com/akber360/QA-Cinema/middlewares"
	"github.com/akber360/QA-Cinema/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	catalog := services.NewCatalogService(db)
	bookings := services.NewBookingService(db, cfg.TicketPrices)
	forum := services.NewForumService(db, services.NewFilter(cfg.SwearWords))
	accounts := services.NewAccountService(db, cfg.PasswordMinLength)

	// Public pages

	r.GET("/", middlewares.SessionOptional(cfg.JWTSecret), controllers.HomePage())
	r.GET("/about", controllers.AboutPage())
	r.GET("/opening-times", controllers.OpeningTimesPage())
	r.GET("/classifications", controllers.ClassificationsPage())
	r.GET("/screens", controllers.ScreensPage(catalog))
	r.GET("/services", controllers.ServicesPage())

	// Catalog

	r.GET("/listings", controllers.Listings(catalog))
	r.GET("/new-releases", controllers.NewReleases(catalog))
	r.GET("/classics", controllers.Classics(catalog))
	r.GET("/movies/:id", controllers.MovieDetails(catalog))
	r.POST("/search", controllers.SearchResults(catalog))

	api := r.Group("/api")
	{
		api.GET("/movies/:id/screenings", controllers.APIScreenings(catalog))
	}

	// Accounts

	r.POST("/signup", controllers.SignupHandler(accounts))
	r.POST("/login", controllers.LoginHandler(accounts, cfg))
	r.GET("/logout", controllers.LogoutHandler())
	r.POST("/logout", controllers.LogoutHandler())

	// Booking and payment

	r.GET("/booking/:screeningId", controllers.BookingForm(catalog, cfg.TicketPrices))
	r.POST("/booking/:screeningId",
		middlewares.SessionRequired(cfg.JWTSecret), controllers.BookMovie(bookings))

	r.GET("/payment/:screeningId", controllers.PaymentForm(catalog, bookings))
	r.POST("/payment/:screeningId",
		middlewares.SessionRequired(cfg.JWTSecret), controllers.SubmitPayment(accounts))

	// Forum

	r.GET("/forum", controllers.ForumList(forum))
	r.POST("/forum", middlewares.SessionRequired(cfg.JWTSecret), controllers.ForumPost(forum))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "page not found"})
	})

	return r
}
