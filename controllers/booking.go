package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/akber360/QA-Cinema/middlewares"
	"github.com/akber360/QA-Cinema/services"
	"github.com/gin-gonic/gin"
)

// BookingForm returns the screening context and ticket prices the booking
// page needs.
func BookingForm(catalog *services.CatalogService, prices map[string]float64) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("screeningId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid screening id"})
			return
		}

		screening, err := catalog.GetScreening(uint(id))
		if err != nil {
			renderError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"screening":    screening,
			"ticket_types": services.TicketTypes,
			"prices":       prices,
		})
	}
}

// BookMovie persists a booking for the logged-in user and sends them on
// to the payment form.
func BookMovie(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("screeningId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid screening id"})
			return
		}

		var req struct {
			Adult      int `form:"Adult" json:"Adult"`
			Child      int `form:"Child" json:"Child"`
			Concession int `form:"Concession" json:"Concession"`
		}
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking data"})
			return
		}
		if req.Adult < 0 || req.Child < 0 || req.Concession < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ticket quantities cannot be negative"})
			return
		}

		userIDRaw, exists := c.Get(middlewares.ContextUserID)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "You must be logged in to book"})
			return
		}
		userID := userIDRaw.(uint)

		quantities := map[string]int{
			services.TicketAdult:      req.Adult,
			services.TicketChild:      req.Child,
			services.TicketConcession: req.Concession,
		}

		booking, err := bookings.CreateBooking(userID, uint(id), quantities)
		if err != nil {
			renderError(c, err)
			return
		}

		c.Redirect(http.StatusSeeOther,
			fmt.Sprintf("/payment/%d?booking=%d", booking.ScreeningID, booking.ID))
	}
}
