package controllers

import (
	"net/http"
	"strconv"

	"github.com/akber360/QA-Cinema/middlewares"
	"github.com/akber360/QA-Cinema/services"
	"github.com/gin-gonic/gin"
)

// PaymentForm returns the screening (and, when given, booking) context
// the payment page is pre-filled with.
func PaymentForm(catalog *services.CatalogService, bookings *services.BookingService) gin.HandlerFunc {
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

		payload := gin.H{
			"page":      "Payment Form",
			"screening": screening,
		}

		if bookingID, err := strconv.Atoi(c.Query("booking")); err == nil {
			if booking, err := bookings.GetBooking(uint(bookingID)); err == nil {
				payload["booking"] = booking
			}
		}

		c.JSON(http.StatusOK, payload)
	}
}

// SubmitPayment writes the submitted billing details onto the logged-in
// user's profile.
func SubmitPayment(accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			FirstName  string `form:"first_name" json:"first_name" binding:"required,min=4,max=30"`
			LastName   string `form:"last_name" json:"last_name" binding:"required,min=2,max=30"`
			Address    string `form:"address" json:"address" binding:"required,min=10,max=200"`
			CardNumber string `form:"card_number" json:"card_number" binding:"required,len=16"`
			CardExpiry string `form:"card_expiry" json:"card_expiry" binding:"required,len=5"`
			CardCVC    string `form:"card_cvc" json:"card_cvc" binding:"required,len=3"`
		}
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		usernameRaw, exists := c.Get(middlewares.ContextUsername)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "You must be logged in to pay"})
			return
		}

		user, err := accounts.UpdateBilling(usernameRaw.(string), services.BillingProfile{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Address:    req.Address,
			CardNumber: req.CardNumber,
			CardExpiry: req.CardExpiry,
			CardCVC:    req.CardCVC,
		})
		if err != nil {
			renderError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Payment details saved",
			"user": gin.H{
				"username":   user.Username,
				"first_name": user.FirstName,
				"last_name":  user.LastName,
			},
		})
	}
}
