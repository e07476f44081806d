package controllers

import (
	"net/http"

	"github.com/akber360/QA-Cinema/middlewares"
	"github.com/akber360/QA-Cinema/services"
	"github.com/gin-gonic/gin"
)

// Static page payloads. Turning these into HTML is the front end's job.

func HomePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, _ := c.Get(middlewares.ContextUsername)
		c.JSON(http.StatusOK, gin.H{
			"page":     "home",
			"tagline":  "Bringing Stories to Life, One Screen at a Time",
			"username": username,
		})
	}
}

func AboutPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"page":    "about",
			"heading": "Who We Are",
			"content": "QA Cinema is an independent picture house showing the best of new releases and restored classics.",
		})
	}
}

func OpeningTimesPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"page":    "opening_times",
			"heading": "QA Cinema Opening Times",
			"times": gin.H{
				"monday_to_friday": "10:00 - 23:00",
				"saturday":         "09:00 - 00:00",
				"sunday":           "10:00 - 22:00",
			},
		})
	}
}

func ClassificationsPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"page":    "classifications",
			"heading": "Film Classifications",
			"classifications": []gin.H{
				{"rating": "U", "meaning": "Suitable for all"},
				{"rating": "PG", "meaning": "Parental guidance"},
				{"rating": "12A", "meaning": "Under 12s accompanied by an adult"},
				{"rating": "15", "meaning": "15 and over"},
				{"rating": "18", "meaning": "Adults only"},
			},
		})
	}
}

func ScreensPage(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		screens, err := catalog.ListScreens()
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"page":        "screens",
			"description": "Our standard cinema screen seats 100, with a smaller custom screen for intimate showings.",
			"screens":     screens,
		})
	}
}

func ServicesPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"page":    "services",
			"heading": "QA Cinema Services",
			"services": []string{
				"Online booking",
				"Accessible screenings",
				"Private hire",
				"Concessions stand",
			},
		})
	}
}
