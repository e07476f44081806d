package controllers

import (
	"net/http"
	"strconv"

	"github.com/akber360/QA-Cinema/services"
	"github.com/gin-gonic/gin"
)

func Listings(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		movies, err := catalog.ListMovies()
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"movies": movies})
	}
}

func NewReleases(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		movies, err := catalog.NewReleases()
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"movies": movies})
	}
}

func Classics(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		movies, err := catalog.Classics()
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"movies": movies})
	}
}

func MovieDetails(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie id"})
			return
		}

		movie, err := catalog.GetMovie(uint(id))
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, movie)
	}
}

func SearchResults(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			SearchInput string `form:"searchinput" json:"searchinput"`
		}
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search"})
			return
		}

		movies, err := catalog.SearchMovies(req.SearchInput)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"query": req.SearchInput, "movies": movies})
	}
}

// APIScreenings lists a movie's screenings filtered by weekday, for the
// booking page's day picker.
func APIScreenings(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie id"})
			return
		}
		day := c.Query("day")

		screenings, err := catalog.ScreeningsFor(uint(id), day)
		if err != nil {
			renderError(c, err)
			return
		}

		if len(screenings) == 0 {
			c.JSON(http.StatusOK, gin.H{
				"screenings": []gin.H{},
				"message":    "There are currently no showings of this film",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"screenings": screenings})
	}
}
