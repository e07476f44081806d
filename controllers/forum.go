package controllers

import (
	"net/http"

	"github.com/akber360/QA-Cinema/middlewares"
	"github.com/akber360/QA-Cinema/services"
	"github.com/gin-gonic/gin"
)

func ForumList(forum *services.ForumService) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := forum.List()
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"posts": posts})
	}
}

// ForumPost creates a topic or a reply on behalf of the logged-in user.
func ForumPost(forum *services.ForumService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			RespondingTo string `form:"responding_to" json:"responding_to"`
			MovieID      uint   `form:"movie_id" json:"movie_id" binding:"required"`
			Topic        string `form:"topic" json:"topic" binding:"required"`
			Content      string `form:"content" json:"content" binding:"required"`
		}
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		usernameRaw, exists := c.Get(middlewares.ContextUsername)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "You must be logged in to post"})
			return
		}

		post, err := forum.Post(usernameRaw.(string), req.MovieID, req.RespondingTo, req.Topic, req.Content)
		if err != nil {
			renderError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"status":  "success",
			"message": "Comment posted successfully!",
			"post":    post,
		})
	}
}
