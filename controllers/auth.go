package controllers

import (
	"net/http"

	"github.com/akber360/QA-Cinema/config"
	"github.com/akber360/QA-Cinema/middlewares"
	"github.com/akber360/QA-Cinema/services"
	"github.com/akber360/QA-Cinema/utils"
	"github.com/gin-gonic/gin"
)

// SignupHandler registers a new customer account.
func SignupHandler(accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username     string `form:"username" json:"username" binding:"required"`
			Email        string `form:"email" json:"email" binding:"required,email"`
			Password     string `form:"password" json:"password" binding:"required"`
			Confirmation string `form:"confirmation" json:"confirmation" binding:"required"`
		}
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := accounts.Signup(req.Username, req.Email, req.Password, req.Confirmation)
		if err != nil {
			renderError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"status":  "success",
			"message": "Account created successfully",
			"user": gin.H{
				"id":       user.ID,
				"username": user.Username,
				"email":    user.Email,
			},
		})
	}
}

// LoginHandler verifies credentials and establishes the session cookie
// binding username and user id.
func LoginHandler(accounts *services.AccountService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username string `form:"username" json:"username" binding:"required"`
			Password string `form:"password" json:"password" binding:"required"`
		}
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := accounts.Login(req.Username, req.Password)
		if err != nil {
			renderError(c, err)
			return
		}

		token, err := utils.CreateSessionToken(cfg.JWTSecret, user.ID, user.Username, cfg.JWTExpiry)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating session"})
			return
		}

		c.SetCookie(
			middlewares.SessionCookie,
			token,
			int(cfg.JWTExpiry.Seconds()),
			"/",
			"",
			false,
			true,
		)

		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"user": gin.H{
				"id":       user.ID,
				"username": user.Username,
			},
		})
	}
}

// LogoutHandler clears the session cookie. Logging out twice is fine.
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "You have been successfully logged out.",
		})
	}
}
