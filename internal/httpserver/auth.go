package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func loginHandler(auth authClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "email and password required"})
			return
		}
		creds, err := auth.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err, "login failed")
			return
		}
		sess := currentSession(c)
		sess.Login(creds.Token, creds.User)
		c.JSON(http.StatusOK, creds.User)
	}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func registerHandler(auth authClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "username, email and password required"})
			return
		}
		creds, err := auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			respondError(c, err, "registration failed")
			return
		}
		sess := currentSession(c)
		sess.Login(creds.Token, creds.User)
		c.JSON(http.StatusCreated, creds.User)
	}
}

func logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		currentSession(c).Logout()
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

func profileHandler(auth authClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		if sess.IsGuest() {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			return
		}
		user, err := auth.Profile(c.Request.Context(), sess.Token())
		if err != nil {
			respondError(c, err, "failed to load profile")
			return
		}
		sess.SetUser(*user)
		c.JSON(http.StatusOK, user)
	}
}
