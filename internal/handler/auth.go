package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"back2me/internal/session"
	"back2me/internal/store"
)

type AuthHandler struct {
	Store    *store.Store
	Sessions *session.Registry
}

type registerBody struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginBody struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type forgotPasswordBody struct {
	Email string `json:"email" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var body registerBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.Store.RegisterUser(body.Username, body.Email, body.Password, time.Now().Unix())
	if err != nil {
		failure(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user_id": user.ID})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body loginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.Store.Authenticate(body.Email, body.Password)
	if err != nil {
		failure(c, err)
		return
	}

	sess, err := h.Sessions.Issue(user.ID, user.Username, user.Email, time.Now().Unix())
	if err != nil {
		badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"session_token": sess.Token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// ForgotPassword acknowledges the request without sending anything; there is
// no reset delivery in this system.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var body forgotPasswordBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}

	if _, ok := h.Store.FindUserByEmail(body.Email); !ok {
		failure(c, store.ErrEmailNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset link sent to email"})
}
