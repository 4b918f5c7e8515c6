package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tycord/internal/user"
)

type AuthHandler struct {
	Users user.Usecase
}

type registerReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Username string `json:"username" binding:"required"`
	Nickname string `json:"nickname" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "One or more fields were not provided."})
		return
	}

	result, err := h.Users.Register(c.Request.Context(), user.RegisterCommand{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
		Nickname: req.Nickname,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": result.Token})
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "One or more fields were not provided."})
		return
	}

	result, err := h.Users.Login(c.Request.Context(), user.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": result.Token})
}
