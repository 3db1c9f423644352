package controllers

import (
	"errors"

	"github.com/SerfiMolotov/MissDelice/pkg/resp"
	"github.com/SerfiMolotov/MissDelice/services"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// POST /api/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req services.LoginIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "username and password required")
		return
	}

	token, err := ctl.Auth.Login(req)
	if err != nil {
		// Same message for both cases, no probing which half was wrong.
		if errors.Is(err, services.ErrUnknownUser) || errors.Is(err, services.ErrWrongPassword) {
			resp.Unauthorized(c, "identifiants invalides")
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"token": token})
}
