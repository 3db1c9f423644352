package controllers

import (
	"errors"

	"github.com/SerfiMolotov/MissDelice/pkg/resp"
	"github.com/SerfiMolotov/MissDelice/services"
	"github.com/gin-gonic/gin"
)

type ContactController struct {
	Contact *services.ContactService
}

func NewContactController(contact *services.ContactService) *ContactController {
	return &ContactController{Contact: contact}
}

// POST /api/contact
func (ctl *ContactController) Send(c *gin.Context) {
	sessionID := cartSession(c)

	var req services.ContactIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Contact.Send(c.Request.Context(), sessionID, req); err != nil {
		if ve, ok := services.AsValidation(err); ok {
			resp.BadRequestFields(c, "champs manquants", ve.Fields)
			return
		}
		if errors.Is(err, services.ErrCooldownActive) {
			resp.TooManyRequests(c, "merci de patienter avant de renvoyer un message")
			return
		}
		if errors.Is(err, services.ErrSubmissionNetwork) {
			resp.BadGateway(c, "envoi du message impossible, réessayez")
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"sent": true})
}
