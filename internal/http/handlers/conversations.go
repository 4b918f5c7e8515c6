package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tycord/config"
	"tycord/internal/conversation"
	"tycord/internal/http/middleware"
	"tycord/internal/realtime"
)

type ConversationHandler struct {
	Convos   conversation.Usecase
	Notifier *realtime.Notifier
	Config   *config.Config
}

func (h *ConversationHandler) List(c *gin.Context) {
	convos, err := h.Convos.List(c.Request.Context(), middleware.MustUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, convos)
}

// Create accepts multipart form data: conversationName, a JSON-encoded
// recipientUsernames array and an optional conversationImg file.
func (h *ConversationHandler) Create(c *gin.Context) {
	name := c.PostForm("conversationName")

	var recipients []string
	if raw := c.PostForm("recipientUsernames"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &recipients); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Recipient list could not be parsed."})
			return
		}
	}

	image, err := saveUpload(c, h.Config, "conversationImg")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	convo, err := h.Convos.Create(c.Request.Context(), middleware.MustUserID(c), conversation.CreateCommand{
		Name:               name,
		RecipientUsernames: recipients,
		Image:              image,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.Notifier.NewConversation(c.Request.Context(), convo)
	c.JSON(http.StatusOK, convo)
}

func (h *ConversationHandler) Leave(c *gin.Context) {
	convoID, err := uuid.Parse(c.Param("convoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Conversation ID was not provided."})
		return
	}

	deleted, err := h.Convos.Leave(c.Request.Context(), middleware.MustUserID(c), convoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
