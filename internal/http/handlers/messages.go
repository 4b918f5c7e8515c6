package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tycord/internal/conversation"
	"tycord/internal/http/middleware"
	"tycord/internal/realtime"
)

type MessageHandler struct {
	Convos   conversation.Usecase
	Notifier *realtime.Notifier
}

func (h *MessageHandler) List(c *gin.Context) {
	convoID, err := uuid.Parse(c.Param("convoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Conversation ID was not provided."})
		return
	}

	msgs, err := h.Convos.ListMessages(c.Request.Context(), middleware.MustUserID(c), convoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

type postMessageReq struct {
	MessageContent string `json:"messageContent"`
}

func (h *MessageHandler) Post(c *gin.Context) {
	convoID, err := uuid.Parse(c.Param("convoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Conversation ID was not provided."})
		return
	}

	var req postMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "One or more fields were not provided."})
		return
	}

	msg, err := h.Convos.PostMessage(c.Request.Context(), middleware.MustUserID(c), convoID, req.MessageContent)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Notifier.NewMessage(c.Request.Context(), convoID, msg)
	c.JSON(http.StatusOK, msg)
}

type deleteMessageReq struct {
	MessageID uuid.UUID `json:"messageId"`
}

func (h *MessageHandler) Delete(c *gin.Context) {
	convoID, err := uuid.Parse(c.Param("convoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Conversation ID was not provided."})
		return
	}

	var req deleteMessageReq
	if err := c.ShouldBindJSON(&req); err != nil || req.MessageID == uuid.Nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Message ID not provided."})
		return
	}

	if err := h.Convos.DeleteMessage(c.Request.Context(), middleware.MustUserID(c), convoID, req.MessageID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully deleted message."})
}
