package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tycord/config"
	"tycord/internal/http/middleware"
	"tycord/internal/realtime"
	"tycord/internal/social"
	"tycord/internal/user"
)

type UserHandler struct {
	Users    user.Usecase
	Socials  social.Usecase
	Notifier *realtime.Notifier
	Config   *config.Config
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.Socials.GetProfile(c.Request.Context(), middleware.MustUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile accepts multipart form data: text fields newUsername,
// newNickname, newBio and an optional newAvatar file.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	delta := user.ProfileDelta{}
	if v, ok := c.GetPostForm("newUsername"); ok && v != "" {
		delta.Username = &v
	}
	if v, ok := c.GetPostForm("newNickname"); ok && v != "" {
		delta.Nickname = &v
	}
	if v, ok := c.GetPostForm("newBio"); ok && v != "" {
		delta.Bio = &v
	}

	avatarPath, err := saveUpload(c, h.Config, "newAvatar")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	if avatarPath != "" {
		delta.Avatar = &avatarPath
	}

	updated, err := h.Users.UpdateProfile(c.Request.Context(), middleware.MustUserID(c), delta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// relationOp runs one social graph mutation keyed by the request body field
// that names the other user, then refreshes the caller's profile and pokes
// both sides over the socket.
func (h *UserHandler) relationOp(c *gin.Context, field string, op func(selfID uuid.UUID, username string) (*user.UserDTO, error)) {
	var body map[string]string
	if err := c.ShouldBindJSON(&body); err != nil || body[field] == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "One or more fields were not provided."})
		return
	}

	selfID := middleware.MustUserID(c)
	counterpart, err := op(selfID, body[field])
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := h.Socials.GetProfile(c.Request.Context(), selfID)
	if err != nil {
		respondError(c, err)
		return
	}

	if counterpart != nil {
		h.Notifier.FriendsUpdated(selfID, counterpart.ID)
	} else {
		h.Notifier.FriendsUpdated(selfID)
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) SendFriendRequest(c *gin.Context) {
	h.relationOp(c, "userToAdd", func(selfID uuid.UUID, username string) (*user.UserDTO, error) {
		return h.Socials.SendRequest(c.Request.Context(), selfID, username)
	})
}

func (h *UserHandler) AcceptRequest(c *gin.Context) {
	h.relationOp(c, "requestingUser", func(selfID uuid.UUID, username string) (*user.UserDTO, error) {
		return h.Socials.AcceptRequest(c.Request.Context(), selfID, username)
	})
}

func (h *UserHandler) DeclineRequest(c *gin.Context) {
	h.relationOp(c, "userToDecline", func(selfID uuid.UUID, username string) (*user.UserDTO, error) {
		return h.Socials.DeclineRequest(c.Request.Context(), selfID, username)
	})
}

func (h *UserHandler) CancelRequest(c *gin.Context) {
	h.relationOp(c, "userToCancel", func(selfID uuid.UUID, username string) (*user.UserDTO, error) {
		return h.Socials.CancelRequest(c.Request.Context(), selfID, username)
	})
}

func (h *UserHandler) Unfriend(c *gin.Context) {
	h.relationOp(c, "userToUnfriend", func(selfID uuid.UUID, username string) (*user.UserDTO, error) {
		return h.Socials.Unfriend(c.Request.Context(), selfID, username)
	})
}

func (h *UserHandler) Block(c *gin.Context) {
	h.relationOp(c, "userToBlock", func(selfID uuid.UUID, username string) (*user.UserDTO, error) {
		return h.Socials.Block(c.Request.Context(), selfID, username)
	})
}

func (h *UserHandler) Unblock(c *gin.Context) {
	h.relationOp(c, "userToUnblock", func(selfID uuid.UUID, username string) (*user.UserDTO, error) {
		return nil, h.Socials.Unblock(c.Request.Context(), selfID, username)
	})
}
