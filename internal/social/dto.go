package social

import (
	"time"

	"tycord/internal/user"
)

// ProfileDTO is the owner's view: attributes plus the resolved relation sets.
// Blocked users are only ever exposed here, never on another user's profile.
type ProfileDTO struct {
	Username  string    `json:"username"`
	Nickname  string    `json:"nickname"`
	Avatar    string    `json:"avatar"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"createdAt"`

	Friends            []user.UserDTO `json:"friends"`
	FriendRequests     []user.UserDTO `json:"friendRequests"`
	FriendRequestsSent []user.UserDTO `json:"friendRequestsSent"`
	BlockedUsers       []user.UserDTO `json:"blockedUsers"`
}
