package models

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

// FriendEdge is the confirmed, symmetric friendship between two users. The
// pair is stored normalized (UserAID sorts below UserBID) so one row covers
// both directions and the composite key rejects duplicates either way.
type FriendEdge struct {
	UserAID uuid.UUID `bun:",pk,type:uuid"`
	UserBID uuid.UUID `bun:",pk,type:uuid"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// FriendRequest is a directed, pending proposal. At most one row per ordered
// pair.
type FriendRequest struct {
	RequesterID uuid.UUID `bun:",pk,type:uuid"`
	ReceiverID  uuid.UUID `bun:",pk,type:uuid"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// BlockEdge is directed: the blocked side loses the ability to reach the
// blocker, not the other way around.
type BlockEdge struct {
	BlockerID uuid.UUID `bun:",pk,type:uuid"`
	BlockedID uuid.UUID `bun:",pk,type:uuid"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// NormalizePair orders two user ids for FriendEdge storage.
func NormalizePair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if bytes.Compare(a[:], b[:]) > 0 {
		return b, a
	}
	return a, b
}
