package realtime

import (
	"context"

	"github.com/google/uuid"

	"tycord/internal/conversation"
	"tycord/internal/presence"
	"tycord/pkg/logger"
)

// Notifier translates committed state changes into socket events. Recipients
// are always re-derived from the store after the write, never from request
// input, so a membership change that landed first wins.
type Notifier struct {
	registry *presence.Registry
	convos   conversation.Repository
	logger   *logger.Logger
}

func NewNotifier(registry *presence.Registry, convos conversation.Repository, logger *logger.Logger) *Notifier {
	return &Notifier{registry: registry, convos: convos, logger: logger}
}

func (n *Notifier) NewConversation(ctx context.Context, dto *conversation.ConversationDTO) {
	ids, err := n.convos.ParticipantIDs(ctx, dto.ID)
	if err != nil {
		n.logger.Error("failed to resolve conversation members for fan-out", "err", err)
		return
	}
	n.registry.BroadcastToUsers(ids, presence.Event{Type: EventNewConversation, Data: dto})
}

// NewMessage echoes the full message to connections currently viewing the
// conversation and sends a bare nudge to every other participant connection,
// which refetches on receipt.
func (n *Notifier) NewMessage(ctx context.Context, convoID uuid.UUID, msg *conversation.MessageDTO) {
	ids, err := n.convos.ParticipantIDs(ctx, convoID)
	if err != nil {
		n.logger.Error("failed to resolve conversation members for fan-out", "err", err)
		return
	}
	n.registry.BroadcastToRoom(convoID, presence.Event{
		Type: EventNewMessage,
		Data: map[string]interface{}{"conversationId": convoID, "message": msg},
	}, nil)
	n.registry.BroadcastToUsersOutsideRoom(convoID, ids, presence.Event{
		Type: EventNewMessage,
		Data: map[string]interface{}{"conversationId": convoID},
	})
}

// FriendsUpdated nudges both sides of a relation change to refetch their
// social state.
func (n *Notifier) FriendsUpdated(userIDs ...uuid.UUID) {
	n.registry.BroadcastToUsers(userIDs, presence.Event{Type: EventFriendsUpdated})
}

// HandleInbound consumes one client's inbound events until the channel
// closes. Join requests are validated against current membership before the
// room subscription takes effect.
func (n *Notifier) HandleInbound(ctx context.Context, c *presence.Client, events <-chan InboundEvent) {
	for ev := range events {
		switch ev.Type {
		case EventJoinConversation:
			n.joinRoom(ctx, c, ev.ConversationID)
		case EventClosedConversation:
			n.registry.LeaveRoom(c, ev.ConversationID)
			n.ack(c, EventLeftRoom, ev.ConversationID)
		default:
			n.logger.Debug("ignoring unknown socket event", "type", ev.Type)
		}
	}
}

func (n *Notifier) joinRoom(ctx context.Context, c *presence.Client, convoID uuid.UUID) {
	isMember, err := n.convos.IsParticipant(ctx, c.UserID, convoID)
	if err != nil {
		n.logger.Error("failed to check membership for room join", "err", err)
		return
	}
	if !isMember {
		n.logger.Warn("rejected room join from non-member", "user", c.UserID, "conversation", convoID)
		return
	}
	n.registry.JoinRoom(c, convoID)
	n.ack(c, EventJoinedRoom, convoID)
}

func (n *Notifier) ack(c *presence.Client, tag string, convoID uuid.UUID) {
	ev := presence.Event{Type: tag, Data: map[string]interface{}{"conversationId": convoID}}
	select {
	case c.Send <- ev:
	default:
	}
}
