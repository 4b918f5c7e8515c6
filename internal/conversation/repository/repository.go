package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"tycord/internal/conversation"
	models "tycord/internal/conversation/model"
	usermodels "tycord/internal/user/model"
	"tycord/pkg/logger"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("user is not a participant")
)

type ConversationRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewConversationRepository(db *bun.DB, logger *logger.Logger) *ConversationRepository {
	return &ConversationRepository{db: db, logger: logger}
}

func (r *ConversationRepository) FindRecipients(ctx context.Context, creatorID uuid.UUID, usernames []string) ([]usermodels.User, error) {
	if len(usernames) == 0 {
		return nil, nil
	}

	var recipients []usermodels.User
	err := r.db.NewSelect().Model(&recipients).
		Where("username IN (?)", bun.In(usernames)).
		Where(`NOT EXISTS (
			SELECT 1 FROM block_edges b
			WHERE (b.blocker_id = "user".id AND b.blocked_id = ?)
			   OR (b.blocker_id = ? AND b.blocked_id = "user".id)
		)`, creatorID, creatorID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "convoRepo.FindRecipients.Scan")
	}
	return recipients, nil
}

func (r *ConversationRepository) CreateConversation(ctx context.Context, convo *models.Conversation, memberIDs []uuid.UUID) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(convo).Returning("*").Exec(ctx); err != nil {
			return errors.Wrap(err, "convoRepo.CreateConversation.InsertConversation")
		}

		participants := make([]models.Participant, 0, len(memberIDs))
		for _, id := range memberIDs {
			participants = append(participants, models.Participant{
				ConversationID: convo.ID,
				UserID:         id,
			})
		}
		if _, err := tx.NewInsert().Model(&participants).Exec(ctx); err != nil {
			return errors.Wrap(err, "convoRepo.CreateConversation.InsertParticipants")
		}
		return nil
	})
}

func (r *ConversationRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Conversation, error) {
	var convos []models.Conversation
	err := r.db.NewSelect().Model(&convos).
		Join(`JOIN participants AS p ON p.conversation_id = "conversation".id`).
		Where("p.user_id = ?", userID).
		Order("conversation.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "convoRepo.ListForUser.Scan")
	}
	return convos, nil
}

func (r *ConversationRepository) Leave(ctx context.Context, userID, convoID uuid.UUID) (bool, error) {
	deleted := false
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		// Lock every membership row of the conversation so two concurrent
		// leaves cannot both observe a survivable count.
		var parts []models.Participant
		err := tx.NewSelect().Model(&parts).
			Where("conversation_id = ?", convoID).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			return errors.Wrap(err, "convoRepo.Leave.LockParticipants")
		}

		isMember := false
		for _, p := range parts {
			if p.UserID == userID {
				isMember = true
				break
			}
		}
		if !isMember {
			return ErrConversationNotFound
		}
		count := len(parts)

		// With two or fewer members the conversation does not survive the
		// departure. Messages go first to keep referential integrity.
		if count <= 2 {
			if _, err := tx.NewDelete().Model((*models.Message)(nil)).
				Where("conversation_id = ?", convoID).
				Exec(ctx); err != nil {
				return errors.Wrap(err, "convoRepo.Leave.DeleteMessages")
			}
			if _, err := tx.NewDelete().Model((*models.Participant)(nil)).
				Where("conversation_id = ?", convoID).
				Exec(ctx); err != nil {
				return errors.Wrap(err, "convoRepo.Leave.DeleteParticipants")
			}
			if _, err := tx.NewDelete().Model((*models.Conversation)(nil)).
				Where("id = ?", convoID).
				Exec(ctx); err != nil {
				return errors.Wrap(err, "convoRepo.Leave.DeleteConversation")
			}
			deleted = true
			return nil
		}

		if _, err := tx.NewDelete().Model((*models.Participant)(nil)).
			Where("conversation_id = ? AND user_id = ?", convoID, userID).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "convoRepo.Leave.DeleteParticipant")
		}
		return nil
	})
	return deleted, err
}

func (r *ConversationRepository) IsParticipant(ctx context.Context, userID, convoID uuid.UUID) (bool, error) {
	exists, err := r.db.NewSelect().Model((*models.Participant)(nil)).
		Where("conversation_id = ? AND user_id = ?", convoID, userID).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "convoRepo.IsParticipant")
	}
	return exists, nil
}

func (r *ConversationRepository) ParticipantIDs(ctx context.Context, convoID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.NewSelect().Model((*models.Participant)(nil)).
		Column("user_id").
		Where("conversation_id = ?", convoID).
		Scan(ctx, &ids)
	if err != nil {
		return nil, errors.Wrap(err, "convoRepo.ParticipantIDs.Scan")
	}
	return ids, nil
}

func (r *ConversationRepository) ListMessages(ctx context.Context, convoID uuid.UUID) ([]conversation.MessageDTO, error) {
	var msgs []conversation.MessageDTO
	err := r.db.NewSelect().Model((*models.Message)(nil)).
		ColumnExpr("message.id, message.content, message.created_at").
		ColumnExpr("u.username, u.nickname, u.avatar, u.bio").
		Join("JOIN users AS u ON u.id = message.author_id").
		Where("message.conversation_id = ?", convoID).
		Order("message.created_at ASC").
		Scan(ctx, &msgs)
	if err != nil {
		return nil, errors.Wrap(err, "convoRepo.ListMessages.Scan")
	}
	return msgs, nil
}

func (r *ConversationRepository) CreateMessage(ctx context.Context, authorID, convoID uuid.UUID, content string) (*conversation.MessageDTO, error) {
	msg := &models.Message{
		ConversationID: convoID,
		AuthorID:       authorID,
		Content:        content,
	}
	var dto conversation.MessageDTO
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		isMember, err := tx.NewSelect().Model((*models.Participant)(nil)).
			Where("conversation_id = ? AND user_id = ?", convoID, authorID).
			Exists(ctx)
		if err != nil {
			return errors.Wrap(err, "convoRepo.CreateMessage.MemberCheck")
		}
		if !isMember {
			return ErrNotParticipant
		}

		if _, err := tx.NewInsert().Model(msg).Returning("*").Exec(ctx); err != nil {
			return errors.Wrap(err, "convoRepo.CreateMessage.Insert")
		}

		// Read back with the author joined so callers can fan the message
		// out without a second round trip.
		err = tx.NewSelect().Model((*models.Message)(nil)).
			ColumnExpr("message.id, message.content, message.created_at").
			ColumnExpr("u.username, u.nickname, u.avatar, u.bio").
			Join("JOIN users AS u ON u.id = message.author_id").
			Where("message.id = ?", msg.ID).
			Scan(ctx, &dto)
		if err != nil {
			return errors.Wrap(err, "convoRepo.CreateMessage.ScanAuthor")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

func (r *ConversationRepository) DeleteMessage(ctx context.Context, authorID, convoID, messageID uuid.UUID) error {
	_, err := r.db.NewDelete().Model((*models.Message)(nil)).
		Where("id = ? AND author_id = ? AND conversation_id = ?", messageID, authorID, convoID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "convoRepo.DeleteMessage.Delete")
	}
	return nil
}
