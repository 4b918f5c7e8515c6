package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"tycord/internal/conversation"
	models "tycord/internal/conversation/model"
	"tycord/internal/conversation/repository"
	"tycord/pkg/errors"
	"tycord/pkg/logger"
)

type ConversationUsecase struct {
	repo   conversation.Repository
	logger *logger.Logger
}

func NewConversationUsecase(repo conversation.Repository, logger *logger.Logger) *ConversationUsecase {
	return &ConversationUsecase{repo: repo, logger: logger}
}

func (uc *ConversationUsecase) Create(ctx context.Context, creatorID uuid.UUID, cmd conversation.CreateCommand) (*conversation.ConversationDTO, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, errors.ErrConversationName
	}
	if len(cmd.RecipientUsernames) == 0 {
		return nil, errors.ErrNoRecipients
	}

	// Duplicate usernames in the request collapse to one.
	seen := make(map[string]struct{}, len(cmd.RecipientUsernames))
	usernames := make([]string, 0, len(cmd.RecipientUsernames))
	for _, name := range cmd.RecipientUsernames {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		usernames = append(usernames, name)
	}

	recipients, err := uc.repo.FindRecipients(ctx, creatorID, usernames)
	if err != nil {
		uc.logger.Error("database error resolving recipients", "err", err)
		return nil, errors.Internal("internal server error")
	}
	// Every requested name must have resolved to a reachable account.
	if len(recipients) != len(usernames) {
		return nil, errors.ErrRecipientInvalid
	}

	// The creator naming themselves is a no-op; a list of only the creator
	// produces a self-conversation, which is supported.
	memberIDs := []uuid.UUID{creatorID}
	for _, rec := range recipients {
		if rec.ID == creatorID {
			continue
		}
		memberIDs = append(memberIDs, rec.ID)
	}

	convo := &models.Conversation{
		Name:      cmd.Name,
		Image:     cmd.Image,
		CreatorID: creatorID,
	}
	if err := uc.repo.CreateConversation(ctx, convo, memberIDs); err != nil {
		uc.logger.Error("failed to create conversation", "err", err)
		return nil, errors.Internal("internal server error")
	}

	return toDTO(convo), nil
}

func (uc *ConversationUsecase) List(ctx context.Context, userID uuid.UUID) ([]conversation.ConversationDTO, error) {
	convos, err := uc.repo.ListForUser(ctx, userID)
	if err != nil {
		uc.logger.Error("database error listing conversations", "err", err)
		return nil, errors.Internal("internal server error")
	}

	dtos := make([]conversation.ConversationDTO, 0, len(convos))
	for i := range convos {
		dtos = append(dtos, *toDTO(&convos[i]))
	}
	return dtos, nil
}

func (uc *ConversationUsecase) Leave(ctx context.Context, userID, convoID uuid.UUID) (bool, error) {
	deleted, err := uc.repo.Leave(ctx, userID, convoID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return false, errors.ErrConversationNotFound
		}
		uc.logger.Error("failed to leave conversation", "err", err)
		return false, errors.Internal("internal server error")
	}
	return deleted, nil
}

func (uc *ConversationUsecase) ListMessages(ctx context.Context, userID, convoID uuid.UUID) ([]conversation.MessageDTO, error) {
	isMember, err := uc.repo.IsParticipant(ctx, userID, convoID)
	if err != nil {
		uc.logger.Error("database error checking membership", "err", err)
		return nil, errors.Internal("internal server error")
	}
	if !isMember {
		return nil, errors.ErrNotParticipant
	}

	msgs, err := uc.repo.ListMessages(ctx, convoID)
	if err != nil {
		uc.logger.Error("database error listing messages", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return msgs, nil
}

func (uc *ConversationUsecase) PostMessage(ctx context.Context, userID, convoID uuid.UUID, content string) (*conversation.MessageDTO, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.ErrEmptyMessage
	}

	msg, err := uc.repo.CreateMessage(ctx, userID, convoID, content)
	if err != nil {
		if errors.Is(err, repository.ErrNotParticipant) {
			return nil, errors.ErrNotParticipant
		}
		uc.logger.Error("failed to post message", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return msg, nil
}

// DeleteMessage succeeds when no matching row exists: deleting an already
// deleted message is a no-op, not an error.
func (uc *ConversationUsecase) DeleteMessage(ctx context.Context, userID, convoID, messageID uuid.UUID) error {
	if err := uc.repo.DeleteMessage(ctx, userID, convoID, messageID); err != nil {
		uc.logger.Error("failed to delete message", "err", err)
		return errors.Internal("internal server error")
	}
	return nil
}

func toDTO(c *models.Conversation) *conversation.ConversationDTO {
	return &conversation.ConversationDTO{
		ID:    c.ID,
		Name:  c.Name,
		Image: c.Image,
	}
}
