package usecase

import (
	"context"

	"github.com/google/uuid"

	"tycord/internal/social"
	"tycord/internal/social/repository"
	"tycord/internal/user"
	usermodels "tycord/internal/user/model"
	"tycord/pkg/errors"
	"tycord/pkg/logger"
)

type SocialUsecase struct {
	repo   social.Repository
	logger *logger.Logger
}

func NewSocialUsecase(repo social.Repository, logger *logger.Logger) *SocialUsecase {
	return &SocialUsecase{repo: repo, logger: logger}
}

// resolveTarget looks the counterpart up by username and rejects
// self-references with the given error.
func (uc *SocialUsecase) resolveTarget(ctx context.Context, selfID uuid.UUID, username string, selfErr error) (*usermodels.User, error) {
	target, err := uc.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("database error resolving user", "username", username, "err", err)
		return nil, errors.Internal("internal server error")
	}
	if target.ID == selfID {
		return nil, selfErr
	}
	return target, nil
}

func (uc *SocialUsecase) SendRequest(ctx context.Context, requesterID uuid.UUID, targetUsername string) (*user.UserDTO, error) {
	// A request to yourself is treated the same as a request to nobody.
	target, err := uc.resolveTarget(ctx, requesterID, targetUsername, errors.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateRequest(ctx, requesterID, target.ID); err != nil {
		if errors.Is(err, repository.ErrRelationExists) {
			return nil, errors.ErrRelationExists
		}
		uc.logger.Error("failed to create friend request", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return toDTO(target), nil
}

func (uc *SocialUsecase) AcceptRequest(ctx context.Context, receiverID uuid.UUID, requesterUsername string) (*user.UserDTO, error) {
	requester, err := uc.resolveTarget(ctx, receiverID, requesterUsername, errors.ErrRequestNotFound)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.PromoteRequest(ctx, requester.ID, receiverID); err != nil {
		switch {
		case errors.Is(err, repository.ErrRequestNotFound):
			return nil, errors.ErrRequestNotFound
		case errors.Is(err, repository.ErrRelationExists):
			return nil, errors.ErrRelationExists
		}
		uc.logger.Error("failed to accept friend request", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return toDTO(requester), nil
}

func (uc *SocialUsecase) DeclineRequest(ctx context.Context, receiverID uuid.UUID, requesterUsername string) (*user.UserDTO, error) {
	requester, err := uc.resolveTarget(ctx, receiverID, requesterUsername, errors.ErrRequestNotFound)
	if err != nil {
		return nil, err
	}
	if err := uc.deleteRequest(ctx, requester.ID, receiverID); err != nil {
		return nil, err
	}
	return toDTO(requester), nil
}

func (uc *SocialUsecase) CancelRequest(ctx context.Context, requesterID uuid.UUID, receiverUsername string) (*user.UserDTO, error) {
	receiver, err := uc.resolveTarget(ctx, requesterID, receiverUsername, errors.ErrRequestNotFound)
	if err != nil {
		return nil, err
	}
	if err := uc.deleteRequest(ctx, requesterID, receiver.ID); err != nil {
		return nil, err
	}
	return toDTO(receiver), nil
}

func (uc *SocialUsecase) deleteRequest(ctx context.Context, requesterID, receiverID uuid.UUID) error {
	if err := uc.repo.DeleteRequest(ctx, requesterID, receiverID); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return errors.ErrRequestNotFound
		}
		uc.logger.Error("failed to delete friend request", "err", err)
		return errors.Internal("internal server error")
	}
	return nil
}

func (uc *SocialUsecase) Unfriend(ctx context.Context, userID uuid.UUID, otherUsername string) (*user.UserDTO, error) {
	other, err := uc.resolveTarget(ctx, userID, otherUsername, errors.ErrFriendNotFound)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.DeleteFriendEdge(ctx, userID, other.ID); err != nil {
		if errors.Is(err, repository.ErrFriendNotFound) {
			return nil, errors.ErrFriendNotFound
		}
		uc.logger.Error("failed to unfriend", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return toDTO(other), nil
}

func (uc *SocialUsecase) Block(ctx context.Context, userID uuid.UUID, targetUsername string) (*user.UserDTO, error) {
	target, err := uc.resolveTarget(ctx, userID, targetUsername, errors.ErrSelfRelation)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateBlock(ctx, userID, target.ID); err != nil {
		if errors.Is(err, repository.ErrRelationExists) {
			return nil, errors.ErrRelationExists
		}
		uc.logger.Error("failed to block user", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return toDTO(target), nil
}

func (uc *SocialUsecase) Unblock(ctx context.Context, userID uuid.UUID, targetUsername string) error {
	target, err := uc.resolveTarget(ctx, userID, targetUsername, errors.ErrBlockNotFound)
	if err != nil {
		return err
	}

	// Only the caller's own block edge is removed; a reverse block, and any
	// prior friendship, stay gone.
	if err := uc.repo.DeleteBlock(ctx, userID, target.ID); err != nil {
		if errors.Is(err, repository.ErrBlockNotFound) {
			return errors.ErrBlockNotFound
		}
		uc.logger.Error("failed to unblock user", "err", err)
		return errors.Internal("internal server error")
	}
	return nil
}

func (uc *SocialUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*social.ProfileDTO, error) {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("database error loading profile", "err", err)
		return nil, errors.Internal("internal server error")
	}

	friends, err := uc.repo.ListFriends(ctx, userID)
	if err != nil {
		uc.logger.Error("database error listing friends", "err", err)
		return nil, errors.Internal("internal server error")
	}
	incoming, err := uc.repo.ListIncomingRequests(ctx, userID)
	if err != nil {
		uc.logger.Error("database error listing incoming requests", "err", err)
		return nil, errors.Internal("internal server error")
	}
	outgoing, err := uc.repo.ListOutgoingRequests(ctx, userID)
	if err != nil {
		uc.logger.Error("database error listing outgoing requests", "err", err)
		return nil, errors.Internal("internal server error")
	}
	blocked, err := uc.repo.ListBlocked(ctx, userID)
	if err != nil {
		uc.logger.Error("database error listing blocked users", "err", err)
		return nil, errors.Internal("internal server error")
	}

	return &social.ProfileDTO{
		Username:           u.Username,
		Nickname:           u.Nickname,
		Avatar:             u.Avatar,
		Bio:                u.Bio,
		CreatedAt:          u.CreatedAt,
		Friends:            toDTOs(friends),
		FriendRequests:     toDTOs(incoming),
		FriendRequestsSent: toDTOs(outgoing),
		BlockedUsers:       toDTOs(blocked),
	}, nil
}

func toDTO(u *usermodels.User) *user.UserDTO {
	return &user.UserDTO{
		ID:       u.ID,
		Username: u.Username,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
		Bio:      u.Bio,
	}
}

func toDTOs(users []usermodels.User) []user.UserDTO {
	dtos := make([]user.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, *toDTO(&users[i]))
	}
	return dtos
}
