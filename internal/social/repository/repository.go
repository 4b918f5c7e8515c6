package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"tycord/internal/database"
	models "tycord/internal/social/model"
	usermodels "tycord/internal/user/model"
	"tycord/pkg/logger"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrRequestNotFound = errors.New("friend request not found")
	ErrFriendNotFound  = errors.New("friendship not found")
	ErrBlockNotFound   = errors.New("block not found")
	ErrRelationExists  = errors.New("relation already exists between the pair")
)

type SocialRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewSocialRepository(db *bun.DB, logger *logger.Logger) *SocialRepository {
	return &SocialRepository{db: db, logger: logger}
}

func (r *SocialRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*usermodels.User, error) {
	u := new(usermodels.User)
	err := r.db.NewSelect().Model(u).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "socialRepo.GetUserByID.Scan")
	}
	return u, nil
}

func (r *SocialRepository) GetUserByUsername(ctx context.Context, username string) (*usermodels.User, error) {
	u := new(usermodels.User)
	err := r.db.NewSelect().Model(u).Where("username = ?", username).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "socialRepo.GetUserByUsername.Scan")
	}
	return u, nil
}

// lockPair takes the two user rows FOR UPDATE in normalized order so
// concurrent relation mutations on the same pair serialize instead of
// interleaving. Every multi-step pair mutation must call this first.
func lockPair(ctx context.Context, tx bun.Tx, a, b uuid.UUID) error {
	lo, hi := models.NormalizePair(a, b)
	for _, id := range []uuid.UUID{lo, hi} {
		err := tx.NewSelect().Model((*usermodels.User)(nil)).
			Column("id").
			Where("id = ?", id).
			For("UPDATE").
			Scan(ctx, new(uuid.UUID))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrUserNotFound
			}
			return errors.Wrap(err, "socialRepo.lockPair.Scan")
		}
	}
	return nil
}

// relationExists reports whether any friend edge, request or block exists
// between the pair, in either direction. Runs on the caller's transaction.
func relationExists(ctx context.Context, tx bun.Tx, a, b uuid.UUID) (bool, error) {
	lo, hi := models.NormalizePair(a, b)

	exists, err := tx.NewSelect().Model((*models.FriendEdge)(nil)).
		Where("user_a_id = ? AND user_b_id = ?", lo, hi).
		Exists(ctx)
	if err != nil || exists {
		return exists, err
	}

	exists, err = tx.NewSelect().Model((*models.FriendRequest)(nil)).
		Where("(requester_id = ? AND receiver_id = ?) OR (requester_id = ? AND receiver_id = ?)", a, b, b, a).
		Exists(ctx)
	if err != nil || exists {
		return exists, err
	}

	return tx.NewSelect().Model((*models.BlockEdge)(nil)).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)", a, b, b, a).
		Exists(ctx)
}

func (r *SocialRepository) CreateRequest(ctx context.Context, requesterID, receiverID uuid.UUID) error {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := lockPair(ctx, tx, requesterID, receiverID); err != nil {
			return err
		}

		exists, err := relationExists(ctx, tx, requesterID, receiverID)
		if err != nil {
			return errors.Wrap(err, "socialRepo.CreateRequest.relationExists")
		}
		if exists {
			return ErrRelationExists
		}

		req := &models.FriendRequest{RequesterID: requesterID, ReceiverID: receiverID}
		if _, err := tx.NewInsert().Model(req).Exec(ctx); err != nil {
			if database.IsUniqueViolation(err) {
				return ErrRelationExists
			}
			return errors.Wrap(err, "socialRepo.CreateRequest.Insert")
		}
		return nil
	})
	return err
}

func (r *SocialRepository) PromoteRequest(ctx context.Context, requesterID, receiverID uuid.UUID) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := lockPair(ctx, tx, requesterID, receiverID); err != nil {
			return err
		}

		res, err := tx.NewDelete().Model((*models.FriendRequest)(nil)).
			Where("requester_id = ? AND receiver_id = ?", requesterID, receiverID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "socialRepo.PromoteRequest.DeleteRequest")
		}
		if rows, err := res.RowsAffected(); err == nil && rows == 0 {
			return ErrRequestNotFound
		}

		lo, hi := models.NormalizePair(requesterID, receiverID)
		edge := &models.FriendEdge{UserAID: lo, UserBID: hi}
		if _, err := tx.NewInsert().Model(edge).Exec(ctx); err != nil {
			if database.IsUniqueViolation(err) {
				return ErrRelationExists
			}
			return errors.Wrap(err, "socialRepo.PromoteRequest.InsertEdge")
		}
		return nil
	})
}

func (r *SocialRepository) DeleteRequest(ctx context.Context, requesterID, receiverID uuid.UUID) error {
	res, err := r.db.NewDelete().Model((*models.FriendRequest)(nil)).
		Where("requester_id = ? AND receiver_id = ?", requesterID, receiverID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "socialRepo.DeleteRequest.Delete")
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (r *SocialRepository) DeleteFriendEdge(ctx context.Context, a, b uuid.UUID) error {
	lo, hi := models.NormalizePair(a, b)
	res, err := r.db.NewDelete().Model((*models.FriendEdge)(nil)).
		Where("user_a_id = ? AND user_b_id = ?", lo, hi).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "socialRepo.DeleteFriendEdge.Delete")
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrFriendNotFound
	}
	return nil
}

func (r *SocialRepository) CreateBlock(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := lockPair(ctx, tx, blockerID, blockedID); err != nil {
			return err
		}

		block := &models.BlockEdge{BlockerID: blockerID, BlockedID: blockedID}
		if _, err := tx.NewInsert().Model(block).Exec(ctx); err != nil {
			if database.IsUniqueViolation(err) {
				return ErrRelationExists
			}
			return errors.Wrap(err, "socialRepo.CreateBlock.Insert")
		}

		lo, hi := models.NormalizePair(blockerID, blockedID)
		if _, err := tx.NewDelete().Model((*models.FriendEdge)(nil)).
			Where("user_a_id = ? AND user_b_id = ?", lo, hi).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "socialRepo.CreateBlock.DeleteEdge")
		}

		if _, err := tx.NewDelete().Model((*models.FriendRequest)(nil)).
			Where("(requester_id = ? AND receiver_id = ?) OR (requester_id = ? AND receiver_id = ?)",
				blockerID, blockedID, blockedID, blockerID).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "socialRepo.CreateBlock.DeleteRequests")
		}
		return nil
	})
}

func (r *SocialRepository) DeleteBlock(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	res, err := r.db.NewDelete().Model((*models.BlockEdge)(nil)).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "socialRepo.DeleteBlock.Delete")
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrBlockNotFound
	}
	return nil
}

func (r *SocialRepository) ListFriends(ctx context.Context, userID uuid.UUID) ([]usermodels.User, error) {
	var friends []usermodels.User
	err := r.db.NewSelect().Model(&friends).
		Join(`JOIN friend_edges AS e ON e.user_a_id = "user".id OR e.user_b_id = "user".id`).
		Where("(e.user_a_id = ? OR e.user_b_id = ?)", userID, userID).
		Where(`"user".id != ?`, userID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "socialRepo.ListFriends.Scan")
	}
	return friends, nil
}

func (r *SocialRepository) ListIncomingRequests(ctx context.Context, userID uuid.UUID) ([]usermodels.User, error) {
	var requesters []usermodels.User
	err := r.db.NewSelect().Model(&requesters).
		Join(`JOIN friend_requests AS fr ON fr.requester_id = "user".id`).
		Where("fr.receiver_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "socialRepo.ListIncomingRequests.Scan")
	}
	return requesters, nil
}

func (r *SocialRepository) ListOutgoingRequests(ctx context.Context, userID uuid.UUID) ([]usermodels.User, error) {
	var receivers []usermodels.User
	err := r.db.NewSelect().Model(&receivers).
		Join(`JOIN friend_requests AS fr ON fr.receiver_id = "user".id`).
		Where("fr.requester_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "socialRepo.ListOutgoingRequests.Scan")
	}
	return receivers, nil
}

func (r *SocialRepository) ListBlocked(ctx context.Context, userID uuid.UUID) ([]usermodels.User, error) {
	var blocked []usermodels.User
	err := r.db.NewSelect().Model(&blocked).
		Join(`JOIN block_edges AS b ON b.blocked_id = "user".id`).
		Where("b.blocker_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "socialRepo.ListBlocked.Scan")
	}
	return blocked, nil
}
