package repository

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	models "tycord/internal/social/model"
	usermodels "tycord/internal/user/model"
	"tycord/pkg/logger"
)

var testDB *bun.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("tycord"),
		postgres.WithUsername("tycord"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connection string: %v", err)
		return
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	tables := []any{
		(*usermodels.User)(nil),
		(*models.FriendEdge)(nil),
		(*models.FriendRequest)(nil),
		(*models.BlockEdge)(nil),
	}
	for _, tbl := range tables {
		if _, err := testDB.NewCreateTable().Model(tbl).IfNotExists().Exec(ctx); err != nil {
			testDB.Close()
			log.Fatalf("failed to create table for %T: %v", tbl, err)
		}
	}

	code := m.Run()
	testDB.Close()
	os.Exit(code)
}

func truncateAll(t *testing.T) {
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(),
			`TRUNCATE TABLE users, friend_edges, friend_requests, block_edges CASCADE`)
		require.NoError(t, err)
	})
}

func seedUser(t *testing.T, username string) *usermodels.User {
	t.Helper()
	u := &usermodels.User{
		Username: username,
		Nickname: username,
		Email:    username + "@example.com",
		Password: "hash",
	}
	_, err := testDB.NewInsert().Model(u).Returning("*").Exec(context.Background())
	require.NoError(t, err)
	return u
}

func countRows(t *testing.T, model any) int {
	t.Helper()
	n, err := testDB.NewSelect().Model(model).Count(context.Background())
	require.NoError(t, err)
	return n
}

func Test_CreateRequest(t *testing.T) {
	truncateAll(t)
	repo := NewSocialRepository(testDB, &logger.Logger{})
	ctx := context.Background()

	a := seedUser(t, "alice")
	b := seedUser(t, "bob")

	require.NoError(t, repo.CreateRequest(ctx, a.ID, b.ID))

	t.Run("duplicate same direction", func(t *testing.T) {
		err := repo.CreateRequest(ctx, a.ID, b.ID)
		assert.True(t, errors.Is(err, ErrRelationExists))
	})

	t.Run("duplicate reverse direction", func(t *testing.T) {
		err := repo.CreateRequest(ctx, b.ID, a.ID)
		assert.True(t, errors.Is(err, ErrRelationExists))
	})

	assert.Equal(t, 1, countRows(t, (*models.FriendRequest)(nil)))
}

func Test_CreateRequest_BlockedPair(t *testing.T) {
	truncateAll(t)
	repo := NewSocialRepository(testDB, &logger.Logger{})
	ctx := context.Background()

	a := seedUser(t, "alice")
	b := seedUser(t, "bob")

	require.NoError(t, repo.CreateBlock(ctx, b.ID, a.ID))

	// The block hides b from a regardless of direction.
	err := repo.CreateRequest(ctx, a.ID, b.ID)
	assert.True(t, errors.Is(err, ErrRelationExists))
}

func Test_PromoteRequest(t *testing.T) {
	truncateAll(t)
	repo := NewSocialRepository(testDB, &logger.Logger{})
	ctx := context.Background()

	a := seedUser(t, "alice")
	b := seedUser(t, "bob")

	require.NoError(t, repo.CreateRequest(ctx, a.ID, b.ID))
	require.NoError(t, repo.PromoteRequest(ctx, a.ID, b.ID))

	assert.Equal(t, 0, countRows(t, (*models.FriendRequest)(nil)))
	assert.Equal(t, 1, countRows(t, (*models.FriendEdge)(nil)))

	friends, err := repo.ListFriends(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "bob", friends[0].Username)

	// Symmetric: the edge shows up from the other side too.
	friends, err = repo.ListFriends(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "alice", friends[0].Username)
}

func Test_PromoteRequest_NoPending(t *testing.T) {
	truncateAll(t)
	repo := NewSocialRepository(testDB, &logger.Logger{})

	a := seedUser(t, "alice")
	b := seedUser(t, "bob")

	err := repo.PromoteRequest(context.Background(), a.ID, b.ID)
	assert.True(t, errors.Is(err, ErrRequestNotFound))
}

func Test_DeleteRequest(t *testing.T) {
	truncateAll(t)
	repo := NewSocialRepository(testDB, &logger.Logger{})
	ctx := context.Background()

	a := seedUser(t, "alice")
	b := seedUser(t, "bob")

	require.NoError(t, repo.CreateRequest(ctx, a.ID, b.ID))
	require.NoError(t, repo.DeleteRequest(ctx, a.ID, b.ID))

	err := repo.DeleteRequest(ctx, a.ID, b.ID)
	assert.True(t, errors.Is(err, ErrRequestNotFound))
}

func Test_CreateBlock_PurgesRelations(t *testing.T) {
	truncateAll(t)
	repo := NewSocialRepository(testDB, &logger.Logger{})
	ctx := context.Background()

	a := seedUser(t, "alice")
	b := seedUser(t, "bob")

	// Friendship plus a stale reverse request, all of which must vanish.
	require.NoError(t, repo.CreateRequest(ctx, a.ID, b.ID))
	require.NoError(t, repo.PromoteRequest(ctx, a.ID, b.ID))
	_, err := testDB.NewInsert().
		Model(&models.FriendRequest{RequesterID: b.ID, ReceiverID: a.ID}).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.CreateBlock(ctx, a.ID, b.ID))

	assert.Equal(t, 0, countRows(t, (*models.FriendEdge)(nil)))
	assert.Equal(t, 0, countRows(t, (*models.FriendRequest)(nil)))
	assert.Equal(t, 1, countRows(t, (*models.BlockEdge)(nil)))

	blocked, err := repo.ListBlocked(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, blocked, 1)
	assert.Equal(t, "bob", blocked[0].Username)

	// The blocked side sees nothing.
	blocked, err = repo.ListBlocked(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, blocked)
}

func Test_DeleteBlock(t *testing.T) {
	truncateAll(t)
	repo := NewSocialRepository(testDB, &logger.Logger{})
	ctx := context.Background()

	a := seedUser(t, "alice")
	b := seedUser(t, "bob")

	require.NoError(t, repo.CreateBlock(ctx, a.ID, b.ID))
	require.NoError(t, repo.CreateBlock(ctx, b.ID, a.ID))

	// Unblocking removes only the caller's edge; the reverse block stays.
	require.NoError(t, repo.DeleteBlock(ctx, a.ID, b.ID))
	assert.Equal(t, 1, countRows(t, (*models.BlockEdge)(nil)))

	err := repo.DeleteBlock(ctx, a.ID, b.ID)
	assert.True(t, errors.Is(err, ErrBlockNotFound))
}

func Test_ListRequests(t *testing.T) {
	truncateAll(t)
	repo := NewSocialRepository(testDB, &logger.Logger{})
	ctx := context.Background()

	a := seedUser(t, "alice")
	b := seedUser(t, "bob")
	c := seedUser(t, "carol")

	require.NoError(t, repo.CreateRequest(ctx, a.ID, b.ID))
	require.NoError(t, repo.CreateRequest(ctx, c.ID, a.ID))

	outgoing, err := repo.ListOutgoingRequests(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, outgoing, 1)
	assert.Equal(t, "bob", outgoing[0].Username)

	incoming, err := repo.ListIncomingRequests(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, "carol", incoming[0].Username)
}

func Test_GetUserByUsername(t *testing.T) {
	truncateAll(t)
	repo := NewSocialRepository(testDB, &logger.Logger{})
	ctx := context.Background()

	a := seedUser(t, "alice")

	fetched, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, a.ID, fetched.ID)

	_, err = repo.GetUserByUsername(ctx, "ghost")
	assert.True(t, errors.Is(err, ErrUserNotFound))

	_, err = repo.GetUserByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func Test_CreateRequest_MutualRace(t *testing.T) {
	truncateAll(t)
	repo := NewSocialRepository(testDB, &logger.Logger{})
	ctx := context.Background()

	a := seedUser(t, "alice")
	b := seedUser(t, "bob")

	// Both directions fire at once; the pair lock serializes them so the
	// loser sees the winner's request and conflicts.
	start := make(chan struct{})
	errs := make(chan error, 2)
	go func() {
		<-start
		errs <- repo.CreateRequest(ctx, a.ID, b.ID)
	}()
	go func() {
		<-start
		errs <- repo.CreateRequest(ctx, b.ID, a.ID)
	}()
	close(start)

	conflicts := 0
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			require.True(t, errors.Is(err, ErrRelationExists))
			conflicts++
		}
	}
	assert.Equal(t, 1, conflicts)
	assert.Equal(t, 1, countRows(t, (*models.FriendRequest)(nil)))
}

func Test_CreateBlock_RacingAccept(t *testing.T) {
	truncateAll(t)
	repo := NewSocialRepository(testDB, &logger.Logger{})
	ctx := context.Background()

	a := seedUser(t, "alice")
	b := seedUser(t, "bob")
	require.NoError(t, repo.CreateRequest(ctx, a.ID, b.ID))

	start := make(chan struct{})
	acceptErr := make(chan error, 1)
	blockErr := make(chan error, 1)
	go func() {
		<-start
		acceptErr <- repo.PromoteRequest(ctx, a.ID, b.ID)
	}()
	go func() {
		<-start
		blockErr <- repo.CreateBlock(ctx, b.ID, a.ID)
	}()
	close(start)

	// The accept either lands before the block purges the edge or loses
	// the request row to it; both orders are legal.
	if err := <-acceptErr; err != nil {
		require.True(t, errors.Is(err, ErrRequestNotFound))
	}
	require.NoError(t, <-blockErr)

	// Whatever the order, the block wins: no friendship or request survives
	// next to the block edge.
	assert.Equal(t, 0, countRows(t, (*models.FriendEdge)(nil)))
	assert.Equal(t, 0, countRows(t, (*models.FriendRequest)(nil)))
	assert.Equal(t, 1, countRows(t, (*models.BlockEdge)(nil)))
}
