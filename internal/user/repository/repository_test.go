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

	"tycord/internal/user"
	models "tycord/internal/user/model"
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

	if _, err := testDB.NewCreateTable().Model((*models.User)(nil)).IfNotExists().Exec(ctx); err != nil {
		testDB.Close()
		log.Fatalf("failed to create users table: %v", err)
	}

	code := m.Run()
	testDB.Close()
	os.Exit(code)
}

func truncateUsers(t *testing.T) {
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE users CASCADE`)
		require.NoError(t, err)
	})
}

func seedUser(t *testing.T, repo *UserRepository, username string) *models.User {
	t.Helper()
	u := &models.User{
		Username: username,
		Nickname: username,
		Email:    username + "@example.com",
		Password: "hash",
	}
	require.NoError(t, repo.CreateUser(context.Background(), u))
	return u
}

func Test_CreateUser(t *testing.T) {
	truncateUsers(t)
	repo := NewUserRepository(testDB, &logger.Logger{})

	u := seedUser(t, repo, "ty")
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.False(t, u.CreatedAt.IsZero())
}

func Test_CreateUser_DuplicateUsername(t *testing.T) {
	truncateUsers(t)
	repo := NewUserRepository(testDB, &logger.Logger{})

	seedUser(t, repo, "ty")

	dup := &models.User{Username: "ty", Nickname: "other", Email: "other@example.com", Password: "hash"}
	err := repo.CreateUser(context.Background(), dup)
	assert.True(t, errors.Is(err, ErrDuplicate))
}

func Test_GetUserByEmail(t *testing.T) {
	truncateUsers(t)
	repo := NewUserRepository(testDB, &logger.Logger{})

	u := seedUser(t, repo, "ty")

	fetched, err := repo.GetUserByEmail(context.Background(), u.Email)
	require.NoError(t, err)
	assert.Equal(t, u.ID, fetched.ID)

	_, err = repo.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func Test_UpdateProfile(t *testing.T) {
	truncateUsers(t)
	repo := NewUserRepository(testDB, &logger.Logger{})

	u := seedUser(t, repo, "ty")

	newBio := "hello there"
	newNickname := "Tyrone"
	err := repo.UpdateProfile(context.Background(), u.ID, user.ProfileDelta{
		Bio:      &newBio,
		Nickname: &newNickname,
	})
	require.NoError(t, err)

	updated, err := repo.GetUserByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, newBio, updated.Bio)
	assert.Equal(t, newNickname, updated.Nickname)
	// Untouched columns keep their values.
	assert.Equal(t, u.Username, updated.Username)
	assert.Equal(t, u.Email, updated.Email)
}

func Test_UpdateProfile_UnknownUser(t *testing.T) {
	truncateUsers(t)
	repo := NewUserRepository(testDB, &logger.Logger{})

	bio := "bio"
	err := repo.UpdateProfile(context.Background(), uuid.New(), user.ProfileDelta{Bio: &bio})
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func Test_Exists(t *testing.T) {
	truncateUsers(t)
	repo := NewUserRepository(testDB, &logger.Logger{})

	u := seedUser(t, repo, "ty")

	taken, err := repo.UsernameExists(context.Background(), u.Username)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.EmailExists(context.Background(), "free@example.com")
	require.NoError(t, err)
	assert.False(t, taken)
}
