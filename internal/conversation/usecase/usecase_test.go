package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tycord/internal/conversation"
	"tycord/internal/conversation/mocks"
	models "tycord/internal/conversation/model"
	"tycord/internal/conversation/repository"
	usermodels "tycord/internal/user/model"
	appErrors "tycord/pkg/errors"
	"tycord/pkg/logger"
)

func newTestUsecase(t *testing.T) (*ConversationUsecase, *mocks.MockConversationRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockConversationRepository(ctrl)
	uc := &ConversationUsecase{repo: mockRepo, logger: &logger.Logger{}}
	return uc, mockRepo
}

func TestConversationUsecase_Create(t *testing.T) {
	creatorID := uuid.New()
	alice := usermodels.User{ID: uuid.New(), Username: "alice"}
	bob := usermodels.User{ID: uuid.New(), Username: "bob"}

	t.Run("happy path", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.FindRecipients(gomock.Any(), creatorID, []string{"alice", "bob"}).
			Return([]usermodels.User{alice, bob}, nil)
		g.CreateConversation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, convo *models.Conversation, memberIDs []uuid.UUID) error {
				convo.ID = uuid.New()
				assert.ElementsMatch(t, []uuid.UUID{creatorID, alice.ID, bob.ID}, memberIDs)
				return nil
			})

		dto, err := uc.Create(context.Background(), creatorID, conversation.CreateCommand{
			Name:               "the gang",
			RecipientUsernames: []string{"alice", "bob"},
		})
		require.NoError(t, err)
		assert.Equal(t, "the gang", dto.Name)
		assert.NotEqual(t, uuid.Nil, dto.ID)
	})

	t.Run("duplicate recipients collapse", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.FindRecipients(gomock.Any(), creatorID, []string{"alice"}).
			Return([]usermodels.User{alice}, nil)
		g.CreateConversation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.Create(context.Background(), creatorID, conversation.CreateCommand{
			Name:               "dupes",
			RecipientUsernames: []string{"alice", "alice", "alice"},
		})
		require.NoError(t, err)
	})

	t.Run("ghost recipient aborts creation", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		// "ghost" resolves to nobody; nothing must be created.
		mockRepo.EXPECT().FindRecipients(gomock.Any(), creatorID, []string{"alice", "ghost"}).
			Return([]usermodels.User{alice}, nil)

		_, err := uc.Create(context.Background(), creatorID, conversation.CreateCommand{
			Name:               "haunted",
			RecipientUsernames: []string{"alice", "ghost"},
		})
		assert.True(t, errors.Is(err, appErrors.ErrRecipientInvalid))
	})

	t.Run("blocked recipient aborts creation", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		// A blocked user is filtered out of the lookup, so the count check
		// fails exactly like an unknown name.
		mockRepo.EXPECT().FindRecipients(gomock.Any(), creatorID, []string{"bob"}).
			Return(nil, nil)

		_, err := uc.Create(context.Background(), creatorID, conversation.CreateCommand{
			Name:               "nope",
			RecipientUsernames: []string{"bob"},
		})
		assert.True(t, errors.Is(err, appErrors.ErrRecipientInvalid))
	})

	t.Run("blank name", func(t *testing.T) {
		uc, _ := newTestUsecase(t)

		_, err := uc.Create(context.Background(), creatorID, conversation.CreateCommand{
			Name:               "   ",
			RecipientUsernames: []string{"alice"},
		})
		assert.True(t, errors.Is(err, appErrors.ErrConversationName))
	})

	t.Run("no recipients", func(t *testing.T) {
		uc, _ := newTestUsecase(t)

		_, err := uc.Create(context.Background(), creatorID, conversation.CreateCommand{Name: "empty"})
		assert.True(t, errors.Is(err, appErrors.ErrNoRecipients))
	})
}

func TestConversationUsecase_Leave(t *testing.T) {
	userID := uuid.New()
	convoID := uuid.New()

	t.Run("member leaves large conversation", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().Leave(gomock.Any(), userID, convoID).Return(false, nil)

		deleted, err := uc.Leave(context.Background(), userID, convoID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("leaving a pair deletes it", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().Leave(gomock.Any(), userID, convoID).Return(true, nil)

		deleted, err := uc.Leave(context.Background(), userID, convoID)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("non-member", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().Leave(gomock.Any(), userID, convoID).
			Return(false, repository.ErrConversationNotFound)

		_, err := uc.Leave(context.Background(), userID, convoID)
		assert.True(t, errors.Is(err, appErrors.ErrConversationNotFound))
	})
}

func TestConversationUsecase_Messages(t *testing.T) {
	userID := uuid.New()
	convoID := uuid.New()

	t.Run("list requires membership", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().IsParticipant(gomock.Any(), userID, convoID).Return(false, nil)

		_, err := uc.ListMessages(context.Background(), userID, convoID)
		assert.True(t, errors.Is(err, appErrors.ErrNotParticipant))
		assert.Equal(t, appErrors.CodePermissionDenied, appErrors.CodeOf(err))
	})

	t.Run("list happy path", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.IsParticipant(gomock.Any(), userID, convoID).Return(true, nil)
		g.ListMessages(gomock.Any(), convoID).Return([]conversation.MessageDTO{{Content: "hi"}}, nil)

		msgs, err := uc.ListMessages(context.Background(), userID, convoID)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, "hi", msgs[0].Content)
	})

	t.Run("post rejects empty content", func(t *testing.T) {
		uc, _ := newTestUsecase(t)

		_, err := uc.PostMessage(context.Background(), userID, convoID, "  \n ")
		assert.True(t, errors.Is(err, appErrors.ErrEmptyMessage))
	})

	t.Run("post by non-member is forbidden", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().CreateMessage(gomock.Any(), userID, convoID, "hello").
			Return(nil, repository.ErrNotParticipant)

		_, err := uc.PostMessage(context.Background(), userID, convoID, "hello")
		assert.True(t, errors.Is(err, appErrors.ErrNotParticipant))
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		msgID := uuid.New()
		mockRepo.EXPECT().DeleteMessage(gomock.Any(), userID, convoID, msgID).Return(nil).Times(2)

		require.NoError(t, uc.DeleteMessage(context.Background(), userID, convoID, msgID))
		require.NoError(t, uc.DeleteMessage(context.Background(), userID, convoID, msgID))
	})
}
