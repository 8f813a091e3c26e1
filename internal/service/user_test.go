package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ndmitr1/EventRegistrar/internal/domain"
	"github.com/ndmitr1/EventRegistrar/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	chatID := int64(12345)
	input := domain.CreateUserInput{
		Username:       "testuser",
		Email:          "test@example.com",
		TelegramChatID: &chatID,
	}

	user, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, &chatID, user.TelegramChatID)
	assert.NotEmpty(t, user.ID)
}

func TestUserService_Create_EmptyUsername(t *testing.T) {
	svc := NewUserService(nil)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Email: "a@b.c"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_BadEmail(t *testing.T) {
	svc := NewUserService(nil)

	input := domain.CreateUserInput{Username: "user", Email: "not-an-email"}

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_RepoError(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repoErr := errors.New("db error")
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	input := domain.CreateUserInput{Username: "user", Email: "u@example.com"}

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestUserService_Create_UsernameTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	input := domain.CreateUserInput{Username: "taken", Email: "t@example.com"}

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserService_GetByID_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	expected := &domain.User{ID: "u1", Username: "alice"}
	repo.EXPECT().GetByID(mock.Anything, "u1").Return(expected, nil)

	user, err := svc.GetByID(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.GetByID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_List_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	users := []*domain.User{{ID: "u1"}, {ID: "u2"}}
	repo.EXPECT().List(mock.Anything).Return(users, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestUserService_List_Error(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.List(context.Background())

	require.Error(t, err)
}
