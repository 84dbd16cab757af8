// internal/repository/user_repository_test.go
package repository

import (
	"context"
	"testing"

	"csgobeans/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_gormUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	db := setupRepoDB(t)
	repo := NewGormUserRepository()

	hash := "$2a$10$dummyhashdummyhashdummyha"
	user := &model.User{
		UserID:       uuid.New(),
		Username:     "alice",
		PasswordHash: &hash,
	}

	t.Run("正常系: ユーザー作成成功", func(t *testing.T) {
		err := repo.Create(ctx, db, user)
		require.NoError(t, err)
	})

	t.Run("異常系: ユーザー名の一意制約違反はErrConflict", func(t *testing.T) {
		dup := &model.User{
			UserID:   uuid.New(),
			Username: "alice",
		}
		err := repo.Create(ctx, db, dup)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("正常系: パスワードなしユーザーも作成できる", func(t *testing.T) {
		external := &model.User{
			UserID:   uuid.New(),
			Username: "steam_76561198000000001",
		}
		err := repo.Create(ctx, db, external)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, db, external.UserID)
		require.NoError(t, err)
		assert.Nil(t, found.PasswordHash)
	})
}

func Test_gormUserRepository_Find(t *testing.T) {
	ctx := context.Background()
	db := setupRepoDB(t)
	repo := NewGormUserRepository()

	user := &model.User{UserID: uuid.New(), Username: "bob"}
	require.NoError(t, repo.Create(ctx, db, user))

	t.Run("正常系: IDで取得", func(t *testing.T) {
		found, err := repo.FindByID(ctx, db, user.UserID)
		require.NoError(t, err)
		assert.Equal(t, "bob", found.Username)
	})

	t.Run("正常系: ユーザー名で取得", func(t *testing.T) {
		found, err := repo.FindByUsername(ctx, db, "bob")
		require.NoError(t, err)
		assert.Equal(t, user.UserID, found.UserID)
	})

	t.Run("異常系: 存在しないIDはErrNotFound", func(t *testing.T) {
		_, err := repo.FindByID(ctx, db, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: 存在しないユーザー名はErrNotFound", func(t *testing.T) {
		_, err := repo.FindByUsername(ctx, db, "nobody")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_gormIdentityRepository(t *testing.T) {
	ctx := context.Background()
	db := setupRepoDB(t)
	userRepo := NewGormUserRepository()
	repo := NewGormIdentityRepository()

	user := &model.User{UserID: uuid.New(), Username: "steam_123"}
	require.NoError(t, userRepo.Create(ctx, db, user))

	t.Run("正常系: 紐付け作成と解決", func(t *testing.T) {
		err := repo.Create(ctx, db, &model.ExternalIdentity{
			ExternalID: "123",
			UserID:     user.UserID,
		})
		require.NoError(t, err)

		identity, err := repo.FindByExternalID(ctx, db, "123")
		require.NoError(t, err)
		assert.Equal(t, user.UserID, identity.UserID)
	})

	t.Run("異常系: 同じ外部IDの再作成はErrConflict", func(t *testing.T) {
		err := repo.Create(ctx, db, &model.ExternalIdentity{
			ExternalID: "123",
			UserID:     uuid.New(),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("異常系: 未知の外部IDはErrNotFound", func(t *testing.T) {
		_, err := repo.FindByExternalID(ctx, db, "999")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
