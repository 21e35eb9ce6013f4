//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bikepacking-api/internal/infra"
	"bikepacking-api/internal/pkg/accesskey"
	"bikepacking-api/internal/usecase/queries"
	queriesmock "bikepacking-api/tests/mock/queries"
)

func TestPurchaseQueries_AccessKey(t *testing.T) {
	ctx := context.Background()

	t.Run("最初の購入のキーを返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPurchaseReadStore(ctrl)
		store.EXPECT().FirstAccessKey(ctx, int64(7), int64(42)).Return("first-key", nil)

		key, err := queries.NewPurchaseQueries(store).AccessKey(ctx, 7, 42)

		require.NoError(t, err)
		assert.Equal(t, "first-key", key)
	})

	t.Run("未購入はErrPurchaseNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPurchaseReadStore(ctrl)
		store.EXPECT().FirstAccessKey(ctx, int64(7), int64(42)).
			Return("", infra.WrapRepoErr("purchase not found", nil, infra.KindNotFound))

		_, err := queries.NewPurchaseQueries(store).AccessKey(ctx, 7, 42)

		assert.ErrorIs(t, err, queries.ErrPurchaseNotFound)
	})

	t.Run("DB障害はそのまま返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPurchaseReadStore(ctrl)
		dbErr := infra.WrapRepoErr("failed to get access key", errors.New("connection reset"))
		store.EXPECT().FirstAccessKey(ctx, int64(7), int64(42)).Return("", dbErr)

		_, err := queries.NewPurchaseQueries(store).AccessKey(ctx, 7, 42)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, queries.ErrPurchaseNotFound)
	})
}

func TestPurchaseQueries_ValidateAccessKey(t *testing.T) {
	ctx := context.Background()
	key, err := accesskey.Generate()
	require.NoError(t, err)

	t.Run("形式が不正なキーはストアを参照しない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPurchaseReadStore(ctrl)

		res, err := queries.NewPurchaseQueries(store).ValidateAccessKey(ctx, "short", 42)

		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Nil(t, res.UserID)
	})

	t.Run("一致する購入があれば所有者を返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPurchaseReadStore(ctrl)
		store.EXPECT().AccessKeyOwner(ctx, key, int64(42)).Return(int64(7), nil)

		res, err := queries.NewPurchaseQueries(store).ValidateAccessKey(ctx, key, 42)

		require.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Equal(t, int64(7), *res.UserID)
	})

	t.Run("別の本のキーは無効", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPurchaseReadStore(ctrl)
		store.EXPECT().AccessKeyOwner(ctx, key, int64(43)).
			Return(int64(0), infra.WrapRepoErr("access key not found", nil, infra.KindNotFound))

		res, err := queries.NewPurchaseQueries(store).ValidateAccessKey(ctx, key, 43)

		require.NoError(t, err)
		assert.False(t, res.Valid)
	})
}
