//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bikepacking-api/internal/usecase/queries"
	"bikepacking-api/internal/usecase/shared"
	queriesmock "bikepacking-api/tests/mock/queries"
)

func TestWebhookEventQueries_ListEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("limitは既定値と上限に丸められる", func(t *testing.T) {
		tests := []struct {
			in   int
			want int32
		}{
			{in: 0, want: queries.DefaultEventListLimit},
			{in: -3, want: queries.DefaultEventListLimit},
			{in: 10, want: 10},
			{in: 10000, want: queries.MaxEventListLimit},
		}
		for _, tt := range tests {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockWebhookEventReadStore(ctrl)
			store.EXPECT().List(ctx, "", tt.want).Return(nil, nil)

			got, err := queries.NewWebhookEventQueries(store).ListEvents(ctx, "", tt.in)

			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		}
	})

	t.Run("不正なstatusは拒否", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockWebhookEventReadStore(ctrl)

		_, err := queries.NewWebhookEventQueries(store).ListEvents(ctx, "exploded", 10)

		assert.ErrorIs(t, err, queries.ErrInvalidEventStatus)
	})

	t.Run("レコードをビューに写す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockWebhookEventReadStore(ctrl)
		reason := "User not found for email: a@b.com"
		now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
		store.EXPECT().List(ctx, "skipped", int32(50)).Return([]shared.WebhookEventRecord{{
			EventID:   "evt_1",
			Provider:  "square",
			EventType: "payment.updated",
			Status:    "skipped",
			Reason:    &reason,
			Attempts:  2,
			Payload:   []byte(`{"type":"payment.updated"}`),
			CreatedAt: now,
			UpdatedAt: now,
		}}, nil)

		got, err := queries.NewWebhookEventQueries(store).ListEvents(ctx, "skipped", 0)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "evt_1", got[0].EventID)
		assert.Equal(t, &reason, got[0].Reason)
		assert.Equal(t, int32(2), got[0].Attempts)
		assert.JSONEq(t, `{"type":"payment.updated"}`, string(got[0].Payload))
	})
}
