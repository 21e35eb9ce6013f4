//go:build unit

package purchase_test

import (
	"testing"

	"bikepacking-api/internal/domain/purchase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedKey string

func (k fixedKey) Generate() (string, error) { return string(k), nil }

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }

func TestNewPurchase(t *testing.T) {
	t.Run("Square決済の購入を生成できる", func(t *testing.T) {
		p, err := purchase.NewPurchase(fixedKey("key-1"), 10, 7, purchase.Payment{
			ID:       strPtr("pay_1"),
			Provider: purchase.ProviderSquare,
			Amount:   i64Ptr(1500),
			Currency: strPtr("gbp"),
		})
		require.NoError(t, err)

		assert.Equal(t, int64(10), p.UserID())
		assert.Equal(t, int64(7), p.BookID())
		assert.Equal(t, "key-1", p.AccessKey())
		assert.Equal(t, "pay_1", *p.Payment().ID)
		assert.Equal(t, "GBP", *p.Payment().Currency)
	})

	t.Run("金額のみ指定時は通貨がGBPになる", func(t *testing.T) {
		p, err := purchase.NewPurchase(fixedKey("k"), 1, 1, purchase.Payment{
			ID:       strPtr("pay_2"),
			Provider: purchase.ProviderSquare,
			Amount:   i64Ptr(999),
		})
		require.NoError(t, err)
		require.NotNil(t, p.Payment().Currency)
		assert.Equal(t, purchase.DefaultCurrency, *p.Payment().Currency)
	})

	t.Run("手動付与は決済IDなしで生成できる", func(t *testing.T) {
		p, err := purchase.NewPurchase(fixedKey("k"), 1, 2, purchase.Payment{Provider: purchase.ProviderManual, ID: strPtr("  ")})
		require.NoError(t, err)
		assert.Nil(t, p.Payment().ID)
		assert.Nil(t, p.Payment().Currency)
	})

	tests := []struct {
		name    string
		userID  int64
		bookID  int64
		payment purchase.Payment
		errIs   error
	}{
		{name: "ユーザーID不正", userID: 0, bookID: 1, payment: purchase.Payment{Provider: purchase.ProviderManual}, errIs: purchase.ErrInvalidUserID},
		{name: "書籍ID不正", userID: 1, bookID: -1, payment: purchase.Payment{Provider: purchase.ProviderManual}, errIs: purchase.ErrInvalidBookID},
		{name: "未知のプロバイダー", userID: 1, bookID: 1, payment: purchase.Payment{Provider: "stripe"}, errIs: purchase.ErrInvalidProvider},
		{name: "Square決済でIDなし", userID: 1, bookID: 1, payment: purchase.Payment{Provider: purchase.ProviderSquare}, errIs: purchase.ErrPaymentIDMissing},
		{name: "負の金額", userID: 1, bookID: 1, payment: purchase.Payment{Provider: purchase.ProviderManual, Amount: i64Ptr(-5)}, errIs: purchase.ErrInvalidAmount},
		{name: "通貨コード不正", userID: 1, bookID: 1, payment: purchase.Payment{Provider: purchase.ProviderManual, Currency: strPtr("POUND")}, errIs: purchase.ErrInvalidCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := purchase.NewPurchase(fixedKey("k"), tt.userID, tt.bookID, tt.payment)
			require.Nil(t, p)
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}
