//go:build unit

package payment_test

import (
	"testing"

	"bikepacking-api/internal/domain/payment"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func i64(v int64) *int64 { return &v }

func TestParseNote(t *testing.T) {
	tests := []struct {
		name string
		note string
		want payment.NoteFields
	}{
		{name: "書籍IDとメール", note: "book_id:42|email:a@b.com", want: payment.NoteFields{BookID: 42, Email: "a@b.com"}},
		{name: "順序が逆", note: "email:a@b.com|book_id:7", want: payment.NoteFields{BookID: 7, Email: "a@b.com"}},
		{name: "値にコロンを含む", note: "email:a:b@c.com", want: payment.NoteFields{Email: "a:b@c.com"}},
		{name: "数値でない書籍IDは無視", note: "book_id:abc|email:a@b.com", want: payment.NoteFields{Email: "a@b.com"}},
		{name: "未知のキーは無視", note: "ref:xyz|book_id:3", want: payment.NoteFields{BookID: 3}},
		{name: "空文字", note: "", want: payment.NoteFields{}},
		{name: "最初の値が優先", note: "book_id:1|book_id:2", want: payment.NoteFields{BookID: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, payment.ParseNote(tt.note)); diff != "" {
				t.Errorf("ParseNote mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatNote(t *testing.T) {
	note := payment.FormatNote(42, "a@b.com")
	assert.Equal(t, "book_id:42|email:a@b.com", note)
	assert.Equal(t, payment.NoteFields{BookID: 42, Email: "a@b.com"}, payment.ParseNote(note))
}

func TestPaymentResolveEmail(t *testing.T) {
	tests := []struct {
		name    string
		payment payment.Payment
		want    string
	}{
		{
			name:    "buyer_email_address が最優先",
			payment: payment.Payment{BuyerEmailAddress: "first@x.com", BuyerEmail: "second@x.com", BillingEmail: "bill@x.com"},
			want:    "first@x.com",
		},
		{
			name:    "email_address フィールド",
			payment: payment.Payment{EmailAddress: "alt@x.com"},
			want:    "alt@x.com",
		},
		{
			name:    "請求先住所",
			payment: payment.Payment{BillingEmail: "bill@x.com", Metadata: map[string]string{"user_email": "meta@x.com"}},
			want:    "bill@x.com",
		},
		{
			name:    "決済メタデータ",
			payment: payment.Payment{Metadata: map[string]string{"user_email": "meta@x.com"}},
			want:    "meta@x.com",
		},
		{
			name:    "埋め込み注文のメタデータ",
			payment: payment.Payment{Order: &payment.Order{Metadata: map[string]string{"user_email": "order@x.com"}}},
			want:    "order@x.com",
		},
		{
			name:    "見つからない",
			payment: payment.Payment{BuyerEmailAddress: "   "},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.payment.ResolveEmail())
		})
	}
}

func TestFactsMergeOrder(t *testing.T) {
	t.Run("ノートからのフォールバック抽出", func(t *testing.T) {
		p := &payment.Payment{ID: "pay_1", Status: payment.StatusCompleted, OrderID: "ord_1"}
		facts := payment.InitialFacts(p)
		assert.True(t, facts.NeedsOrder())

		merged := facts.MergeOrder(&payment.Order{ID: "ord_1", Note: "book_id:42|email:a@b.com"})
		assert.Equal(t, int64(42), merged.BookID)
		assert.Equal(t, "a@b.com", merged.BuyerEmail)
		assert.True(t, merged.OrderFetched)
		assert.False(t, merged.NeedsOrder())
	})

	t.Run("注文メタデータはノートより優先", func(t *testing.T) {
		facts := payment.Facts{}.MergeOrder(&payment.Order{
			Metadata:   map[string]string{"book_id": "5", "user_email": "meta@x.com"},
			BuyerEmail: "buyer@x.com",
			Note:       "book_id:9|email:note@x.com",
		})
		assert.Equal(t, int64(5), facts.BookID)
		assert.Equal(t, "buyer@x.com", facts.BuyerEmail)
	})

	t.Run("決済から得た値は上書きされない", func(t *testing.T) {
		p := &payment.Payment{
			ID:                "pay_2",
			Status:            payment.StatusCompleted,
			BuyerEmailAddress: "payer@x.com",
			Metadata:          map[string]string{"book_id": "3"},
			AmountMoney:       &payment.Money{Amount: i64(2500), Currency: "EUR"},
		}
		facts := payment.InitialFacts(p).MergeOrder(&payment.Order{Note: "book_id:9|email:note@x.com"})
		assert.Equal(t, int64(3), facts.BookID)
		assert.Equal(t, "payer@x.com", facts.BuyerEmail)
		assert.Equal(t, int64(2500), *facts.Amount)
		assert.Equal(t, "EUR", facts.Currency)
	})

	t.Run("通貨省略時はGBP", func(t *testing.T) {
		facts := payment.InitialFacts(&payment.Payment{AmountMoney: &payment.Money{Amount: i64(100)}})
		assert.Equal(t, "GBP", facts.Currency)
	})

	t.Run("注文取得失敗でも取得済みフラグが立つ", func(t *testing.T) {
		facts := payment.Facts{BuyerEmail: "a@b.com"}.MergeOrder(nil)
		assert.True(t, facts.OrderFetched)
		assert.Zero(t, facts.BookID)
	})
}
