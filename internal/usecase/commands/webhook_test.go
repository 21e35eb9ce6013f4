//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"bikepacking-api/internal/domain/payment"
	"bikepacking-api/internal/domain/purchase"
	"bikepacking-api/internal/infra"
	sqlc "bikepacking-api/internal/infra/sqlc/generated"
	"bikepacking-api/internal/pkg/errs"
	"bikepacking-api/internal/usecase/commands"
	"bikepacking-api/internal/usecase/shared"
	commandsmock "bikepacking-api/tests/mock/commands"
	sharedmock "bikepacking-api/tests/mock/shared"
)

type WebhookCommandsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	reads     *sharedmock.MockCommandReads
	events    *sharedmock.MockWebhookEventRepository
	verifier  *commandsmock.MockSignatureVerifier
	decoder   *commandsmock.MockEventDecoder
	orders    *commandsmock.MockOrderFetcher
	purchases *commandsmock.MockPurchaseCommands
	metrics   *commandsmock.MockMetrics
	sut       commands.WebhookCommands
}

func (s *WebhookCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.events = sharedmock.NewMockWebhookEventRepository(s.ctrl)
	s.verifier = commandsmock.NewMockSignatureVerifier(s.ctrl)
	s.decoder = commandsmock.NewMockEventDecoder(s.ctrl)
	s.orders = commandsmock.NewMockOrderFetcher(s.ctrl)
	s.purchases = commandsmock.NewMockPurchaseCommands(s.ctrl)
	s.metrics = commandsmock.NewMockMetrics(s.ctrl)

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().WebhookEvents().Return(s.events).AnyTimes()
	s.tx.EXPECT().DB().Return(sqlc.DBTX(nil)).AnyTimes()
	s.metrics.EXPECT().RecordOrderFetch(gomock.Any()).AnyTimes()

	normalizer := commands.NewNormalizer(s.orders, s.metrics)
	s.sut = commands.NewWebhookCommands(s.uow, s.verifier, s.decoder, normalizer, s.purchases, s.metrics)
}

func (s *WebhookCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestWebhookCommandsSuite(t *testing.T) {
	suite.Run(t, new(WebhookCommandsTestSuite))
}

var webhookBody = []byte(`{"event_id":"evt_1"}`)

func delivery() commands.Delivery {
	return commands.Delivery{Body: webhookBody, Signature: "sig", NotificationURL: "https://api.example.com/api/webhooks/square"}
}

func paymentEvent(p *payment.Payment) *payment.Event {
	return &payment.Event{ID: "evt_1", Type: payment.EventTypePaymentUpdated, Payment: p, Raw: webhookBody}
}

func (s *WebhookCommandsTestSuite) accept(ev *payment.Event) {
	s.verifier.EXPECT().Verify("sig", webhookBody, "https://api.example.com/api/webhooks/square").Return(true)
	s.decoder.EXPECT().Decode(webhookBody).Return(ev, nil)
}

func (s *WebhookCommandsTestSuite) expectLedger(status payment.EventStatus, reason *string, purchaseID *int64) {
	s.events.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, in shared.WebhookEventInput) (int32, error) {
			s.Equal("evt_1", in.EventID)
			s.Equal("square", in.Provider)
			return 1, nil
		})
	s.events.EXPECT().Mark(gomock.Any(), gomock.Any(), "evt_1", status, reason, purchaseID).Return(nil)
}

func strPtr(s string) *string { return &s }
func i64Ptr(i int64) *int64   { return &i }

func (s *WebhookCommandsTestSuite) TestInvalidSignature() {
	s.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(false)
	s.metrics.EXPECT().RecordWebhook(commands.OutcomeInvalidSignature)

	out, err := s.sut.HandleDelivery(context.Background(), delivery())

	s.Nil(out)
	s.ErrorIs(err, commands.ErrInvalidSignature)
}

func (s *WebhookCommandsTestSuite) TestInvalidJSON() {
	s.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	s.decoder.EXPECT().Decode(webhookBody).Return(nil, errors.New("unexpected end of JSON input"))
	s.metrics.EXPECT().RecordWebhook(commands.OutcomeInvalidPayload)

	_, err := s.sut.HandleDelivery(context.Background(), delivery())

	s.ErrorIs(err, commands.ErrInvalidPayload)
}

func (s *WebhookCommandsTestSuite) TestTestNotification() {
	s.accept(&payment.Event{ID: "evt_1", Type: payment.EventTypeTestNotification, Raw: webhookBody})
	s.expectLedger(payment.EventStatusProcessed, nil, nil)
	s.metrics.EXPECT().RecordWebhook(commands.OutcomeTest)

	out, err := s.sut.HandleDelivery(context.Background(), delivery())

	s.Require().NoError(err)
	s.True(out.Processed)
	s.True(out.Test)
	s.Equal("Test notification received", out.Message)
}

func (s *WebhookCommandsTestSuite) TestUnhandledEventType() {
	s.accept(&payment.Event{ID: "evt_1", Type: "refund.created", Raw: webhookBody})
	s.expectLedger(payment.EventStatusSkipped, strPtr("Unhandled event type: refund.created"), nil)
	s.metrics.EXPECT().RecordWebhook(commands.OutcomeSkipped)

	out, err := s.sut.HandleDelivery(context.Background(), delivery())

	s.Require().NoError(err)
	s.False(out.Processed)
	s.Equal("Unhandled event type: refund.created", out.Reason)
}

func (s *WebhookCommandsTestSuite) TestNoPaymentObject() {
	s.accept(paymentEvent(nil))
	s.expectLedger(payment.EventStatusSkipped, strPtr(commands.ReasonNoPayment), nil)
	s.metrics.EXPECT().RecordWebhook(commands.OutcomeSkipped)

	out, err := s.sut.HandleDelivery(context.Background(), delivery())

	s.Require().NoError(err)
	s.False(out.Processed)
	s.Equal("No payment object in event data", out.Reason)
}

func (s *WebhookCommandsTestSuite) TestNotCompletedNeverReconciles() {
	p := completedPayment()
	p.Status = "PENDING"
	s.accept(paymentEvent(p))
	s.expectLedger(payment.EventStatusSkipped, strPtr("Payment status is PENDING, not COMPLETED"), nil)
	s.metrics.EXPECT().RecordWebhook(commands.OutcomeSkipped)
	s.purchases.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Times(0)

	out, err := s.sut.HandleDelivery(context.Background(), delivery())

	s.Require().NoError(err)
	s.False(out.Processed)
}

func (s *WebhookCommandsTestSuite) TestCompletedPaymentReconciles() {
	s.accept(paymentEvent(completedPayment()))
	s.purchases.EXPECT().Reconcile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in commands.ReconcileInput) (*commands.ReconcileResult, error) {
			s.Equal("rider@example.com", in.UserEmail)
			s.Equal(int64(42), in.BookID)
			s.Equal("pay_1", *in.PaymentID)
			s.Equal(purchase.ProviderSquare, in.Provider)
			s.Equal("GBP", *in.Currency)
			return &commands.ReconcileResult{PurchaseID: 9, UserID: 7, BookID: 42, PaymentID: in.PaymentID, AccessKey: "k", Created: true}, nil
		})
	s.expectLedger(payment.EventStatusProcessed, nil, i64Ptr(9))
	s.metrics.EXPECT().RecordWebhook(commands.OutcomeProcessed)

	out, err := s.sut.HandleDelivery(context.Background(), delivery())

	s.Require().NoError(err)
	s.True(out.Processed)
	s.Equal("evt_1", out.EventID)
	s.Equal(int64(7), *out.UserID)
	s.Equal(int64(42), *out.BookID)
	s.Equal("pay_1", *out.PaymentID)
	s.Equal("k", *out.AccessKey)
	s.Empty(out.Reason)
}

func (s *WebhookCommandsTestSuite) TestDuplicateDeliveryReturnsSameKey() {
	s.accept(paymentEvent(completedPayment()))
	s.purchases.EXPECT().Reconcile(gomock.Any(), gomock.Any()).
		Return(&commands.ReconcileResult{PurchaseID: 9, UserID: 7, BookID: 42, PaymentID: strPtr("pay_1"), AccessKey: "k", Created: false}, nil)
	s.expectLedger(payment.EventStatusProcessed, nil, i64Ptr(9))
	s.metrics.EXPECT().RecordWebhook(commands.OutcomeDuplicate)

	out, err := s.sut.HandleDelivery(context.Background(), delivery())

	s.Require().NoError(err)
	s.True(out.Processed)
	s.Equal("k", *out.AccessKey)
}

func (s *WebhookCommandsTestSuite) TestUserNotFound() {
	s.accept(paymentEvent(completedPayment()))
	s.purchases.EXPECT().Reconcile(gomock.Any(), gomock.Any()).
		Return(nil, errs.Mark(errors.New("no rows"), commands.ErrUserNotFound))
	s.expectLedger(payment.EventStatusSkipped, strPtr("User not found for email: rider@example.com"), nil)
	s.metrics.EXPECT().RecordWebhook(commands.OutcomeSkipped)

	out, err := s.sut.HandleDelivery(context.Background(), delivery())

	s.Require().NoError(err)
	s.False(out.Processed)
	s.Equal("User not found for email: rider@example.com", out.Reason)
	s.Nil(out.AccessKey)
}

func (s *WebhookCommandsTestSuite) TestTransientFailureIsAcknowledgedAndMarkedFailed() {
	s.accept(paymentEvent(completedPayment()))
	s.purchases.EXPECT().Reconcile(gomock.Any(), gomock.Any()).
		Return(nil, errs.Mark(errors.New("connection refused"), commands.ErrReconcileRetryable))
	s.expectLedger(payment.EventStatusFailed, strPtr(commands.ReasonTemporaryFailure), nil)
	s.metrics.EXPECT().RecordWebhook(commands.OutcomeFailed)

	out, err := s.sut.HandleDelivery(context.Background(), delivery())

	s.Require().NoError(err)
	s.False(out.Processed)
	s.Equal("Temporary failure while recording purchase", out.Reason)
}

func (s *WebhookCommandsTestSuite) TestLedgerFailureDoesNotBlockProcessing() {
	s.accept(&payment.Event{ID: "evt_1", Type: payment.EventTypeTestNotification, Raw: webhookBody})
	s.events.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Return(int32(0), errors.New("db down"))
	s.events.EXPECT().Mark(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	s.metrics.EXPECT().RecordWebhook(commands.OutcomeTest)

	out, err := s.sut.HandleDelivery(context.Background(), delivery())

	s.Require().NoError(err)
	s.True(out.Processed)
}

func (s *WebhookCommandsTestSuite) TestEventWithoutIDIsNotRecorded() {
	ev := &payment.Event{Type: payment.EventTypeTestNotification, Raw: webhookBody}
	s.accept(ev)
	s.events.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.events.EXPECT().Mark(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.metrics.EXPECT().RecordWebhook(commands.OutcomeTest)

	_, err := s.sut.HandleDelivery(context.Background(), delivery())

	s.Require().NoError(err)
}

func (s *WebhookCommandsTestSuite) TestReplay() {
	s.reads.EXPECT().WebhookEventByID(gomock.Any(), "evt_1").
		Return(&shared.WebhookEventRecord{EventID: "evt_1", Status: "failed", Payload: webhookBody, Attempts: 2}, nil)
	s.decoder.EXPECT().Decode(webhookBody).Return(paymentEvent(completedPayment()), nil)
	s.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.purchases.EXPECT().Reconcile(gomock.Any(), gomock.Any()).
		Return(&commands.ReconcileResult{PurchaseID: 9, UserID: 7, BookID: 42, PaymentID: strPtr("pay_1"), AccessKey: "k", Created: true}, nil)
	s.expectLedger(payment.EventStatusProcessed, nil, i64Ptr(9))
	s.metrics.EXPECT().RecordWebhook(commands.OutcomeProcessed)

	out, err := s.sut.Replay(context.Background(), "evt_1")

	s.Require().NoError(err)
	s.True(out.Processed)
}

func (s *WebhookCommandsTestSuite) TestReplay_NotFound() {
	s.reads.EXPECT().WebhookEventByID(gomock.Any(), "missing").
		Return(nil, infra.WrapRepoErr("webhook event not found", nil, infra.KindNotFound))

	_, err := s.sut.Replay(context.Background(), "missing")

	s.ErrorIs(err, commands.ErrWebhookEventNotFound)
}
