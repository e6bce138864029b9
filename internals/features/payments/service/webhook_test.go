package service

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"studioe_backend/internals/constants"
)

// newMockDB opens gorm over a sqlmock connection so the handlers' SQL can be
// asserted without a live database. Default transactions are skipped to keep
// the expectations one statement per call.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

func sessionRows(status string, intentID interface{}, completedAt interface{}) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"payment_session_id",
		"payment_session_user_id",
		"payment_session_product_key",
		"payment_session_amount",
		"payment_session_status",
		"payment_session_payment_intent_id",
		"payment_session_created_at",
		"payment_session_completed_at",
	}).AddRow(
		"cs_test_replay",
		"7f6d9f0a-07e4-4b43-9c41-0a8f7a8281a0",
		"private-lesson",
		int64(8500),
		status,
		intentID,
		time.Now(),
		completedAt,
	)
}

// Stripe delivers at-least-once, so the same checkout.session.completed event
// can arrive twice. The first delivery completes the session and creates the
// Payment row; the replay must do neither again.
func TestHandleCheckoutCompletedReplayCreatesOnePayment(t *testing.T) {
	db, mock := newMockDB(t)
	sess := &stripe.CheckoutSession{
		ID:            "cs_test_replay",
		PaymentIntent: &stripe.PaymentIntent{ID: "pi_test_replay"},
	}

	// First delivery: pending session is completed and one Payment inserted.
	mock.ExpectQuery(`SELECT (.+) FROM "payment_sessions"`).
		WillReturnRows(sessionRows(constants.PaymentStatusPending, nil, nil))
	mock.ExpectExec(`UPDATE "payment_sessions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "payment_sessions"`).
		WillReturnRows(sessionRows(constants.PaymentStatusCompleted, "pi_test_replay", time.Now()))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"payment_id"}).
			AddRow("3b1f6a52-9d2e-4c17-8a4e-6f0b2d9c1e55"))

	require.NoError(t, HandleCheckoutCompleted(db, sess))

	// Replay: session already completed, Payment already present. No UPDATE
	// and no second INSERT may run; an attempt would hit an unmatched
	// expectation and surface as an error.
	mock.ExpectQuery(`SELECT (.+) FROM "payment_sessions"`).
		WillReturnRows(sessionRows(constants.PaymentStatusCompleted, "pi_test_replay", time.Now()))
	mock.ExpectQuery(`SELECT (.+) FROM "payment_sessions"`).
		WillReturnRows(sessionRows(constants.PaymentStatusCompleted, "pi_test_replay", time.Now()))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	require.NoError(t, HandleCheckoutCompleted(db, sess))
	require.NoError(t, mock.ExpectationsWereMet())
}

// A racing duplicate insert rejected by the unique index on
// payment_session_id is swallowed, not surfaced.
func TestHandleCheckoutCompletedDuplicateInsertIsNotAnError(t *testing.T) {
	db, mock := newMockDB(t)
	sess := &stripe.CheckoutSession{ID: "cs_test_replay"}

	mock.ExpectQuery(`SELECT (.+) FROM "payment_sessions"`).
		WillReturnRows(sessionRows(constants.PaymentStatusCompleted, "pi_test_replay", time.Now()))
	mock.ExpectQuery(`SELECT (.+) FROM "payment_sessions"`).
		WillReturnRows(sessionRows(constants.PaymentStatusCompleted, "pi_test_replay", time.Now()))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "idx_payments_payment_session_id"`))

	require.NoError(t, HandleCheckoutCompleted(db, sess))
	require.NoError(t, mock.ExpectationsWereMet())
}

// payment_intent.payment_failed arriving after checkout.session.completed must
// not rewind the session; the status guard keeps completed rows out of the
// UPDATE's reach.
func TestHandlePaymentIntentFailedKeepsCompletedSession(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "payment_sessions" SET .+ WHERE .*payment_session_status <>`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE "payments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, HandlePaymentIntent(db, "pi_test_replay", constants.PaymentStatusFailed))
	require.NoError(t, mock.ExpectationsWereMet())
}

// payment_intent.succeeded stamps the completion time along with the status,
// and only for sessions checkout.session.completed has not already stamped.
func TestHandlePaymentIntentSucceededStampsCompletion(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "payment_sessions" SET "payment_session_completed_at"=.+ WHERE .*payment_session_completed_at IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "payments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, HandlePaymentIntent(db, "pi_test_replay", constants.PaymentStatusCompleted))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHandlePaymentIntentSkipsEmptyIntentID(t *testing.T) {
	db, mock := newMockDB(t)

	require.NoError(t, HandlePaymentIntent(db, "", constants.PaymentStatusFailed))
	require.NoError(t, mock.ExpectationsWereMet())
}
