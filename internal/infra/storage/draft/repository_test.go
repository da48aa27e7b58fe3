package draft

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/pkg/types"
)

func testKey() domain.DraftKey {
	return domain.DraftKey{ClientID: "client-1", ItemType: domain.ItemTypeCourse, ItemID: 7}
}

func TestGetDecodesPayload(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	payload := `{
		"contactName": "Анна",
		"contactEmail": "anna@example.com",
		"contactPhone": "111",
		"participants": [{"id": 1, "firstName": "Анна", "dailyHours": 2}],
		"selectedDates": ["2026-07-01", "2026-07-02"],
		"scheduleId": 3,
		"couponCode": "SUMMER10",
		"discount": {"type": "PERCENTAGE", "amount": 10}
	}`

	mock.ExpectQuery("SELECT payload FROM booking_drafts").
		WithArgs("client-1", int64(7), "course").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte(payload)))

	draft, err := repo.Get(context.Background(), testKey())
	require.NoError(t, err)

	assert.Equal(t, "Анна", draft.Contact.Name)
	require.Len(t, draft.Participants, 1)
	assert.Equal(t, 2, draft.Participants[0].DailyHours)
	assert.Equal(t, []types.DateString{"2026-07-01", "2026-07-02"}, draft.SelectedDates)
	assert.Equal(t, int64(3), draft.ScheduleID)
	require.NotNil(t, draft.Discount)
	assert.Equal(t, domain.DiscountPercentage, draft.Discount.Type)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMissingDraft(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery("SELECT payload FROM booking_drafts").
		WithArgs("client-1", int64(7), "course").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	_, err = repo.Get(context.Background(), testKey())
	require.ErrorIs(t, err, ErrDraftNotFound)
}

func TestGetCorruptPayload(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery("SELECT payload FROM booking_drafts").
		WithArgs("client-1", int64(7), "course").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte("{broken")))

	_, err = repo.Get(context.Background(), testKey())
	require.ErrorIs(t, err, ErrDecodePayload)
}

func TestUpsertOverwritesPayload(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectExec("INSERT INTO booking_drafts").
		WithArgs("client-1", "course", int64(7), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	draft := domain.NewBookingDraft()
	draft.SelectedDates = []types.DateString{"2026-07-15"}

	require.NoError(t, repo.Upsert(context.Background(), testKey(), draft))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertExecFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectExec("INSERT INTO booking_drafts").
		WillReturnError(errors.New("connection reset"))

	err = repo.Upsert(context.Background(), testKey(), domain.NewBookingDraft())
	require.ErrorIs(t, err, ErrExecQuery)
}

func TestDeleteIsIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	// Отсутствие строки не считается ошибкой
	mock.ExpectExec("DELETE FROM booking_drafts").
		WithArgs("client-1", int64(7), "course").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), testKey()))
	require.NoError(t, mock.ExpectationsWereMet())
}
