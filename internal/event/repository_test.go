package event

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupEventMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func eventColumns() []string {
	return []string{"id", "title", "location", "start_time", "end_time", "capacity", "price_cents", "created_at"}
}

func TestCreateEvent(t *testing.T) {
	repo, mock, close := setupEventMock(t)
	defer close()

	start := time.Now().Add(48 * time.Hour)
	end := start.Add(2 * time.Hour)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO events`).
		WithArgs("Go Meetup", "Main Hall", start, end, 50, int64(3900)).
		WillReturnRows(sqlmock.NewRows(eventColumns()).
			AddRow(1, "Go Meetup", "Main Hall", start, end, 50, 3900, now))

	event, err := repo.CreateEvent(context.Background(), "Go Meetup", "Main Hall", start, end, 50, 3900)
	require.NoError(t, err)
	require.Equal(t, 1, event.ID)
	require.Equal(t, int64(3900), event.PriceCents)
}

func TestGetEventByID(t *testing.T) {
	repo, mock, close := setupEventMock(t)
	defer close()

	start := time.Now().Add(48 * time.Hour)
	now := time.Now()

	mock.ExpectQuery(`FROM events[\s\S]+WHERE id = \$1`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(eventColumns()).
			AddRow(7, "Workshop", "Room B", start, start.Add(time.Hour), 20, 0, now))

	event, err := repo.GetEventByID(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "Workshop", event.Title)
	require.Equal(t, int64(0), event.PriceCents)
}

func TestGetEventsWithAvailability(t *testing.T) {
	repo, mock, close := setupEventMock(t)
	defer close()

	start := time.Now().Add(48 * time.Hour)
	now := time.Now()

	columns := append(eventColumns(), "enrolled_count")
	mock.ExpectQuery(`LEFT JOIN enrollments`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, "Go Meetup", "Main Hall", start, start.Add(time.Hour), 2, 3900, now, 2).
			AddRow(2, "Workshop", "Room B", start, start.Add(time.Hour), 20, 0, now, 5))

	events, err := repo.GetEventsWithAvailability(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, events, 2)

	require.True(t, events[0].IsFull)
	require.Equal(t, 0, events[0].Available)

	require.False(t, events[1].IsFull)
	require.Equal(t, 15, events[1].Available)
}
