package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"evcharge-admin-backend/internal/db"
	"evcharge-admin-backend/internal/model"
	"evcharge-admin-backend/internal/seed"
)

// A helper function to create a mock database connection.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return gormDB, mock
}

// newSeededDB returns an in-memory SQLite database holding the fixture.
func newSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	f, err := seed.Default()
	require.NoError(t, err)
	require.NoError(t, seed.Apply(context.Background(), gdb, f, zap.NewNop()))
	return gdb
}

// Any is a helper for sqlmock to match any argument.
type Any struct{}

// Match satisfies sqlmock.Argument interface.
func (a Any) Match(v driver.Value) bool {
	return true
}

func TestGormRepository_List(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewRepository[model.Station](gdb, "id")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "stations" ORDER BY position`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "position", "name", "status"}).
			AddRow("ST001", 0, "Phoenix Mall Hub", "online").
			AddRow("ST002", 1, "Tech Park Station", "online"))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ST001", got[0].ID)
	assert.Equal(t, model.StationOnline, got[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_ListEmptyIsNotNil(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewRepository[model.Fee](gdb, "id")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "fees" ORDER BY position`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGormRepository_Get(t *testing.T) {
	testCases := []struct {
		name        string
		mockSetup   func(mock sqlmock.Sqlmock)
		expectedErr error
		expectedID  string
	}{
		{
			name: "found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "chargers" WHERE "id" = $1 LIMIT $2`)).
					WithArgs("CH001A", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "station_id"}).AddRow("CH001A", "ST001"))
			},
			expectedID: "CH001A",
		},
		{
			name: "missing maps to ErrNotFound",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "chargers" WHERE "id" = $1 LIMIT $2`)).
					WithArgs("CH001A", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "driver error is wrapped",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "chargers"`)).
					WithArgs(Any{}, Any{}).
					WillReturnError(errors.New("connection reset"))
			},
			expectedErr: errors.New("connection reset"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gdb, mock := newTestDB(t)
			repo := NewRepository[model.Charger](gdb, "id")
			tc.mockSetup(mock)

			got, err := repo.Get(context.Background(), "CH001A")
			switch {
			case tc.expectedErr == nil:
				require.NoError(t, err)
				assert.Equal(t, tc.expectedID, got.ID)
			case errors.Is(tc.expectedErr, ErrNotFound):
				assert.ErrorIs(t, err, ErrNotFound)
			default:
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErr.Error())
				assert.NotErrorIs(t, err, ErrNotFound)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGormStore_WalletKeyedByUserID(t *testing.T) {
	gdb, mock := newTestDB(t)
	s := NewGormStore(gdb)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "wallets" WHERE "user_id" = $1 LIMIT $2`)).
		WithArgs("USR002", 1).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name"}).AddRow("USR002", "Priya Patel"))

	w, err := s.Wallets().Get(context.Background(), "USR002")
	require.NoError(t, err)
	assert.Equal(t, "Priya Patel", w.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_SaveSubscription(t *testing.T) {
	gdb, mock := newTestDB(t)
	s := NewGormStore(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "push_subscriptions" .* ON CONFLICT \("endpoint"\) DO UPDATE SET "p256dh"="excluded"."p256dh","auth"="excluded"."auth"`).
		WithArgs("https://push.example/1", "key", "secret", Any{}).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := s.SaveSubscription(context.Background(), &model.PushSubscription{
		Endpoint: "https://push.example/1",
		P256DH:   "key",
		Auth:     "secret",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_DeleteSubscription(t *testing.T) {
	gdb, mock := newTestDB(t)
	s := NewGormStore(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "push_subscriptions" WHERE "push_subscriptions"."endpoint" = $1`)).
		WithArgs("https://push.example/1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.DeleteSubscription(context.Background(), "https://push.example/1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_SeededSQLite(t *testing.T) {
	s := NewGormStore(newSeededDB(t))
	ctx := context.Background()

	stations, err := s.Stations().List(ctx)
	require.NoError(t, err)
	require.Len(t, stations, 5)
	assert.Equal(t, "ST001", stations[0].ID)
	assert.Equal(t, "ST005", stations[4].ID)

	maintenance := 0
	for _, st := range stations {
		if st.Status == model.StationMaintenance {
			maintenance++
		}
	}
	assert.Equal(t, 1, maintenance)

	tariff, err := s.Tariffs().Get(ctx, "TAR001")
	require.NoError(t, err)
	require.NotNil(t, tariff.DynamicPricing)
	assert.Equal(t, 20.0, tariff.DynamicPricing.MaxRate)
	assert.Len(t, tariff.TimeBasedRates, 3)

	agent, err := s.Agents().Get(ctx, "Sneha Reddy")
	require.NoError(t, err)
	assert.Equal(t, "away", agent.Status)

	activity, err := s.Activities().Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Charger offline alert", activity.Action)

	_, err = s.Users().Get(ctx, "U999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormStore_SubscriptionsSQLite(t *testing.T) {
	s := NewGormStore(newSeededDB(t))
	ctx := context.Background()

	sub := &model.PushSubscription{Endpoint: "https://push.example/a", P256DH: "k1", Auth: "a1", CreatedAt: time.Now()}
	require.NoError(t, s.SaveSubscription(ctx, sub))

	sub2 := &model.PushSubscription{Endpoint: "https://push.example/a", P256DH: "k2", Auth: "a2", CreatedAt: time.Now()}
	require.NoError(t, s.SaveSubscription(ctx, sub2))

	got, err := s.GetSubscription(ctx, "https://push.example/a")
	require.NoError(t, err)
	assert.Equal(t, "k2", got.P256DH)

	all, err := s.ListSubscriptions(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, s.DeleteSubscription(ctx, "https://push.example/a"))
	_, err = s.GetSubscription(ctx, "https://push.example/a")
	assert.ErrorIs(t, err, ErrNotFound)
}
