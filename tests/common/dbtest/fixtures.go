//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Owner is an owner user together with the profile locations hang off.
type Owner struct {
	UserID    uuid.UUID
	ProfileID uuid.UUID
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, "INSERT INTO users (id, email, name, role) VALUES ($1, $2, $3, $4)",
		userID, email, strings.Split(email, "@")[0], role)
	require.NoError(t, err)
	return userID
}

func CreateTestOwner(t *testing.T, db DBLike, email string) Owner {
	t.Helper()

	userID := CreateTestUser(t, db, email, "owner")
	profileID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO owner_profiles (id, user_id, business_name) VALUES ($1, $2, $3)",
		profileID, userID, email+" parking")
	require.NoError(t, err)
	return Owner{UserID: userID, ProfileID: profileID}
}

func CreateTestWatchman(t *testing.T, db DBLike, email string, ownerProfileID uuid.UUID) uuid.UUID {
	t.Helper()

	userID := CreateTestUser(t, db, email, "watchman")
	_, err := db.Exec(context.Background(),
		"INSERT INTO watchmen (id, user_id, owner_id) VALUES ($1, $2, $3)",
		uuid.New(), userID, ownerProfileID)
	require.NoError(t, err)
	return userID
}

func CreateTestLocation(t *testing.T, db DBLike, ownerProfileID uuid.UUID, name string, totalSpots int) uuid.UUID {
	t.Helper()

	locationID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO parking_locations (id, owner_id, name, total_spots, available_spots) VALUES ($1, $2, $3, $4, $4)",
		locationID, ownerProfileID, name, totalSpots)
	require.NoError(t, err)
	return locationID
}

func AvailableSpots(t *testing.T, db DBLike, locationID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT available_spots FROM parking_locations WHERE id = $1", locationID).Scan(&n)
	require.NoError(t, err)
	return n
}

func RequestStatus(t *testing.T, db DBLike, requestID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM booking_requests WHERE id = $1", requestID).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every application table, keeping the migration ledger.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
