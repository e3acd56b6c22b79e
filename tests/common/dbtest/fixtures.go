//go:build integration

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"shareit/internal/infra/repository"
)

func SeedUser(t *testing.T, db repository.DB, name, email string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id`,
		name, email).Scan(&id)
	require.NoError(t, err, "failed to seed user")
	return id
}

func SeedItem(t *testing.T, db repository.DB, name string, available bool, ownerID int64, requestID *int64) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO items (name, description, available, owner_id, request_id)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		name, name+" description", available, ownerID, requestID).Scan(&id)
	require.NoError(t, err, "failed to seed item")
	return id
}

func SeedBooking(t *testing.T, db repository.DB, itemID, bookerID int64, start, end time.Time, status string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		start, end, itemID, bookerID, status).Scan(&id)
	require.NoError(t, err, "failed to seed booking")
	return id
}

func SeedRequest(t *testing.T, db repository.DB, description string, requesterID int64, created time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO requests (description, requester_id, created)
		 VALUES ($1, $2, $3) RETURNING id`,
		description, requesterID, created).Scan(&id)
	require.NoError(t, err, "failed to seed request")
	return id
}

func SeedComment(t *testing.T, db repository.DB, text string, itemID, authorID int64, created time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO comments (text, item_id, author_id, created)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		text, itemID, authorID, created).Scan(&id)
	require.NoError(t, err, "failed to seed comment")
	return id
}
