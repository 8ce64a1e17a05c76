//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"appointment-booking/internal/infra/mongostore"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE bookings")
	return err
}

func ResetMongo(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Collection(mongostore.CollectionName).DeleteMany(ctx, bson.M{})
	return err
}

// CountBookedRows reads the table directly, bypassing the store.
func CountBookedRows(t *testing.T, db DBLike, date, slot string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE date = $1 AND slot = $2 AND status = 'booked'",
		date, slot).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountBookedDocs(t *testing.T, db *mongo.Database, date, slot string) int {
	t.Helper()

	n, err := db.Collection(mongostore.CollectionName).CountDocuments(context.Background(),
		bson.M{"date": date, "slot": slot, "status": "booked"})
	require.NoError(t, err)
	return int(n)
}
