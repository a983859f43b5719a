// README: DB-backed tariff store tests; skipped without a test DSN.
package tariff

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("CHARTER_TEST_DSN")
	if dsn == "" {
		t.Skip("CHARTER_TEST_DSN not set; skipping DB-backed tariff tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	schema := []string{
		`CREATE TABLE IF NOT EXISTS route_tariffs (
			id SERIAL PRIMARY KEY,
			position INT NOT NULL,
			from_name TEXT NOT NULL,
			to_name TEXT NOT NULL,
			vehicle_class TEXT NOT NULL,
			base_price BIGINT NOT NULL,
			UNIQUE (from_name, to_name, vehicle_class)
		)`,
		`CREATE TABLE IF NOT EXISTS peak_dates (peak_date TEXT PRIMARY KEY)`,
		`TRUNCATE TABLE route_tariffs, peak_dates`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			t.Fatalf("schema: %v", err)
		}
	}
	return NewStore(db)
}

func TestStoreLoadRoutes(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	rows := [][]any{
		{1, "Singapore", "Johor Bahru", string(Sedan), int64(280)},
		{1, "Singapore", "Johor Bahru", string(MPVStd), int64(320)},
		{2, "Singapore", "Malacca", string(Sedan), int64(750)},
	}
	for _, r := range rows {
		if _, err := store.db.Exec(ctx,
			`INSERT INTO route_tariffs (position, from_name, to_name, vehicle_class, base_price)
			 VALUES ($1, $2, $3, $4, $5)`, r...); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	routes, err := store.LoadRoutes(ctx)
	if err != nil {
		t.Fatalf("load routes: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("got %d routes, want 2", len(routes))
	}
	if routes[0].From != "Singapore" || routes[0].To != "Johor Bahru" {
		t.Errorf("routes[0] = %s->%s, want position order", routes[0].From, routes[0].To)
	}
	if routes[0].Prices[Sedan] != 280 || routes[0].Prices[MPVStd] != 320 {
		t.Errorf("prices = %v", routes[0].Prices)
	}
}

func TestStoreLoadPeakDates(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	for _, d := range []string{"2024-12-25", "2025-01-01"} {
		if _, err := store.db.Exec(ctx, `INSERT INTO peak_dates (peak_date) VALUES ($1)`, d); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	dates, err := store.LoadPeakDates(ctx)
	if err != nil {
		t.Fatalf("load peak dates: %v", err)
	}
	if len(dates) != 2 || dates[0] != "2024-12-25" {
		t.Errorf("dates = %v", dates)
	}

	svc := NewService(ctx, store)
	if !svc.IsPeak("2025-01-01") {
		t.Error("service should use the stored peak calendar")
	}
}
