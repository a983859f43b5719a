// README: Tariff store backed by PostgreSQL; read once at startup.
package tariff

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// LoadRoutes reads the rate card ordered by position. Position preserves the
// first-match-wins semantics of the embedded table.
func (s *Store) LoadRoutes(ctx context.Context) ([]Route, error) {
	rows, err := s.db.Query(ctx, `
		SELECT from_name, to_name, vehicle_class, base_price
		FROM route_tariffs
		ORDER BY position, vehicle_class`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []Route
	byPair := map[[2]string]int{}
	for rows.Next() {
		var from, to, class string
		var price int64
		if err := rows.Scan(&from, &to, &class, &price); err != nil {
			return nil, err
		}
		key := [2]string{from, to}
		idx, ok := byPair[key]
		if !ok {
			routes = append(routes, Route{From: from, To: to, Prices: map[VehicleClass]int64{}})
			idx = len(routes) - 1
			byPair[key] = idx
		}
		routes[idx].Prices[VehicleClass(class)] = price
	}
	return routes, rows.Err()
}

func (s *Store) LoadPeakDates(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT peak_date FROM peak_dates ORDER BY peak_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}
