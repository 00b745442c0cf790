package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/barbatjuan/ruteo/internal/domain"
	"github.com/barbatjuan/ruteo/internal/platform/obs"
	"github.com/barbatjuan/ruteo/internal/ports"
)

// Postgres-backed implementation of the RouteRepository port.
// Every query filters on tenant_uuid; rows from one tenant are never
// visible to another.
type PostgresRouteRepository struct{ DB *sql.DB }

func NewPostgresRouteRepository(db *sql.DB) *PostgresRouteRepository {
	return &PostgresRouteRepository{DB: db}
}

// Persist a route and its stops in a single transaction.
func (p *PostgresRouteRepository) CreateRoute(
	ctx context.Context,
	route domain.Route,
	stops []domain.SavedStop,
) (err error) {
	defer obs.Time(ctx, "routes.repo.CreateRoute")(&err)

	if p.DB == nil {
		return errors.New("route repository: DB is nil")
	}
	if route.ID == "" || route.TenantID == "" {
		return errors.New("create route: id and tenant must be non-empty")
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("create route: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insertRoute := `
	INSERT INTO routes (id, tenant_uuid, name, date, status, assigned_to)
	VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''));
	`
	if _, err := tx.ExecContext(
		ctx, insertRoute,
		route.ID, route.TenantID, route.Name, route.Date, route.Status, route.AssignedTo,
	); err != nil {
		return fmt.Errorf("create route: insert route %q: %w", route.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO route_stops (tenant_uuid, route_id, sequence, address, lat, lng, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
	`)
	if err != nil {
		return fmt.Errorf("create route: prepare stop insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range stops {
		status := s.Status
		if status == "" {
			status = domain.StopStatusPending
		}
		if _, err := stmt.ExecContext(
			ctx, route.TenantID, route.ID, s.Sequence, s.Address, s.Lat, s.Lng, status,
		); err != nil {
			return fmt.Errorf("create route: insert stop seq=%d: %w", s.Sequence, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create route: commit: %w", err)
	}

	return nil
}

// Return the tenant's routes, newest first, with aggregated stop counters.
func (p *PostgresRouteRepository) ListRoutes(
	ctx context.Context,
	tenantID string,
) (_ []ports.RouteWithStats, err error) {
	defer obs.Time(ctx, "routes.repo.ListRoutes")(&err)

	if p.DB == nil {
		return nil, errors.New("route repository: DB is nil")
	}
	if tenantID == "" {
		return nil, errors.New("list routes: tenant must be non-empty")
	}

	q := `
	SELECT
		r.id, r.tenant_uuid, r.name, COALESCE(r.date, ''), r.status,
		COALESCE(r.assigned_to, ''), r.created_at,
		COUNT(s.route_id) AS total_stops,
		COUNT(s.route_id) FILTER (WHERE s.status = 'pending') AS pending_stops,
		COUNT(s.route_id) FILTER (WHERE s.status = 'completed') AS completed_stops
	FROM routes r
	LEFT JOIN route_stops s ON s.route_id = r.id AND s.tenant_uuid = r.tenant_uuid
	WHERE r.tenant_uuid = $1
	GROUP BY r.id, r.tenant_uuid, r.name, r.date, r.status, r.assigned_to, r.created_at
	ORDER BY r.created_at DESC;
	`

	rows, err := p.DB.QueryContext(ctx, q, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list routes: query: %w", err)
	}
	defer rows.Close()

	out := make([]ports.RouteWithStats, 0, 16)
	for rows.Next() {
		var r ports.RouteWithStats
		if err := rows.Scan(
			&r.ID, &r.TenantID, &r.Name, &r.Date, &r.Status,
			&r.AssignedTo, &r.CreatedAt,
			&r.TotalStops, &r.PendingStops, &r.CompletedStops,
		); err != nil {
			return nil, fmt.Errorf("list routes: scan row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	return out, nil
}

// Return one route and its stops in sequence order.
func (p *PostgresRouteRepository) GetRoute(
	ctx context.Context,
	tenantID string,
	routeID string,
) (_ domain.Route, _ []domain.SavedStop, err error) {
	defer obs.Time(ctx, "routes.repo.GetRoute")(&err)

	if p.DB == nil {
		return domain.Route{}, nil, errors.New("route repository: DB is nil")
	}

	var route domain.Route
	q := `
	SELECT id, tenant_uuid, name, COALESCE(date, ''), status, COALESCE(assigned_to, ''), created_at
	FROM routes
	WHERE tenant_uuid = $1 AND id = $2;
	`
	err = p.DB.QueryRowContext(ctx, q, tenantID, routeID).Scan(
		&route.ID, &route.TenantID, &route.Name, &route.Date,
		&route.Status, &route.AssignedTo, &route.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Route{}, nil, ports.ErrRouteNotFound
	}
	if err != nil {
		return domain.Route{}, nil, fmt.Errorf("get route %q: %w", routeID, err)
	}

	sq := `
	SELECT sequence, address, lat, lng, status
	FROM route_stops
	WHERE tenant_uuid = $1 AND route_id = $2
	ORDER BY sequence;
	`
	rows, err := p.DB.QueryContext(ctx, sq, tenantID, routeID)
	if err != nil {
		return domain.Route{}, nil, fmt.Errorf("get route %q: query stops: %w", routeID, err)
	}
	defer rows.Close()

	stops := make([]domain.SavedStop, 0, 16)
	for rows.Next() {
		var s domain.SavedStop
		if err := rows.Scan(&s.Sequence, &s.Address, &s.Lat, &s.Lng, &s.Status); err != nil {
			return domain.Route{}, nil, fmt.Errorf("get route %q: scan stop: %w", routeID, err)
		}
		stops = append(stops, s)
	}
	if err := rows.Err(); err != nil {
		return domain.Route{}, nil, fmt.Errorf("get route %q: stop iteration: %w", routeID, err)
	}

	return route, stops, nil
}

// Assign or unassign a driver. An empty userID clears the assignment.
func (p *PostgresRouteRepository) AssignDriver(
	ctx context.Context,
	tenantID string,
	routeID string,
	userID string,
) (err error) {
	defer obs.Time(ctx, "routes.repo.AssignDriver")(&err)

	if p.DB == nil {
		return errors.New("route repository: DB is nil")
	}

	q := `
	UPDATE routes
	SET assigned_to = NULLIF($3, '')
	WHERE tenant_uuid = $1 AND id = $2;
	`
	res, err := p.DB.ExecContext(ctx, q, tenantID, routeID, userID)
	if err != nil {
		return fmt.Errorf("assign driver: update route %q: %w", routeID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("assign driver: rows affected: %w", err)
	}
	if n == 0 {
		return ports.ErrRouteNotFound
	}

	return nil
}

// Aggregate dashboard counters for one date.
func (p *PostgresRouteRepository) DashboardStats(
	ctx context.Context,
	tenantID string,
	date string,
) (_ domain.DashboardStats, err error) {
	defer obs.Time(ctx, "routes.repo.DashboardStats")(&err)

	if p.DB == nil {
		return domain.DashboardStats{}, errors.New("route repository: DB is nil")
	}

	q := `
	SELECT
		COUNT(*) FILTER (WHERE r.date = $2) AS routes_today,
		COUNT(*) FILTER (WHERE r.date = $2 AND r.status IN ('planned', 'in_progress')) AS in_progress,
		COALESCE(SUM(st.total) FILTER (WHERE r.date = $2), 0) AS stops_total,
		COALESCE(SUM(st.pending) FILTER (WHERE r.date = $2), 0) AS stops_pending,
		COUNT(DISTINCT r.assigned_to) FILTER (WHERE r.date = $2 AND r.assigned_to IS NOT NULL) AS drivers_active
	FROM routes r
	LEFT JOIN (
		SELECT route_id, tenant_uuid,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'pending') AS pending
		FROM route_stops
		GROUP BY route_id, tenant_uuid
	) st ON st.route_id = r.id AND st.tenant_uuid = r.tenant_uuid
	WHERE r.tenant_uuid = $1;
	`

	var stats domain.DashboardStats
	err = p.DB.QueryRowContext(ctx, q, tenantID, date).Scan(
		&stats.RoutesToday,
		&stats.InProgress,
		&stats.StopsTotalToday,
		&stats.StopsPendingToday,
		&stats.DriversActiveToday,
	)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("dashboard stats: query: %w", err)
	}

	return stats, nil
}
