// Package repo contains all database access logic for the Itinerary Planner API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Tx and pgxmock's pool.
// Integration tests pass a transaction that is rolled back after each test;
// unit tests pass a pgxmock pool.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ItineraryRepo defines the persistence operations for Itineraries.
// Itineraries are append-only; the interface has no Update or Delete.
type ItineraryRepo interface {
	// Create inserts a new itinerary and returns the persisted record with the
	// DB-generated id and created_at populated.
	Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)

	// ListByUserEmail returns every itinerary whose user_email equals email
	// exactly, newest first. Rows sharing a created_at are ordered by id descending.
	ListByUserEmail(ctx context.Context, email string) ([]domain.Itinerary, error)
}

// pgItineraryRepo is the Postgres implementation of ItineraryRepo.
type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewItineraryRepo(db db) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

// Create inserts a new itinerary row and returns the full persisted record.
func (r *pgItineraryRepo) Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	const q = `
		INSERT INTO itineraries (destination, days, user_email, result)
		VALUES (@destination, @days, @user_email, @result)
		RETURNING id, destination, days, user_email, result, created_at`

	args := pgx.NamedArgs{
		"destination": it.Destination,
		"days":        it.Days,
		"user_email":  it.UserEmail,
		"result":      it.Result,
	}

	result, err := scanItinerary(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Create: %w", err)
	}
	return result, nil
}

// ListByUserEmail returns the user's itineraries, most recent first.
func (r *pgItineraryRepo) ListByUserEmail(ctx context.Context, email string) ([]domain.Itinerary, error) {
	const q = `
		SELECT id, destination, days, user_email, result, created_at
		FROM itineraries
		WHERE user_email = @user_email
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_email": email})
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListByUserEmail: %w", err)
	}
	defer rows.Close()

	var out []domain.Itinerary
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ItineraryRepo.ListByUserEmail: scan: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListByUserEmail: rows: %w", err)
	}

	return out, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanItinerary maps a single database row into a domain.Itinerary.
// Column order must match the SELECT and RETURNING lists above.
func scanItinerary(s scanner) (domain.Itinerary, error) {
	var it domain.Itinerary
	err := s.Scan(&it.ID, &it.Destination, &it.Days, &it.UserEmail, &it.Result, &it.CreatedAt)
	if err != nil {
		return domain.Itinerary{}, err
	}
	return it, nil
}
