package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/therapist-admin/pkg/pg"
)

const therapistColumns = `id, "firstName", "lastName", title, street, zip, city, canton, email, phone, "contactVerified", "createdAt", "updatedAt"`

// DB is the subset of *pgxpool.Pool used by PostgresStore.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// PostgresStore reads and writes the existing "Therapist" table.
// The connection pool is owned by the caller.
type PostgresStore struct {
	db DB
}

// NewPostgresStore wraps a connection pool.
func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CountAll(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM "Therapist"`).Scan(&n); err != nil {
		return 0, errors.Join(ErrQueryFailed, err)
	}
	return n, nil
}

func (s *PostgresStore) Count(ctx context.Context, p Predicate) (int64, error) {
	var n int64
	q := `SELECT count(*) FROM "Therapist" WHERE ` + where(p)
	if err := s.db.QueryRow(ctx, q).Scan(&n); err != nil {
		return 0, errors.Join(ErrQueryFailed, err)
	}
	return n, nil
}

// CountEach uses aggregate FILTER clauses so the dashboard needs one round trip.
func (s *PostgresStore) CountEach(ctx context.Context, preds ...Predicate) (int64, []int64, error) {
	var b strings.Builder
	b.WriteString(`SELECT count(*)`)
	for _, p := range preds {
		fmt.Fprintf(&b, `, count(*) FILTER (WHERE %s)`, where(p))
	}
	b.WriteString(` FROM "Therapist"`)

	var total int64
	counts := make([]int64, len(preds))
	dest := make([]any, 0, len(preds)+1)
	dest = append(dest, &total)
	for i := range counts {
		dest = append(dest, &counts[i])
	}

	if err := s.db.QueryRow(ctx, b.String()).Scan(dest...); err != nil {
		return 0, nil, errors.Join(ErrQueryFailed, err)
	}
	return total, counts, nil
}

func (s *PostgresStore) Find(ctx context.Context, p Predicate, limit int) ([]Therapist, error) {
	q := `SELECT ` + therapistColumns + ` FROM "Therapist" WHERE ` + where(p) + ` ORDER BY id LIMIT $1`
	return s.query(ctx, q, limitArg(limit))
}

func (s *PostgresStore) Latest(ctx context.Context, limit int) ([]Therapist, error) {
	q := `SELECT ` + therapistColumns + ` FROM "Therapist" ORDER BY "createdAt" DESC, id LIMIT $1`
	return s.query(ctx, q, limitArg(limit))
}

func (s *PostgresStore) Get(ctx context.Context, id string) (Therapist, error) {
	q := `SELECT ` + therapistColumns + ` FROM "Therapist" WHERE id = $1`
	t, err := scanTherapist(s.db.QueryRow(ctx, q, id))
	if err != nil {
		if pg.IsNotFoundError(err) {
			return Therapist{}, ErrNotFound
		}
		return Therapist{}, errors.Join(ErrQueryFailed, err)
	}
	return t, nil
}

// UpdateField writes value as-is; the column name comes from the closed Field set.
func (s *PostgresStore) UpdateField(ctx context.Context, id string, field Field, value string) error {
	if !field.Valid() {
		return ErrFieldNotEditable
	}

	q := `UPDATE "Therapist" SET ` + field.Column() + ` = $1, "updatedAt" = now() WHERE id = $2`
	tag, err := s.db.Exec(ctx, q, value, id)
	if err != nil {
		return errors.Join(ErrUpdateFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Insert adds records, skipping ids that already exist. Used to seed
// development databases and integration tests.
func (s *PostgresStore) Insert(ctx context.Context, records ...Therapist) error {
	batch := &pgx.Batch{}
	for _, t := range records {
		batch.Queue(
			`INSERT INTO "Therapist" (`+therapistColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			ON CONFLICT (id) DO NOTHING`,
			t.ID, t.FirstName, t.LastName, t.Title,
			t.Street, t.Zip, t.City, t.Canton,
			t.Email, t.Phone, t.ContactVerified,
			t.CreatedAt, t.UpdatedAt,
		)
	}

	results := s.db.SendBatch(ctx, batch)
	defer results.Close()

	for range records {
		if _, err := results.Exec(); err != nil {
			return errors.Join(ErrUpdateFailed, err)
		}
	}
	return nil
}

func (s *PostgresStore) query(ctx context.Context, q string, args ...any) ([]Therapist, error) {
	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Therapist, error) {
		return scanTherapist(row)
	})
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return list, nil
}

func scanTherapist(row pgx.Row) (Therapist, error) {
	var t Therapist
	err := row.Scan(
		&t.ID, &t.FirstName, &t.LastName, &t.Title,
		&t.Street, &t.Zip, &t.City, &t.Canton,
		&t.Email, &t.Phone, &t.ContactVerified,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func where(p Predicate) string {
	if strings.TrimSpace(p.Where) == "" {
		return "false"
	}
	return "(" + p.Where + ")"
}

// limitArg maps non-positive limits to NULL, which Postgres reads as no limit.
func limitArg(limit int) any {
	if limit <= 0 {
		return nil
	}
	return limit
}
