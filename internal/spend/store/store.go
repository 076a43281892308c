package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"

	"github.com/arjunsachdev/regretly/internal/spend"
)

// Store is the Postgres-backed persistence collaborator. Records are keyed
// by user id; the in-memory list in the spend service is the authoritative
// view, this is the durable backing.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectSpendColumns = `
	id, amount, category, mood, date, type, description, created_at
`

// scanSpend reads one spend row. Expected column order matches
// selectSpendColumns; type is NULL until the record is classified.
func scanSpend(s scanner) (*spend.Spend, error) {
	var sp spend.Spend

	var categoryStr, moodStr string

	var typ sql.NullString

	if err := s.Scan(
		&sp.ID, &sp.Amount, &categoryStr, &moodStr, &sp.Date,
		&typ, &sp.Description, &sp.CreatedAt,
	); err != nil {
		return nil, err
	}

	sp.Category = spend.Category(categoryStr)
	sp.Mood = spend.Mood(moodStr)
	sp.Type = spend.Type(typ.String)

	return &sp, nil
}

func (s *Store) ListSpends(ctx context.Context, userID uuid.UUID) ([]*spend.Spend, error) {
	query := `SELECT ` + selectSpendColumns + `
		FROM spends
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing spends: %w", err)
	}
	defer rows.Close()

	var spends []*spend.Spend

	for rows.Next() {
		sp, err := scanSpend(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning spend: %w", err)
		}

		spends = append(spends, sp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating spend rows: %w", err)
	}

	return spends, nil
}

func (s *Store) CreateSpend(ctx context.Context, userID uuid.UUID, sp *spend.Spend) error {
	query := `
		INSERT INTO spends (user_id, amount, category, mood, date, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		userID,
		sp.Amount,
		sp.Category,
		sp.Mood,
		sp.Date,
		sp.Description,
	).Scan(&sp.ID, &sp.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating spend: %w", err)
	}

	return nil
}

// UpdateType sets the classification once; it is never cleared.
func (s *Store) UpdateType(ctx context.Context, userID, id uuid.UUID, typ spend.Type) error {
	query := `
		UPDATE spends
		SET type = $1
		WHERE id = $2 AND user_id = $3
	`

	res, err := s.db.ExecContext(ctx, query, typ, id, userID)
	if err != nil {
		return fmt.Errorf("updating spend type: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating spend type: %w", err)
	}

	if affected == 0 {
		return spend.ErrNotFound
	}

	return nil
}

func importLockKey(userID uuid.UUID, minDate, maxDate time.Time) int64 {
	h := fnv.New64a()
	h.Write(userID[:])
	h.Write([]byte{0})
	h.Write([]byte(minDate.Format(time.DateOnly)))
	h.Write([]byte{0})
	h.Write([]byte(maxDate.Format(time.DateOnly)))

	return int64(h.Sum64())
}

type importTx struct {
	tx     *sql.Tx
	userID uuid.UUID
}

// BeginImport opens a transaction holding an advisory lock over the user's
// import window so two concurrent restores cannot race the duplicate
// check.
func (s *Store) BeginImport(ctx context.Context, userID uuid.UUID, minDate, maxDate time.Time) (spend.ImportTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	lockKey := importLockKey(userID, minDate, maxDate)
	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring import lock: %w", err)
	}

	return &importTx{tx: dbTx, userID: userID}, nil
}

func (itx *importTx) Commit() error   { return itx.tx.Commit() }
func (itx *importTx) Rollback() error { return itx.tx.Rollback() }

func (itx *importTx) FindDuplicates(ctx context.Context, params []spend.LogParams) ([]*spend.Spend, error) {
	if len(params) == 0 {
		return nil, nil
	}

	type lookupKey struct {
		Date     string
		Amount   float64
		Category spend.Category
		Desc     string
	}

	minDate := params[0].Date
	maxDate := params[0].Date
	keySet := make(map[lookupKey]struct{}, len(params))

	for _, p := range params {
		if p.Date.Before(minDate) {
			minDate = p.Date
		}

		if p.Date.After(maxDate) {
			maxDate = p.Date
		}

		keySet[lookupKey{
			Date:     p.Date.Format(time.DateOnly),
			Amount:   p.Amount,
			Category: p.Category,
			Desc:     p.Description,
		}] = struct{}{}
	}

	query := `SELECT ` + selectSpendColumns + `
		FROM spends
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC`

	rows, err := itx.tx.QueryContext(ctx, query, itx.userID, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("finding duplicates: %w", err)
	}
	defer rows.Close()

	var duplicates []*spend.Spend

	for rows.Next() {
		sp, err := scanSpend(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning spend: %w", err)
		}

		k := lookupKey{
			Date:     sp.Date.Format(time.DateOnly),
			Amount:   sp.Amount,
			Category: sp.Category,
			Desc:     sp.Description,
		}

		if _, found := keySet[k]; !found {
			continue
		}

		duplicates = append(duplicates, sp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating duplicate rows: %w", err)
	}

	return duplicates, nil
}

func (itx *importTx) CreateSpends(ctx context.Context, spends []*spend.Spend) error {
	query := `
		INSERT INTO spends (user_id, amount, category, mood, date, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	for _, sp := range spends {
		err := itx.tx.QueryRowContext(ctx, query,
			itx.userID,
			sp.Amount,
			sp.Category,
			sp.Mood,
			sp.Date,
			sp.Description,
		).Scan(&sp.ID, &sp.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating spend: %w", err)
		}
	}

	return nil
}
