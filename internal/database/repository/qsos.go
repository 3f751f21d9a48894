package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/tansy/qsolog/internal/database"
)

// QSOFilters defines list filters.
type QSOFilters struct {
	Search string // matches callsign, case-insensitive substring
	Band   string
	Mode   string
	Date   string // exact YYYYMMDD
}

// QSORepo handles logged contacts.
type QSORepo struct {
	db *sql.DB
}

func NewQSORepo(db *sql.DB) *QSORepo { return &QSORepo{db: db} }

func (r *QSORepo) Insert(ctx context.Context, q QSO) error {
	now := database.Now()
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO qsos(id, callsign, qso_date, time_on, band, mode, rst_sent, rst_rcvd, comment, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`,
		q.ID, strings.ToUpper(q.Callsign), q.Date, q.TimeOn, q.Band, q.Mode, q.RSTSent, q.RSTRcvd, q.Comment, now, now)
	return err
}

func (r *QSORepo) UpdateDate(ctx context.Context, id, date string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE qsos SET qso_date = ?, updated_at = ? WHERE id = ?`, date, database.Now(), id)
	return err
}

func (r *QSORepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM qsos WHERE id = ?`, id)
	return err
}

func (r *QSORepo) List(ctx context.Context, f QSOFilters) ([]QSO, error) {
	var where []string
	var args []interface{}

	if f.Search != "" {
		where = append(where, "callsign LIKE ?")
		args = append(args, "%"+strings.ToUpper(f.Search)+"%")
	}
	if f.Band != "" {
		where = append(where, "band = ?")
		args = append(args, f.Band)
	}
	if f.Mode != "" {
		where = append(where, "mode = ?")
		args = append(args, f.Mode)
	}
	if f.Date != "" {
		where = append(where, "qso_date = ?")
		args = append(args, f.Date)
	}

	query := `SELECT id, callsign, qso_date, time_on, band, mode, rst_sent, rst_rcvd, comment, created_at, updated_at FROM qsos`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY qso_date DESC, time_on DESC, created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []QSO
	for rows.Next() {
		var q QSO
		if err := rows.Scan(&q.ID, &q.Callsign, &q.Date, &q.TimeOn, &q.Band, &q.Mode,
			&q.RSTSent, &q.RSTRcvd, &q.Comment, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// Callsigns returns the distinct callsigns in the log, most recent first.
func (r *QSORepo) Callsigns(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT callsign FROM qsos GROUP BY callsign ORDER BY MAX(qso_date) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *QSORepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM qsos`).Scan(&n)
	return n, err
}
