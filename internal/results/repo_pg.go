package results

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new record.
func (r *PGRepo) Create(ctx context.Context, record Record) error {
	const query = `
INSERT INTO results (id, job_description, resume_filename, analysis_type, result, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.DB.ExecContext(ctx, query,
		record.ID,
		record.JobDescription,
		record.ResumeFilename,
		record.AnalysisType,
		record.Result,
		record.CreatedAt,
	)
	return err
}

// ListAll returns every record, newest first.
func (r *PGRepo) ListAll(ctx context.Context) ([]Record, error) {
	const query = `
SELECT id, job_description, resume_filename, analysis_type, result, created_at
FROM results
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var jobDescription sql.NullString
		if err := rows.Scan(
			&rec.ID,
			&jobDescription,
			&rec.ResumeFilename,
			&rec.AnalysisType,
			&rec.Result,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		if jobDescription.Valid {
			rec.JobDescription = jobDescription.String
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// DeleteAll removes every record. It is idempotent.
func (r *PGRepo) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM results`)
	return err
}

var _ Repo = (*PGRepo)(nil)
