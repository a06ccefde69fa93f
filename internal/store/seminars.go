package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/openlearn/backend/internal/domain"
)

const seminarCols = `id, title, COALESCE(description, ''), instructor_name, start_time, end_time,
	max_participants, current_participants, COALESCE(meeting_url, ''), status, created_at`

func scanSeminar(row pgx.Row) (domain.Seminar, error) {
	var s domain.Seminar
	err := row.Scan(&s.ID, &s.Title, &s.Description, &s.InstructorName, &s.StartTime, &s.EndTime,
		&s.MaxParticipants, &s.CurrentParticipants, &s.MeetingURL, &s.Status, &s.CreatedAt)
	return s, err
}

func scanSeminars(rows pgx.Rows) ([]domain.Seminar, error) {
	var out []domain.Seminar
	for rows.Next() {
		s, err := scanSeminar(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (p *Postgres) CreateSeminar(ctx context.Context, s *domain.Seminar) error {
	if s.Status == "" {
		s.Status = domain.SeminarScheduled
	}
	return p.pool.QueryRow(ctx, `
		INSERT INTO seminars (title, description, instructor_name, start_time, end_time, max_participants, meeting_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, current_participants, created_at
	`, s.Title, s.Description, s.InstructorName, s.StartTime, s.EndTime, s.MaxParticipants, s.MeetingURL, s.Status).
		Scan(&s.ID, &s.CurrentParticipants, &s.CreatedAt)
}

func (p *Postgres) GetSeminar(ctx context.Context, id domain.SeminarID) (domain.Seminar, error) {
	s, err := scanSeminar(p.pool.QueryRow(ctx, `SELECT `+seminarCols+` FROM seminars WHERE id = $1`, id))
	return s, notFound(err)
}

func (p *Postgres) ListSeminars(ctx context.Context) ([]domain.Seminar, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+seminarCols+` FROM seminars ORDER BY start_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSeminars(rows)
}

func (p *Postgres) ListUpcomingSeminars(ctx context.Context) ([]domain.Seminar, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT `+seminarCols+` FROM seminars
		WHERE start_time > NOW() AND status = $1 ORDER BY start_time
	`, domain.SeminarScheduled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSeminars(rows)
}

func (p *Postgres) ListLiveSeminars(ctx context.Context) ([]domain.Seminar, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT `+seminarCols+` FROM seminars WHERE status = $1 ORDER BY start_time
	`, domain.SeminarLive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSeminars(rows)
}

func (p *Postgres) ListTodaySeminars(ctx context.Context) ([]domain.Seminar, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT `+seminarCols+` FROM seminars
		WHERE start_time::date = NOW()::date ORDER BY start_time
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSeminars(rows)
}

func (p *Postgres) UpdateSeminar(ctx context.Context, s *domain.Seminar) error {
	err := p.pool.QueryRow(ctx, `
		UPDATE seminars
		SET title = $2, description = $3, instructor_name = $4, start_time = $5, end_time = $6,
		    max_participants = $7, meeting_url = $8
		WHERE id = $1
		RETURNING current_participants, status, created_at
	`, s.ID, s.Title, s.Description, s.InstructorName, s.StartTime, s.EndTime, s.MaxParticipants, s.MeetingURL).
		Scan(&s.CurrentParticipants, &s.Status, &s.CreatedAt)
	return notFound(err)
}

func (p *Postgres) UpdateSeminarStatus(ctx context.Context, id domain.SeminarID, status domain.SeminarStatus) (domain.Seminar, error) {
	s, err := scanSeminar(p.pool.QueryRow(ctx, `
		UPDATE seminars SET status = $2 WHERE id = $1 RETURNING `+seminarCols, id, status))
	return s, notFound(err)
}

// JoinSeminar bumps the participant counter, refusing once the cap is hit.
func (p *Postgres) JoinSeminar(ctx context.Context, id domain.SeminarID) (domain.Seminar, error) {
	s, err := scanSeminar(p.pool.QueryRow(ctx, `
		UPDATE seminars
		SET current_participants = current_participants + 1
		WHERE id = $1 AND (max_participants = 0 OR current_participants < max_participants)
		RETURNING `+seminarCols, id))
	return s, notFound(err)
}

func (p *Postgres) DeleteSeminar(ctx context.Context, id domain.SeminarID) error {
	ct, err := p.pool.Exec(ctx, `DELETE FROM seminars WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) CreateSeminarFile(ctx context.Context, f *domain.SeminarFile) error {
	return p.pool.QueryRow(ctx, `
		INSERT INTO seminar_files (seminar_id, file_name, original_file_name, file_path, file_type, file_size, uploaded_by, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, upload_time
	`, f.SeminarID, f.FileName, f.OriginalFileName, f.FilePath, f.FileType, f.FileSize, f.UploadedBy, f.Description).
		Scan(&f.ID, &f.UploadTime)
}

func (p *Postgres) GetSeminarFile(ctx context.Context, seminarID domain.SeminarID, fileID domain.SeminarFileID) (domain.SeminarFile, error) {
	var f domain.SeminarFile
	err := p.pool.QueryRow(ctx, `
		SELECT id, seminar_id, file_name, original_file_name, file_path, file_type, file_size,
		       COALESCE(uploaded_by, ''), COALESCE(description, ''), upload_time
		FROM seminar_files WHERE id = $1 AND seminar_id = $2
	`, fileID, seminarID).Scan(&f.ID, &f.SeminarID, &f.FileName, &f.OriginalFileName, &f.FilePath,
		&f.FileType, &f.FileSize, &f.UploadedBy, &f.Description, &f.UploadTime)
	return f, notFound(err)
}

func (p *Postgres) ListSeminarFiles(ctx context.Context, seminarID domain.SeminarID) ([]domain.SeminarFile, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, seminar_id, file_name, original_file_name, file_path, file_type, file_size,
		       COALESCE(uploaded_by, ''), COALESCE(description, ''), upload_time
		FROM seminar_files WHERE seminar_id = $1 ORDER BY upload_time DESC
	`, seminarID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SeminarFile
	for rows.Next() {
		var f domain.SeminarFile
		if err := rows.Scan(&f.ID, &f.SeminarID, &f.FileName, &f.OriginalFileName, &f.FilePath,
			&f.FileType, &f.FileSize, &f.UploadedBy, &f.Description, &f.UploadTime); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (p *Postgres) DeleteSeminarFile(ctx context.Context, seminarID domain.SeminarID, fileID domain.SeminarFileID) error {
	ct, err := p.pool.Exec(ctx, `DELETE FROM seminar_files WHERE id = $1 AND seminar_id = $2`, fileID, seminarID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
