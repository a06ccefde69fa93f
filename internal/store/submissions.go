package store

import (
	"context"

	"github.com/openlearn/backend/internal/domain"
)

const submissionCols = `id, seminar_id, student_id, student_name, title, COALESCE(description, ''),
	submission_type, COALESCE(content_url, ''), COALESCE(file_name, ''), COALESCE(file_size, 0),
	submission_time, COALESCE(instructor_feedback, ''), grade`

func (p *Postgres) CreateSubmission(ctx context.Context, s *domain.Submission) error {
	return p.pool.QueryRow(ctx, `
		INSERT INTO student_submissions (seminar_id, student_id, student_name, title, description, submission_type, content_url, file_name, file_size)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, submission_time
	`, s.SeminarID, s.StudentID, s.StudentName, s.Title, s.Description, s.SubmissionType, s.ContentURL, s.FileName, s.FileSize).
		Scan(&s.ID, &s.SubmissionTime)
}

func (p *Postgres) ListSubmissions(ctx context.Context, seminarID domain.SeminarID) ([]domain.Submission, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT `+submissionCols+` FROM student_submissions WHERE seminar_id = $1 ORDER BY submission_time DESC
	`, seminarID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Submission
	for rows.Next() {
		var s domain.Submission
		if err := rows.Scan(&s.ID, &s.SeminarID, &s.StudentID, &s.StudentName, &s.Title, &s.Description,
			&s.SubmissionType, &s.ContentURL, &s.FileName, &s.FileSize, &s.SubmissionTime, &s.Feedback, &s.Grade); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GradeSubmission records instructor feedback and a 0-100 grade.
func (p *Postgres) GradeSubmission(ctx context.Context, id domain.SubmissionID, feedback string, grade int) (domain.Submission, error) {
	var s domain.Submission
	err := p.pool.QueryRow(ctx, `
		UPDATE student_submissions SET instructor_feedback = $2, grade = $3
		WHERE id = $1
		RETURNING `+submissionCols, id, feedback, grade).
		Scan(&s.ID, &s.SeminarID, &s.StudentID, &s.StudentName, &s.Title, &s.Description,
			&s.SubmissionType, &s.ContentURL, &s.FileName, &s.FileSize, &s.SubmissionTime, &s.Feedback, &s.Grade)
	return s, notFound(err)
}

func (p *Postgres) DeleteSubmission(ctx context.Context, id domain.SubmissionID) error {
	ct, err := p.pool.Exec(ctx, `DELETE FROM student_submissions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
