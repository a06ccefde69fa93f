package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/openlearn/backend/internal/domain"
)

func (p *Postgres) CreateEnrollment(ctx context.Context, e *domain.Enrollment) error {
	err := p.pool.QueryRow(ctx, `
		INSERT INTO enrollments (user_id, course_id, learning_path_id)
		VALUES ($1, $2, $3)
		RETURNING id, enrolled_at, progress, completed
	`, e.UserID, e.CourseID, e.PathID).Scan(&e.ID, &e.EnrolledAt, &e.Progress, &e.Completed)
	if isUnique(err) {
		return ErrAlreadyExists
	}
	return err
}

const enrollmentCols = `id, user_id, course_id, learning_path_id, enrolled_at, progress, completed, completed_at`

func scanEnrollments(rows pgx.Rows) ([]domain.Enrollment, error) {
	var out []domain.Enrollment
	for rows.Next() {
		var e domain.Enrollment
		if err := rows.Scan(&e.ID, &e.UserID, &e.CourseID, &e.PathID, &e.EnrolledAt, &e.Progress, &e.Completed, &e.CompletedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (p *Postgres) ListEnrollments(ctx context.Context) ([]domain.Enrollment, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+enrollmentCols+` FROM enrollments ORDER BY enrolled_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEnrollments(rows)
}

func (p *Postgres) ListUserEnrollments(ctx context.Context, userID domain.UserID) ([]domain.Enrollment, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+enrollmentCols+` FROM enrollments WHERE user_id = $1 ORDER BY enrolled_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEnrollments(rows)
}

func (p *Postgres) ListCourseEnrollments(ctx context.Context, courseID domain.CourseID) ([]domain.Enrollment, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+enrollmentCols+` FROM enrollments WHERE course_id = $1 ORDER BY enrolled_at DESC`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEnrollments(rows)
}

func (p *Postgres) CountCourseEnrollments(ctx context.Context, courseID domain.CourseID) (int, error) {
	var n int
	err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM enrollments WHERE course_id = $1`, courseID).Scan(&n)
	return n, err
}

// UpdateEnrollmentProgress clamps progress to [0,100] and flips completion
// at 100, stamping completed_at exactly once.
func (p *Postgres) UpdateEnrollmentProgress(ctx context.Context, id domain.EnrollmentID, progress int) (domain.Enrollment, error) {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	var e domain.Enrollment
	var completedAt *time.Time
	err := p.pool.QueryRow(ctx, `
		UPDATE enrollments
		SET progress = $2,
		    completed = ($2 >= 100),
		    completed_at = CASE WHEN $2 >= 100 AND completed_at IS NULL THEN NOW() ELSE completed_at END
		WHERE id = $1
		RETURNING `+enrollmentCols+`
	`, id, progress).Scan(&e.ID, &e.UserID, &e.CourseID, &e.PathID, &e.EnrolledAt, &e.Progress, &e.Completed, &completedAt)
	e.CompletedAt = completedAt
	return e, notFound(err)
}

func (p *Postgres) DeleteEnrollment(ctx context.Context, id domain.EnrollmentID) error {
	ct, err := p.pool.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) GetUserStats(ctx context.Context, userID domain.UserID) (domain.UserStats, error) {
	s := domain.UserStats{UserID: userID}
	err := p.pool.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE completed),
		       COALESCE(AVG(progress), 0)::int
		FROM enrollments WHERE user_id = $1
	`, userID).Scan(&s.TotalEnrollments, &s.Completed, &s.AverageProgress)
	return s, err
}
