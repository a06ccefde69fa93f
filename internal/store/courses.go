package store

import (
	"context"

	"github.com/openlearn/backend/internal/domain"
)

func (p *Postgres) CreateCourse(ctx context.Context, c *domain.Course) error {
	err := p.pool.QueryRow(ctx, `
		INSERT INTO courses (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, c.Name, c.Description).Scan(&c.ID, &c.CreatedAt)
	if isUnique(err) {
		return ErrAlreadyExists
	}
	return err
}

func (p *Postgres) GetCourse(ctx context.Context, id domain.CourseID) (domain.Course, error) {
	var c domain.Course
	err := p.pool.QueryRow(ctx, `
		SELECT id, name, COALESCE(description, ''), created_at FROM courses WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	return c, notFound(err)
}

func (p *Postgres) GetCourseByName(ctx context.Context, name string) (domain.Course, error) {
	var c domain.Course
	err := p.pool.QueryRow(ctx, `
		SELECT id, name, COALESCE(description, ''), created_at FROM courses WHERE name = $1
	`, name).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	return c, notFound(err)
}

func (p *Postgres) ListCourses(ctx context.Context) ([]domain.Course, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, name, COALESCE(description, ''), created_at FROM courses ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Course
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (p *Postgres) UpdateCourse(ctx context.Context, c *domain.Course) error {
	err := p.pool.QueryRow(ctx, `
		UPDATE courses SET name = $2, description = $3 WHERE id = $1 RETURNING created_at
	`, c.ID, c.Name, c.Description).Scan(&c.CreatedAt)
	if isUnique(err) {
		return ErrAlreadyExists
	}
	return notFound(err)
}

func (p *Postgres) DeleteCourse(ctx context.Context, id domain.CourseID) error {
	ct, err := p.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) CreateLearningPath(ctx context.Context, lp *domain.LearningPath) error {
	return p.pool.QueryRow(ctx, `
		INSERT INTO learning_paths (course_id, level, points, duration_weeks, overview)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, lp.CourseID, lp.Level, lp.Points, lp.DurationWeeks, lp.Overview).Scan(&lp.ID, &lp.CreatedAt)
}

func (p *Postgres) ListLearningPaths(ctx context.Context, courseID domain.CourseID) ([]domain.LearningPath, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, course_id, level, points, duration_weeks, COALESCE(overview, ''), created_at
		FROM learning_paths WHERE course_id = $1 ORDER BY points
	`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.LearningPath
	for rows.Next() {
		var lp domain.LearningPath
		if err := rows.Scan(&lp.ID, &lp.CourseID, &lp.Level, &lp.Points, &lp.DurationWeeks, &lp.Overview, &lp.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, lp)
	}
	return out, rows.Err()
}

func (p *Postgres) GetLearningPath(ctx context.Context, id domain.PathID) (domain.LearningPath, error) {
	var lp domain.LearningPath
	err := p.pool.QueryRow(ctx, `
		SELECT id, course_id, level, points, duration_weeks, COALESCE(overview, ''), created_at
		FROM learning_paths WHERE id = $1
	`, id).Scan(&lp.ID, &lp.CourseID, &lp.Level, &lp.Points, &lp.DurationWeeks, &lp.Overview, &lp.CreatedAt)
	return lp, notFound(err)
}

func (p *Postgres) UpdateLearningPath(ctx context.Context, lp *domain.LearningPath) error {
	err := p.pool.QueryRow(ctx, `
		UPDATE learning_paths
		SET level = $2, points = $3, duration_weeks = $4, overview = $5
		WHERE id = $1
		RETURNING created_at
	`, lp.ID, lp.Level, lp.Points, lp.DurationWeeks, lp.Overview).Scan(&lp.CreatedAt)
	return notFound(err)
}

func (p *Postgres) DeleteLearningPath(ctx context.Context, id domain.PathID) error {
	ct, err := p.pool.Exec(ctx, `DELETE FROM learning_paths WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) CreateLearningContent(ctx context.Context, lc *domain.LearningContent) error {
	return p.pool.QueryRow(ctx, `
		INSERT INTO learning_contents (learning_path_id, title, type, description, content_url, points, order_index)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, lc.PathID, lc.Title, lc.Type, lc.Description, lc.ContentURL, lc.Points, lc.OrderIndex).Scan(&lc.ID, &lc.CreatedAt)
}

func (p *Postgres) ListLearningContents(ctx context.Context, pathID domain.PathID) ([]domain.LearningContent, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, learning_path_id, title, type, COALESCE(description, ''), COALESCE(content_url, ''), points, order_index, created_at
		FROM learning_contents WHERE learning_path_id = $1 ORDER BY order_index
	`, pathID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.LearningContent
	for rows.Next() {
		var lc domain.LearningContent
		if err := rows.Scan(&lc.ID, &lc.PathID, &lc.Title, &lc.Type, &lc.Description, &lc.ContentURL, &lc.Points, &lc.OrderIndex, &lc.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, lc)
	}
	return out, rows.Err()
}

func (p *Postgres) UpdateLearningContent(ctx context.Context, lc *domain.LearningContent) error {
	err := p.pool.QueryRow(ctx, `
		UPDATE learning_contents
		SET title = $2, type = $3, description = $4, content_url = $5, points = $6, order_index = $7
		WHERE id = $1
		RETURNING created_at
	`, lc.ID, lc.Title, lc.Type, lc.Description, lc.ContentURL, lc.Points, lc.OrderIndex).Scan(&lc.CreatedAt)
	return notFound(err)
}

func (p *Postgres) DeleteLearningContent(ctx context.Context, id domain.ContentID) error {
	ct, err := p.pool.Exec(ctx, `DELETE FROM learning_contents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
