package store

import (
	"context"

	"github.com/openlearn/backend/internal/domain"
)

func (p *Postgres) CreateTeacher(ctx context.Context, t *domain.Teacher) error {
	return p.pool.QueryRow(ctx, `
		INSERT INTO teachers (first_name, last_name, birth_date, birth_place, qualifications, subject)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, t.FirstName, t.LastName, t.BirthDate, t.BirthPlace, t.Qualifications, t.Subject).Scan(&t.ID, &t.CreatedAt)
}

func (p *Postgres) ListTeachers(ctx context.Context) ([]domain.Teacher, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, first_name, last_name, birth_date, birth_place, COALESCE(qualifications, ''), subject, created_at
		FROM teachers ORDER BY last_name, first_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Teacher
	for rows.Next() {
		var t domain.Teacher
		if err := rows.Scan(&t.ID, &t.FirstName, &t.LastName, &t.BirthDate, &t.BirthPlace, &t.Qualifications, &t.Subject, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (p *Postgres) UpdateTeacher(ctx context.Context, t *domain.Teacher) error {
	err := p.pool.QueryRow(ctx, `
		UPDATE teachers
		SET first_name = $2, last_name = $3, birth_date = $4, birth_place = $5, qualifications = $6, subject = $7
		WHERE id = $1
		RETURNING created_at
	`, t.ID, t.FirstName, t.LastName, t.BirthDate, t.BirthPlace, t.Qualifications, t.Subject).Scan(&t.CreatedAt)
	return notFound(err)
}

func (p *Postgres) DeleteTeacher(ctx context.Context, id domain.TeacherID) error {
	ct, err := p.pool.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
