package store

import (
	"context"

	"github.com/openlearn/backend/internal/domain"
)

func (p *Postgres) CreateDrawing(ctx context.Context, d *domain.Drawing) error {
	return p.pool.QueryRow(ctx, `
		INSERT INTO whiteboard_drawings (seminar_id, drawing_data, drawn_by, action_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, draw_time
	`, d.SeminarID, d.DrawingData, d.DrawnBy, d.ActionType).Scan(&d.ID, &d.DrawTime)
}

func (p *Postgres) ListDrawings(ctx context.Context, seminarID domain.SeminarID) ([]domain.Drawing, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, seminar_id, drawing_data, COALESCE(drawn_by, ''), COALESCE(action_type, ''), draw_time
		FROM whiteboard_drawings WHERE seminar_id = $1 ORDER BY draw_time
	`, seminarID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Drawing
	for rows.Next() {
		var d domain.Drawing
		if err := rows.Scan(&d.ID, &d.SeminarID, &d.DrawingData, &d.DrawnBy, &d.ActionType, &d.DrawTime); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ClearDrawings wipes a seminar's whiteboard history.
func (p *Postgres) ClearDrawings(ctx context.Context, seminarID domain.SeminarID) error {
	_, err := p.pool.Exec(ctx, `DELETE FROM whiteboard_drawings WHERE seminar_id = $1`, seminarID)
	return err
}
