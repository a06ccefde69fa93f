package store

import (
	"context"

	"github.com/openlearn/backend/internal/domain"
)

func (p *Postgres) CreateBook(ctx context.Context, b *domain.Book) error {
	return p.pool.QueryRow(ctx, `
		INSERT INTO books (title, author, description, course_id, file_path, original_file_name, file_type, file_size, icon)
		VALUES ($1, $2, $3, NULLIF($4, 0), $5, $6, $7, $8, $9)
		RETURNING id, upload_time
	`, b.Title, b.Author, b.Description, b.CourseID, b.FilePath, b.OriginalFileName, b.FileType, b.FileSize, b.Icon).
		Scan(&b.ID, &b.UploadTime)
}

const bookCols = `id, title, author, COALESCE(description, ''), COALESCE(course_id, 0),
	COALESCE(file_path, ''), COALESCE(original_file_name, ''), COALESCE(file_type, ''),
	COALESCE(file_size, 0), COALESCE(icon, ''), upload_time`

func (p *Postgres) GetBook(ctx context.Context, id domain.BookID) (domain.Book, error) {
	var b domain.Book
	err := p.pool.QueryRow(ctx, `SELECT `+bookCols+` FROM books WHERE id = $1`, id).
		Scan(&b.ID, &b.Title, &b.Author, &b.Description, &b.CourseID, &b.FilePath,
			&b.OriginalFileName, &b.FileType, &b.FileSize, &b.Icon, &b.UploadTime)
	return b, notFound(err)
}

func (p *Postgres) ListBooks(ctx context.Context) ([]domain.Book, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+bookCols+` FROM books ORDER BY upload_time DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Description, &b.CourseID, &b.FilePath,
			&b.OriginalFileName, &b.FileType, &b.FileSize, &b.Icon, &b.UploadTime); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (p *Postgres) UpdateBook(ctx context.Context, b *domain.Book) error {
	err := p.pool.QueryRow(ctx, `
		UPDATE books SET title = $2, author = $3, description = $4, course_id = NULLIF($5, 0), icon = $6
		WHERE id = $1
		RETURNING upload_time
	`, b.ID, b.Title, b.Author, b.Description, b.CourseID, b.Icon).Scan(&b.UploadTime)
	return notFound(err)
}

func (p *Postgres) DeleteBook(ctx context.Context, id domain.BookID) error {
	ct, err := p.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
