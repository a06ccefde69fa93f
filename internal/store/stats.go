package store

import "context"

// Statistics is the platform-wide aggregate for the admin dashboard.
type Statistics struct {
	TotalStudents    int64 `json:"totalStudents"`
	TotalTeachers    int64 `json:"totalTeachers"`
	TotalEnrollments int64 `json:"totalEnrollments"`
	TotalCertificates int64 `json:"totalCertificates"`
	TotalCourses     int64 `json:"totalCourses"`
}

func (p *Postgres) GetStatistics(ctx context.Context) (Statistics, error) {
	var s Statistics
	err := p.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM teachers),
			(SELECT COUNT(*) FROM enrollments),
			(SELECT COUNT(*) FROM enrollments WHERE completed),
			(SELECT COUNT(*) FROM courses)
	`).Scan(&s.TotalStudents, &s.TotalTeachers, &s.TotalEnrollments, &s.TotalCertificates, &s.TotalCourses)
	return s, err
}
