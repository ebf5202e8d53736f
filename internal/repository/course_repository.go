package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iumatch/coursematch-backend/internal/model"
)

type CourseRepository interface {
	GetAll(ctx context.Context) ([]model.Course, error)
	GetByID(ctx context.Context, id string) (*model.Course, error)
	Upsert(ctx context.Context, course *model.Course) error
	Count(ctx context.Context) (int, error)
}

type courseRepository struct {
	db *pgxpool.Pool
}

func NewCourseRepository(db *pgxpool.Pool) CourseRepository {
	return &courseRepository{db: db}
}

const courseColumns = `
	id, title, description, credits, avg_gpa, difficulty, instructor,
	fulfills, prerequisites, level, term, school,
	meeting_days, meeting_start, meeting_end, meeting_location
`

func (r *courseRepository) GetAll(ctx context.Context) ([]model.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		c, err := scanCourse(rows.Scan)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *courseRepository) GetByID(ctx context.Context, id string) (*model.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`
	c, err := scanCourse(r.db.QueryRow(ctx, query, id).Scan)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *courseRepository) Upsert(ctx context.Context, course *model.Course) error {
	query := `
		INSERT INTO courses (
			id, title, description, credits, avg_gpa, difficulty, instructor,
			fulfills, prerequisites, level, term, school,
			meeting_days, meeting_start, meeting_end, meeting_location
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			credits = EXCLUDED.credits,
			avg_gpa = EXCLUDED.avg_gpa,
			difficulty = EXCLUDED.difficulty,
			instructor = EXCLUDED.instructor,
			fulfills = EXCLUDED.fulfills,
			prerequisites = EXCLUDED.prerequisites,
			level = EXCLUDED.level,
			term = EXCLUDED.term,
			school = EXCLUDED.school,
			meeting_days = EXCLUDED.meeting_days,
			meeting_start = EXCLUDED.meeting_start,
			meeting_end = EXCLUDED.meeting_end,
			meeting_location = EXCLUDED.meeting_location,
			updated_at = CURRENT_TIMESTAMP
	`

	var days []string
	var start, end, location *string
	if mt := course.MeetingTimes; mt != nil {
		days = mt.Days
		start, end, location = &mt.StartTime, &mt.EndTime, &mt.Location
	}

	_, err := r.db.Exec(ctx, query,
		course.ID, course.Title, course.Description, course.Credits,
		course.AvgGPA, string(course.Difficulty), course.Instructor,
		course.Fulfills, course.Prerequisites, course.Level, course.Term,
		string(course.School), days, start, end, location,
	)
	return err
}

func (r *courseRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&n)
	return n, err
}

func scanCourse(scan func(dest ...any) error) (model.Course, error) {
	var (
		c                    model.Course
		difficulty, school   string
		days                 []string
		start, end, location *string
	)
	err := scan(
		&c.ID, &c.Title, &c.Description, &c.Credits, &c.AvgGPA,
		&difficulty, &c.Instructor, &c.Fulfills, &c.Prerequisites,
		&c.Level, &c.Term, &school,
		&days, &start, &end, &location,
	)
	if err != nil {
		return model.Course{}, err
	}

	c.Difficulty = model.Difficulty(difficulty)
	c.School = model.School(school)
	if len(days) > 0 && start != nil && end != nil {
		mt := &model.MeetingTimes{Days: days, StartTime: *start, EndTime: *end}
		if location != nil {
			mt.Location = *location
		}
		c.MeetingTimes = mt
	}
	return c, nil
}
