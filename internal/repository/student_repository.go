package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/campus-records-api/internal/models"
)

var studentColumns = []string{
	"id", "name", "profile", "birth_date", "mobile", "email", "department", "cgpa",
}

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
	sb squirrel.StatementBuilderType
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db, sb: statementBuilder(db)}
}

// List returns every student row.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	query, args, err := r.sb.Select(studentColumns...).From(studentTable).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list students query: %w", err)
	}
	students := []models.Student{}
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// FindByID fetches one student row. It returns sql.ErrNoRows when absent.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	query, args, err := r.sb.Select(studentColumns...).
		From(studentTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find student query: %w", err)
	}
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, args...); err != nil {
		return nil, fmt.Errorf("find student %s: %w", id, err)
	}
	return &student, nil
}

// Create inserts a new student row.
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) error {
	query, args, err := r.sb.Insert(studentTable).
		Columns(studentColumns...).
		Values(s.ID, s.Name, s.Profile, s.BirthDate, s.Mobile, s.Email, s.Department, s.CGPA).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create student query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// Update overwrites every non-key column. It returns sql.ErrNoRows when no row has the ID.
func (r *StudentRepository) Update(ctx context.Context, s *models.Student) error {
	query, args, err := r.sb.Update(studentTable).
		Set("name", s.Name).
		Set("profile", s.Profile).
		Set("birth_date", s.BirthDate).
		Set("mobile", s.Mobile).
		Set("email", s.Email).
		Set("department", s.Department).
		Set("cgpa", s.CGPA).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update student query: %w", err)
	}
	return execAffectingRow(ctx, r.db, "update student", query, args)
}

// Delete removes a student row. It returns sql.ErrNoRows when no row has the ID.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	query, args, err := r.sb.Delete(studentTable).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete student query: %w", err)
	}
	return execAffectingRow(ctx, r.db, "delete student", query, args)
}
