package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/campus-records-api/internal/models"
)

var facultyColumns = []string{
	"faculty_number", "faculty_name", "faculty_profile", "joining_year",
	"birth_date", "department", "mobile", "faculty_email",
}

// FacultyRepository manages persistence for faculty records.
type FacultyRepository struct {
	db *sqlx.DB
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository constructs a FacultyRepository.
func NewFacultyRepository(db *sqlx.DB) *FacultyRepository {
	return &FacultyRepository{db: db, sb: statementBuilder(db)}
}

// List returns every faculty row.
func (r *FacultyRepository) List(ctx context.Context) ([]models.Faculty, error) {
	query, args, err := r.sb.Select(facultyColumns...).From(facultyTable).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list faculty query: %w", err)
	}
	faculties := []models.Faculty{}
	if err := r.db.SelectContext(ctx, &faculties, query, args...); err != nil {
		return nil, fmt.Errorf("list faculty: %w", err)
	}
	return faculties, nil
}

// FindByNumber fetches one faculty row. It returns sql.ErrNoRows when absent.
func (r *FacultyRepository) FindByNumber(ctx context.Context, facultyNumber string) (*models.Faculty, error) {
	query, args, err := r.sb.Select(facultyColumns...).
		From(facultyTable).
		Where(squirrel.Eq{"faculty_number": facultyNumber}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find faculty query: %w", err)
	}
	var faculty models.Faculty
	if err := r.db.GetContext(ctx, &faculty, query, args...); err != nil {
		return nil, fmt.Errorf("find faculty %s: %w", facultyNumber, err)
	}
	return &faculty, nil
}

// Create inserts a new faculty row.
func (r *FacultyRepository) Create(ctx context.Context, f *models.Faculty) error {
	query, args, err := r.sb.Insert(facultyTable).
		Columns(facultyColumns...).
		Values(f.FacultyNumber, f.FacultyName, f.FacultyProfile, f.JoiningYear, f.BirthDate, f.Department, f.Mobile, f.FacultyEmail).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create faculty query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create faculty: %w", err)
	}
	return nil
}

// Update overwrites every non-key column. It returns sql.ErrNoRows when no row has the key.
func (r *FacultyRepository) Update(ctx context.Context, f *models.Faculty) error {
	query, args, err := r.sb.Update(facultyTable).
		Set("faculty_name", f.FacultyName).
		Set("faculty_profile", f.FacultyProfile).
		Set("joining_year", f.JoiningYear).
		Set("birth_date", f.BirthDate).
		Set("department", f.Department).
		Set("mobile", f.Mobile).
		Set("faculty_email", f.FacultyEmail).
		Where(squirrel.Eq{"faculty_number": f.FacultyNumber}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update faculty query: %w", err)
	}
	return execAffectingRow(ctx, r.db, "update faculty", query, args)
}

// Delete removes a faculty row. It returns sql.ErrNoRows when no row has the key.
func (r *FacultyRepository) Delete(ctx context.Context, facultyNumber string) error {
	query, args, err := r.sb.Delete(facultyTable).
		Where(squirrel.Eq{"faculty_number": facultyNumber}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete faculty query: %w", err)
	}
	return execAffectingRow(ctx, r.db, "delete faculty", query, args)
}

func execAffectingRow(ctx context.Context, db *sqlx.DB, op, query string, args []interface{}) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
