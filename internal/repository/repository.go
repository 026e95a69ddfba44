package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

const (
	facultyTable = "faculty"
	studentTable = "students"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS faculty (
    faculty_number TEXT PRIMARY KEY,
    faculty_name TEXT,
    faculty_profile TEXT,
    joining_year TEXT,
    birth_date TEXT,
    department TEXT,
    mobile TEXT,
    faculty_email TEXT
)`,
	`CREATE TABLE IF NOT EXISTS students (
    id TEXT PRIMARY KEY,
    name TEXT,
    profile TEXT,
    birth_date TEXT,
    mobile TEXT,
    email TEXT,
    department TEXT,
    cgpa DOUBLE PRECISION
)`,
}

// EnsureSchema creates the record tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// statementBuilder picks the placeholder style the driver understands.
func statementBuilder(db *sqlx.DB) squirrel.StatementBuilderType {
	if sqlx.BindType(db.DriverName()) == sqlx.DOLLAR {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}
