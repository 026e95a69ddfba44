package models

// Faculty is a staff member keyed by faculty number. Every attribute besides
// the key is nullable; FacultyProfile holds a stored upload name, never bytes.
type Faculty struct {
	FacultyNumber  string  `db:"faculty_number" json:"faculty_number"`
	FacultyName    *string `db:"faculty_name" json:"faculty_name"`
	FacultyProfile *string `db:"faculty_profile" json:"faculty_profile"`
	JoiningYear    *string `db:"joining_year" json:"joining_year"`
	BirthDate      *string `db:"birth_date" json:"birth_date"`
	Department     *string `db:"department" json:"department"`
	Mobile         *string `db:"mobile" json:"mobile"`
	FacultyEmail   *string `db:"faculty_email" json:"faculty_email"`
}
