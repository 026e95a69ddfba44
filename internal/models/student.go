package models

// Student is a learner keyed by an opaque text ID.
type Student struct {
	ID         string   `db:"id" json:"id"`
	Name       *string  `db:"name" json:"name"`
	Profile    *string  `db:"profile" json:"profile"`
	BirthDate  *string  `db:"birth_date" json:"birth_date"`
	Mobile     *string  `db:"mobile" json:"mobile"`
	Email      *string  `db:"email" json:"email"`
	Department *string  `db:"department" json:"department"`
	CGPA       *float64 `db:"cgpa" json:"cgpa"`
}
