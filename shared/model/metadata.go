package model

import "time"

type Metadata struct {
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
	CreatedBy  string    `db:"created_by"`
	ModifiedBy string    `db:"modified_by"`
}

// Person carries the fields shared by every user-like record. Employee and
// Customer embed it and attach their role-specific fields, so the two stay
// variants of one base shape instead of an inheritance tree.
type Person struct {
	Name     string `db:"name"`
	Surname  string `db:"surname"`
	Password string `db:"password"`
}
