package model

// Beca describes a scholarship offered to students.
type Beca struct {
	ID          int64
	Name        string
	Description string
	Amount      int64
}
