package model

type Doctor struct {
	ID             int64   `db:"id" json:"id"`
	FullName       string  `db:"full_name" json:"full_name"`
	Specialization string  `db:"specialization" json:"specialization"`
	Phone          *string `db:"phone" json:"phone"`
}

type CreateDoctorRequest struct {
	FullName       string  `json:"full_name" binding:"required"`
	Specialization string  `json:"specialization" binding:"required"`
	Phone          *string `json:"phone"`
}
