package model

type Patient struct {
	ID           int64   `db:"id" json:"id"`
	FullName     string  `db:"full_name" json:"full_name"`
	PolicyNumber string  `db:"policy_number" json:"policy_number"`
	Email        *string `db:"email" json:"email"`
}

type CreatePatientRequest struct {
	FullName     string  `json:"full_name" binding:"required"`
	PolicyNumber string  `json:"policy_number" binding:"required"`
	Email        *string `json:"email"`
}

// PatientFilters narrows a patient listing. An empty Search lists everyone.
type PatientFilters struct {
	Search string
}
