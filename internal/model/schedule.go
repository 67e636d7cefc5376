package model

// ScheduleEntry is one working shift of a doctor. Dates and times travel as
// their textual SQL forms (YYYY-MM-DD, HH:MM:SS).
type ScheduleEntry struct {
	ID        int64  `db:"id" json:"id"`
	DoctorID  int64  `db:"doctor_id" json:"doctor_id"`
	WorkDate  string `db:"work_date" json:"work_date"`
	StartTime string `db:"start_time" json:"start_time"`
	EndTime   string `db:"end_time" json:"end_time"`
}

type CreateScheduleRequest struct {
	DoctorID  int64  `json:"doctor_id" binding:"required"`
	WorkDate  string `json:"work_date" binding:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" binding:"required,clocktime"`
	EndTime   string `json:"end_time" binding:"required,clocktime"`
}

type ScheduleFilters struct {
	DoctorID *int64
}
