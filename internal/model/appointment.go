package model

import (
	"fmt"
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusPlanned   AppointmentStatus = "planned"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentStatuses lists every accepted status in display order.
var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusPlanned,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
}

func (s AppointmentStatus) Valid() bool {
	for _, v := range AppointmentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Appointment struct {
	ID              int64             `db:"id" json:"id"`
	DoctorID        int64             `db:"doctor_id" json:"doctor_id"`
	PatientID       int64             `db:"patient_id" json:"patient_id"`
	AppointmentTime time.Time         `db:"appointment_time" json:"appointment_time"`
	Status          AppointmentStatus `db:"status" json:"status"`
}

// AppointmentView is a listing row with the doctor and patient names joined in.
type AppointmentView struct {
	Appointment
	DoctorName  string `db:"doctor_name" json:"doctor_name"`
	PatientName string `db:"patient_name" json:"patient_name"`
}

type CreateAppointmentRequest struct {
	DoctorID        int64  `json:"doctor_id" binding:"required"`
	PatientID       int64  `json:"patient_id" binding:"required"`
	AppointmentTime string `json:"appointment_time" binding:"required"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AppointmentFilters are AND-combined. Status is always applied.
type AppointmentFilters struct {
	DoctorID  *int64
	PatientID *int64
	Status    AppointmentStatus
}

// Layouts carrying an explicit offset.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04Z07:00",
	"2006-01-02T15:04:05.999999999Z07",
	"2006-01-02T15:04Z07",
	"2006-01-02 15:04:05.999999999Z07",
	"20060102T150405Z0700",
	"20060102T1504Z0700",
}

// Layouts without an offset; these are read in the caller's location.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
	"20060102T150405",
	"20060102T1504",
}

// ParseAppointmentTime parses an ISO-8601 timestamp. Values without an
// offset are interpreted in loc.
func ParseAppointmentTime(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised ISO-8601 timestamp %q", s)
}
