package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	Plan         string
	CreatedAt    time.Time
}

// WeekPayload maps a day key ("mon".."sun") to completion flags per activity
// category. Both key sets are closed; validation happens in the service layer.
type WeekPayload map[string]map[string]bool

type WeeklyActivity struct {
	UserID    uuid.UUID   `json:"uid"`
	ISOYear   int         `json:"iso_year"`
	ISOWeek   int         `json:"iso_week"`
	Payload   WeekPayload `json:"payload"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type GlucoseReading struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	MmolL     float64   `json:"mmol_l"`
	Context   string    `json:"context"`
	Note      string    `json:"note,omitempty"`
	TakenAt   time.Time `json:"taken_at"`
	CreatedAt time.Time `json:"created_at"`
}

type BloodPressureReading struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Systolic  int       `json:"systolic"`
	Diastolic int       `json:"diastolic"`
	Pulse     int       `json:"pulse,omitempty"`
	TakenAt   time.Time `json:"taken_at"`
	CreatedAt time.Time `json:"created_at"`
}

type WearableSample struct {
	RecordedAt time.Time `json:"recorded_at"`
	Metric     string    `json:"metric"`
	Value      float64   `json:"value"`
}
