package models

import "time"

// Toast is a transient success/error notification surfaced to the admin.
type Toast struct {
	ID        string    `json:"id"`
	Level     string    `json:"level"` // "success" or "error"
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	ToastSuccess = "success"
	ToastError   = "error"
)
