package entity

import "time"

// Order is a service order tracked for status lookups.
type Order struct {
	Number        string    `json:"number"`
	CustomerPhone string    `json:"customer_phone"`
	Description   string    `json:"description,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
