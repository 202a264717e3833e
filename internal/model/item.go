package model

import "time"

// Item represents one tracked physical item awaiting pickup by its owner.
type Item struct {
	ID          int64     `json:"id"`
	OwnerName   string    `json:"owner_name"`
	Description string    `json:"description"`
	Phone       string    `json:"phone"`
	Status      string    `json:"status"`
	ArrivalTime time.Time `json:"arrival_time"`
}

// Item statuses, in lifecycle order.
const (
	StatusPending   = "pending"
	StatusNotified  = "notified"
	StatusDelivered = "delivered"
)
