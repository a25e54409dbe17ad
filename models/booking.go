package models

import "time"

// Booking request lifecycle.
const (
	BookingPending   = "pending"
	BookingAccepted  = "accepted"
	BookingRejected  = "rejected"
	BookingCompleted = "completed"
)

// BookingRequest snapshots service and participant details at creation time,
// so later edits to the service do not rewrite booking history.
type BookingRequest struct {
	ID           string    `bson:"id" json:"id"`
	ServiceID    string    `bson:"serviceId" json:"serviceId"`
	ServiceName  string    `bson:"serviceName" json:"serviceName"`
	CustomerID   string    `bson:"customerId" json:"customerId"`
	CustomerName string    `bson:"customerName" json:"customerName"`
	HustlerID    string    `bson:"hustlerId" json:"hustlerId"`
	HustlerName  string    `bson:"hustlerName" json:"hustlerName"`
	Status       string    `bson:"status" json:"status"`
	Date         time.Time `bson:"date" json:"date"`
	Message      string    `bson:"message" json:"message"`
	Price        float64   `bson:"price" json:"price"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingInput is the customer-side booking form.
type BookingInput struct {
	ServiceID string    `json:"serviceId" binding:"required"`
	Date      time.Time `json:"date" binding:"required"`
	Message   string    `json:"message"`
}
