package models

import "time"

// Service is a hustler's published offering. Views and Bookings are
// incremented atomically server-side, never read-modify-write.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	OwnerUID    string    `bson:"ownerUid" json:"ownerUid"`
	OwnerName   string    `bson:"ownerName" json:"ownerName"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Location    string    `bson:"location" json:"location"`
	Categories  []string  `bson:"categories" json:"categories"`
	Images      []string  `bson:"images" json:"images"`
	Banner      string    `bson:"banner" json:"banner,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	Rating      float64   `bson:"rating" json:"rating"`
	Views       int64     `bson:"views" json:"views"`
	Bookings    int64     `bson:"bookings" json:"bookings"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ServiceInput is the create/edit payload. Images lists already-hosted URLs
// the owner wants to keep; freshly uploaded files are appended by the server.
type ServiceInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Categories  []string `json:"categories"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	Banner      string   `json:"banner"`
}

// ServiceDetail is the detail-screen view of a service: the document plus
// owner info and whether the viewer has saved it.
type ServiceDetail struct {
	Service         Service `json:"service"`
	OwnerProfilePic string  `json:"ownerProfilePic,omitempty"`
	Saved           bool    `json:"saved"`
}

// OwnerDashboard aggregates a hustler's own documents for the dashboard
// summary cards.
type OwnerDashboard struct {
	Services      []Service `json:"services"`
	ServiceCount  int       `json:"serviceCount"`
	TotalViews    int64     `json:"totalViews"`
	TotalBookings int64     `json:"totalBookings"`
	ReviewCount   int64     `json:"reviewCount"`
	SavedByCount  int64     `json:"savedByCount"`
}
