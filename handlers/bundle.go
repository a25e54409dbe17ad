package handlers

import (
	userRepoPkg "grindsphere/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	SignupHandler  gin.HandlerFunc
	LoginHandler   gin.HandlerFunc
	SignOutHandler gin.HandlerFunc

	// Profile endpoints
	GetProfileHandler       gin.HandlerFunc
	UploadProfilePicHandler gin.HandlerFunc
	UpdateFCMTokenHandler   gin.HandlerFunc

	// Favorites + browse-category endpoints
	ToggleFavoriteHandler      gin.HandlerFunc
	ListFavoritesHandler       gin.HandlerFunc
	SetBrowseCategoryHandler   gin.HandlerFunc
	GetBrowseCategoryHandler   gin.HandlerFunc
	ClearBrowseCategoryHandler gin.HandlerFunc

	// Catalog endpoints
	ListServicesHandler  gin.HandlerFunc
	TopServicesHandler   gin.HandlerFunc
	GetServiceHandler    gin.HandlerFunc
	MyServicesHandler    gin.HandlerFunc
	SaveServiceHandler   gin.HandlerFunc
	DeleteServiceHandler gin.HandlerFunc
	DashboardHandler     gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler       gin.HandlerFunc
	ListBookingsHandler        gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc

	// Chat endpoints
	SendMessageHandler gin.HandlerFunc
	InboxHandler       gin.HandlerFunc
	HistoryHandler     gin.HandlerFunc
	StreamHandler      gin.HandlerFunc

	// Review endpoints
	AddReviewHandler   gin.HandlerFunc
	ListReviewsHandler gin.HandlerFunc

	// Storage endpoints
	UploadFileHandler gin.HandlerFunc
}
