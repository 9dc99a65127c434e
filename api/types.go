package api

import "github.com/solecraft/client-go/users"

// AuthResponse is the envelope returned by login and register.
type AuthResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Token   string         `json:"token,omitempty"`
	User    *users.Profile `json:"user,omitempty"`
}

// VerifyResponse is the envelope returned by the verify endpoint.
type VerifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ForgotPasswordResponse optionally carries a reset token in environments
// where email delivery is stubbed out.
type ForgotPasswordResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	ResetToken string `json:"resetToken,omitempty"`
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// Service is a repair service offered through the platform.
type Service struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration,omitempty"`
	Category    string  `json:"category,omitempty"`
}

// ServicesResponse wraps the service catalog.
type ServicesResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message,omitempty"`
	Services []Service `json:"services"`
}

// Product is a shop catalog item.
type Product struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Brand    string  `json:"brand,omitempty"`
	Category string  `json:"category,omitempty"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating,omitempty"`
	InStock  bool    `json:"inStock"`
	Image    string  `json:"image,omitempty"`
}

// Pagination is the paging block returned by list endpoints.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// ProductsResponse wraps a product page.
type ProductsResponse struct {
	Success    bool       `json:"success"`
	Message    string     `json:"message,omitempty"`
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// ShopStats are the aggregate shop figures.
type ShopStats struct {
	TotalProducts   int     `json:"totalProducts"`
	InStockProducts int     `json:"inStockProducts"`
	TotalOrders     int     `json:"totalOrders"`
	AverageRating   float64 `json:"averageRating"`
}

// GeoPoint is a GeoJSON point; Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// Lat returns the latitude component.
func (p GeoPoint) Lat() float64 { return p.Coordinates[1] }

// Lng returns the longitude component.
func (p GeoPoint) Lng() float64 { return p.Coordinates[0] }

// Cobbler is a repair shop with location and booking metadata.
type Cobbler struct {
	ID             string   `json:"_id"`
	CobblerID      string   `json:"cobblerId,omitempty"`
	Name           string   `json:"name"`
	Location       GeoPoint `json:"location"`
	Rating         float64  `json:"rating,omitempty"`
	Reviews        int      `json:"reviews,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	Email          string   `json:"email,omitempty"`
	Hours          string   `json:"hours,omitempty"`
	Services       []string `json:"services,omitempty"`
	Distance       string   `json:"distance,omitempty"`
	Address        string   `json:"address,omitempty"`
	Verified       bool     `json:"verified"`
	Speciality     string   `json:"speciality,omitempty"`
	AvailableSlots []string `json:"availableSlots,omitempty"`
}

// CobblersResponse wraps a cobbler search result.
type CobblersResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message,omitempty"`
	Cobblers []Cobbler `json:"cobblers"`
}

// AppointmentRequest books a slot with a cobbler.
type AppointmentRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	ServiceType     string `json:"serviceType"`
	Notes           string `json:"notes,omitempty"`
}

// Appointment is a confirmed booking.
type Appointment struct {
	AppointmentID   string `json:"appointmentId"`
	CobblerID       string `json:"cobblerId,omitempty"`
	ServiceID       string `json:"serviceId,omitempty"`
	AppointmentDate string `json:"appointmentDate,omitempty"`
	AppointmentTime string `json:"appointmentTime,omitempty"`
	ServiceType     string `json:"serviceType,omitempty"`
}

// AppointmentResponse wraps a booking confirmation.
type AppointmentResponse struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message,omitempty"`
	Appointment *Appointment `json:"appointment,omitempty"`
}

// CartItem is one line in the shopping cart.
type CartItem struct {
	ID        string  `json:"_id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name,omitempty"`
	Price     float64 `json:"price,omitempty"`
	Quantity  int     `json:"quantity"`
}

// CartResponse wraps the cart contents.
type CartResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Items   []CartItem `json:"items"`
}

// WishlistResponse wraps the wishlisted product IDs.
type WishlistResponse struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message,omitempty"`
	Products []string `json:"products"`
}

// ProfileResponse wraps the authoritative profile fetch.
type ProfileResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	User    *users.Profile `json:"user,omitempty"`
}

// FiltersResponse wraps brand/category filter metadata.
type FiltersResponse struct {
	Success bool     `json:"success"`
	Values  []string `json:"values"`
}
