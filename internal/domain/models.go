package domain

import "time"

// Order statuses. Transitions are driven by admin PATCHes; the happy path is
// pending -> preparing -> ready -> completed, with cancelled reachable from pending.
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Reservation statuses. pending -> confirmed or pending -> cancelled, both terminal.
const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
)

type MenuItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	NameAr        string `json:"nameAr"`
	Description   string `json:"description"`
	DescriptionAr string `json:"descriptionAr"`
	Price         string `json:"price"`
	Category      string `json:"category"`
	Image         string `json:"image"`
	IsAvailable   bool   `json:"isAvailable"`
	IsPopular     bool   `json:"isPopular"`
	IsNew         bool   `json:"isNew"`
}

// Order items are stored as a serialized snapshot list, not references to
// menu items, so later menu edits do not rewrite historical orders.
type Order struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone"`
	CustomerAddress string    `json:"customerAddress"`
	Items           string    `json:"items"`
	Total           string    `json:"total"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// OrderItem is the shape of a single entry inside Order.Items.
type OrderItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

type Reservation struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone"`
	CustomerEmail   string    `json:"customerEmail,omitempty"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Guests          int       `json:"guests"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

type Offer struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	TitleAr       string `json:"titleAr"`
	Description   string `json:"description"`
	DescriptionAr string `json:"descriptionAr"`
	Discount      int    `json:"discount"`
	Image         string `json:"image"`
	ValidUntil    string `json:"validUntil"`
	IsActive      bool   `json:"isActive"`
}

// Insert payloads omit id, createdAt and status; status always starts at
// "pending" server-side. Optional booleans and required ints are pointers so
// an absent field is distinguishable from a zero value.

type InsertMenuItem struct {
	Name          string `json:"name"`
	NameAr        string `json:"nameAr"`
	Description   string `json:"description"`
	DescriptionAr string `json:"descriptionAr"`
	Price         string `json:"price"`
	Category      string `json:"category"`
	Image         string `json:"image"`
	IsAvailable   *bool  `json:"isAvailable"`
	IsPopular     *bool  `json:"isPopular"`
	IsNew         *bool  `json:"isNew"`
}

type InsertOrder struct {
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`
	Items           string `json:"items"`
	Total           string `json:"total"`
}

type InsertReservation struct {
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerEmail   string `json:"customerEmail"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          *int   `json:"guests"`
	SpecialRequests string `json:"specialRequests"`
}

type InsertOffer struct {
	Title         string `json:"title"`
	TitleAr       string `json:"titleAr"`
	Description   string `json:"description"`
	DescriptionAr string `json:"descriptionAr"`
	Discount      *int   `json:"discount"`
	Image         string `json:"image"`
	ValidUntil    string `json:"validUntil"`
	IsActive      *bool  `json:"isActive"`
}

// Event types emitted to Kafka when a broker is configured.
const (
	EventOrderCreated             = "order_created"
	EventOrderStatusChanged       = "order_status_changed"
	EventReservationCreated       = "reservation_created"
	EventReservationStatusChanged = "reservation_status_changed"
)

type Event struct {
	Type      string    `json:"type"`
	EntityID  string    `json:"entity_id"`
	Status    string    `json:"status,omitempty"`
	Total     string    `json:"total,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
