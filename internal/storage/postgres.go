package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salah559/Box-eat/internal/domain"
)

// Postgres is the opt-in durable Store. The table layout mirrors the memory
// driver's entities one to one. Patch updates reuse applyPatch against the
// current row and write all columns back, so merge semantics are identical
// across drivers.
type Postgres struct {
	DB *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{DB: db}
}

var _ Store = (*Postgres)(nil)

func (p *Postgres) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS menu_items (
			id VARCHAR PRIMARY KEY,
			name TEXT NOT NULL,
			name_ar TEXT NOT NULL,
			description TEXT NOT NULL,
			description_ar TEXT NOT NULL,
			price DECIMAL(10,2) NOT NULL,
			category TEXT NOT NULL,
			image TEXT NOT NULL,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			is_popular BOOLEAN NOT NULL DEFAULT FALSE,
			is_new BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id VARCHAR PRIMARY KEY,
			customer_name TEXT NOT NULL,
			customer_phone TEXT NOT NULL,
			customer_address TEXT NOT NULL,
			items TEXT NOT NULL,
			total DECIMAL(10,2) NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS reservations (
			id VARCHAR PRIMARY KEY,
			customer_name TEXT NOT NULL,
			customer_phone TEXT NOT NULL,
			customer_email TEXT,
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			guests INTEGER NOT NULL,
			special_requests TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS offers (
			id VARCHAR PRIMARY KEY,
			title TEXT NOT NULL,
			title_ar TEXT NOT NULL,
			description TEXT NOT NULL,
			description_ar TEXT NOT NULL,
			discount INTEGER NOT NULL,
			image TEXT NOT NULL,
			valid_until TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
	}

	for _, stmt := range statements {
		if _, err := p.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Menu items

const menuItemColumns = "id, name, name_ar, description, description_ar, price, category, image, is_available, is_popular, is_new"

func scanMenuItem(row interface{ Scan(...any) error }) (domain.MenuItem, error) {
	var item domain.MenuItem
	err := row.Scan(&item.ID, &item.Name, &item.NameAr, &item.Description, &item.DescriptionAr,
		&item.Price, &item.Category, &item.Image, &item.IsAvailable, &item.IsPopular, &item.IsNew)
	return item, err
}

func (p *Postgres) ListMenuItems() ([]domain.MenuItem, error) {
	rows, err := p.DB.Query("SELECT " + menuItemColumns + " FROM menu_items")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (p *Postgres) GetMenuItem(id string) (*domain.MenuItem, error) {
	item, err := scanMenuItem(p.DB.QueryRow("SELECT "+menuItemColumns+" FROM menu_items WHERE id = $1", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (p *Postgres) CreateMenuItem(item domain.MenuItem) (domain.MenuItem, error) {
	item.ID = uuid.NewString()
	_, err := p.DB.Exec(`
		INSERT INTO menu_items (`+menuItemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, item.ID, item.Name, item.NameAr, item.Description, item.DescriptionAr,
		item.Price, item.Category, item.Image, item.IsAvailable, item.IsPopular, item.IsNew)
	return item, err
}

func (p *Postgres) UpdateMenuItem(id string, patch map[string]any) (*domain.MenuItem, error) {
	current, err := p.GetMenuItem(id)
	if err != nil || current == nil {
		return nil, err
	}
	var updated domain.MenuItem
	if err := applyPatch(*current, patch, &updated); err != nil {
		return nil, err
	}
	_, err = p.DB.Exec(`
		UPDATE menu_items
		SET name=$1, name_ar=$2, description=$3, description_ar=$4, price=$5,
		    category=$6, image=$7, is_available=$8, is_popular=$9, is_new=$10
		WHERE id=$11
	`, updated.Name, updated.NameAr, updated.Description, updated.DescriptionAr, updated.Price,
		updated.Category, updated.Image, updated.IsAvailable, updated.IsPopular, updated.IsNew, id)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (p *Postgres) DeleteMenuItem(id string) (bool, error) {
	result, err := p.DB.Exec("DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// Orders

const orderColumns = "id, customer_name, customer_phone, customer_address, items, total, status, created_at"

func scanOrder(row interface{ Scan(...any) error }) (domain.Order, error) {
	var order domain.Order
	err := row.Scan(&order.ID, &order.CustomerName, &order.CustomerPhone, &order.CustomerAddress,
		&order.Items, &order.Total, &order.Status, &order.CreatedAt)
	return order, err
}

func (p *Postgres) ListOrders() ([]domain.Order, error) {
	rows, err := p.DB.Query("SELECT " + orderColumns + " FROM orders ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (p *Postgres) GetOrder(id string) (*domain.Order, error) {
	order, err := scanOrder(p.DB.QueryRow("SELECT "+orderColumns+" FROM orders WHERE id = $1", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (p *Postgres) CreateOrder(order domain.Order) (domain.Order, error) {
	order.ID = uuid.NewString()
	order.CreatedAt = time.Now().UTC()
	_, err := p.DB.Exec(`
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, order.ID, order.CustomerName, order.CustomerPhone, order.CustomerAddress,
		order.Items, order.Total, order.Status, order.CreatedAt)
	return order, err
}

func (p *Postgres) UpdateOrder(id string, patch map[string]any) (*domain.Order, error) {
	current, err := p.GetOrder(id)
	if err != nil || current == nil {
		return nil, err
	}
	var updated domain.Order
	if err := applyPatch(*current, patch, &updated); err != nil {
		return nil, err
	}
	_, err = p.DB.Exec(`
		UPDATE orders
		SET customer_name=$1, customer_phone=$2, customer_address=$3, items=$4, total=$5, status=$6
		WHERE id=$7
	`, updated.CustomerName, updated.CustomerPhone, updated.CustomerAddress,
		updated.Items, updated.Total, updated.Status, id)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Reservations

const reservationColumns = "id, customer_name, customer_phone, customer_email, date, time, guests, special_requests, status, created_at"

func scanReservation(row interface{ Scan(...any) error }) (domain.Reservation, error) {
	var res domain.Reservation
	var email, requests sql.NullString
	err := row.Scan(&res.ID, &res.CustomerName, &res.CustomerPhone, &email, &res.Date, &res.Time,
		&res.Guests, &requests, &res.Status, &res.CreatedAt)
	res.CustomerEmail = email.String
	res.SpecialRequests = requests.String
	return res, err
}

func (p *Postgres) ListReservations() ([]domain.Reservation, error) {
	rows, err := p.DB.Query("SELECT " + reservationColumns + " FROM reservations ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []domain.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			continue
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (p *Postgres) GetReservation(id string) (*domain.Reservation, error) {
	res, err := scanReservation(p.DB.QueryRow("SELECT "+reservationColumns+" FROM reservations WHERE id = $1", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (p *Postgres) CreateReservation(res domain.Reservation) (domain.Reservation, error) {
	res.ID = uuid.NewString()
	res.CreatedAt = time.Now().UTC()
	_, err := p.DB.Exec(`
		INSERT INTO reservations (`+reservationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, res.ID, res.CustomerName, res.CustomerPhone, nullable(res.CustomerEmail), res.Date, res.Time,
		res.Guests, nullable(res.SpecialRequests), res.Status, res.CreatedAt)
	return res, err
}

func (p *Postgres) UpdateReservation(id string, patch map[string]any) (*domain.Reservation, error) {
	current, err := p.GetReservation(id)
	if err != nil || current == nil {
		return nil, err
	}
	var updated domain.Reservation
	if err := applyPatch(*current, patch, &updated); err != nil {
		return nil, err
	}
	_, err = p.DB.Exec(`
		UPDATE reservations
		SET customer_name=$1, customer_phone=$2, customer_email=$3, date=$4, time=$5,
		    guests=$6, special_requests=$7, status=$8
		WHERE id=$9
	`, updated.CustomerName, updated.CustomerPhone, nullable(updated.CustomerEmail),
		updated.Date, updated.Time, updated.Guests, nullable(updated.SpecialRequests), updated.Status, id)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Offers

const offerColumns = "id, title, title_ar, description, description_ar, discount, image, valid_until, is_active"

func scanOffer(row interface{ Scan(...any) error }) (domain.Offer, error) {
	var offer domain.Offer
	err := row.Scan(&offer.ID, &offer.Title, &offer.TitleAr, &offer.Description, &offer.DescriptionAr,
		&offer.Discount, &offer.Image, &offer.ValidUntil, &offer.IsActive)
	return offer, err
}

func (p *Postgres) ListOffers() ([]domain.Offer, error) {
	rows, err := p.DB.Query("SELECT " + offerColumns + " FROM offers")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := []domain.Offer{}
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			continue
		}
		offers = append(offers, offer)
	}
	return offers, rows.Err()
}

func (p *Postgres) GetOffer(id string) (*domain.Offer, error) {
	offer, err := scanOffer(p.DB.QueryRow("SELECT "+offerColumns+" FROM offers WHERE id = $1", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (p *Postgres) CreateOffer(offer domain.Offer) (domain.Offer, error) {
	offer.ID = uuid.NewString()
	_, err := p.DB.Exec(`
		INSERT INTO offers (`+offerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, offer.ID, offer.Title, offer.TitleAr, offer.Description, offer.DescriptionAr,
		offer.Discount, offer.Image, offer.ValidUntil, offer.IsActive)
	return offer, err
}

func (p *Postgres) DeleteOffer(id string) (bool, error) {
	result, err := p.DB.Exec("DELETE FROM offers WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

func (p *Postgres) UpdateOffer(id string, patch map[string]any) (*domain.Offer, error) {
	current, err := p.GetOffer(id)
	if err != nil || current == nil {
		return nil, err
	}
	var updated domain.Offer
	if err := applyPatch(*current, patch, &updated); err != nil {
		return nil, err
	}
	_, err = p.DB.Exec(`
		UPDATE offers
		SET title=$1, title_ar=$2, description=$3, description_ar=$4, discount=$5,
		    image=$6, valid_until=$7, is_active=$8
		WHERE id=$9
	`, updated.Title, updated.TitleAr, updated.Description, updated.DescriptionAr,
		updated.Discount, updated.Image, updated.ValidUntil, updated.IsActive, id)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
