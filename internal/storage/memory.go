package storage

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/salah559/Box-eat/internal/domain"
)

// Memory is the default Store: four keyed maps plus insertion-order key
// slices behind a single RWMutex. State lives for the process lifetime only.
type Memory struct {
	mu sync.RWMutex

	menuItems    map[string]domain.MenuItem
	menuOrder    []string
	orders       map[string]domain.Order
	orderOrder   []string
	reservations map[string]domain.Reservation
	resOrder     []string
	offers       map[string]domain.Offer
	offerOrder   []string
}

func NewMemory() *Memory {
	return &Memory{
		menuItems:    make(map[string]domain.MenuItem),
		orders:       make(map[string]domain.Order),
		reservations: make(map[string]domain.Reservation),
		offers:       make(map[string]domain.Offer),
	}
}

var _ Store = (*Memory)(nil)

// applyPatch shallow-merges patch into entity through its JSON form and
// decodes the result into out. "id" and "createdAt" keys are skipped so a
// patch can never rewrite an identifier or a creation timestamp.
func applyPatch(entity any, patch map[string]any, out any) error {
	raw, err := json.Marshal(entity)
	if err != nil {
		return err
	}
	merged := map[string]any{}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return err
	}
	for field, value := range patch {
		if field == "id" || field == "createdAt" {
			continue
		}
		merged[field] = value
	}
	raw, err = json.Marshal(merged)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// Menu items

func (m *Memory) ListMenuItems() ([]domain.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := make([]domain.MenuItem, 0, len(m.menuOrder))
	for _, id := range m.menuOrder {
		items = append(items, m.menuItems[id])
	}
	return items, nil
}

func (m *Memory) GetMenuItem(id string) (*domain.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.menuItems[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (m *Memory) CreateMenuItem(item domain.MenuItem) (domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item.ID = uuid.NewString()
	m.menuItems[item.ID] = item
	m.menuOrder = append(m.menuOrder, item.ID)
	return item, nil
}

func (m *Memory) UpdateMenuItem(id string, patch map[string]any) (*domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.menuItems[id]
	if !ok {
		return nil, nil
	}
	var updated domain.MenuItem
	if err := applyPatch(item, patch, &updated); err != nil {
		return nil, err
	}
	m.menuItems[id] = updated
	return &updated, nil
}

func (m *Memory) DeleteMenuItem(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.menuItems[id]; !ok {
		return false, nil
	}
	delete(m.menuItems, id)
	m.menuOrder = removeID(m.menuOrder, id)
	return true, nil
}

// Orders

func (m *Memory) ListOrders() ([]domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	orders := make([]domain.Order, 0, len(m.orderOrder))
	for _, id := range m.orderOrder {
		orders = append(orders, m.orders[id])
	}
	return orders, nil
}

func (m *Memory) GetOrder(id string) (*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

func (m *Memory) CreateOrder(order domain.Order) (domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order.ID = uuid.NewString()
	order.CreatedAt = time.Now().UTC()
	m.orders[order.ID] = order
	m.orderOrder = append(m.orderOrder, order.ID)
	return order, nil
}

func (m *Memory) UpdateOrder(id string, patch map[string]any) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	var updated domain.Order
	if err := applyPatch(order, patch, &updated); err != nil {
		return nil, err
	}
	m.orders[id] = updated
	return &updated, nil
}

// Reservations

func (m *Memory) ListReservations() ([]domain.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	reservations := make([]domain.Reservation, 0, len(m.resOrder))
	for _, id := range m.resOrder {
		reservations = append(reservations, m.reservations[id])
	}
	return reservations, nil
}

func (m *Memory) GetReservation(id string) (*domain.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res, ok := m.reservations[id]
	if !ok {
		return nil, nil
	}
	return &res, nil
}

func (m *Memory) CreateReservation(res domain.Reservation) (domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res.ID = uuid.NewString()
	res.CreatedAt = time.Now().UTC()
	m.reservations[res.ID] = res
	m.resOrder = append(m.resOrder, res.ID)
	return res, nil
}

func (m *Memory) UpdateReservation(id string, patch map[string]any) (*domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.reservations[id]
	if !ok {
		return nil, nil
	}
	var updated domain.Reservation
	if err := applyPatch(res, patch, &updated); err != nil {
		return nil, err
	}
	m.reservations[id] = updated
	return &updated, nil
}

// Offers

func (m *Memory) ListOffers() ([]domain.Offer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	offers := make([]domain.Offer, 0, len(m.offerOrder))
	for _, id := range m.offerOrder {
		offers = append(offers, m.offers[id])
	}
	return offers, nil
}

func (m *Memory) GetOffer(id string) (*domain.Offer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	offer, ok := m.offers[id]
	if !ok {
		return nil, nil
	}
	return &offer, nil
}

func (m *Memory) CreateOffer(offer domain.Offer) (domain.Offer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	offer.ID = uuid.NewString()
	m.offers[offer.ID] = offer
	m.offerOrder = append(m.offerOrder, offer.ID)
	return offer, nil
}

func (m *Memory) UpdateOffer(id string, patch map[string]any) (*domain.Offer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	offer, ok := m.offers[id]
	if !ok {
		return nil, nil
	}
	var updated domain.Offer
	if err := applyPatch(offer, patch, &updated); err != nil {
		return nil, err
	}
	m.offers[id] = updated
	return &updated, nil
}

func (m *Memory) DeleteOffer(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.offers[id]; !ok {
		return false, nil
	}
	delete(m.offers, id)
	m.offerOrder = removeID(m.offerOrder, id)
	return true, nil
}

func removeID(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
