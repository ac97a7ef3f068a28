package storage

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salah559/Box-eat/internal/domain"
)

func sampleMenuItem() domain.MenuItem {
	return domain.MenuItem{
		Name:          "Classic Burger",
		NameAr:        "برجر كلاسيك",
		Description:   "Juicy beef patty",
		DescriptionAr: "لحم بقري طازج",
		Price:         "450.00",
		Category:      "برجر",
		Image:         "/assets/burger.png",
		IsAvailable:   true,
	}
}

func sampleOrder() domain.Order {
	return domain.Order{
		CustomerName:    "Salah",
		CustomerPhone:   "0550000000",
		CustomerAddress: "12 Rue Didouche",
		Items:           `[{"id":"a","name":"Classic Burger","price":"450.00","quantity":1}]`,
		Total:           "450.00",
		Status:          domain.OrderStatusPending,
	}
}

func TestMemory_CreateAssignsUniqueStableIDs(t *testing.T) {
	store := NewMemory()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		created, err := store.CreateMenuItem(sampleMenuItem())
		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.False(t, seen[created.ID], "id reused: %s", created.ID)
		seen[created.ID] = true

		fetched, err := store.GetMenuItem(created.ID)
		assert.NoError(t, err)
		assert.Equal(t, created, *fetched)
	}
}

func TestMemory_ListInsertionOrder(t *testing.T) {
	store := NewMemory()

	first, _ := store.CreateOrder(sampleOrder())
	second, _ := store.CreateOrder(sampleOrder())
	third, _ := store.CreateOrder(sampleOrder())

	orders, err := store.ListOrders()
	assert.NoError(t, err)
	assert.Len(t, orders, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID},
		[]string{orders[0].ID, orders[1].ID, orders[2].ID})
}

func TestMemory_GetUnknownIDIsAbsentNotError(t *testing.T) {
	store := NewMemory()

	item, err := store.GetMenuItem("no-such-id")
	assert.NoError(t, err)
	assert.Nil(t, item)

	order, err := store.GetOrder("no-such-id")
	assert.NoError(t, err)
	assert.Nil(t, order)
}

func TestMemory_UpdateUnknownIDDoesNotCreate(t *testing.T) {
	store := NewMemory()

	updated, err := store.UpdateOrder("ghost", map[string]any{"status": "completed"})
	assert.NoError(t, err)
	assert.Nil(t, updated)

	orders, _ := store.ListOrders()
	assert.Empty(t, orders)
}

func TestMemory_UpdateShallowMergeRetainsFields(t *testing.T) {
	store := NewMemory()
	created, _ := store.CreateOrder(sampleOrder())

	updated, err := store.UpdateOrder(created.ID, map[string]any{"status": "preparing"})
	assert.NoError(t, err)
	assert.Equal(t, "preparing", updated.Status)
	assert.Equal(t, created.CustomerName, updated.CustomerName)
	assert.Equal(t, created.Total, updated.Total)
	assert.Equal(t, created.Items, updated.Items)
}

func TestMemory_UpdateCannotRewriteIDOrCreatedAt(t *testing.T) {
	store := NewMemory()
	created, _ := store.CreateOrder(sampleOrder())

	updated, err := store.UpdateOrder(created.ID, map[string]any{
		"id":        "forged",
		"createdAt": "2001-01-01T00:00:00Z",
		"status":    "ready",
	})
	assert.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.Equal(t, "ready", updated.Status)
}

func TestMemory_UpdateCanSetBooleanFalse(t *testing.T) {
	store := NewMemory()
	created, _ := store.CreateMenuItem(sampleMenuItem())
	assert.True(t, created.IsAvailable)

	updated, err := store.UpdateMenuItem(created.ID, map[string]any{"isAvailable": false})
	assert.NoError(t, err)
	assert.False(t, updated.IsAvailable)
	assert.Equal(t, created.Name, updated.Name)
}

func TestMemory_DeleteSemantics(t *testing.T) {
	store := NewMemory()
	created, _ := store.CreateMenuItem(sampleMenuItem())

	deleted, err := store.DeleteMenuItem("ghost")
	assert.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = store.DeleteMenuItem(created.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	item, err := store.GetMenuItem(created.ID)
	assert.NoError(t, err)
	assert.Nil(t, item)

	deleted, _ = store.DeleteMenuItem(created.ID)
	assert.False(t, deleted)
}

func TestMemory_OfferCRUD(t *testing.T) {
	store := NewMemory()

	created, err := store.CreateOffer(domain.Offer{
		Title:      "Burger Combo Deal",
		TitleAr:    "عرض كومبو برجر",
		Discount:   25,
		Image:      "/assets/burger.png",
		ValidUntil: "2026-10-01",
		IsActive:   true,
	})
	assert.NoError(t, err)

	updated, err := store.UpdateOffer(created.ID, map[string]any{"discount": 30, "isActive": false})
	assert.NoError(t, err)
	assert.Equal(t, 30, updated.Discount)
	assert.False(t, updated.IsActive)

	deleted, err := store.DeleteOffer(created.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)
}

// Concurrent PATCHes on one order must leave a single valid record; whichever
// write lands last wins.
func TestMemory_ConcurrentUpdatesLastWriteWins(t *testing.T) {
	store := NewMemory()
	created, _ := store.CreateOrder(sampleOrder())

	statuses := []string{"preparing", "ready", "completed", "cancelled"}
	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(status string) {
			defer wg.Done()
			_, err := store.UpdateOrder(created.ID, map[string]any{"status": status})
			assert.NoError(t, err)
		}(statuses[i%len(statuses)])
	}
	wg.Wait()

	final, err := store.GetOrder(created.ID)
	assert.NoError(t, err)
	assert.Contains(t, statuses, final.Status)
	assert.Equal(t, created.CustomerName, final.CustomerName)

	orders, _ := store.ListOrders()
	assert.Len(t, orders, 1)
}
