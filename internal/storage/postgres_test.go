package storage

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func setupPostgres(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgres(db), mock
}

func TestPostgres_GetMenuItem_NotFound(t *testing.T) {
	pg, mock := setupPostgres(t)

	mock.ExpectQuery("SELECT id, name, name_ar").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	item, err := pg.GetMenuItem("ghost")
	assert.NoError(t, err)
	assert.Nil(t, item)
}

func TestPostgres_CreateOrder_StampsIDAndCreatedAt(t *testing.T) {
	pg, mock := setupPostgres(t)

	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := pg.CreateOrder(sampleOrder())
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_UpdateOrder_MergesPatchOntoCurrentRow(t *testing.T) {
	pg, mock := setupPostgres(t)

	createdAt := time.Now().UTC()
	mock.ExpectQuery("SELECT id, customer_name").
		WithArgs("order-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "customer_name", "customer_phone", "customer_address",
			"items", "total", "status", "created_at",
		}).AddRow("order-1", "Salah", "0550000000", "12 Rue Didouche",
			"[]", "650.00", "pending", createdAt))

	mock.ExpectExec("UPDATE orders").
		WithArgs("Salah", "0550000000", "12 Rue Didouche", "[]", "650.00", "completed", "order-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := pg.UpdateOrder("order-1", map[string]any{"status": "completed"})
	assert.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)
	assert.Equal(t, "650.00", updated.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_UpdateOrder_UnknownID(t *testing.T) {
	pg, mock := setupPostgres(t)

	mock.ExpectQuery("SELECT id, customer_name").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	updated, err := pg.UpdateOrder("ghost", map[string]any{"status": "completed"})
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestPostgres_DeleteMenuItem(t *testing.T) {
	pg, mock := setupPostgres(t)

	mock.ExpectExec("DELETE FROM menu_items").
		WithArgs("item-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM menu_items").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := pg.DeleteMenuItem("item-1")
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = pg.DeleteMenuItem("ghost")
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestPostgres_ListReservations_NullableColumns(t *testing.T) {
	pg, mock := setupPostgres(t)

	mock.ExpectQuery("SELECT id, customer_name, customer_phone, customer_email").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "customer_name", "customer_phone", "customer_email",
			"date", "time", "guests", "special_requests", "status", "created_at",
		}).AddRow("res-1", "Amina", "0660000000", nil,
			"2026-09-10", "19:30", 4, nil, "pending", time.Now()))

	reservations, err := pg.ListReservations()
	assert.NoError(t, err)
	assert.Len(t, reservations, 1)
	assert.Empty(t, reservations[0].CustomerEmail)
	assert.Empty(t, reservations[0].SpecialRequests)
}
