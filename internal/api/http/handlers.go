package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/salah559/Box-eat/internal/domain"
	"github.com/salah559/Box-eat/internal/service"
)

const sessionCookie = "boxeat_session"

type Handler struct {
	Menu         service.MenuServiceInterface
	Offers       service.OfferServiceInterface
	Orders       service.OrderServiceInterface
	Reservations service.ReservationServiceInterface
	Auth         service.AuthServiceInterface
	SessionTTL   time.Duration
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/admin/login", h.adminLogin).Methods("POST")
	r.HandleFunc("/api/admin/logout", h.adminLogout).Methods("POST")
	r.HandleFunc("/api/admin/check", h.adminCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenuItems).Methods("GET")
	r.HandleFunc("/api/menu/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/menu", h.requireAdmin(h.createMenuItem)).Methods("POST")
	r.HandleFunc("/api/menu/{id}", h.requireAdmin(h.updateMenuItem)).Methods("PATCH")
	r.HandleFunc("/api/menu/{id}", h.requireAdmin(h.deleteMenuItem)).Methods("DELETE")

	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.requireAdmin(h.updateOrder)).Methods("PATCH")

	r.HandleFunc("/api/reservations", h.getReservations).Methods("GET")
	r.HandleFunc("/api/reservations/{id}", h.getReservation).Methods("GET")
	r.HandleFunc("/api/reservations", h.createReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{id}", h.requireAdmin(h.updateReservation)).Methods("PATCH")

	r.HandleFunc("/api/offers", h.getOffers).Methods("GET")
	r.HandleFunc("/api/offers/{id}", h.getOffer).Methods("GET")
	r.HandleFunc("/api/offers", h.requireAdmin(h.createOffer)).Methods("POST")
	r.HandleFunc("/api/offers/{id}", h.requireAdmin(h.updateOffer)).Methods("PATCH")
	r.HandleFunc("/api/offers/{id}", h.requireAdmin(h.deleteOffer)).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "boxeat",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Admin session

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid login payload")
		return
	}

	cookieValue, err := h.Auth.Login(r.Context(), payload.Code)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCode) {
			writeError(w, http.StatusUnauthorized, "Invalid code")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to login")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    cookieValue,
		Path:     "/",
		MaxAge:   int(h.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) adminLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if err := h.Auth.Logout(r.Context(), cookie.Value); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to logout")
			return
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) adminCheck(w http.ResponseWriter, r *http.Request) {
	isAdmin := false
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		isAdmin, _ = h.Auth.IsAdmin(r.Context(), cookie.Value)
	}
	writeJSON(w, http.StatusOK, map[string]bool{"isAdmin": isAdmin})
}

// Menu items

func (h *Handler) getMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch menu items")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Menu.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch menu item")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var payload domain.InsertMenuItem
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid menu item data")
		return
	}
	item, err := h.Menu.Create(payload)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Invalid menu item data")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create menu item")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	patch, ok := decodePatch(w, r)
	if !ok {
		return
	}
	item, err := h.Menu.Update(mux.Vars(r)["id"], patch)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update menu item")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Menu.Delete(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete menu item")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Menu item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Orders

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch order")
		return
	}
	if order == nil {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Orders.QRCode(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}
	if png == nil {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var payload domain.InsertOrder
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order data")
		return
	}
	order, err := h.Orders.Create(r.Context(), payload)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Invalid order data")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	patch, ok := decodePatch(w, r)
	if !ok {
		return
	}
	order, err := h.Orders.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}
	if order == nil {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// Reservations

func (h *Handler) getReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.Reservations.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch reservations")
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}

func (h *Handler) getReservation(w http.ResponseWriter, r *http.Request) {
	res, err := h.Reservations.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch reservation")
		return
	}
	if res == nil {
		writeError(w, http.StatusNotFound, "Reservation not found")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var payload domain.InsertReservation
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid reservation data")
		return
	}
	res, err := h.Reservations.Create(r.Context(), payload)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Invalid reservation data")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create reservation")
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) updateReservation(w http.ResponseWriter, r *http.Request) {
	patch, ok := decodePatch(w, r)
	if !ok {
		return
	}
	res, err := h.Reservations.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update reservation")
		return
	}
	if res == nil {
		writeError(w, http.StatusNotFound, "Reservation not found")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Offers

func (h *Handler) getOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.Offers.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch offers")
		return
	}
	writeJSON(w, http.StatusOK, offers)
}

func (h *Handler) getOffer(w http.ResponseWriter, r *http.Request) {
	offer, err := h.Offers.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch offer")
		return
	}
	if offer == nil {
		writeError(w, http.StatusNotFound, "Offer not found")
		return
	}
	writeJSON(w, http.StatusOK, offer)
}

func (h *Handler) createOffer(w http.ResponseWriter, r *http.Request) {
	var payload domain.InsertOffer
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid offer data")
		return
	}
	offer, err := h.Offers.Create(payload)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Invalid offer data")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create offer")
		return
	}
	writeJSON(w, http.StatusCreated, offer)
}

func (h *Handler) updateOffer(w http.ResponseWriter, r *http.Request) {
	patch, ok := decodePatch(w, r)
	if !ok {
		return
	}
	offer, err := h.Offers.Update(mux.Vars(r)["id"], patch)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update offer")
		return
	}
	if offer == nil {
		writeError(w, http.StatusNotFound, "Offer not found")
		return
	}
	writeJSON(w, http.StatusOK, offer)
}

func (h *Handler) deleteOffer(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Offers.Delete(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete offer")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Offer not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Helpers

func decodePatch(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid patch payload")
		return nil, false
	}
	return patch, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
