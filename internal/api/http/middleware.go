package httpapi

import "net/http"

// requireAdmin gates mutating back-office endpoints. Reads and public order
// or reservation creation never pass through here.
func (h *Handler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		isAdmin, err := h.Auth.IsAdmin(r.Context(), cookie.Value)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to check session")
			return
		}
		if !isAdmin {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next(w, r)
	}
}
