package rest

import (
	"net/http"
	"strings"

	"github.com/vitrine-lab/vitrineserv/internal/usecase"
)

type authedHandler func(w http.ResponseWriter, r *http.Request, client usecase.AuthClient)

// requireAuth verifies the bearer token and hands the derived client
// capability to the wrapped handler. Mutating storage calls only ever
// see that explicit capability, never ambient credentials.
func (h *Handler) requireAuth(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "Unauthorized - No token provided")
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")

		claims, err := h.verifier.Verify(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized - Invalid token")
			return
		}

		next(w, r, usecase.AuthClient{
			UserID: claims.UserID,
			Token:  token,
		})
	}
}
