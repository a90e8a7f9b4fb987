package console

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes вешает API консоли на корень роутера.
// Порядок важен: DELETE /domains (по domain_key) и /domains/{id} — разные пути.
func RegisterRoutes(r *mux.Router, svc *Service, auth *Authenticator) {
	h := NewHandler(svc)

	r.HandleFunc("/domains", h.CreateDomain).Methods(http.MethodPost)
	r.HandleFunc("/domains", h.ListDomains).Methods(http.MethodGet)
	r.HandleFunc("/domains", h.DeleteDomainByKey).Methods(http.MethodDelete)
	r.HandleFunc("/domains/{id:[0-9]+}", h.DeleteDomain).Methods(http.MethodDelete)
	r.HandleFunc("/domains/{key}", h.GetDomain).Methods(http.MethodGet)

	r.HandleFunc("/subscriptions", h.SubmitSubscription).Methods(http.MethodPost)

	r.HandleFunc("/login", NewLoginHandler(auth)).Methods(http.MethodPost)
}
