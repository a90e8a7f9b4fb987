package console

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"pushka/internal/logs"
	"pushka/internal/middleware"
	"pushka/internal/models"
	"pushka/internal/repo"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

/* ───── DTO ───── */

// Тело create: фронт исторически шлёт то ownerId, то userId,
// и домен то как domain, то как domain_name. Принимаем оба написания.
type createDomainRequest struct {
	OwnerID    uint   `json:"ownerId"`
	UserID     uint   `json:"userId"`
	Name       string `json:"name"`
	Domain     string `json:"domain"`
	DomainName string `json:"domain_name"`
	Timezone   string `json:"timezone"`
}

type subscriptionRequest struct {
	DomainKey    string `json:"domain_key"`
	UserID       uint   `json:"userId"`
	Subscription struct {
		Endpoint string `json:"endpoint"`
		Keys     struct {
			P256dh string `json:"p256dh"`
			Auth   string `json:"auth"`
		} `json:"keys"`
	} `json:"subscription"`
}

/* ───── endpoints ───── */

// POST /domains
func (h *Handler) CreateDomain(w http.ResponseWriter, r *http.Request) {
	var req createDomainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteFail(w, http.StatusBadRequest, "cannot parse request body")
		return
	}
	owner := req.OwnerID
	if owner == 0 {
		owner = req.UserID
	}
	domainName := req.DomainName
	if domainName == "" {
		domainName = req.Domain
	}
	d, err := h.svc.CreateDomain(r.Context(), CreateDomainInput{
		OwnerID:    owner,
		Name:       req.Name,
		DomainName: domainName,
		Timezone:   req.Timezone,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	models.WriteOK(w, http.StatusCreated, d)
}

// GET /domains?ownerId=
func (h *Handler) ListDomains(w http.ResponseWriter, r *http.Request) {
	owner, ok := queryOwner(w, r)
	if !ok {
		return
	}
	list, err := h.svc.ListDomains(r.Context(), owner)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []models.Domain{}
	}
	models.WriteOK(w, http.StatusOK, list)
}

// GET /domains/{key}
func (h *Handler) GetDomain(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetDomain(r.Context(), mux.Vars(r)["key"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	models.WriteOK(w, http.StatusOK, d)
}

// DELETE /domains/{id}?ownerId=
func (h *Handler) DeleteDomain(w http.ResponseWriter, r *http.Request) {
	owner, ok := queryOwner(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		models.WriteFail(w, http.StatusBadRequest, "invalid domain id")
		return
	}
	if err := h.svc.DeleteDomain(r.Context(), uint(id), owner); err != nil {
		h.writeError(w, r, err)
		return
	}
	models.WriteOK(w, http.StatusOK, nil)
}

// DELETE /domains?ownerId=&domain_key=
func (h *Handler) DeleteDomainByKey(w http.ResponseWriter, r *http.Request) {
	owner, ok := queryOwner(w, r)
	if !ok {
		return
	}
	key := r.URL.Query().Get("domain_key")
	if key == "" {
		models.WriteFail(w, http.StatusBadRequest, "domain_key is required")
		return
	}
	if err := h.svc.DeleteDomainByKey(r.Context(), key, owner); err != nil {
		h.writeError(w, r, err)
		return
	}
	models.WriteOK(w, http.StatusOK, nil)
}

// POST /subscriptions
func (h *Handler) SubmitSubscription(w http.ResponseWriter, r *http.Request) {
	var req subscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteFail(w, http.StatusBadRequest, "cannot parse request body")
		return
	}
	err := h.svc.SubmitSubscription(r.Context(), SubscriptionInput{
		UserID:    req.UserID,
		DomainKey: req.DomainKey,
		Endpoint:  req.Subscription.Endpoint,
		P256dh:    req.Subscription.Keys.P256dh,
		Auth:      req.Subscription.Keys.Auth,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	models.WriteOK(w, http.StatusOK, nil)
}

/* ───── helpers ───── */

func queryOwner(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := r.URL.Query().Get("ownerId")
	if raw == "" {
		models.WriteFail(w, http.StatusBadRequest, "ownerId is required")
		return 0, false
	}
	owner, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || owner == 0 {
		models.WriteFail(w, http.StatusBadRequest, "invalid ownerId")
		return 0, false
	}
	return uint(owner), true
}

// Маппинг таксономии ошибок на HTTP. Инфраструктурные ошибки наружу не
// детализируем — подробности в лог по reqid.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		models.WriteFail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repo.ErrConflict):
		models.WriteFail(w, http.StatusConflict, "domain already registered")
	case errors.Is(err, repo.ErrNotFound):
		models.WriteFail(w, http.StatusNotFound, "not found")
	default:
		logs.Logger.Errorf("reqid=%s %s %s: %v",
			middleware.GetRequestID(r), r.Method, r.RequestURI, err)
		models.WriteFail(w, http.StatusInternalServerError, "internal server error")
	}
}
