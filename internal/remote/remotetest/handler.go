package remotetest

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"tagfinder/internal/domain"
	"tagfinder/internal/remote"
)

// NewHandler serves f over the gateway HTTP contract.
func NewHandler(f *Fake) http.Handler {
	h := &handler{fake: f}
	r := mux.NewRouter()
	r.HandleFunc(remote.PathLogin, h.login).Methods(http.MethodPost)
	r.HandleFunc(remote.PathMethods, h.methods).Methods(http.MethodGet)
	r.HandleFunc("/v1/auth/2fa/{id}/request", h.request).Methods(http.MethodPost)
	r.HandleFunc("/v1/auth/2fa/{id}/submit", h.submit).Methods(http.MethodPost)
	r.HandleFunc(remote.PathLocation, h.location).Methods(http.MethodPost)
	return r
}

type handler struct {
	fake *Fake
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	var req remote.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	res, err := h.fake.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeErr(w, err)
		return
	}
	state := remote.StateVerified
	if res.State == domain.LoginRequires2FA {
		state = remote.StateRequires2FA
	}
	writeJSON(w, http.StatusOK, remote.LoginResponse{
		State:       state,
		AccountName: res.Session.AccountName,
		Session:     res.Session.Tokens,
	})
}

func (h *handler) methods(w http.ResponseWriter, r *http.Request) {
	list, err := h.fake.TwoFactorMethods(r.Context(), sessionFrom(r))
	if err != nil {
		writeErr(w, err)
		return
	}
	out := make([]remote.Method, 0, len(list))
	for _, m := range list {
		out = append(out, remote.EncodeMethod(m))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) request(w http.ResponseWriter, r *http.Request) {
	m := domain.AuthChallenge{ID: mux.Vars(r)["id"]}
	if err := h.fake.RequestCode(r.Context(), sessionFrom(r), m); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) submit(w http.ResponseWriter, r *http.Request) {
	var req remote.CodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	m := domain.AuthChallenge{ID: mux.Vars(r)["id"]}
	s, err := h.fake.SubmitCode(r.Context(), sessionFrom(r), m, req.Code)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, remote.LoginResponse{AccountName: s.AccountName, Session: s.Tokens})
}

func (h *handler) location(w http.ResponseWriter, r *http.Request) {
	var req remote.LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	adv, err := domain.AdvertisementKeyFromBytes(req.AdvKey)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	priv, err := domain.P224PrivateFromBytes(req.PrivateKey)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	in := sessionFrom(r)
	report, out, err := h.fake.FetchLocation(r.Context(), in, domain.KeyMaterial{Private: priv, AdvKey: adv})
	if !out.IsZero() && !out.Equal(in) {
		w.Header().Set(remote.SessionHeader, base64.StdEncoding.EncodeToString(out.Tokens))
	}
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, remote.LocationResponse{
		Latitude:  report.Latitude,
		Longitude: report.Longitude,
		Timestamp: report.Timestamp,
	})
}

func sessionFrom(r *http.Request) domain.Session {
	tokens, err := base64.StdEncoding.DecodeString(r.Header.Get(remote.SessionHeader))
	if err != nil || len(tokens) == 0 {
		return domain.Session{}
	}
	return domain.Session{Tokens: tokens}
}

func writeErr(w http.ResponseWriter, err error) {
	switch {
	case domain.IsAuthError(err):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusBadGateway)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
