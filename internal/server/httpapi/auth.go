package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"simplesocial/internal/server/service"
	"simplesocial/internal/shared/models"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *Router) handleRegister(w http.ResponseWriter, req *http.Request) {
	var body registerRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Email == "" || body.Password == "" {
		writeDetail(w, http.StatusBadRequest, "email and password required")
		return
	}
	user, err := r.services.Auth.Register(req.Context(), body.Email, body.Password)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// handleLogin accepts the OAuth2 password form: username + password fields.
func (r *Router) handleLogin(w http.ResponseWriter, req *http.Request) {
	if err := req.ParseForm(); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid form")
		return
	}
	email := req.PostFormValue("username")
	password := req.PostFormValue("password")
	if email == "" || password == "" {
		writeDetail(w, http.StatusBadRequest, "username and password required")
		return
	}
	token, err := r.services.Auth.Login(req.Context(), email, password)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}
		writeDetail(w, http.StatusInternalServerError, "login failed")
		return
	}
	writeJSON(w, http.StatusOK, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (r *Router) handleMe(w http.ResponseWriter, req *http.Request) {
	user, err := r.services.Auth.Me(req.Context(), getUserID(req.Context()))
	if err != nil {
		writeDetail(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
