package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"feedhub/errors"
	"feedhub/repositories"
)

type createUserRequest struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Password    string `json:"pwd"`
}

type updateUserRequest struct {
	DisplayName *string `json:"displayName"`
	Password    *string `json:"pwd"`
}

type userResponse struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

func (h *Handle) CreateUser(w http.ResponseWriter, r *http.Request) {
	var body createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, fmt.Errorf("%w: %v", errors.ErrBadRequest, err))
		return
	}

	identity, err := h.users.Create(body.Name, body.DisplayName, body.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, identity)
}

func (h *Handle) GetUser(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	pwd := r.URL.Query().Get("pwd")

	user, err := h.users.Get(name, pwd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *Handle) UpdateUser(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	pwd := r.URL.Query().Get("pwd")

	var body updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, fmt.Errorf("%w: %v", errors.ErrBadRequest, err))
		return
	}

	user, err := h.users.Update(name, pwd, body.DisplayName, body.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *Handle) DeleteUser(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	pwd := r.URL.Query().Get("pwd")

	user, err := h.users.Delete(name, pwd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *Handle) SearchUsers(w http.ResponseWriter, r *http.Request) {
	pattern := r.URL.Query().Get("query")

	users, err := h.users.Search(pattern)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lo.Map(users, func(u repositories.User, _ int) userResponse {
		return toUserResponse(u)
	}))
}

func toUserResponse(user repositories.User) userResponse {
	return userResponse{
		Name:        user.Name,
		DisplayName: user.DisplayName,
	}
}
