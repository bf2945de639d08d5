package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"feedhub/errors"
)

type postMessageRequest struct {
	Text string `json:"text"`
}

func (h *Handle) PostMessage(w http.ResponseWriter, r *http.Request) {
	user := chi.URLParam(r, "user")
	pwd := r.URL.Query().Get("pwd")

	var body postMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, fmt.Errorf("%w: %v", errors.ErrBadRequest, err))
		return
	}

	id, err := h.feeds.PostMessage(r.Context(), user, pwd, body.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, id)
}

func (h *Handle) RemoveMessage(w http.ResponseWriter, r *http.Request) {
	user := chi.URLParam(r, "user")
	pwd := r.URL.Query().Get("pwd")
	mid, err := strconv.ParseUint(chi.URLParam(r, "mid"), 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: malformed message id", errors.ErrBadRequest))
		return
	}

	if err := h.feeds.RemoveMessage(r.Context(), user, mid, pwd); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handle) GetMessage(w http.ResponseWriter, r *http.Request) {
	user := chi.URLParam(r, "user")
	mid, err := strconv.ParseUint(chi.URLParam(r, "mid"), 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: malformed message id", errors.ErrBadRequest))
		return
	}

	msg, err := h.feeds.GetMessage(r.Context(), user, mid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (h *Handle) GetMessages(w http.ResponseWriter, r *http.Request) {
	user := chi.URLParam(r, "user")
	since, err := sinceParam(r.URL.Query().Get("time"))
	if err != nil {
		writeError(w, err)
		return
	}

	messages, err := h.feeds.GetMessages(r.Context(), user, since)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyAsList(messages))
}

func (h *Handle) GetMessagesFromRemote(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "user")
	domainName := chi.URLParam(r, "domain")
	since, err := strconv.ParseInt(chi.URLParam(r, "time"), 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: malformed time", errors.ErrBadRequest))
		return
	}

	messages, err := h.feeds.GetMessagesFromRemote(r.Context(), name, domainName, since)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyAsList(messages))
}

func (h *Handle) Subscribe(w http.ResponseWriter, r *http.Request) {
	user := chi.URLParam(r, "user")
	target := chi.URLParam(r, "target")
	pwd := r.URL.Query().Get("pwd")

	if err := h.feeds.Subscribe(r.Context(), user, target, pwd); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handle) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	user := chi.URLParam(r, "user")
	target := chi.URLParam(r, "target")
	pwd := r.URL.Query().Get("pwd")

	if err := h.feeds.Unsubscribe(r.Context(), user, target, pwd); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handle) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	user := chi.URLParam(r, "user")

	subs, err := h.feeds.ListSubscriptions(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	if subs == nil {
		subs = []string{}
	}
	writeJSON(w, http.StatusOK, subs)
}

func (h *Handle) SearchMessages(w http.ResponseWriter, r *http.Request) {
	user := chi.URLParam(r, "user")
	query := r.URL.Query().Get("query")

	messages, err := h.feeds.SearchMessages(r.Context(), user, query, h.searchLimit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyAsList(messages))
}

// sinceParam treats a missing time as the beginning of time.
func sinceParam(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	since, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed time", errors.ErrBadRequest)
	}
	return since, nil
}

// emptyAsList keeps empty feeds rendering as [] rather than null.
func emptyAsList[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
