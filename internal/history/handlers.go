package history

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/PhishGuard/PG-Backend/internal/utils"
)

func RecentHandler(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: missing username in context", http.StatusUnauthorized)
		return
	}

	entries, err := Recent(username, DefaultLimit)
	if err != nil {
		http.Error(w, "Failed to load history", http.StatusInternalServerError)
		return
	}

	// An empty log renders as [], not null
	if entries == nil {
		entries = []Entry{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func ClearHandler(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: missing username in context", http.StatusUnauthorized)
		return
	}

	if err := Clear(username); err != nil {
		http.Error(w, "Failed to clear history", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "History cleared")
}
