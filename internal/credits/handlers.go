package credits

import (
	"encoding/json"
	"net/http"

	"github.com/PhishGuard/PG-Backend/internal/auth"
)

// requestSession resolves the caller's session from the cookie. The session
// middleware already gated the request; this recovers the full session so
// handlers can touch the cached balance.
func requestSession(w http.ResponseWriter, r *http.Request) (auth.Session, bool) {
	cookie, err := r.Cookie("session_id")
	if err != nil {
		http.Error(w, "Session not found", http.StatusUnauthorized)
		return auth.Session{}, false
	}

	session, ok := auth.Sessions.Get(cookie.Value)
	if !ok {
		http.Error(w, "Invalid session", http.StatusUnauthorized)
		return auth.Session{}, false
	}
	return session, true
}

func TopUpHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := requestSession(w, r)
	if !ok {
		return
	}

	balance, err := TopUp(&session)
	if err != nil {
		http.Error(w, "Failed to top up credits", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"credits": balance})
}

func BalanceHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := requestSession(w, r)
	if !ok {
		return
	}

	// Serve the stored balance, not the cache, so the reply is right even if
	// another login mutated the account.
	balance, err := Balance(session.Username)
	if err != nil {
		http.Error(w, "Failed to read balance", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"credits": balance})
}
