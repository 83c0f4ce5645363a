package classifier

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/PhishGuard/PG-Backend/internal/auth"
	"github.com/PhishGuard/PG-Backend/internal/credits"
	"github.com/PhishGuard/PG-Backend/internal/db"
	"github.com/PhishGuard/PG-Backend/internal/history"
	"github.com/PhishGuard/PG-Backend/internal/metrics"
	"gorm.io/gorm"
)

type checkResponse struct {
	URL     string  `json:"url"`
	Verdict Verdict `json:"verdict"`
	Credits int     `json:"credits"`
}

// CheckHandler is the full check flow: gate on the session balance, run one
// classification, then debit and append history in a single transaction.
// The classification itself mutates nothing, so a classifier failure costs
// the user no credit and leaves no history row.
func CheckHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		URL string `json:"url"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if input.URL == "" {
		http.Error(w, "Please enter a URL to check", http.StatusBadRequest)
		return
	}

	cookie, err := r.Cookie("session_id")
	if err != nil {
		http.Error(w, "Session not found", http.StatusUnauthorized)
		return
	}
	session, ok := auth.Sessions.Get(cookie.Value)
	if !ok {
		http.Error(w, "Invalid session", http.StatusUnauthorized)
		return
	}

	// Gate on the cached balance before spending a classification.
	if session.Credits <= 0 {
		metrics.CreditRejectionsTotal.Inc()
		http.Error(w, "Insufficient credits", http.StatusPaymentRequired)
		return
	}

	start := time.Now()
	verdict, err := DefaultGateway.Classify(r.Context(), input.URL)
	metrics.ClassifyDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ClassifierErrorsTotal.Inc()
		http.Error(w, "Classification unavailable", http.StatusServiceUnavailable)
		return
	}

	// Debit and history move together or not at all.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := credits.DebitTx(tx, session.Username, 1); err != nil {
			return err
		}
		return history.AppendTx(tx, session.Username, input.URL, string(verdict))
	})
	if errors.Is(err, credits.ErrInsufficientCredits) {
		// The cached balance was stale; the store stayed untouched.
		metrics.CreditRejectionsTotal.Inc()
		credits.RefreshCache(&session)
		http.Error(w, "Insufficient credits", http.StatusPaymentRequired)
		return
	}
	if err != nil {
		http.Error(w, "Failed to record result", http.StatusInternalServerError)
		return
	}

	if err := credits.RefreshCache(&session); err != nil {
		http.Error(w, "Failed to read balance", http.StatusInternalServerError)
		return
	}

	metrics.ClassificationsTotal.WithLabelValues(string(verdict)).Inc()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(checkResponse{
		URL:     input.URL,
		Verdict: verdict,
		Credits: session.Credits,
	})
}
