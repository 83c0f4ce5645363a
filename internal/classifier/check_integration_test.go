package classifier_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/PhishGuard/PG-Backend/internal/auth"
	"github.com/PhishGuard/PG-Backend/internal/classifier"
	"github.com/PhishGuard/PG-Backend/internal/config"
	"github.com/PhishGuard/PG-Backend/internal/credits"
	"github.com/PhishGuard/PG-Backend/internal/db"
	"github.com/PhishGuard/PG-Backend/internal/history"
	"github.com/PhishGuard/PG-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// The test model flags any URL containing "bad" as phishing and everything
// else as legitimate, which keeps scenario assertions deterministic.
const (
	testVectorizer = `{"ngram_size": 3, "lowercase": true, "vocabulary": {"bad": 0}}`
	testModel      = `{"bias": -0.5, "weights": [1.0]}`
)

var testServer *httptest.Server

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "phishguard-artifacts")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	vectorizerPath := filepath.Join(dir, "vectorizer.json")
	modelPath := filepath.Join(dir, "model.json")
	if err := os.WriteFile(vectorizerPath, []byte(testVectorizer), 0o644); err != nil {
		panic(err)
	}
	if err := os.WriteFile(modelPath, []byte(testModel), 0o644); err != nil {
		panic(err)
	}

	config.App.SQLitePath = "file::memory:?cache=shared"
	config.App.VectorizerPath = vectorizerPath
	config.App.ModelPath = modelPath
	// Generous limit so the exhaustion scenario isn't throttled.
	config.App.CheckPerMinute = 6000
	config.App.CheckBurst = 1000
	os.Unsetenv("DATABASE_URL")

	db.Connect()
	auth.Init()
	history.Init()
	classifier.Init()

	// Mirror the production router in main.go.
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Mount("/auth", auth.SetupRoutes())
	r.Mount("/credits", credits.SetupRoutes())
	r.Mount("/history", history.SetupRoutes())
	r.Mount("/check", classifier.SetupRoutes())

	testServer = httptest.NewServer(r)
	defer testServer.Close()

	os.Exit(m.Run())
}

func newClientWithJar(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar.New: %v", err)
	}
	return &http.Client{Jar: jar}
}

func postJSON(t *testing.T, client *http.Client, path string, payload interface{}) *http.Response {
	t.Helper()
	body, _ := json.Marshal(payload)
	resp, err := client.Post(testServer.URL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func drain(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

// signupAndLogin creates a fresh account and returns a logged-in client.
func signupAndLogin(t *testing.T) (*http.Client, string) {
	t.Helper()
	username := fmt.Sprintf("checkuser_%s", uuid.New().String()[:8])
	client := newClientWithJar(t)

	resp := postJSON(t, client, "/auth/signup", map[string]string{"username": username, "password": "pw1"})
	drain(t, resp)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup: %d", resp.StatusCode)
	}

	resp = postJSON(t, client, "/auth/login", map[string]string{"username": username, "password": "pw1"})
	drain(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: %d", resp.StatusCode)
	}
	return client, username
}

type checkResult struct {
	URL     string `json:"url"`
	Verdict string `json:"verdict"`
	Credits int    `json:"credits"`
}

// TestCheckVerdictsAndDebit verifies one check per verdict: the URL passes
// through untouched, the verdict mapping holds, and each check costs one
// credit and appends one history entry.
func TestCheckVerdictsAndDebit(t *testing.T) {
	client, _ := signupAndLogin(t)
	starting := config.App.StartingCredits

	resp := postJSON(t, client, "/check", map[string]string{"url": "http://good.example"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("check: %d: %s", resp.StatusCode, drain(t, resp))
	}
	var legit checkResult
	decodeJSON(t, resp, &legit)
	if legit.Verdict != "Legitimate" {
		t.Errorf("verdict = %q, want Legitimate", legit.Verdict)
	}
	if legit.Credits != starting-1 {
		t.Errorf("credits = %d, want %d", legit.Credits, starting-1)
	}

	resp = postJSON(t, client, "/check", map[string]string{"url": "http://badsite.example/login"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("check: %d: %s", resp.StatusCode, drain(t, resp))
	}
	var phish checkResult
	decodeJSON(t, resp, &phish)
	if phish.Verdict != "Phishing" {
		t.Errorf("verdict = %q, want Phishing", phish.Verdict)
	}
	if phish.Credits != starting-2 {
		t.Errorf("credits = %d, want %d", phish.Credits, starting-2)
	}

	// Two checks, two history entries, newest first.
	histResp, err := client.Get(testServer.URL + "/history")
	if err != nil {
		t.Fatalf("GET /history: %v", err)
	}
	var entries []map[string]string
	decodeJSON(t, histResp, &entries)
	if len(entries) != 2 {
		t.Fatalf("history has %d entries, want 2", len(entries))
	}
	if entries[0]["url"] != "http://badsite.example/login" || entries[0]["status"] != "Phishing" {
		t.Errorf("entries[0] = %v, want the phishing check first", entries[0])
	}
	if entries[1]["url"] != "http://good.example" || entries[1]["status"] != "Legitimate" {
		t.Errorf("entries[1] = %v, want the legitimate check second", entries[1])
	}
}

// TestCheckExhaustsCreditsThenRejects runs the full account lifecycle:
// spend the whole starting balance, get refused at zero with no history
// side effect, then top up and check again.
func TestCheckExhaustsCreditsThenRejects(t *testing.T) {
	client, _ := signupAndLogin(t)
	starting := config.App.StartingCredits

	for i := 0; i < starting; i++ {
		resp := postJSON(t, client, "/check", map[string]string{"url": fmt.Sprintf("http://site-%d.example", i)})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("check %d: %d: %s", i, resp.StatusCode, drain(t, resp))
		}
		var result checkResult
		decodeJSON(t, resp, &result)
		if result.Credits != starting-i-1 {
			t.Fatalf("check %d: credits = %d, want %d", i, result.Credits, starting-i-1)
		}
	}

	// Balance is now zero: the next check is refused without classifying.
	resp := postJSON(t, client, "/check", map[string]string{"url": "http://one-more.example"})
	body := drain(t, resp)
	if resp.StatusCode != http.StatusPaymentRequired {
		t.Fatalf("expected 402 at zero balance, got %d: %s", resp.StatusCode, body)
	}

	balResp, err := client.Get(testServer.URL + "/credits")
	if err != nil {
		t.Fatalf("GET /credits: %v", err)
	}
	var bal map[string]int
	decodeJSON(t, balResp, &bal)
	if bal["credits"] != 0 {
		t.Errorf("credits = %d after rejection, want 0", bal["credits"])
	}

	// The refused check must not have touched the log: still capped at 10,
	// and the newest entry is the last successful check.
	histResp, err := client.Get(testServer.URL + "/history")
	if err != nil {
		t.Fatalf("GET /history: %v", err)
	}
	var entries []map[string]string
	decodeJSON(t, histResp, &entries)
	if len(entries) != 10 {
		t.Fatalf("history has %d entries, want 10", len(entries))
	}
	if entries[0]["url"] != fmt.Sprintf("http://site-%d.example", starting-1) {
		t.Errorf("newest entry = %v, want the last successful check", entries[0])
	}

	// Top up and verify checks work again.
	topupResp := postJSON(t, client, "/credits/topup", nil)
	var topup map[string]int
	decodeJSON(t, topupResp, &topup)
	if topup["credits"] != config.App.TopUpGrant {
		t.Errorf("credits after topup = %d, want %d", topup["credits"], config.App.TopUpGrant)
	}

	resp = postJSON(t, client, "/check", map[string]string{"url": "http://after-topup.example"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("check after topup: %d: %s", resp.StatusCode, drain(t, resp))
	}
	var result checkResult
	decodeJSON(t, resp, &result)
	if result.Credits != config.App.TopUpGrant-1 {
		t.Errorf("credits = %d, want %d", result.Credits, config.App.TopUpGrant-1)
	}
}

// TestClearHistory verifies DELETE /history empties the log and a later
// read returns [].
func TestClearHistory(t *testing.T) {
	client, _ := signupAndLogin(t)

	resp := postJSON(t, client, "/check", map[string]string{"url": "http://good.example"})
	drain(t, resp)

	req, err := http.NewRequest(http.MethodDelete, testServer.URL+"/history", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	clearResp, err := client.Do(req)
	if err != nil {
		t.Fatalf("DELETE /history: %v", err)
	}
	drain(t, clearResp)
	if clearResp.StatusCode != http.StatusOK {
		t.Fatalf("clear: %d", clearResp.StatusCode)
	}

	histResp, err := client.Get(testServer.URL + "/history")
	if err != nil {
		t.Fatalf("GET /history: %v", err)
	}
	var entries []map[string]string
	decodeJSON(t, histResp, &entries)
	if len(entries) != 0 {
		t.Errorf("history has %d entries after clear, want 0", len(entries))
	}
}

// TestCheckRejectsEmptyURL verifies a blank URL is a 400 and costs nothing.
func TestCheckRejectsEmptyURL(t *testing.T) {
	client, _ := signupAndLogin(t)

	resp := postJSON(t, client, "/check", map[string]string{"url": ""})
	drain(t, resp)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty URL, got %d", resp.StatusCode)
	}

	balResp, err := client.Get(testServer.URL + "/credits")
	if err != nil {
		t.Fatalf("GET /credits: %v", err)
	}
	var bal map[string]int
	decodeJSON(t, balResp, &bal)
	if bal["credits"] != config.App.StartingCredits {
		t.Errorf("credits = %d, want untouched %d", bal["credits"], config.App.StartingCredits)
	}
}

// TestCheckRequiresSession verifies the endpoint is gated.
func TestCheckRequiresSession(t *testing.T) {
	client := newClientWithJar(t)
	resp := postJSON(t, client, "/check", map[string]string{"url": "http://good.example"})
	drain(t, resp)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a session, got %d", resp.StatusCode)
	}
}
