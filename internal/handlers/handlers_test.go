package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jobsetu/jobsetu-backend/internal/config"
	"github.com/jobsetu/jobsetu-backend/internal/database"
	"github.com/jobsetu/jobsetu-backend/internal/handlers"
	"github.com/jobsetu/jobsetu-backend/internal/routes"
	"github.com/jobsetu/jobsetu-backend/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// setupApp wires the real route table against a seeded in-memory database.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	db := newTestDB(t)
	if err := database.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	database.DB = db

	cfg := &config.Config{
		SessionSecret: "test-secret",
		SessionCookie: "session",
		SessionExpiry: time.Hour,
		CORSOrigins:   "*",
	}

	authService := services.NewAuthService(db)
	catalogService := services.NewCatalogService(db)
	applicationService := services.NewApplicationService(db)

	app := fiber.New()
	routes.Setup(app, cfg,
		handlers.NewAuthHandler(authService, cfg),
		handlers.NewCatalogHandler(catalogService),
		handlers.NewApplicationHandler(applicationService),
		handlers.NewContactHandler(),
		handlers.NewHealthHandler(),
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return out
}

func signupAndLogin(t *testing.T, app *fiber.App, email string) *http.Cookie {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/signup", map[string]string{
		"name": "Asha", "email": email, "password": "secret1",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup status = %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/login", map[string]string{
		"email": email, "password": "secret1",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}
	resp.Body.Close()

	for _, c := range resp.Cookies() {
		if c.Name == "session" && c.Value != "" {
			return c
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}

func TestSignupLoginCheckAuthFlow(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/signup", map[string]string{
		"name": "Asha", "email": "asha@example.com", "password": "secret1",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup status = %d, want 201", resp.StatusCode)
	}
	if body := decodeBody(t, resp); body["success"] != true {
		t.Errorf("signup body = %v", body)
	}

	// Duplicate email conflicts.
	resp = doJSON(t, app, http.MethodPost, "/signup", map[string]string{
		"name": "Imposter", "email": "asha@example.com", "password": "other99",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate signup status = %d, want 409", resp.StatusCode)
	}
	if body := decodeBody(t, resp); body["error"] != "Email already registered" {
		t.Errorf("duplicate signup body = %v", body)
	}

	resp = doJSON(t, app, http.MethodPost, "/login", map[string]string{
		"email": "asha@example.com", "password": "secret1",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", resp.StatusCode)
	}
	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "session" {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value == "" {
		t.Fatal("login did not set the session cookie")
	}
	body := decodeBody(t, resp)
	user, _ := body["user"].(map[string]any)
	if user == nil || user["name"] != "Asha" || user["email"] != "asha@example.com" {
		t.Errorf("login user = %v", user)
	}

	resp = doJSON(t, app, http.MethodGet, "/check-auth", nil, cookie)
	body = decodeBody(t, resp)
	if body["success"] != true {
		t.Errorf("check-auth with session = %v", body)
	}

	resp = doJSON(t, app, http.MethodGet, "/check-auth", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("anonymous check-auth status = %d, want 200", resp.StatusCode)
	}
	body = decodeBody(t, resp)
	if body["success"] != false || body["user"] != nil {
		t.Errorf("anonymous check-auth = %v", body)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	app := setupApp(t)
	signupAndLogin(t, app, "asha@example.com")

	wrongPassword := doJSON(t, app, http.MethodPost, "/login", map[string]string{
		"email": "asha@example.com", "password": "wrong",
	})
	unknownEmail := doJSON(t, app, http.MethodPost, "/login", map[string]string{
		"email": "nobody@example.com", "password": "secret1",
	})
	if wrongPassword.StatusCode != http.StatusUnauthorized || unknownEmail.StatusCode != http.StatusUnauthorized {
		t.Fatalf("statuses = %d/%d, want 401 for both", wrongPassword.StatusCode, unknownEmail.StatusCode)
	}
	first := decodeBody(t, wrongPassword)
	second := decodeBody(t, unknownEmail)
	if first["error"] != second["error"] {
		t.Errorf("error messages differ: %v vs %v", first["error"], second["error"])
	}
}

func TestApplyJobFlow(t *testing.T) {
	app := setupApp(t)

	// No session.
	resp := doJSON(t, app, http.MethodPost, "/apply-job", map[string]any{"job_id": 1})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous apply status = %d, want 401", resp.StatusCode)
	}
	if body := decodeBody(t, resp); body["error"] != "Please login to apply" {
		t.Errorf("anonymous apply body = %v", body)
	}

	cookie := signupAndLogin(t, app, "asha@example.com")

	resp = doJSON(t, app, http.MethodPost, "/apply-job", map[string]any{"job_id": 1, "cover_letter": "Hire me"}, cookie)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("apply status = %d, want 201", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/apply-job", map[string]any{"job_id": 1}, cookie)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("second apply status = %d, want 409", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/apply-job", map[string]any{}, cookie)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("apply without job id status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/apply-job", map[string]any{"job_id": 999}, cookie)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("apply to unknown job status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestSaveJobFlow(t *testing.T) {
	app := setupApp(t)
	cookie := signupAndLogin(t, app, "asha@example.com")

	resp := doJSON(t, app, http.MethodPost, "/save-job", map[string]any{"job_id": 1}, cookie)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("save status = %d, want 201", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/save-job", map[string]any{"job_id": 1}, cookie)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("second save status = %d, want 409", resp.StatusCode)
	}
	if body := decodeBody(t, resp); body["error"] != "Job already saved" {
		t.Errorf("second save body = %v", body)
	}

	resp = doJSON(t, app, http.MethodGet, "/get-saved-jobs", nil, cookie)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("saved jobs status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	jobs, _ := body["jobs"].([]any)
	if len(jobs) != 1 {
		t.Errorf("saved jobs = %v, want 1 entry", body)
	}

	resp = doJSON(t, app, http.MethodGet, "/get-saved-jobs", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous saved jobs status = %d, want 401", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestSubmitApplicationEndpoint(t *testing.T) {
	app := setupApp(t)

	lead := map[string]string{"name": "Ravi", "mobile": "9123456789", "location": "Mumbai", "message": "Interested"}
	resp := doJSON(t, app, http.MethodPost, "/submit-application", lead)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("lead status = %d, want 201", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/submit-application", lead)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate lead status = %d, want 409", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/submit-application", map[string]string{
		"name": "Ravi", "mobile": "12345", "location": "Mumbai",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad mobile status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestViewApplicationsRendersHTML(t *testing.T) {
	app := setupApp(t)

	doJSON(t, app, http.MethodPost, "/submit-application", map[string]string{
		"name": "Ravi", "mobile": "9123456789", "location": "Mumbai",
	}).Body.Close()

	resp := doJSON(t, app, http.MethodGet, "/view-applications", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("content type = %q, want HTML", ct)
	}
	page, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(page), "9123456789") {
		t.Error("page does not list the submitted application")
	}
}

func TestGetJobEndpoint(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodGet, "/get-job/1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	job, _ := body["job"].(map[string]any)
	if job == nil || job["title"] != "Frontend Developer" || job["company_name"] != "TechCorp Solutions" {
		t.Errorf("job = %v", job)
	}

	resp = doJSON(t, app, http.MethodGet, "/get-job/999", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown job status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestSearchJobsEndpoint(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/search-jobs", map[string]any{})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["count"] != float64(5) {
		t.Errorf("empty criteria count = %v, want all 5 seeded jobs", body["count"])
	}

	resp = doJSON(t, app, http.MethodPost, "/search-jobs", map[string]any{"salary_min": 20000})
	body = decodeBody(t, resp)
	if body["count"] != float64(4) {
		t.Errorf("salary floor count = %v, want 4 (Security Guard excluded)", body["count"])
	}
}

func TestGetCategoriesEndpoint(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodGet, "/get-categories", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	categories, _ := body["categories"].([]any)
	if len(categories) != 8 {
		t.Fatalf("categories = %d, want 8 seeded", len(categories))
	}
	first, _ := categories[0].(map[string]any)
	last, _ := categories[len(categories)-1].(map[string]any)
	if first["job_count"].(float64) < last["job_count"].(float64) {
		t.Error("categories not ordered by job count descending")
	}
}

func TestHealthEndpoint(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodGet, "/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["status"] != "ok" || body["db"] != "ok" {
		t.Errorf("health body = %v", body)
	}
}

func TestContactEndpoint(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/contact", map[string]string{
		"name": "Ravi", "email": "ravi@example.com", "subject": "Hi", "message": "Hello",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/contact", map[string]string{
		"name": "Ravi", "email": "not-an-email", "subject": "Hi", "message": "Hello",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad email status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/contact", map[string]string{"name": "Ravi"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing fields status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()
}
