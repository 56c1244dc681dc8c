package stubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

const (
	testSecret        = "test-secret"
	testAdminEmail    = "admin@hardwarehub.test"
	testAdminPassword = "admin123"
)

// The prometheus middleware registers its collectors in the default
// registry, so the router is built once and shared by every test in the
// binary. Tests isolate themselves with unique emails and records.
var (
	routerOnce  sync.Once
	sharedStore *Store
	sharedEcho  http.Handler
	emailSeq    atomic.Int64
)

func testServer(t *testing.T) (*httptest.Server, *Store) {
	t.Helper()
	routerOnce.Do(func() {
		log := zerolog.Nop()
		sharedStore = NewStore(testSecret, time.Hour)
		if err := sharedStore.SeedAdmin(testAdminEmail, testAdminPassword); err != nil {
			t.Fatalf("seed admin: %v", err)
		}
		notifier := NewNotifier(1, log)
		notifier.Start(context.Background())
		sharedEcho = NewRouter(sharedStore, notifier, Options{JWTSecret: testSecret}, log)
	})
	srv := httptest.NewServer(sharedEcho)
	t.Cleanup(srv.Close)
	return srv, sharedStore
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@test.local", prefix, emailSeq.Add(1))
}

type testEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Data    json.RawMessage `json:"data"`
	Count   int             `json:"count"`
}

// doJSON performs one request against the stub and decodes the envelope.
func doJSON(t *testing.T, srv *httptest.Server, method, path, token string, body any) (int, testEnvelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env testEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode envelope: %v", method, path, err)
	}
	return resp.StatusCode, env
}

// registerCustomer creates a fresh customer account and returns it with its
// token.
func registerCustomer(t *testing.T, srv *httptest.Server) (domain.User, string) {
	t.Helper()
	code, env := doJSON(t, srv, http.MethodPost, "/api/users/register", "", domain.RegisterInput{
		Name:     "Test Customer",
		Email:    uniqueEmail("customer"),
		Password: "secret123",
	})
	if code != http.StatusCreated {
		t.Fatalf("register: status %d, message %q", code, env.Message)
	}
	var user domain.User
	if err := json.Unmarshal(env.Data, &user); err != nil {
		t.Fatalf("register: decode user: %v", err)
	}
	if env.Token == "" {
		t.Fatal("register: missing token")
	}
	return user, env.Token
}

func adminToken(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	code, env := doJSON(t, srv, http.MethodPost, "/api/users/login", "", map[string]string{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	})
	if code != http.StatusOK {
		t.Fatalf("admin login: status %d, message %q", code, env.Message)
	}
	return env.Token
}

func TestRegisterLoginMe(t *testing.T) {
	srv, _ := testServer(t)

	user, _ := registerCustomer(t, srv)
	if user.Role != domain.RoleCustomer {
		t.Fatalf("registration must create a customer, got role %q", user.Role)
	}

	code, env := doJSON(t, srv, http.MethodPost, "/api/users/login", "", map[string]string{
		"email":    user.Email,
		"password": "secret123",
	})
	if code != http.StatusOK || !env.Success {
		t.Fatalf("login: status %d, message %q", code, env.Message)
	}

	code, env = doJSON(t, srv, http.MethodGet, "/api/users/me", env.Token, nil)
	if code != http.StatusOK {
		t.Fatalf("me: status %d", code)
	}
	var me domain.User
	if err := json.Unmarshal(env.Data, &me); err != nil {
		t.Fatalf("me: decode: %v", err)
	}
	if me.ID != user.ID || me.Email != user.Email {
		t.Fatalf("me returned a different account: %+v", me)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	srv, _ := testServer(t)
	user, _ := registerCustomer(t, srv)

	code, env := doJSON(t, srv, http.MethodPost, "/api/users/login", "", map[string]string{
		"email":    user.Email,
		"password": "not-it",
	})
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if env.Success || env.Message != "Invalid credentials" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestLogin_UnknownEmailSameMessage(t *testing.T) {
	srv, _ := testServer(t)

	code, env := doJSON(t, srv, http.MethodPost, "/api/users/login", "", map[string]string{
		"email":    uniqueEmail("ghost"),
		"password": "whatever1",
	})
	if code != http.StatusUnauthorized || env.Message != "Invalid credentials" {
		t.Fatalf("unknown email must be indistinguishable from a wrong password, got %d %q", code, env.Message)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	srv, _ := testServer(t)
	user, _ := registerCustomer(t, srv)

	code, env := doJSON(t, srv, http.MethodPost, "/api/users/register", "", domain.RegisterInput{
		Name:     "Copy Cat",
		Email:    user.Email,
		Password: "secret123",
	})
	if code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", code)
	}
	if env.Message != "Email already registered" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestProtectedRoute_MissingToken(t *testing.T) {
	srv, _ := testServer(t)

	code, env := doJSON(t, srv, http.MethodGet, "/api/users/me", "", nil)
	if code != http.StatusUnauthorized || env.Success {
		t.Fatalf("expected 401 envelope, got %d %+v", code, env)
	}
}

func TestProtectedRoute_TamperedToken(t *testing.T) {
	srv, _ := testServer(t)
	_, token := registerCustomer(t, srv)

	code, _ := doJSON(t, srv, http.MethodGet, "/api/users/me", token+"x", nil)
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for tampered token, got %d", code)
	}
}

func TestAdminRoute_CustomerForbidden(t *testing.T) {
	srv, _ := testServer(t)
	_, token := registerCustomer(t, srv)

	code, env := doJSON(t, srv, http.MethodGet, "/api/users", token, nil)
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d (%q)", code, env.Message)
	}
}

func TestCatalog_PublicRead(t *testing.T) {
	srv, store := testServer(t)
	store.CreateProduct(domain.ProductInput{Name: "Claw Hammer", Category: "tools", Price: 12.5, Stock: 8})

	code, env := doJSON(t, srv, http.MethodGet, "/api/products", "", nil)
	if code != http.StatusOK || !env.Success {
		t.Fatalf("catalog must be readable anonymously, got %d", code)
	}
	var products []domain.Product
	if err := json.Unmarshal(env.Data, &products); err != nil {
		t.Fatalf("decode products: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("expected at least the seeded product")
	}
	if env.Count != len(products) {
		t.Fatalf("count %d does not match %d products", env.Count, len(products))
	}
}

func TestCatalog_MutationNeedsAdmin(t *testing.T) {
	srv, _ := testServer(t)
	_, customerToken := registerCustomer(t, srv)
	in := domain.ProductInput{Name: "Pipe Wrench", Category: "tools", Price: 30, Stock: 2}

	code, _ := doJSON(t, srv, http.MethodPost, "/api/products", customerToken, in)
	if code != http.StatusForbidden {
		t.Fatalf("customer create: expected 403, got %d", code)
	}

	code, env := doJSON(t, srv, http.MethodPost, "/api/products", adminToken(t, srv), in)
	if code != http.StatusCreated {
		t.Fatalf("admin create: expected 201, got %d (%q)", code, env.Message)
	}
}

func TestQuotationLifecycle(t *testing.T) {
	srv, store := testServer(t)
	_, customerToken := registerCustomer(t, srv)
	admin := adminToken(t, srv)
	product := store.CreateProduct(domain.ProductInput{Name: "Drill Bit Set", Category: "tools", Price: 25, Stock: 10})

	code, env := doJSON(t, srv, http.MethodPost, "/api/quotations", customerToken, domain.QuotationInput{
		Items: []domain.QuotationItem{{ProductID: product.ID, Quantity: 3}},
	})
	if code != http.StatusCreated {
		t.Fatalf("create quotation: status %d (%q)", code, env.Message)
	}
	var q domain.Quotation
	if err := json.Unmarshal(env.Data, &q); err != nil {
		t.Fatalf("decode quotation: %v", err)
	}
	if q.Status != domain.QuotationPending {
		t.Fatalf("new quotation must be pending, got %q", q.Status)
	}
	if q.Total != 75 {
		t.Fatalf("expected total 75 from catalog pricing, got %v", q.Total)
	}

	// pending -> approved is allowed; approved -> pending is not.
	code, _ = doJSON(t, srv, http.MethodPatch, "/api/quotations/"+q.ID+"/status", admin, statusRequest{Status: "approved"})
	if code != http.StatusOK {
		t.Fatalf("approve: expected 200, got %d", code)
	}
	code, env = doJSON(t, srv, http.MethodPatch, "/api/quotations/"+q.ID+"/status", admin, statusRequest{Status: "pending"})
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("reverse transition: expected 422, got %d (%q)", code, env.Message)
	}
}

func TestQuotation_OwnershipGate(t *testing.T) {
	srv, store := testServer(t)
	_, ownerToken := registerCustomer(t, srv)
	_, strangerToken := registerCustomer(t, srv)
	product := store.CreateProduct(domain.ProductInput{Name: "Sandpaper", Category: "finishing", Price: 4, Stock: 50})

	_, env := doJSON(t, srv, http.MethodPost, "/api/quotations", ownerToken, domain.QuotationInput{
		Items: []domain.QuotationItem{{ProductID: product.ID, Quantity: 1}},
	})
	var q domain.Quotation
	if err := json.Unmarshal(env.Data, &q); err != nil {
		t.Fatalf("decode quotation: %v", err)
	}

	code, _ := doJSON(t, srv, http.MethodGet, "/api/quotations/"+q.ID, strangerToken, nil)
	if code != http.StatusForbidden {
		t.Fatalf("stranger read: expected 403, got %d", code)
	}
	code, _ = doJSON(t, srv, http.MethodGet, "/api/quotations/"+q.ID, adminToken(t, srv), nil)
	if code != http.StatusOK {
		t.Fatalf("admin read: expected 200, got %d", code)
	}
}

func TestUnknownResource(t *testing.T) {
	srv, _ := testServer(t)

	code, env := doJSON(t, srv, http.MethodGet, "/api/products/no-such-id", "", nil)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if env.Message != "Resource not found" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}
