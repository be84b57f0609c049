package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/HailNail/MindArc/internal/auth"
	"github.com/HailNail/MindArc/internal/domain/entities"
	"github.com/HailNail/MindArc/internal/infrastructure/logger"
	"github.com/HailNail/MindArc/internal/infrastructure/memory"
	"github.com/HailNail/MindArc/internal/usecase"
)

type stubPaymentGateway struct {
	records []usecase.PaymentRecord
}

func (s *stubPaymentGateway) CreateIntent(_ context.Context, _ int64, _ string) (string, error) {
	return "pi_test_secret", nil
}

func (s *stubPaymentGateway) ListPayments(_ context.Context, _ int64) ([]usecase.PaymentRecord, error) {
	return s.records, nil
}

type stubBlobStore struct{}

func (stubBlobStore) Upload(_ context.Context, _ io.Reader, _ string) (string, error) {
	return "https://cdn.example.com/image.jpg", nil
}

type apiFixture struct {
	router     *gin.Engine
	tokens     *auth.TokenManager
	users      *memory.UserRepositoryMemory
	categories *memory.CategoryRepositoryMemory
	products   *memory.ProductRepositoryMemory
	orders     *memory.OrderRepositoryMemory
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := memory.NewUserRepositoryMemory()
	categoryRepo := memory.NewCategoryRepositoryMemory()
	productRepo := memory.NewProductRepositoryMemory()
	orderRepo := memory.NewOrderRepositoryMemory()

	payments := &stubPaymentGateway{}
	tokens := auth.NewTokenManager("test-secret")

	router := NewRouter(Deps{
		Logger:  logger.NewLogger(),
		Tokens:  tokens,
		Users:   userRepo,
		Auth:    usecase.NewAuthUseCase(userRepo, nil),
		User:    usecase.NewUserUseCase(userRepo),
		Catalog: usecase.NewCatalogUseCase(categoryRepo, productRepo),
		Orders:  usecase.NewOrderUseCase(orderRepo, productRepo, userRepo, payments),
		Sales:   usecase.NewSalesUseCase(payments),
		Blobs:   stubBlobStore{},

		StripePublishableKey: "pk_test_123",
		AllowedOrigins:       []string{"http://localhost:5173"},
	})

	return &apiFixture{
		router:     router,
		tokens:     tokens,
		users:      userRepo,
		categories: categoryRepo,
		products:   productRepo,
		orders:     orderRepo,
	}
}

func (f *apiFixture) seedUser(t *testing.T, id, email, password string, isAdmin bool) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	err = f.users.Create(context.Background(), &entities.User{
		ID:       id,
		Username: id,
		Email:    email,
		Password: string(hash),
		IsAdmin:  isAdmin,
	})
	assert.NoError(t, err)
}

func (f *apiFixture) sessionCookie(t *testing.T, userID string) *http.Cookie {
	t.Helper()
	token, err := f.tokens.Generate(userID)
	assert.NoError(t, err)
	return &http.Cookie{Name: auth.CookieName, Value: token}
}

func (f *apiFixture) request(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func sessionCookieFrom(recorder *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == auth.CookieName {
			return cookie
		}
	}
	return nil
}

func TestRouter_ProtectedRouteWithoutCookie(t *testing.T) {
	fixture := newAPIFixture(t)

	recorder := fixture.request(t, http.MethodGet, "/api/users/profile", nil, nil)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "not authorized, no token", decodeBody(t, recorder)["error"])
}

func TestRouter_ProtectedRouteWithGarbageToken(t *testing.T) {
	fixture := newAPIFixture(t)

	recorder := fixture.request(t, http.MethodGet, "/api/users/profile", nil,
		&http.Cookie{Name: auth.CookieName, Value: "garbage"})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "not authorized, token failed", decodeBody(t, recorder)["error"])
}

func TestRouter_AdminRouteForbiddenForRegularUser(t *testing.T) {
	fixture := newAPIFixture(t)
	fixture.seedUser(t, "user1", "user@example.com", "secret123", false)

	assert.NoError(t, fixture.orders.Create(context.Background(), &entities.Order{
		ID:     "order-1",
		UserID: "user1",
		Items:  []entities.OrderItem{{ProductID: "prod-1", Quantity: 1, Price: 10}},
	}))

	recorder := fixture.request(t, http.MethodPut, "/api/orders/order-1/deliver", nil,
		fixture.sessionCookie(t, "user1"))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, "not authorized as an admin", decodeBody(t, recorder)["error"])

	// The order is untouched.
	order, err := fixture.orders.GetByID(context.Background(), "order-1")
	assert.NoError(t, err)
	assert.False(t, order.IsDelivered)
}

func TestRouter_DeliverOrderAsAdmin(t *testing.T) {
	fixture := newAPIFixture(t)
	fixture.seedUser(t, "admin1", "admin@example.com", "secret123", true)

	assert.NoError(t, fixture.orders.Create(context.Background(), &entities.Order{
		ID:     "order-1",
		UserID: "admin1",
	}))

	recorder := fixture.request(t, http.MethodPut, "/api/orders/order-1/deliver", nil,
		fixture.sessionCookie(t, "admin1"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["isDelivered"])
	assert.NotEmpty(t, body["deliveredAt"])
}

func TestRouter_TotalOrdersIsPublic(t *testing.T) {
	fixture := newAPIFixture(t)

	assert.NoError(t, fixture.orders.Create(context.Background(), &entities.Order{ID: "order-1", UserID: "user1"}))
	assert.NoError(t, fixture.orders.Create(context.Background(), &entities.Order{ID: "order-2", UserID: "user2"}))

	recorder := fixture.request(t, http.MethodGet, "/api/orders/total-orders", nil, nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, float64(2), decodeBody(t, recorder)["totalOrders"])
}

func TestRouter_Login(t *testing.T) {
	fixture := newAPIFixture(t)
	fixture.seedUser(t, "user1", "user@example.com", "secret123", false)

	recorder := fixture.request(t, http.MethodPost, "/api/users/auth",
		gin.H{"email": "user@example.com", "password": "secret123"}, nil)

	assert.Equal(t, http.StatusOK, recorder.Code)

	cookie := sessionCookieFrom(recorder)
	assert.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	// The issued token resolves back to the user.
	userID, err := fixture.tokens.Verify(cookie.Value)
	assert.NoError(t, err)
	assert.Equal(t, "user1", userID)

	body := decodeBody(t, recorder)
	assert.Equal(t, "user@example.com", body["email"])
	assert.NotContains(t, body, "password")
}

func TestRouter_Login_WrongPasswordIssuesNoCookie(t *testing.T) {
	fixture := newAPIFixture(t)
	fixture.seedUser(t, "user1", "user@example.com", "secret123", false)

	recorder := fixture.request(t, http.MethodPost, "/api/users/auth",
		gin.H{"email": "user@example.com", "password": "wrong"}, nil)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Nil(t, sessionCookieFrom(recorder))
	assert.Equal(t, "invalid email or password", decodeBody(t, recorder)["error"])
}

func TestRouter_Logout_ClearsCookie(t *testing.T) {
	fixture := newAPIFixture(t)
	fixture.seedUser(t, "user1", "user@example.com", "secret123", false)

	recorder := fixture.request(t, http.MethodPost, "/api/users/logout", nil,
		fixture.sessionCookie(t, "user1"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	cookie := sessionCookieFrom(recorder)
	assert.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestRouter_CreateOrder_RecomputesClientPrices(t *testing.T) {
	fixture := newAPIFixture(t)
	fixture.seedUser(t, "user1", "user@example.com", "secret123", false)

	assert.NoError(t, fixture.products.Create(context.Background(), &entities.Product{
		ID:    "prod-1",
		Name:  "Desk Lamp",
		Price: 120.00,
	}))

	recorder := fixture.request(t, http.MethodPost, "/api/orders", gin.H{
		"orderItems": []gin.H{
			// The client claims the lamp costs one cent.
			{"product": "prod-1", "qty": 1, "price": 0.01},
		},
		"shippingAddress": gin.H{
			"address": "1 Main St", "city": "Springfield", "postalCode": "12345", "country": "US",
		},
		"paymentMethod": "Stripe",
	}, fixture.sessionCookie(t, "user1"))

	assert.Equal(t, http.StatusCreated, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, 120.00, body["itemsPrice"])
	assert.Equal(t, 0.15, body["shippingPrice"])
	assert.Equal(t, 18.00, body["taxPrice"])
	assert.Equal(t, 138.15, body["totalPrice"])

	items := body["orderItems"].([]any)
	assert.Len(t, items, 1)
	assert.Equal(t, 120.00, items[0].(map[string]any)["price"])
}

func TestRouter_CreateOrder_EmptyItems(t *testing.T) {
	fixture := newAPIFixture(t)
	fixture.seedUser(t, "user1", "user@example.com", "secret123", false)

	recorder := fixture.request(t, http.MethodPost, "/api/orders", gin.H{
		"orderItems":    []gin.H{},
		"paymentMethod": "Stripe",
	}, fixture.sessionCookie(t, "user1"))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "no order items", decodeBody(t, recorder)["error"])
}

func TestRouter_DeleteCategoryInUse(t *testing.T) {
	fixture := newAPIFixture(t)
	fixture.seedUser(t, "admin1", "admin@example.com", "secret123", true)
	ctx := context.Background()

	assert.NoError(t, fixture.categories.Create(ctx, &entities.Category{ID: "cat-1", Name: "Lamps"}))
	assert.NoError(t, fixture.products.Create(ctx, &entities.Product{ID: "prod-1", Name: "Desk Lamp", CategoryID: "cat-1"}))

	recorder := fixture.request(t, http.MethodDelete, "/api/category/cat-1", nil,
		fixture.sessionCookie(t, "admin1"))

	assert.Equal(t, http.StatusConflict, recorder.Code)

	// Still listed afterwards.
	_, err := fixture.categories.GetByID(ctx, "cat-1")
	assert.NoError(t, err)
}

func TestRouter_CategoryRoutesRequireAdmin(t *testing.T) {
	fixture := newAPIFixture(t)
	fixture.seedUser(t, "user1", "user@example.com", "secret123", false)

	recorder := fixture.request(t, http.MethodPost, "/api/category",
		gin.H{"name": "Lamps"}, fixture.sessionCookie(t, "user1"))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRouter_ProductSearchIsPublic(t *testing.T) {
	fixture := newAPIFixture(t)

	assert.NoError(t, fixture.products.Create(context.Background(), &entities.Product{
		ID: "prod-1", Name: "Desk Lamp", Price: 25,
	}))

	recorder := fixture.request(t, http.MethodGet, "/api/products?keyword=lamp", nil, nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Len(t, body["products"], 1)
	assert.Equal(t, false, body["hasMore"])
}

func TestRouter_CreatePaymentIntent(t *testing.T) {
	fixture := newAPIFixture(t)
	fixture.seedUser(t, "user1", "user@example.com", "secret123", false)

	recorder := fixture.request(t, http.MethodPost, "/api/orders/create-payment-intent",
		gin.H{"totalPrice": 138.15}, fixture.sessionCookie(t, "user1"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "pi_test_secret", decodeBody(t, recorder)["clientSecret"])
}

func TestRouter_StripeConfigIsPublic(t *testing.T) {
	fixture := newAPIFixture(t)

	recorder := fixture.request(t, http.MethodGet, "/api/config/stripe", nil, nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "pk_test_123", decodeBody(t, recorder)["publishableKey"])
}

func (f *apiFixture) uploadRequest(t *testing.T, filename string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	assert.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if cookie != nil {
		req.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	return recorder
}

func TestRouter_Upload(t *testing.T) {
	fixture := newAPIFixture(t)
	fixture.seedUser(t, "admin1", "admin@example.com", "secret123", true)

	recorder := fixture.uploadRequest(t, "lamp.png", fixture.sessionCookie(t, "admin1"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "https://cdn.example.com/image.jpg", decodeBody(t, recorder)["image"])
}

func TestRouter_Upload_RejectsNonImage(t *testing.T) {
	fixture := newAPIFixture(t)
	fixture.seedUser(t, "admin1", "admin@example.com", "secret123", true)

	recorder := fixture.uploadRequest(t, "malware.exe", fixture.sessionCookie(t, "admin1"))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "images only", decodeBody(t, recorder)["error"])
}

func TestRouter_GetOrder_NotFound(t *testing.T) {
	fixture := newAPIFixture(t)
	fixture.seedUser(t, "user1", "user@example.com", "secret123", false)

	recorder := fixture.request(t, http.MethodGet, "/api/orders/ghost", nil,
		fixture.sessionCookie(t, "user1"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "order not found", decodeBody(t, recorder)["error"])
}
