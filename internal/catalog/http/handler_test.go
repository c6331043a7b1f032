package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fashion-catalog/internal/catalog"

	"github.com/gin-gonic/gin"
)

type stubService struct {
	listFn   func(ctx context.Context) ([]catalog.Product, int, error)
	getFn    func(ctx context.Context, id int64) (catalog.Product, error)
	createFn func(ctx context.Context, input catalog.NewProduct) (catalog.Product, error)
	updateFn func(ctx context.Context, id int64, patch catalog.ProductPatch) (catalog.Product, error)
	deleteFn func(ctx context.Context, id int64) (catalog.Product, int, error)
	idsFn    func(ctx context.Context) ([]int64, error)
}

func (s *stubService) ListProducts(ctx context.Context) ([]catalog.Product, int, error) {
	return s.listFn(ctx)
}
func (s *stubService) GetProduct(ctx context.Context, id int64) (catalog.Product, error) {
	return s.getFn(ctx, id)
}
func (s *stubService) CreateProduct(ctx context.Context, input catalog.NewProduct) (catalog.Product, error) {
	return s.createFn(ctx, input)
}
func (s *stubService) UpdateProduct(ctx context.Context, id int64, patch catalog.ProductPatch) (catalog.Product, error) {
	return s.updateFn(ctx, id, patch)
}
func (s *stubService) DeleteProduct(ctx context.Context, id int64) (catalog.Product, int, error) {
	return s.deleteFn(ctx, id)
}
func (s *stubService) AvailableIDs(ctx context.Context) ([]int64, error) {
	return s.idsFn(ctx)
}

type stubHealth struct{ err error }

func (s stubHealth) Health() error { return s.err }

func defaultStub() *stubService {
	return &stubService{
		listFn: func(_ context.Context) ([]catalog.Product, int, error) {
			return []catalog.Product{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}, 2, nil
		},
		getFn: func(_ context.Context, id int64) (catalog.Product, error) {
			return catalog.Product{ID: id, Title: "A"}, nil
		},
		createFn: func(_ context.Context, input catalog.NewProduct) (catalog.Product, error) {
			return catalog.Product{ID: 6, Title: input.Title, Price: input.Price}, nil
		},
		updateFn: func(_ context.Context, id int64, _ catalog.ProductPatch) (catalog.Product, error) {
			return catalog.Product{ID: id, Title: "Patched"}, nil
		},
		deleteFn: func(_ context.Context, id int64) (catalog.Product, int, error) {
			return catalog.Product{ID: id, Title: "Gone"}, 4, nil
		},
		idsFn: func(_ context.Context) ([]int64, error) {
			return []int64{1, 2, 3, 4, 5}, nil
		},
	}
}

func setupRouter(svc CatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, NewHandler(svc), stubHealth{})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, url, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	var reader *bytes.Buffer
	if body == "" {
		reader = bytes.NewBufferString("")
	} else {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, url, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, decoded
}

func TestHandler_ListProducts(t *testing.T) {
	r := setupRouter(defaultStub())
	w, body := doRequest(t, r, http.MethodGet, "/api/products", "")

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	products, ok := body["products"].([]any)
	if !ok || len(products) != 2 {
		t.Fatalf("want 2 products, got %v", body["products"])
	}
	if body["total"] != float64(2) || body["skip"] != float64(0) || body["limit"] != float64(2) {
		t.Fatalf("want total=2 skip=0 limit=total, got %v", body)
	}
}

func TestHandler_GetProduct(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		svcErr     error
		wantStatus int
	}{
		{name: "success", url: "/api/products/1", wantStatus: http.StatusOK},
		{name: "non-numeric id", url: "/api/products/abc", wantStatus: http.StatusBadRequest},
		{name: "negative id", url: "/api/products/-3", wantStatus: http.StatusBadRequest},
		{name: "zero id", url: "/api/products/0", wantStatus: http.StatusBadRequest},
		{name: "not found", url: "/api/products/999", svcErr: catalog.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := defaultStub()
			if tt.svcErr != nil {
				svc.getFn = func(_ context.Context, _ int64) (catalog.Product, error) {
					return catalog.Product{}, tt.svcErr
				}
			}

			r := setupRouter(svc)
			w, body := doRequest(t, r, http.MethodGet, tt.url, "")

			if w.Code != tt.wantStatus {
				t.Fatalf("want status %d, got %d, body: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantStatus == http.StatusBadRequest {
				msg, _ := body["message"].(string)
				if !strings.Contains(msg, "Invalid product ID") {
					t.Fatalf("want message containing %q, got %q", "Invalid product ID", msg)
				}
				if body["field"] != "id" {
					t.Fatalf("want field id, got %v", body["field"])
				}
			}
		})
	}
}

func TestHandler_GetProduct_NotFoundListsAvailableIDs(t *testing.T) {
	svc := defaultStub()
	svc.getFn = func(_ context.Context, _ int64) (catalog.Product, error) {
		return catalog.Product{}, catalog.ErrNotFound
	}

	r := setupRouter(svc)
	w, body := doRequest(t, r, http.MethodGet, "/api/products/999", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
	ids, ok := body["availableIds"].([]any)
	if !ok || len(ids) != 5 {
		t.Fatalf("want availableIds with 5 entries, got %v", body["availableIds"])
	}
	if ids[0] != float64(1) || ids[4] != float64(5) {
		t.Fatalf("want ids 1..5, got %v", ids)
	}
}

func TestHandler_CreateProduct(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantStatus   int
		wantField    string
		wantReceived any
	}{
		{
			name:       "success",
			body:       `{"title":"Wool Beanie","price":14.5}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid json",
			body:       `not json`,
			wantStatus: http.StatusBadRequest,
			wantField:  "body",
		},
		{
			name:       "description only reports title first",
			body:       `{"description":"x"}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "title",
		},
		{
			name:         "negative price echoes received value",
			body:         `{"title":"Hat","price":-10}`,
			wantStatus:   http.StatusBadRequest,
			wantField:    "price",
			wantReceived: float64(-10),
		},
		{
			name:       "discount just above bound",
			body:       `{"title":"Hat","price":1,"discountPercentage":100.0001}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "discountPercentage",
		},
		{
			name:       "rating just above bound",
			body:       `{"title":"Hat","price":1,"rating":5.0001}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "rating",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(defaultStub())
			w, body := doRequest(t, r, http.MethodPost, "/api/products", tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("want status %d, got %d, body: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantField != "" && body["field"] != tt.wantField {
				t.Fatalf("want field %q, got %v", tt.wantField, body["field"])
			}
			if tt.wantReceived != nil && body["received"] != tt.wantReceived {
				t.Fatalf("want received %v, got %v", tt.wantReceived, body["received"])
			}
		})
	}
}

func TestHandler_CreateProduct_ImagesCoercedNotRejected(t *testing.T) {
	var captured catalog.NewProduct
	svc := defaultStub()
	svc.createFn = func(_ context.Context, input catalog.NewProduct) (catalog.Product, error) {
		captured = input
		return catalog.Product{ID: 6, Title: input.Title}, nil
	}

	r := setupRouter(svc)
	w, _ := doRequest(t, r, http.MethodPost, "/api/products", `{"title":"Hat","price":1,"images":"nope.jpg"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d", w.Code)
	}
	if captured.Images == nil || len(captured.Images) != 0 {
		t.Fatalf("want images coerced to empty, got %v", captured.Images)
	}
}

func TestHandler_UpdateProduct(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		body         string
		svcErr       error
		wantStatus   int
		wantField    string
		wantReceived any
	}{
		{name: "success", url: "/api/products/1", body: `{"price":20}`, wantStatus: http.StatusOK},
		{name: "empty payload is a no-op merge", url: "/api/products/1", body: `{}`, wantStatus: http.StatusOK},
		{name: "invalid id", url: "/api/products/abc", body: `{"price":20}`, wantStatus: http.StatusBadRequest, wantField: "id"},
		{
			name:         "negative price",
			url:          "/api/products/1",
			body:         `{"price":-10}`,
			wantStatus:   http.StatusBadRequest,
			wantField:    "price",
			wantReceived: float64(-10),
		},
		{name: "empty title", url: "/api/products/1", body: `{"title":"  "}`, wantStatus: http.StatusBadRequest, wantField: "title"},
		{
			name:       "not found",
			url:        "/api/products/999",
			body:       `{"price":20}`,
			svcErr:     catalog.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := defaultStub()
			if tt.svcErr != nil {
				svc.updateFn = func(_ context.Context, _ int64, _ catalog.ProductPatch) (catalog.Product, error) {
					return catalog.Product{}, tt.svcErr
				}
			}

			r := setupRouter(svc)
			w, body := doRequest(t, r, http.MethodPut, tt.url, tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("want status %d, got %d, body: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantField != "" && body["field"] != tt.wantField {
				t.Fatalf("want field %q, got %v", tt.wantField, body["field"])
			}
			if tt.wantReceived != nil && body["received"] != tt.wantReceived {
				t.Fatalf("want received %v, got %v", tt.wantReceived, body["received"])
			}
		})
	}
}

func TestHandler_DeleteProduct(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		svcErr     error
		wantStatus int
	}{
		{name: "success", url: "/api/products/1", wantStatus: http.StatusOK},
		{name: "invalid id", url: "/api/products/abc", wantStatus: http.StatusBadRequest},
		{name: "not found", url: "/api/products/999", svcErr: catalog.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := defaultStub()
			if tt.svcErr != nil {
				svc.deleteFn = func(_ context.Context, _ int64) (catalog.Product, int, error) {
					return catalog.Product{}, 0, tt.svcErr
				}
			}

			r := setupRouter(svc)
			w, body := doRequest(t, r, http.MethodDelete, tt.url, "")

			if w.Code != tt.wantStatus {
				t.Fatalf("want status %d, got %d, body: %s", tt.wantStatus, w.Code, w.Body.String())
			}

			switch tt.wantStatus {
			case http.StatusOK:
				if body["message"] != "Product deleted successfully" {
					t.Fatalf("unexpected message: %v", body["message"])
				}
				deleted, ok := body["deletedProduct"].(map[string]any)
				if !ok || deleted["id"] != float64(1) {
					t.Fatalf("want deletedProduct snapshot, got %v", body["deletedProduct"])
				}
				if body["remainingProducts"] != float64(4) {
					t.Fatalf("want remainingProducts 4, got %v", body["remainingProducts"])
				}
			case http.StatusNotFound:
				if _, ok := body["availableIds"].([]any); !ok {
					t.Fatalf("want availableIds in 404 body, got %v", body)
				}
			}
		})
	}
}

func TestHandler_RouteNotFound(t *testing.T) {
	r := setupRouter(defaultStub())
	w, body := doRequest(t, r, http.MethodGet, "/nope", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
	if body["message"] != "Route not found" {
		t.Fatalf("want Route not found, got %v", body["message"])
	}
	if body["requestedUrl"] != "/nope" || body["method"] != http.MethodGet {
		t.Fatalf("want requestedUrl/method echoed, got %v", body)
	}
	routes, ok := body["availableRoutes"].([]any)
	if !ok || len(routes) != 6 {
		t.Fatalf("want 6 available routes (5 CRUD plus root), got %v", body["availableRoutes"])
	}
}

func TestHandler_Root(t *testing.T) {
	r := setupRouter(defaultStub())
	w, body := doRequest(t, r, http.MethodGet, "/", "")

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if _, ok := body["routes"].([]any); !ok {
		t.Fatalf("want route listing at root, got %v", body)
	}
}

func TestHandler_Healthz(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("healthy", func(t *testing.T) {
		r := gin.New()
		RegisterRoutes(r, NewHandler(defaultStub()), stubHealth{})
		w, body := doRequest(t, r, http.MethodGet, "/healthz", "")
		if w.Code != http.StatusOK || body["status"] != "ok" {
			t.Fatalf("want 200 ok, got %d %v", w.Code, body)
		}
	})

	t.Run("unhealthy", func(t *testing.T) {
		r := gin.New()
		RegisterRoutes(r, NewHandler(defaultStub()), stubHealth{err: context.DeadlineExceeded})
		w, body := doRequest(t, r, http.MethodGet, "/healthz", "")
		if w.Code != http.StatusServiceUnavailable || body["status"] != "unhealthy" {
			t.Fatalf("want 503 unhealthy, got %d %v", w.Code, body)
		}
	})
}
