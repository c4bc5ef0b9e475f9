package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	storefrontv1 "github.com/dwikikusuma/storefront/api/storefront/v1"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const requestIDHeader = "X-Request-ID"

type catalogClient interface {
	ListCategories(ctx context.Context, in *storefrontv1.ListCategoriesRequest, opts ...grpc.CallOption) (*storefrontv1.ListCategoriesResponse, error)
	ListProducts(ctx context.Context, in *storefrontv1.ListProductsRequest, opts ...grpc.CallOption) (*storefrontv1.ListProductsResponse, error)
	GetProduct(ctx context.Context, in *storefrontv1.GetProductRequest, opts ...grpc.CallOption) (*storefrontv1.GetProductResponse, error)
}

type cartClient interface {
	AddItem(ctx context.Context, in *storefrontv1.AddItemRequest, opts ...grpc.CallOption) (*storefrontv1.Cart, error)
	GetCart(ctx context.Context, in *storefrontv1.GetCartRequest, opts ...grpc.CallOption) (*storefrontv1.Cart, error)
}

type storefrontClient interface {
	SelectCategory(ctx context.Context, in *storefrontv1.SelectCategoryRequest, opts ...grpc.CallOption) (*storefrontv1.View, error)
	GetView(ctx context.Context, in *storefrontv1.GetViewRequest, opts ...grpc.CallOption) (*storefrontv1.View, error)
}

type handler struct {
	catalog    catalogClient
	cart       cartClient
	storefront storefrontClient

	// ready reports whether the api is serving; nil means always ready.
	ready   func(ctx context.Context) error
	timeout time.Duration
	log     zerolog.Logger
}

func (h *handler) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("GET /readyz", h.readyz)

	mux.HandleFunc("GET /api/v1/categories", h.listCategories)
	mux.HandleFunc("GET /api/v1/products", h.listProducts)
	mux.HandleFunc("GET /api/v1/products/{id}", h.getProduct)
	mux.HandleFunc("GET /api/v1/cart", h.getCart)
	mux.HandleFunc("POST /api/v1/cart/items", h.addItem)
	mux.HandleFunc("GET /api/v1/view", h.getView)
	mux.HandleFunc("PUT /api/v1/view/category", h.selectCategory)

	return h.withRequestID(mux)
}

// upstream bounds a gRPC call and forwards the request id.
func (h *handler) upstream(r *http.Request) (context.Context, context.CancelFunc) {
	ctx := r.Context()
	if id := r.Header.Get(requestIDHeader); id != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "x-request-id", id)
	}
	if h.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.timeout)
}

func (h *handler) readyz(w http.ResponseWriter, r *http.Request) {
	if h.ready == nil {
		w.WriteHeader(http.StatusOK)
		return
	}
	ctx, cancel := h.upstream(r)
	defer cancel()
	if err := h.ready(ctx); err != nil {
		h.log.Warn().Err(err).Msg("api not ready")
		writeError(w, http.StatusServiceUnavailable, "UNAVAILABLE", "api not ready")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *handler) listCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.upstream(r)
	defer cancel()

	resp, err := h.catalog.ListCategories(ctx, &storefrontv1.ListCategoriesRequest{})
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.upstream(r)
	defer cancel()

	resp, err := h.catalog.ListProducts(ctx, &storefrontv1.ListProductsRequest{Category: r.URL.Query().Get("category")})
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "product id must be an integer")
		return
	}

	ctx, cancel := h.upstream(r)
	defer cancel()

	resp, err := h.catalog.GetProduct(ctx, &storefrontv1.GetProductRequest{ID: id})
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.Product)
}

func (h *handler) getCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.upstream(r)
	defer cancel()

	resp, err := h.cart.GetCart(ctx, &storefrontv1.GetCartRequest{})
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req storefrontv1.AddItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx, cancel := h.upstream(r)
	defer cancel()

	resp, err := h.cart.AddItem(ctx, &req)
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) getView(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.upstream(r)
	defer cancel()

	resp, err := h.storefront.GetView(ctx, &storefrontv1.GetViewRequest{})
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) selectCategory(w http.ResponseWriter, r *http.Request) {
	var req storefrontv1.SelectCategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx, cancel := h.upstream(r)
	defer cancel()

	resp, err := h.storefront.SelectCategory(ctx, &req)
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "malformed request body")
		return false
	}
	return true
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// withRequestID tags every request with an id, echoes it back and writes
// one access log line per request.
func (h *handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		r.Header.Set(requestIDHeader, id)
		w.Header().Set(requestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		h.log.Info().
			Str("request_id", id).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("took", time.Since(start)).
			Msg("http request")
	})
}
