package grpc

import (
	"context"
	"errors"

	storefrontv1 "github.com/dwikikusuma/storefront/api/storefront/v1"
	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	storefrontv1.UnimplementedCatalogServiceServer
	svc      *app.Service
	currency string
}

func NewServer(svc *app.Service, currency string) *Server {
	return &Server{svc: svc, currency: currency}
}

func (s *Server) ListCategories(ctx context.Context, req *storefrontv1.ListCategoriesRequest) (*storefrontv1.ListCategoriesResponse, error) {
	categories, err := s.svc.ListCategories(ctx)
	if err != nil {
		return nil, MapErr(err)
	}
	return &storefrontv1.ListCategoriesResponse{Categories: CategoriesToProto(categories)}, nil
}

func (s *Server) ListProducts(ctx context.Context, req *storefrontv1.ListProductsRequest) (*storefrontv1.ListProductsResponse, error) {
	products, err := s.svc.ListProducts(ctx, domain.CategoryID(req.GetCategory()))
	if err != nil {
		return nil, MapErr(err)
	}

	out := make([]*storefrontv1.Product, 0, len(products))
	for _, p := range products {
		out = append(out, s.productToProto(ctx, p))
	}
	return &storefrontv1.ListProductsResponse{Products: out}, nil
}

func (s *Server) GetProduct(ctx context.Context, req *storefrontv1.GetProductRequest) (*storefrontv1.GetProductResponse, error) {
	p, err := s.svc.GetProduct(ctx, req.GetID())
	if err != nil {
		return nil, MapErr(err)
	}
	return &storefrontv1.GetProductResponse{Product: s.productToProto(ctx, p)}, nil
}

func (s *Server) productToProto(ctx context.Context, p domain.Product) *storefrontv1.Product {
	name, _, _ := s.svc.CategoryName(ctx, p.Category)
	return ProductToProto(p, s.currency, name)
}

func ProductToProto(p domain.Product, currency, categoryName string) *storefrontv1.Product {
	return &storefrontv1.Product{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		PriceDisplay: domain.FormatPrice(p.Price, currency),
		Category:     string(p.Category),
		CategoryName: categoryName,
		Image:        p.Image,
		Description:  p.Description,
	}
}

func CategoriesToProto(categories []domain.Category) []*storefrontv1.Category {
	out := make([]*storefrontv1.Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, &storefrontv1.Category{ID: string(c.ID), Name: c.Name})
	}
	return out
}

// MapErr converts catalog errors into gRPC status errors.
func MapErr(err error) error {
	if errors.Is(err, app.ErrInvalidInput) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if errors.Is(err, app.ErrNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
