package grpc

import (
	"context"

	storefrontv1 "github.com/dwikikusuma/storefront/api/storefront/v1"
	"github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/domain"
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
	cgrpc "github.com/dwikikusuma/storefront/internal/catalog/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	storefrontv1.UnimplementedCartServiceServer
	svc      *app.Service
	currency string
}

func NewServer(svc *app.Service, currency string) *Server {
	return &Server{svc: svc, currency: currency}
}

func (s *Server) AddItem(ctx context.Context, req *storefrontv1.AddItemRequest) (*storefrontv1.Cart, error) {
	if req.GetProductID() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "product_id must be a positive integer")
	}

	cart, err := s.svc.AddToCart(ctx, req.GetProductID())
	if err != nil {
		return nil, cgrpc.MapErr(err)
	}
	return ToProto(cart, s.currency), nil
}

func (s *Server) GetCart(ctx context.Context, req *storefrontv1.GetCartRequest) (*storefrontv1.Cart, error) {
	cart, err := s.svc.GetCart(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "error getting cart: %v", err)
	}
	return ToProto(cart, s.currency), nil
}

func ToProto(cart domain.Cart, currency string) *storefrontv1.Cart {
	if currency == "" {
		currency = catalog.DefaultCurrency
	}
	return &storefrontv1.Cart{
		Items:             ItemsToProto(cart.Items(), currency),
		TotalItems:        int32(cart.TotalItems()),
		TotalPrice:        cart.TotalPrice(),
		TotalPriceDisplay: catalog.FormatPrice(cart.TotalPrice(), currency),
		Currency:          currency,
	}
}

func ItemsToProto(items []domain.CartItem, currency string) []*storefrontv1.CartItem {
	out := make([]*storefrontv1.CartItem, 0, len(items))
	for _, it := range items {
		out = append(out, &storefrontv1.CartItem{
			Product:   cgrpc.ProductToProto(it.Product, currency, ""),
			Quantity:  int32(it.Quantity),
			LineTotal: it.LineTotal(),
		})
	}
	return out
}
