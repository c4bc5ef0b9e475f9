package grpc

import (
	"context"

	storefrontv1 "github.com/dwikikusuma/storefront/api/storefront/v1"
	cartgrpc "github.com/dwikikusuma/storefront/internal/cart/grpc"
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
	cgrpc "github.com/dwikikusuma/storefront/internal/catalog/grpc"
	"github.com/dwikikusuma/storefront/internal/storefront/app"
	"github.com/dwikikusuma/storefront/internal/storefront/domain"
)

type Server struct {
	storefrontv1.UnimplementedStorefrontServiceServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) SelectCategory(ctx context.Context, req *storefrontv1.SelectCategoryRequest) (*storefrontv1.View, error) {
	v, err := s.svc.SelectCategory(ctx, catalog.CategoryID(req.GetCategoryID()))
	if err != nil {
		return nil, cgrpc.MapErr(err)
	}
	return toProto(v), nil
}

func (s *Server) GetView(ctx context.Context, req *storefrontv1.GetViewRequest) (*storefrontv1.View, error) {
	v, err := s.svc.View(ctx)
	if err != nil {
		return nil, cgrpc.MapErr(err)
	}
	return toProto(v), nil
}

func toProto(v domain.View) *storefrontv1.View {
	names := make(map[catalog.CategoryID]string, len(v.Categories))
	for _, c := range v.Categories {
		names[c.ID] = c.Name
	}

	products := make([]*storefrontv1.Product, 0, len(v.Products))
	for _, p := range v.Products {
		products = append(products, cgrpc.ProductToProto(p, v.Currency, names[p.Category]))
	}

	head, remaining := v.Preview()

	return &storefrontv1.View{
		SelectedCategory: string(v.Selected),
		Categories:       cgrpc.CategoriesToProto(v.Categories),
		Products:         products,
		Cart:             cartgrpc.ToProto(v.Cart, v.Currency),
		Preview: &storefrontv1.CartPreview{
			Items:     cartgrpc.ItemsToProto(head, v.Currency),
			Remaining: int32(remaining),
		},
	}
}
