package storefrontv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	CatalogService_ListCategories_FullMethodName = "/storefront.v1.CatalogService/ListCategories"
	CatalogService_ListProducts_FullMethodName   = "/storefront.v1.CatalogService/ListProducts"
	CatalogService_GetProduct_FullMethodName     = "/storefront.v1.CatalogService/GetProduct"
)

type CatalogServiceServer interface {
	ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error)
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*GetProductResponse, error)
}

// UnimplementedCatalogServiceServer can be embedded to satisfy
// CatalogServiceServer while only overriding some methods.
type UnimplementedCatalogServiceServer struct{}

func (UnimplementedCatalogServiceServer) ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCategories not implemented")
}

func (UnimplementedCatalogServiceServer) ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProducts not implemented")
}

func (UnimplementedCatalogServiceServer) GetProduct(context.Context, *GetProductRequest) (*GetProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProduct not implemented")
}

var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "storefront.v1.CatalogService",
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListCategories",
			Handler:    unary(CatalogService_ListCategories_FullMethodName, CatalogServiceServer.ListCategories),
		},
		{
			MethodName: "ListProducts",
			Handler:    unary(CatalogService_ListProducts_FullMethodName, CatalogServiceServer.ListProducts),
		},
		{
			MethodName: "GetProduct",
			Handler:    unary(CatalogService_GetProduct_FullMethodName, CatalogServiceServer.GetProduct),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/v1/catalog",
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

type CatalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) *CatalogServiceClient {
	return &CatalogServiceClient{cc: cc}
}

func (c *CatalogServiceClient) ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	out := new(ListCategoriesResponse)
	if err := c.cc.Invoke(ctx, CatalogService_ListCategories_FullMethodName, in, out, CallOptions(opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CatalogServiceClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	out := new(ListProductsResponse)
	if err := c.cc.Invoke(ctx, CatalogService_ListProducts_FullMethodName, in, out, CallOptions(opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CatalogServiceClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*GetProductResponse, error) {
	out := new(GetProductResponse)
	if err := c.cc.Invoke(ctx, CatalogService_GetProduct_FullMethodName, in, out, CallOptions(opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}
