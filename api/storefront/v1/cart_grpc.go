package storefrontv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	CartService_AddItem_FullMethodName = "/storefront.v1.CartService/AddItem"
	CartService_GetCart_FullMethodName = "/storefront.v1.CartService/GetCart"
)

type CartServiceServer interface {
	AddItem(context.Context, *AddItemRequest) (*Cart, error)
	GetCart(context.Context, *GetCartRequest) (*Cart, error)
}

type UnimplementedCartServiceServer struct{}

func (UnimplementedCartServiceServer) AddItem(context.Context, *AddItemRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method AddItem not implemented")
}

func (UnimplementedCartServiceServer) GetCart(context.Context, *GetCartRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCart not implemented")
}

var CartService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "storefront.v1.CartService",
	HandlerType: (*CartServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AddItem",
			Handler:    unary(CartService_AddItem_FullMethodName, CartServiceServer.AddItem),
		},
		{
			MethodName: "GetCart",
			Handler:    unary(CartService_GetCart_FullMethodName, CartServiceServer.GetCart),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/v1/cart",
}

func RegisterCartServiceServer(s grpc.ServiceRegistrar, srv CartServiceServer) {
	s.RegisterService(&CartService_ServiceDesc, srv)
}

type CartServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCartServiceClient(cc grpc.ClientConnInterface) *CartServiceClient {
	return &CartServiceClient{cc: cc}
}

func (c *CartServiceClient) AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*Cart, error) {
	out := new(Cart)
	if err := c.cc.Invoke(ctx, CartService_AddItem_FullMethodName, in, out, CallOptions(opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CartServiceClient) GetCart(ctx context.Context, in *GetCartRequest, opts ...grpc.CallOption) (*Cart, error) {
	out := new(Cart)
	if err := c.cc.Invoke(ctx, CartService_GetCart_FullMethodName, in, out, CallOptions(opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}
