package storefrontv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	StorefrontService_SelectCategory_FullMethodName = "/storefront.v1.StorefrontService/SelectCategory"
	StorefrontService_GetView_FullMethodName        = "/storefront.v1.StorefrontService/GetView"
)

// StorefrontServiceServer exposes the session: the current category
// selection together with the derived product list and cart totals.
type StorefrontServiceServer interface {
	SelectCategory(context.Context, *SelectCategoryRequest) (*View, error)
	GetView(context.Context, *GetViewRequest) (*View, error)
}

type UnimplementedStorefrontServiceServer struct{}

func (UnimplementedStorefrontServiceServer) SelectCategory(context.Context, *SelectCategoryRequest) (*View, error) {
	return nil, status.Error(codes.Unimplemented, "method SelectCategory not implemented")
}

func (UnimplementedStorefrontServiceServer) GetView(context.Context, *GetViewRequest) (*View, error) {
	return nil, status.Error(codes.Unimplemented, "method GetView not implemented")
}

var StorefrontService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "storefront.v1.StorefrontService",
	HandlerType: (*StorefrontServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SelectCategory",
			Handler:    unary(StorefrontService_SelectCategory_FullMethodName, StorefrontServiceServer.SelectCategory),
		},
		{
			MethodName: "GetView",
			Handler:    unary(StorefrontService_GetView_FullMethodName, StorefrontServiceServer.GetView),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/v1/storefront",
}

func RegisterStorefrontServiceServer(s grpc.ServiceRegistrar, srv StorefrontServiceServer) {
	s.RegisterService(&StorefrontService_ServiceDesc, srv)
}

type StorefrontServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewStorefrontServiceClient(cc grpc.ClientConnInterface) *StorefrontServiceClient {
	return &StorefrontServiceClient{cc: cc}
}

func (c *StorefrontServiceClient) SelectCategory(ctx context.Context, in *SelectCategoryRequest, opts ...grpc.CallOption) (*View, error) {
	out := new(View)
	if err := c.cc.Invoke(ctx, StorefrontService_SelectCategory_FullMethodName, in, out, CallOptions(opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *StorefrontServiceClient) GetView(ctx context.Context, in *GetViewRequest, opts ...grpc.CallOption) (*View, error) {
	out := new(View)
	if err := c.cc.Invoke(ctx, StorefrontService_GetView_FullMethodName, in, out, CallOptions(opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}
