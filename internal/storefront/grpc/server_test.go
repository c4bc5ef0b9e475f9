package grpc_test

import (
	"context"
	"net"
	"testing"

	storefrontv1 "github.com/dwikikusuma/storefront/api/storefront/v1"
	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartgrpc "github.com/dwikikusuma/storefront/internal/cart/grpc"
	"github.com/dwikikusuma/storefront/internal/cart/infra/adapter"
	cartmem "github.com/dwikikusuma/storefront/internal/cart/infra/memory"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	cgrpc "github.com/dwikikusuma/storefront/internal/catalog/grpc"
	catalogmem "github.com/dwikikusuma/storefront/internal/catalog/infra/memory"
	"github.com/dwikikusuma/storefront/internal/storefront/app"
	sfgrpc "github.com/dwikikusuma/storefront/internal/storefront/grpc"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type clients struct {
	catalog    *storefrontv1.CatalogServiceClient
	cart       *storefrontv1.CartServiceClient
	storefront *storefrontv1.StorefrontServiceClient
}

func startServer(t *testing.T) clients {
	t.Helper()

	repo, err := catalogmem.NewProductRepo()
	require.NoError(t, err)
	catalogSvc := catalogapp.NewService(repo)
	cartSvc := cartapp.NewService(cartmem.NewCartRepo(), adapter.NewCatalogServiceReader(catalogSvc))
	session := app.NewService(catalogSvc, cartSvc, repo.Currency(), zerolog.Nop())

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	storefrontv1.RegisterCatalogServiceServer(srv, cgrpc.NewServer(catalogSvc, repo.Currency()))
	storefrontv1.RegisterCartServiceServer(srv, cartgrpc.NewServer(cartSvc, repo.Currency()))
	storefrontv1.RegisterStorefrontServiceServer(srv, sfgrpc.NewServer(session))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return clients{
		catalog:    storefrontv1.NewCatalogServiceClient(conn),
		cart:       storefrontv1.NewCartServiceClient(conn),
		storefront: storefrontv1.NewStorefrontServiceClient(conn),
	}
}

func TestCatalogService(t *testing.T) {
	c := startServer(t)
	ctx := context.Background()

	cats, err := c.catalog.ListCategories(ctx, &storefrontv1.ListCategoriesRequest{})
	require.NoError(t, err)
	require.Len(t, cats.Categories, 4)
	assert.Equal(t, "all", cats.Categories[0].ID)

	all, err := c.catalog.ListProducts(ctx, &storefrontv1.ListProductsRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Products, 6)

	home, err := c.catalog.ListProducts(ctx, &storefrontv1.ListProductsRequest{Category: "home"})
	require.NoError(t, err)
	require.Len(t, home.Products, 2)
	assert.Equal(t, int64(5), home.Products[0].ID)
	assert.Equal(t, "Дом и интерьер", home.Products[0].CategoryName)

	got, err := c.catalog.GetProduct(ctx, &storefrontv1.GetProductRequest{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(12990), got.Product.Price)
	assert.Equal(t, "129.90 RUB", got.Product.PriceDisplay)

	_, err = c.catalog.GetProduct(ctx, &storefrontv1.GetProductRequest{ID: 0})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.catalog.GetProduct(ctx, &storefrontv1.GetProductRequest{ID: 77})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestCartService(t *testing.T) {
	c := startServer(t)
	ctx := context.Background()

	_, err := c.cart.AddItem(ctx, &storefrontv1.AddItemRequest{ProductID: 1})
	require.NoError(t, err)
	cart, err := c.cart.AddItem(ctx, &storefrontv1.AddItemRequest{ProductID: 3})
	require.NoError(t, err)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, int64(1), cart.Items[0].Product.ID)
	assert.Equal(t, int64(3), cart.Items[1].Product.ID)
	assert.Equal(t, int32(2), cart.TotalItems)
	assert.Equal(t, int64(21980), cart.TotalPrice)
	assert.Equal(t, "219.80 RUB", cart.TotalPriceDisplay)

	again, err := c.cart.GetCart(ctx, &storefrontv1.GetCartRequest{})
	require.NoError(t, err)
	assert.Equal(t, cart, again)

	_, err = c.cart.AddItem(ctx, &storefrontv1.AddItemRequest{ProductID: 404})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = c.cart.AddItem(ctx, &storefrontv1.AddItemRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestStorefrontService(t *testing.T) {
	c := startServer(t)
	ctx := context.Background()

	v, err := c.storefront.GetView(ctx, &storefrontv1.GetViewRequest{})
	require.NoError(t, err)
	assert.Equal(t, "all", v.SelectedCategory)
	assert.Len(t, v.Products, 6)
	assert.Equal(t, int32(0), v.Cart.TotalItems)

	v, err = c.storefront.SelectCategory(ctx, &storefrontv1.SelectCategoryRequest{CategoryID: "electronics"})
	require.NoError(t, err)
	assert.Equal(t, "electronics", v.SelectedCategory)
	require.Len(t, v.Products, 2)
	for _, p := range v.Products {
		assert.Equal(t, "electronics", p.Category)
	}

	for _, id := range []int64{1, 2, 3, 4} {
		_, err := c.cart.AddItem(ctx, &storefrontv1.AddItemRequest{ProductID: id})
		require.NoError(t, err)
	}

	v, err = c.storefront.GetView(ctx, &storefrontv1.GetViewRequest{})
	require.NoError(t, err)
	assert.Equal(t, "electronics", v.SelectedCategory)
	assert.Len(t, v.Preview.Items, 3)
	assert.Equal(t, int32(1), v.Preview.Remaining)
	assert.Equal(t, int32(4), v.Cart.TotalItems)
}
