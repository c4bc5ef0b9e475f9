package memory

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultSeed []byte

type seedFile struct {
	Currency   string        `yaml:"currency"`
	Categories []categoryRow `yaml:"categories"`
	Products   []productRow  `yaml:"products"`
}

type categoryRow struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type productRow struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Price       int64  `yaml:"price"`
	Category    string `yaml:"category"`
	Image       string `yaml:"image"`
	Description string `yaml:"description"`
}

// ProductRepo serves a catalog loaded once from a YAML seed.
type ProductRepo struct {
	catalog  domain.Catalog
	currency string
}

// NewProductRepo loads the embedded seed.
func NewProductRepo() (*ProductRepo, error) {
	return Load(bytes.NewReader(defaultSeed))
}

// Open loads the seed at path, or the embedded seed when path is empty.
func Open(path string) (*ProductRepo, error) {
	if path == "" {
		return NewProductRepo()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog seed: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func Load(r io.Reader) (*ProductRepo, error) {
	var seed seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("decode catalog seed: %w", err)
	}

	categories := make([]domain.Category, 0, len(seed.Categories))
	for _, row := range seed.Categories {
		categories = append(categories, domain.Category{
			ID:   domain.CategoryID(row.ID),
			Name: row.Name,
		})
	}

	products := make([]domain.Product, 0, len(seed.Products))
	for _, row := range seed.Products {
		products = append(products, domain.Product{
			ID:          row.ID,
			Name:        row.Name,
			Price:       row.Price,
			Category:    domain.CategoryID(row.Category),
			Image:       row.Image,
			Description: row.Description,
		})
	}

	c, err := domain.NewCatalog(products, categories)
	if err != nil {
		return nil, err
	}

	currency := seed.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	return &ProductRepo{catalog: c, currency: currency}, nil
}

func (r *ProductRepo) Catalog(ctx context.Context) (domain.Catalog, error) {
	return r.catalog, nil
}

// Currency is the currency code the seed prices are expressed in.
func (r *ProductRepo) Currency() string {
	return r.currency
}
