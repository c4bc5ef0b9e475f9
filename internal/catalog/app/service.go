package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	c, err := s.repo.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return c.Categories(), nil
}

// ListProducts returns the products visible under category. An empty
// category means the whole catalog.
func (s *Service) ListProducts(ctx context.Context, category domain.CategoryID) ([]domain.Product, error) {
	c, err := s.repo.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	category = domain.CategoryID(strings.TrimSpace(string(category)))
	if category == "" {
		category = domain.AllCategories
	}
	return c.Visible(category), nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, ErrInvalidInput
	}

	c, err := s.repo.Catalog(ctx)
	if err != nil {
		return domain.Product{}, err
	}

	p, ok := c.Product(id)
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) CategoryName(ctx context.Context, id domain.CategoryID) (string, bool, error) {
	c, err := s.repo.Catalog(ctx)
	if err != nil {
		return "", false, err
	}
	name, ok := c.CategoryName(id)
	return name, ok, nil
}
