package commerce

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/maxiipins/storefront-service/internal/app/storefront/domain"
)

// priceJSON accepts the upstream's two price encodings: a JSON number or an
// already-formatted string.
type priceJSON struct {
	price domain.Price
	set   bool
}

func (p *priceJSON) UnmarshalJSON(raw []byte) error {
	s := strings.TrimSpace(string(raw))
	if s == "null" || s == "" {
		return nil
	}
	if s[0] == '"' {
		var formatted string
		if err := json.Unmarshal(raw, &formatted); err != nil {
			return err
		}
		p.price = domain.PriceFromString(formatted)
		p.set = true
		return nil
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", s, err)
	}
	p.price = domain.PriceFromAmount(amount)
	p.set = true
	return nil
}

type productJSON struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Price         priceJSON  `json:"price"`
	OriginalPrice *priceJSON `json:"originalPrice"`
	Slug          string     `json:"slug"`
	URL           string     `json:"url"`
	Rating        *float64   `json:"rating"`
	People        *int       `json:"people"`
	IsPopular     bool       `json:"isPopular"`
	Category      *struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	} `json:"category"`
}

func (p productJSON) toDomain() domain.CatalogItem {
	item := domain.CatalogItem{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price.price,
		Slug:      p.Slug,
		ImageURL:  p.URL,
		Rating:    p.Rating,
		People:    p.People,
		IsPopular: p.IsPopular,
	}
	if p.OriginalPrice != nil && p.OriginalPrice.set {
		op := p.OriginalPrice.price
		item.OriginalPrice = &op
	}
	if p.Category != nil {
		item.CategoryName = p.Category.Name
		item.CategorySlug = p.Category.Slug
	}
	return item
}

type categoryJSON struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	URL          string `json:"url"`
	Description  string `json:"description"`
	ProductCount int    `json:"productCount"`
}

func (c categoryJSON) toDomain() domain.Category {
	return domain.Category{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		ImageURL:     c.URL,
		Description:  c.Description,
		ProductCount: c.ProductCount,
	}
}

// ListCategories fetches all catalog categories.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var rows []categoryJSON
	if err := c.getJSON(ctx, "/categories", "", &rows); err != nil {
		return nil, err
	}
	out := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// GetCategory fetches one category by slug. Upstream 404 maps to
// domain.ErrCategoryNotFound.
func (c *Client) GetCategory(ctx context.Context, slug string) (*domain.Category, error) {
	var row categoryJSON
	if err := c.getJSON(ctx, "/categories/"+url.PathEscape(slug), "", &row); err != nil {
		return nil, notFoundAs(err, domain.ErrCategoryNotFound)
	}
	cat := row.toDomain()
	return &cat, nil
}

// ListCategoryProducts fetches all products of a category.
func (c *Client) ListCategoryProducts(ctx context.Context, slug string) ([]domain.CatalogItem, error) {
	var rows []productJSON
	if err := c.getJSON(ctx, "/categories/"+url.PathEscape(slug)+"/products", "", &rows); err != nil {
		return nil, notFoundAs(err, domain.ErrCategoryNotFound)
	}
	out := make([]domain.CatalogItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// HomepageItems fetches up to limit curated homepage items.
func (c *Client) HomepageItems(ctx context.Context, limit int) ([]domain.CatalogItem, error) {
	var rows []productJSON
	path := "/homepage/items?limit=" + strconv.Itoa(limit)
	if err := c.getJSON(ctx, path, "", &rows); err != nil {
		return nil, err
	}
	out := make([]domain.CatalogItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

type productDetailJSON struct {
	Product struct {
		productJSON
		Description string `json:"description"`
	} `json:"product"`
	Category categoryJSON `json:"category"`
}

// GetProduct fetches the product detail payload by slug. Upstream 404 maps
// to domain.ErrProductNotFound.
func (c *Client) GetProduct(ctx context.Context, slug string) (*domain.ProductDetail, error) {
	var row productDetailJSON
	if err := c.getJSON(ctx, "/products/"+url.PathEscape(slug), "", &row); err != nil {
		return nil, notFoundAs(err, domain.ErrProductNotFound)
	}
	return &domain.ProductDetail{
		Item:        row.Product.toDomain(),
		Description: row.Product.Description,
		Category:    row.Category.toDomain(),
	}, nil
}

// notFoundAs converts an upstream 404 into the given domain sentinel,
// passing every other error through.
func notFoundAs(err error, sentinel error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
		return sentinel
	}
	return err
}
