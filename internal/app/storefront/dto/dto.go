// Package dto holds the view DTOs returned by queries. Prices are already
// rendered for display; transport serializes these as-is.
package dto

import "github.com/maxiipins/storefront-service/internal/app/storefront/domain"

// CatalogItemDTO is one catalog card.
type CatalogItemDTO struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         string   `json:"price"`
	OriginalPrice string   `json:"originalPrice,omitempty"`
	Slug          string   `json:"slug"`
	ImageURL      string   `json:"url,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	People        *int     `json:"people,omitempty"`
	IsPopular     bool     `json:"isPopular,omitempty"`
	CategoryName  string   `json:"categoryName,omitempty"`
	CategorySlug  string   `json:"categorySlug,omitempty"`
}

// CategoryDTO is one category card.
type CategoryDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ImageURL     string `json:"url,omitempty"`
	Description  string `json:"description,omitempty"`
	ProductCount int    `json:"productCount,omitempty"`
}

// HomeViewDTO is the homepage payload: best-selling items plus categories.
// Both collapse to empty slices when the upstream is unreachable.
type HomeViewDTO struct {
	Items      []CatalogItemDTO `json:"items"`
	Categories []CategoryDTO    `json:"categories"`
}

// CategoryPageDTO is one page of a category listing.
type CategoryPageDTO struct {
	Category   CategoryDTO      `json:"category"`
	Products   []CatalogItemDTO `json:"products"`
	Page       int              `json:"page"`
	PerPage    int              `json:"perPage"`
	TotalItems int              `json:"totalItems"`
	TotalPages int              `json:"totalPages"`
	HasNext    bool             `json:"hasNext"`
	HasPrev    bool             `json:"hasPrev"`
}

// ProductPageDTO is the product detail payload.
type ProductPageDTO struct {
	Product     CatalogItemDTO `json:"product"`
	Description string         `json:"description,omitempty"`
	Category    CategoryDTO    `json:"category"`
}

// OrderStatusDTO carries the status text with its display colors.
type OrderStatusDTO struct {
	Text        string `json:"text"`
	Color       string `json:"color"`
	Background  string `json:"bgColor"`
	BorderColor string `json:"borderColor"`
}

// OrderDTO is one order history row.
type OrderDTO struct {
	ID      string         `json:"id"`
	OrderID string         `json:"orderId"`
	Status  OrderStatusDTO `json:"status"`
	Price   string         `json:"price"`
	Date    string         `json:"date"`
}

// ContractDTO is a legal page.
type ContractDTO struct {
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	HTML    string `json:"text"`
	Excerpt string `json:"excerpt,omitempty"`
}

// SearchResultDTO is the search payload. NoQuery distinguishes "haven't
// searched" from "searched, found nothing"; Pending reports a debounced
// search that has not completed yet; Degraded reports the snapshot fell
// back to homepage items after an upstream failure.
type SearchResultDTO struct {
	Query    string           `json:"query"`
	NoQuery  bool             `json:"noQuery"`
	Pending  bool             `json:"pending,omitempty"`
	Degraded bool             `json:"degraded"`
	Items    []CatalogItemDTO `json:"items"`
}

// FromCatalogItem renders a domain item for display. The original price is
// included only when it differs from the current price.
func FromCatalogItem(item domain.CatalogItem) CatalogItemDTO {
	out := CatalogItemDTO{
		ID:           item.ID,
		Name:         item.Name,
		Price:        item.Price.Display(),
		Slug:         item.Slug,
		ImageURL:     item.ImageURL,
		Rating:       item.Rating,
		People:       item.People,
		IsPopular:    item.IsPopular,
		CategoryName: item.CategoryName,
		CategorySlug: item.CategorySlug,
	}
	if item.ShowOriginalPrice() {
		out.OriginalPrice = item.OriginalPrice.Display()
	}
	return out
}

// FromCatalogItems renders a slice, always non-nil for JSON empty states.
func FromCatalogItems(items []domain.CatalogItem) []CatalogItemDTO {
	out := make([]CatalogItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, FromCatalogItem(it))
	}
	return out
}

// FromCategory renders a domain category.
func FromCategory(c domain.Category) CategoryDTO {
	return CategoryDTO{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		ImageURL:     c.ImageURL,
		Description:  c.Description,
		ProductCount: c.ProductCount,
	}
}

// FromCategories renders a slice, always non-nil.
func FromCategories(cats []domain.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(cats))
	for _, c := range cats {
		out = append(out, FromCategory(c))
	}
	return out
}

// FromOrder renders one order row with its status colors attached.
func FromOrder(o domain.Order) OrderDTO {
	info := domain.OrderStatusInfo(o.StatusText)
	return OrderDTO{
		ID:      o.ID,
		OrderID: o.OrderID,
		Status: OrderStatusDTO{
			Text:        info.Text,
			Color:       info.Color,
			Background:  info.Background,
			BorderColor: info.BorderColor,
		},
		Price: o.Price,
		Date:  o.Date,
	}
}
