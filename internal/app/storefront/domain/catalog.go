package domain

// CatalogItem is a purchasable digital product as presented by the
// storefront: a view model mirrored from the upstream API, never mutated.
type CatalogItem struct {
	ID            string
	Name          string
	Price         Price
	OriginalPrice *Price
	Slug          string
	ImageURL      string
	Rating        *float64
	People        *int
	IsPopular     bool
	CategoryName  string
	CategorySlug  string
}

// ShowOriginalPrice reports whether the struck-through original price should
// be displayed: only when present and different from the current price.
func (i CatalogItem) ShowOriginalPrice() bool {
	return i.OriginalPrice != nil && !i.OriginalPrice.Equal(i.Price)
}

// Category groups catalog items for navigation.
type Category struct {
	ID           string
	Name         string
	Slug         string
	ImageURL     string
	Description  string
	ProductCount int
}

// ProductDetail is the full product page payload: the item plus its
// long-form description and owning category.
type ProductDetail struct {
	Item        CatalogItem
	Description string
	Category    Category
}
