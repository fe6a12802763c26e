package search_catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxiipins/storefront-service/internal/app/storefront/contracts"
	"github.com/maxiipins/storefront-service/internal/app/storefront/domain"
	"github.com/maxiipins/storefront-service/internal/app/storefront/domain/services"
)

func newHandler(gw contracts.CommerceGateway) *Handler {
	return NewHandler(gw, services.NewSearchMatcher(), nil)
}

func catalogGateway() *contracts.MockGateway {
	return &contracts.MockGateway{
		ListCategoriesFunc: func(ctx context.Context) ([]domain.Category, error) {
			return []domain.Category{
				{ID: "c1", Name: "Valorant", Slug: "valorant"},
				{ID: "c2", Name: "PUBG Mobile", Slug: "pubg-mobile"},
			}, nil
		},
		ListCategoryProductsFunc: func(ctx context.Context, slug string) ([]domain.CatalogItem, error) {
			switch slug {
			case "valorant":
				return []domain.CatalogItem{
					{ID: "p1", Name: "Valorant 1000 VP", Price: domain.PriceFromInt(1325), Slug: "valorant-1000-vp"},
				}, nil
			case "pubg-mobile":
				return []domain.CatalogItem{
					{ID: "p2", Name: "660 UC", Price: domain.PriceFromInt(250), Slug: "660-uc"},
				}, nil
			default:
				return nil, nil
			}
		},
	}
}

func TestExecute_NoQueryIsDistinctState(t *testing.T) {
	h := newHandler(catalogGateway())

	res := h.Execute(context.Background(), "   ", nil)
	assert.True(t, res.NoQuery)
	assert.Empty(t, res.Items)
	assert.False(t, res.Degraded)
}

func TestExecute_SearchedAndFoundNothing(t *testing.T) {
	h := newHandler(catalogGateway())

	res := h.Execute(context.Background(), "minecraft", nil)
	assert.False(t, res.NoQuery)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
}

func TestExecute_SnapshotSpansAllCategories(t *testing.T) {
	h := newHandler(catalogGateway())

	// "mobile" only matches via the tagged category name.
	res := h.Execute(context.Background(), "mobile", nil)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "660 UC", res.Items[0].Name)
	assert.Equal(t, "PUBG Mobile", res.Items[0].CategoryName)
	assert.False(t, res.Degraded)
}

func TestExecute_PartialCategoryFailureTolerated(t *testing.T) {
	gw := catalogGateway()
	inner := gw.ListCategoryProductsFunc
	gw.ListCategoryProductsFunc = func(ctx context.Context, slug string) ([]domain.CatalogItem, error) {
		if slug == "pubg-mobile" {
			return nil, errors.New("upstream down")
		}
		return inner(ctx, slug)
	}
	h := newHandler(gw)

	res := h.Execute(context.Background(), "valorant", nil)
	require.Len(t, res.Items, 1)
	assert.False(t, res.Degraded)
}

func TestExecute_TotalFailureFallsBackToHomepageItems(t *testing.T) {
	gw := &contracts.MockGateway{
		ListCategoriesFunc: func(ctx context.Context) ([]domain.Category, error) {
			return nil, errors.New("upstream down")
		},
	}
	h := newHandler(gw)

	fallback := []domain.CatalogItem{
		{ID: "p9", Name: "Zula Altın", Price: domain.PriceFromInt(50), Slug: "zula-altin"},
	}
	res := h.Execute(context.Background(), "zula", fallback)

	assert.True(t, res.Degraded)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Zula Altın", res.Items[0].Name)
}

func TestExecute_AllCategoriesFailingIsDegraded(t *testing.T) {
	gw := catalogGateway()
	gw.ListCategoryProductsFunc = func(ctx context.Context, slug string) ([]domain.CatalogItem, error) {
		return nil, errors.New("upstream down")
	}
	h := newHandler(gw)

	res := h.Execute(context.Background(), "valorant", []domain.CatalogItem{
		{ID: "p1", Name: "Valorant 1000 VP", Price: domain.PriceFromInt(1325), Slug: "valorant-1000-vp"},
	})

	assert.True(t, res.Degraded)
	require.Len(t, res.Items, 1)
}
