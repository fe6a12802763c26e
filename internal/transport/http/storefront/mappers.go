package storefront

import (
	"github.com/maxiipins/storefront-service/internal/app/storefront/domain"
	"github.com/maxiipins/storefront-service/internal/app/storefront/dto"
	"github.com/maxiipins/storefront-service/internal/app/storefront/stores"
)

type statusBody struct {
	Status string `json:"status"`
}

type checkoutResponse struct {
	OrderID string `json:"orderId"`
}

type ordersResponse struct {
	Orders []dto.OrderDTO `json:"orders"`
}

type messageResponse struct {
	ID string `json:"id"`
}

type userView struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type sessionView struct {
	State           string    `json:"state"`
	IsAuthenticated bool      `json:"isAuthenticated"`
	User            *userView `json:"user,omitempty"`
	CartBadge       string    `json:"cartBadge"`
	CartCount       int       `json:"cartCount"`
}

func mapSession(snap stores.SessionSnapshot, badge string, count int) sessionView {
	out := sessionView{
		State:           string(snap.State),
		IsAuthenticated: snap.IsAuthenticated,
		CartBadge:       badge,
		CartCount:       count,
	}
	if snap.User != nil {
		out.User = &userView{
			ID:        snap.User.ID,
			FirstName: snap.User.FirstName,
			LastName:  snap.User.LastName,
			Email:     snap.User.Email,
		}
	}
	return out
}

type cartLineView struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type cartView struct {
	Lines     []cartLineView `json:"lines"`
	ItemCount int            `json:"itemCount"`
	Badge     string         `json:"badge"`
}

func mapCart(sessionKey string, carts *stores.CartStore) cartView {
	lines := carts.Lines(sessionKey)
	out := cartView{
		Lines:     make([]cartLineView, 0, len(lines)),
		ItemCount: carts.ItemCount(sessionKey),
		Badge:     carts.BadgeLabel(sessionKey),
	}
	for _, line := range lines {
		out.Lines = append(out.Lines, cartLineView{ProductID: line.ProductID, Quantity: line.Quantity})
	}
	return out
}

type bankAccountView struct {
	BankName string `json:"bankName"`
	Holder   string `json:"holder"`
	IBAN     string `json:"iban"`
}

type heroView struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	ImageURL string `json:"url,omitempty"`
	Slug     string `json:"slug,omitempty"`
}

type contactView struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
	Address  string `json:"address,omitempty"`
}

type websiteView struct {
	BankAccounts []bankAccountView `json:"bankAccounts"`
	HeroList     []heroView        `json:"heroList"`
	Contact      contactView       `json:"contact"`
}

func mapWebsiteInfo(info *domain.WebsiteInfo) websiteView {
	out := websiteView{
		BankAccounts: []bankAccountView{},
		HeroList:     []heroView{},
	}
	if info == nil {
		return out
	}
	for _, acc := range info.BankAccounts {
		out.BankAccounts = append(out.BankAccounts, bankAccountView{
			BankName: acc.BankName,
			Holder:   acc.Holder,
			IBAN:     acc.IBAN,
		})
	}
	for _, hero := range info.HeroList {
		out.HeroList = append(out.HeroList, heroView{
			Title:    hero.Title,
			Subtitle: hero.Subtitle,
			ImageURL: hero.ImageURL,
			Slug:     hero.Slug,
		})
	}
	out.Contact = contactView{
		Email:    info.Contact.Email,
		Phone:    info.Contact.Phone,
		WhatsApp: info.Contact.WhatsApp,
		Address:  info.Contact.Address,
	}
	return out
}
