package commerce

import (
	"context"
	"net/url"

	"github.com/maxiipins/storefront-service/internal/app/storefront/domain"
)

type messageRequestJSON struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Method    string `json:"method"`
}

type messageResponseJSON struct {
	ID string `json:"id"`
}

// CreateMessage records a contact, returns or bulk-purchase submission and
// returns its id.
func (c *Client) CreateMessage(ctx context.Context, msg domain.Message) (string, error) {
	req := messageRequestJSON{
		FirstName: msg.FirstName,
		LastName:  msg.LastName,
		Email:     msg.Email,
		Title:     msg.Title,
		Text:      msg.Text,
		Method:    msg.Method,
	}
	var resp messageResponseJSON
	if err := c.postJSON(ctx, "/messages", "", req, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

type contractJSON struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	Text string `json:"text"`
}

// GetContract fetches a legal page by slug. Upstream 404 maps to
// domain.ErrContractNotFound.
func (c *Client) GetContract(ctx context.Context, slug string) (*domain.Contract, error) {
	var row contractJSON
	if err := c.getJSON(ctx, "/contracts/"+url.PathEscape(slug), "", &row); err != nil {
		return nil, notFoundAs(err, domain.ErrContractNotFound)
	}
	return &domain.Contract{Slug: row.Slug, Name: row.Name, HTML: row.Text}, nil
}

type websiteInfoJSON struct {
	BankAccounts []struct {
		BankName string `json:"bankName"`
		Holder   string `json:"holder"`
		IBAN     string `json:"iban"`
	} `json:"bankAccounts"`
	HeroList []struct {
		Title    string `json:"title"`
		Subtitle string `json:"subtitle"`
		URL      string `json:"url"`
		Slug     string `json:"slug"`
	} `json:"heroList"`
	Contact struct {
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		WhatsApp string `json:"whatsapp"`
		Address  string `json:"address"`
	} `json:"contact"`
}

// WebsiteInfo fetches the site-wide content snapshot.
func (c *Client) WebsiteInfo(ctx context.Context) (*domain.WebsiteInfo, error) {
	var row websiteInfoJSON
	if err := c.getJSON(ctx, "/website", "", &row); err != nil {
		return nil, err
	}
	info := &domain.WebsiteInfo{
		BankAccounts: make([]domain.BankAccount, 0, len(row.BankAccounts)),
		HeroList:     make([]domain.HeroEntry, 0, len(row.HeroList)),
		Contact: domain.ContactInfo{
			Email:    row.Contact.Email,
			Phone:    row.Contact.Phone,
			WhatsApp: row.Contact.WhatsApp,
			Address:  row.Contact.Address,
		},
	}
	for _, acc := range row.BankAccounts {
		info.BankAccounts = append(info.BankAccounts, domain.BankAccount{
			BankName: acc.BankName,
			Holder:   acc.Holder,
			IBAN:     acc.IBAN,
		})
	}
	for _, hero := range row.HeroList {
		info.HeroList = append(info.HeroList, domain.HeroEntry{
			Title:    hero.Title,
			Subtitle: hero.Subtitle,
			ImageURL: hero.URL,
			Slug:     hero.Slug,
		})
	}
	return info, nil
}
