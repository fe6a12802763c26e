package domain

// Contract is a legal page (distance selling agreement, privacy policy and
// the like) addressed by slug. Body is upstream HTML; Excerpt is derived
// plain text for listings and meta descriptions.
type Contract struct {
	Slug    string
	Name    string
	HTML    string
	Excerpt string
}

// BankAccount is one bank-transfer destination shown on the payment
// instructions page.
type BankAccount struct {
	BankName string
	Holder   string
	IBAN     string
}

// HeroEntry is one homepage hero carousel slide.
type HeroEntry struct {
	Title    string
	Subtitle string
	ImageURL string
	Slug     string
}

// ContactInfo groups the support channels shown in the footer and on the
// contact page.
type ContactInfo struct {
	Email    string
	Phone    string
	WhatsApp string
	Address  string
}

// WebsiteInfo is the site-wide content snapshot: refreshed as a whole, read
// by many views.
type WebsiteInfo struct {
	BankAccounts []BankAccount
	HeroList     []HeroEntry
	Contact      ContactInfo
}
