package domain

import (
	"fmt"
	"strings"
)

// Message channels used by the storefront forms.
const (
	MessageMethodContact      = "İletişim"
	MessageMethodReturns      = "Geri İade"
	MessageMethodBulkPurchase = "Toplu Satın Alım"
)

// Message is a contact, returns or bulk-purchase submission.
type Message struct {
	FirstName string
	LastName  string
	Email     string
	Title     string
	Text      string
	Method    string
}

// Validate checks the required fields before submission. The wrapped field
// name identifies the offending input for inline display.
func (m Message) Validate() error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"first_name", m.FirstName},
		{"last_name", m.LastName},
		{"email", m.Email},
		{"title", m.Title},
		{"text", m.Text},
		{"method", m.Method},
	} {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return nil
}
