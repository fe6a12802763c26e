package storefront

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/maxiipins/storefront-service/internal/app/storefront/domain"
)

// maxBodyBytes bounds request bodies; every payload here is small JSON.
const maxBodyBytes = 64 << 10

func decodeBody(r *http.Request, out interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

type registerRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	NationalID      string `json:"nationalId"`
	BirthDate       string `json:"birthDate"`
}

func (r registerRequest) validate() error {
	if r.FirstName == "" {
		return fmt.Errorf("firstName is required")
	}
	if r.LastName == "" {
		return fmt.Errorf("lastName is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	// Password, national id and birth date rules are domain validation and
	// map through the error translator.
	return nil
}

func (r registerRequest) toForm() domain.RegistrationForm {
	return domain.RegistrationForm{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		NationalID:      r.NationalID,
		BirthDate:       r.BirthDate,
	}
}

type cartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (r cartItemRequest) validate() error {
	if r.ProductID == "" {
		return fmt.Errorf("productId is required")
	}
	return nil
}

type cartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type messageRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Method    string `json:"method"`
}

func (r messageRequest) toMessage() domain.Message {
	return domain.Message{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Title:     r.Title,
		Text:      r.Text,
		Method:    r.Method,
	}
}
