package domain

import "errors"

// Not-found conditions. These render as a dedicated not-found view with a
// navigation escape hatch, never as a failure page.
var (
	// ErrProductNotFound indicates no product exists for the given slug.
	ErrProductNotFound = errors.New("product not found")

	// ErrCategoryNotFound indicates no category exists for the given slug.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrContractNotFound indicates no contract exists for the given slug.
	ErrContractNotFound = errors.New("contract not found")
)

// Cart errors
var (
	// ErrInvalidQuantity indicates an add with a quantity below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrCartEmpty indicates checkout was attempted on an empty cart.
	ErrCartEmpty = errors.New("cart is empty")
)

// Session errors
var (
	// ErrNotAuthenticated indicates an operation that requires a signed-in
	// session was attempted anonymously.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrLoginInProgress indicates a login attempt while another is pending.
	ErrLoginInProgress = errors.New("login already in progress")
)

// Registration validation errors. Messages are user-displayable.
var (
	// ErrPasswordMismatch indicates password and confirmation differ.
	ErrPasswordMismatch = errors.New("şifreler eşleşmiyor")

	// ErrPasswordTooShort indicates a password under eight characters.
	ErrPasswordTooShort = errors.New("şifre en az 8 karakter olmalıdır")

	// ErrInvalidNationalID indicates the national ID is not eleven digits.
	ErrInvalidNationalID = errors.New("TC kimlik numarası 11 haneli olmalıdır")

	// ErrBirthDateRequired indicates a missing birth date.
	ErrBirthDateRequired = errors.New("doğum tarihi gereklidir")
)

// Message validation errors
var (
	// ErrMissingField indicates a required message field is empty.
	// Wrapped with the field name, e.g. fmt.Errorf("%w: email", ErrMissingField).
	ErrMissingField = errors.New("required field is missing")
)
