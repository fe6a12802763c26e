package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusInfo(t *testing.T) {
	cases := []struct {
		status    string
		wantColor string
	}{
		{OrderStatusAwaitingPayment, "#facc15"},
		{OrderStatusCompleted, "#4ade80"},
		{OrderStatusCancelled, "#f87171"},
		{"Hazırlanıyor", "#9ca3af"},
	}
	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			info := OrderStatusInfo(tc.status)
			assert.Equal(t, tc.status, info.Text)
			assert.Equal(t, tc.wantColor, info.Color)
			assert.NotEmpty(t, info.Background)
			assert.NotEmpty(t, info.BorderColor)
		})
	}
}

func TestMessage_Validate(t *testing.T) {
	valid := Message{
		FirstName: "Mehmet",
		LastName:  "Demir",
		Email:     "mehmet@example.com",
		Title:     "Sipariş hakkında",
		Text:      "Siparişim ne zaman teslim edilir?",
		Method:    MessageMethodContact,
	}
	assert.NoError(t, valid.Validate())

	missingEmail := valid
	missingEmail.Email = " "
	err := missingEmail.Validate()
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "email")

	missingMethod := valid
	missingMethod.Method = ""
	assert.ErrorIs(t, missingMethod.Validate(), ErrMissingField)
}
