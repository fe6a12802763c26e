package domain

// Order is a read-only row from the customer's order history. Price and date
// arrive pre-formatted from the backend.
type Order struct {
	ID         string
	OrderID    string
	StatusText string
	Price      string
	Date       string
}

// Order status texts as the backend emits them.
const (
	OrderStatusAwaitingPayment = "Ödeme Bekleniyor"
	OrderStatusCompleted       = "Tamamlandı"
	OrderStatusCancelled       = "İptal Edildi"
)

// StatusInfo carries the display colors associated with an order status.
type StatusInfo struct {
	Text        string
	Color       string
	Background  string
	BorderColor string
}

// OrderStatusInfo maps a status text to its display colors. Unknown statuses
// render gray rather than failing.
func OrderStatusInfo(statusText string) StatusInfo {
	switch statusText {
	case OrderStatusAwaitingPayment:
		return StatusInfo{
			Text:        statusText,
			Color:       "#facc15",
			Background:  "rgba(234, 179, 8, 0.15)",
			BorderColor: "rgba(234, 179, 8, 0.3)",
		}
	case OrderStatusCompleted:
		return StatusInfo{
			Text:        statusText,
			Color:       "#4ade80",
			Background:  "rgba(34, 197, 94, 0.15)",
			BorderColor: "rgba(34, 197, 94, 0.3)",
		}
	case OrderStatusCancelled:
		return StatusInfo{
			Text:        statusText,
			Color:       "#f87171",
			Background:  "rgba(239, 68, 68, 0.15)",
			BorderColor: "rgba(239, 68, 68, 0.3)",
		}
	default:
		return StatusInfo{
			Text:        statusText,
			Color:       "#9ca3af",
			Background:  "rgba(107, 114, 128, 0.15)",
			BorderColor: "rgba(107, 114, 128, 0.3)",
		}
	}
}
