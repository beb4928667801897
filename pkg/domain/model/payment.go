package model

type PaymentMethod int

const (
	Cash PaymentMethod = iota
	Card
)

func (m PaymentMethod) String() string {
	switch m {
	case Cash:
		return "CASH"
	case Card:
		return "CARD"
	default:
		return "UNKNOWN"
	}
}

// ParsePaymentChoice maps menu choice 1 to cash. Every other value, including
// out-of-range ones, selects card.
func ParsePaymentChoice(choice int) PaymentMethod {
	if choice == 1 {
		return Cash
	}
	return Card
}
