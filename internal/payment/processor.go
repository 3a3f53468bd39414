// Package payment implements a mock card processor. It validates card
// details, simulates issuer declines for designated test numbers and
// returns a receipt reference for successful charges. Swapping in a real
// gateway means implementing Processor against its SDK.
package payment

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Card is the payment instrument submitted by the player.
type Card struct {
	Number     string `json:"number"`
	HolderName string `json:"holder_name"`
	ExpMonth   int    `json:"exp_month"`
	ExpYear    int    `json:"exp_year"`
	CVV        string `json:"cvv"`
}

var (
	// ErrInvalidCard means the card details failed validation before any
	// charge was attempted.
	ErrInvalidCard = errors.New("invalid card details")
	// ErrDeclined means the issuer refused the charge.
	ErrDeclined = errors.New("payment declined")
)

// Processor charges cards. Amounts are in the court's currency with two
// decimal places.
type Processor interface {
	Charge(card Card, amount float64) (receipt string, err error)
}

// MockProcessor approves every valid card except the designated decline
// test numbers.
type MockProcessor struct {
	now func() time.Time
}

// NewMockProcessor returns a processor using wall-clock time for expiry
// checks.
func NewMockProcessor() *MockProcessor {
	return &MockProcessor{now: time.Now}
}

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// Charge validates the card and returns a receipt reference. Card numbers
// ending in 0002 are declined, mirroring the test numbers real gateways
// reserve for exercising failure paths.
func (p *MockProcessor) Charge(card Card, amount float64) (string, error) {
	if amount <= 0 {
		return "", ErrInvalidCard
	}
	num := strings.ReplaceAll(card.Number, " ", "")
	if len(num) < 13 || len(num) > 19 || !digitsOnly.MatchString(num) {
		return "", ErrInvalidCard
	}
	if strings.TrimSpace(card.HolderName) == "" {
		return "", ErrInvalidCard
	}
	if len(card.CVV) < 3 || len(card.CVV) > 4 || !digitsOnly.MatchString(card.CVV) {
		return "", ErrInvalidCard
	}
	if card.ExpMonth < 1 || card.ExpMonth > 12 {
		return "", ErrInvalidCard
	}
	now := p.now().UTC()
	if card.ExpYear < now.Year() || (card.ExpYear == now.Year() && time.Month(card.ExpMonth) < now.Month()) {
		return "", ErrInvalidCard
	}
	if strings.HasSuffix(num, "0002") {
		return "", ErrDeclined
	}
	return "pay_" + uuid.NewString(), nil
}
