package payment

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedProcessor(t *testing.T) *MockProcessor {
	t.Helper()
	p := NewMockProcessor()
	p.now = func() time.Time {
		return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
	return p
}

func validCard() Card {
	return Card{
		Number:     "4242 4242 4242 4242",
		HolderName: "Ana Souza",
		ExpMonth:   12,
		ExpYear:    2027,
		CVV:        "123",
	}
}

func TestChargeSuccess(t *testing.T) {
	p := fixedProcessor(t)
	receipt, err := p.Charge(validCard(), 200.00)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(receipt, "pay_"))
	assert.Greater(t, len(receipt), len("pay_"))
}

func TestChargeDecline(t *testing.T) {
	p := fixedProcessor(t)
	card := validCard()
	card.Number = "4000000000000002"
	_, err := p.Charge(card, 150.00)
	assert.ErrorIs(t, err, ErrDeclined)
}

func TestChargeValidation(t *testing.T) {
	p := fixedProcessor(t)
	cases := []struct {
		name   string
		mut    func(*Card)
		amount float64
	}{
		{"short number", func(c *Card) { c.Number = "4242" }, 100},
		{"letters in number", func(c *Card) { c.Number = "4242abcd42424242" }, 100},
		{"empty holder", func(c *Card) { c.HolderName = "  " }, 100},
		{"bad cvv", func(c *Card) { c.CVV = "12" }, 100},
		{"bad month", func(c *Card) { c.ExpMonth = 13 }, 100},
		{"expired year", func(c *Card) { c.ExpYear = 2024 }, 100},
		{"expired month this year", func(c *Card) { c.ExpMonth = 5; c.ExpYear = 2025 }, 100},
		{"zero amount", func(c *Card) {}, 0},
		{"negative amount", func(c *Card) {}, -10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			card := validCard()
			tc.mut(&card)
			_, err := p.Charge(card, tc.amount)
			assert.ErrorIs(t, err, ErrInvalidCard)
		})
	}
}

func TestChargeExpiresEndOfMonth(t *testing.T) {
	// A card expiring in the current month is still valid.
	p := fixedProcessor(t)
	card := validCard()
	card.ExpMonth = 6
	card.ExpYear = 2025
	_, err := p.Charge(card, 50)
	assert.NoError(t, err)
}
