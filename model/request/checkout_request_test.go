package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCheckoutQuery(t *testing.T) {
	q := ParseCheckoutQuery("?product=Pro&plan=Monthly&price=9.99&currency=USD")
	require.NotNil(t, q.Product)
	assert.Equal(t, "Pro", *q.Product)
	assert.Equal(t, "Monthly", *q.Plan)
	assert.Equal(t, "9.99", *q.Price)
	assert.Equal(t, "USD", *q.Currency)
}

func TestParseCheckoutQuery_Absent(t *testing.T) {
	q := ParseCheckoutQuery("price=")
	assert.Nil(t, q.Product)
	require.NotNil(t, q.Price)
	assert.Equal(t, "", *q.Price)

	q = ParseCheckoutQuery("")
	assert.Nil(t, q.Price)
}
