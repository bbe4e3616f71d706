package company

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressLines(t *testing.T) {
	addr := Address{
		Street:     "Invalidenstr. 1",
		City:       "Berlin",
		State:      "BE",
		PostalCode: "10115",
		Country:    "Germany",
	}
	assert.Equal(t, []string{"Invalidenstr. 1", "Berlin, BE 10115", "Germany"}, addr.Lines())
}

func TestAddressLinesSkipsEmptyParts(t *testing.T) {
	assert.Empty(t, Address{}.Lines())

	assert.Equal(t, []string{"Berlin 10115"}, Address{City: "Berlin", PostalCode: "10115"}.Lines())
	assert.Equal(t, []string{"BE"}, Address{State: "BE"}.Lines())
	assert.Equal(t, []string{"1 Main St", "Springfield"}, Address{Street: "1 Main St", City: "Springfield"}.Lines())
}
