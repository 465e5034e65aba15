package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderOfferings(t *testing.T) {
	offerings := []Offering{
		{Name: "Deluxe", Description: "Sea view", Price: 200},
		{Name: "Standard", Description: "Garden view", Price: 100},
	}

	got := RenderOfferings(offerings)

	want := "### Deluxe\n" +
		"**Description:** Sea view\n" +
		"**Price:** $200 per night\n" +
		"\n" +
		"### Standard\n" +
		"**Description:** Garden view\n" +
		"**Price:** $100 per night\n"

	assert.Equal(t, want, got)
}

func TestRenderOfferingsEmpty(t *testing.T) {
	assert.Equal(t, "", RenderOfferings(nil))
}
