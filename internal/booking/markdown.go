package booking

import (
	"fmt"
	"strings"
)

// RenderOfferings formats the room list as Markdown, one block per offering,
// preserving upstream order.
func RenderOfferings(offerings []Offering) string {
	blocks := make([]string, len(offerings))
	for i, offering := range offerings {
		var b strings.Builder
		fmt.Fprintf(&b, "### %s\n", offering.Name)
		fmt.Fprintf(&b, "**Description:** %s\n", offering.Description)
		fmt.Fprintf(&b, "**Price:** $%d per night\n", offering.Price)
		blocks[i] = b.String()
	}
	return strings.Join(blocks, "\n")
}
