package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// storyPrinter renders the TNT figure with thousands separators. Printers are
// immutable and safe for concurrent use.
var storyPrinter = message.NewPrinter(language.English)

// RenderStory formats a result set as a short narrative paragraph. Pure
// formatting: zero-valued fields render as zeros and the function never
// fails. The coordinate clause appears only when both coordinates are
// present and non-zero.
func RenderStory(r ImpactResults, lat, lon *float64) string {
	var location string
	if lat != nil && lon != nil && *lat != 0 && *lon != 0 {
		location = fmt.Sprintf(" at (%.3f, %.3f)", *lat, *lon)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Impact simulation%s: The asteroid would release approximately ", location)
	b.WriteString(storyPrinter.Sprintf("%.2f", r.TNTMegatons))
	fmt.Fprintf(&b, " megatons of TNT equivalent, producing an estimated crater about %.2f km in diameter. ",
		r.CraterDiameterM/1000.0)
	fmt.Fprintf(&b, "The impact energy corresponds roughly to an earthquake of magnitude %.2f. ",
		r.SeismicMwEquivalent)
	fmt.Fprintf(&b, "If the impact occurs in water, our heuristic predicts an initial tsunami wave of about %.2f meters "+
		"and potential coastal effects out to roughly %.0f km from the source. ",
		r.TsunamiInitialHeightM, r.TsunamiRadiusKm)
	b.WriteString("These results are approximate and intended for education/demonstration only.")
	return b.String()
}
