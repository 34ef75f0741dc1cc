package catalog

import (
	"fmt"

	"github.com/mrlokans/signbook/internal/entities"
)

// Categories that only carry an explanation video, never a sign video.
var explanationOnlyCategories = map[string]bool{
	"Redewendungen": true,
	"Alltagssätze":  true,
}

// Categories where the sign itself is self-explanatory.
var signOnlyCategories = map[string]bool{
	"Lebensmittel":         true,
	CategoryFingerspelling: true,
	CategoryNumbers:        true,
}

// VideoVariants says which demonstration videos an entry's detail view offers.
type VideoVariants struct {
	Sign        bool `json:"sign"`
	Explanation bool `json:"explanation"`
}

// Both reports whether the viewer should offer a switch between the two videos.
func (v VideoVariants) Both() bool {
	return v.Sign && v.Explanation
}

func VideoVariantsFor(e entities.VocabularyEntry) VideoVariants {
	return VideoVariants{
		Sign:        !explanationOnlyCategories[e.Category],
		Explanation: !signOnlyCategories[e.Category],
	}
}

// ShareText is the message attached when a user shares an entry.
func ShareText(e entities.VocabularyEntry) string {
	return fmt.Sprintf("Lerne die Gebärde für '%s' in der Gebärdenbuch App!", e.Term)
}
