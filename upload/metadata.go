package upload

import (
	"fmt"
	"time"

	"fightreel/config"
	"fightreel/fight"
)

// Metadata carries the YouTube snippet fields for one upload.
type Metadata struct {
	Title       string
	Description string
	Tags        []string
	CategoryID  string
}

// GenerateMetadata builds the dated title, description and tag set for a
// matchup upload.
func GenerateMetadata(m fight.Matchup, day time.Time) Metadata {
	title := fmt.Sprintf("AI Anime Fight • %s", day.Format("Jan 02, 2006"))
	if len(title) > config.MaxTitleLength {
		title = title[:config.MaxTitleLength-3] + "..."
	}

	description := fmt.Sprintf(
		"%s\n\nAuto-generated anime-style motion graphic. #anime #shorts",
		m.VersusLabel(),
	)

	return Metadata{
		Title:       title,
		Description: description,
		Tags:        []string{"anime", "fight", "motion graphics", "shorts"},
		CategoryID:  config.YouTubeCategoryID,
	}
}
