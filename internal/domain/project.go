package domain

import (
	"regexp"
	"time"
)

// Project is the top-level container for sections and tags. Projects are
// only visible to their owner.
type Project struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"-"`
	Name       string    `json:"name"`
	Background string    `json:"background"`
	CreatedAt  time.Time `json:"-"`
}

// Section groups tasks inside a project.
type Section struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project"`
	Name      string    `json:"name"`
	Colour    string    `json:"colour"`
	Icon      string    `json:"icon"`
	Position  int       `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// Tag labels tasks within a project.
type Tag struct {
	ID        string `json:"id"`
	ProjectID string `json:"project"`
	Name      string `json:"name"`
	Colour    string `json:"colour"`
}

// DefaultTagColour is assigned to tags created without a colour.
const DefaultTagColour = "#808080"

var validColour = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidColour reports whether c is empty or a #rgb / #rrggbb colour.
func ValidColour(c string) bool {
	return c == "" || validColour.MatchString(c)
}
