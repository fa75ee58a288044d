package types

import (
	"time"

	"github.com/Masterminds/semver/v3"
)

// Release is a published GitHub release whose timestamp can be rendered
type Release struct {
	Version     *semver.Version // nil when the tag is not a semantic version
	Tag         string
	Name        string
	PublishedAt time.Time
	URL         string
}
