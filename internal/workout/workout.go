// Package workout lists the kinds of workout the app knows about
package workout

import (
	"strings"

	"github.com/exerun/exerun/internal/apperr"
)

var errUnknownKind = &apperr.Error{
	Message: "unknown workout %q",
}

// Kind identifies a workout type. Its value is stored with each workout in
// the history.
type Kind string

const (
	Quick   Kind = "quick"
	Running Kind = "running"
	Gym     Kind = "gym"
	Hike    Kind = "hike"
	Bicycle Kind = "bicycle"
)

// Option is an entry of the workout menu.
type Option struct {
	Kind        Kind
	Title       string
	Description string
	// Command is the CLI command that runs the workout, empty when the
	// workout is only tracked by the mobile app.
	Command string
}

var catalog = []Option{
	{
		Kind:        Quick,
		Title:       "QUICK WORKOUT",
		Description: "Timer for work-rest sets",
		Command:     "interval",
	},
	{
		Kind:        Running,
		Title:       "RUNNING",
		Description: "Build a route depending on distance",
		Command:     "run",
	},
	{
		Kind:        Gym,
		Title:       "GYM WORKOUT",
		Description: "Make your personalized plan for gym session",
	},
	{
		Kind:        Hike,
		Title:       "HIKE/WALK",
		Description: "Track your hike or walk efficiently",
	},
	{
		Kind:        Bicycle,
		Title:       "BICYCLE",
		Description: "Track your cycling routes and stats",
	},
}

// Catalog returns the workout menu in display order.
func Catalog() []Option {
	out := make([]Option, len(catalog))
	copy(out, catalog)

	return out
}

// Runnable reports whether the CLI can run the workout.
func (o Option) Runnable() bool {
	return o.Command != ""
}

// Lookup finds a workout by kind, ignoring case.
func Lookup(name string) (Option, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))

	for _, o := range catalog {
		if o.Kind == k {
			return o, nil
		}
	}

	return Option{}, errUnknownKind.Fmt(name)
}
