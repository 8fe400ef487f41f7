package run

import (
	"io"
	"sort"
	"time"

	"github.com/twpayne/go-gpx"

	"github.com/exerun/exerun/internal/apperr"
)

var (
	errReadTrack = &apperr.Error{
		Message: "unable to read GPX track",
	}

	errEmptyTrack = &apperr.Error{
		Message: "the GPX file has no timed track points",
	}
)

// Track is a recorded route that can be replayed into a session.
type Track struct {
	Name   string
	Points []Sample
}

// LoadGPX reads every timed track point of a GPX document in time order.
func LoadGPX(r io.Reader) (*Track, error) {
	doc, err := gpx.Read(r)
	if err != nil {
		return nil, errReadTrack.Wrap(err)
	}

	t := &Track{}

	if doc.Metadata != nil {
		t.Name = doc.Metadata.Name
	}

	for _, trk := range doc.Trk {
		if t.Name == "" {
			t.Name = trk.Name
		}

		for _, seg := range trk.TrkSeg {
			for _, pt := range seg.TrkPt {
				if pt.Time.IsZero() {
					continue
				}

				t.Points = append(t.Points, Sample{
					Time:      pt.Time,
					Lat:       pt.Lat,
					Lon:       pt.Lon,
					Elevation: pt.Ele,
				})
			}
		}
	}

	if len(t.Points) == 0 {
		return nil, errEmptyTrack
	}

	sort.SliceStable(t.Points, func(i, j int) bool {
		return t.Points[i].Time.Before(t.Points[j].Time)
	})

	return t, nil
}

// Duration is the time between the first and last point.
func (t *Track) Duration() time.Duration {
	if len(t.Points) == 0 {
		return 0
	}

	return t.Points[len(t.Points)-1].Time.Sub(t.Points[0].Time)
}

// Until returns the points recorded within offset of the first point.
func (t *Track) Until(offset time.Duration) []Sample {
	if len(t.Points) == 0 {
		return nil
	}

	limit := t.Points[0].Time.Add(offset)

	i := sort.Search(len(t.Points), func(i int) bool {
		return t.Points[i].Time.After(limit)
	})

	return t.Points[:i]
}

// Cursor replays a track in step with a session clock.
type Cursor struct {
	track *Track
	next  int
}

// NewCursor returns a cursor at the start of t.
func NewCursor(t *Track) *Cursor {
	return &Cursor{track: t}
}

// Advance returns the points not yet replayed that were recorded within
// offset of the first point, with their time moved to base plus their own
// offset.
func (c *Cursor) Advance(offset time.Duration, base time.Time) []Sample {
	pts := c.track.Until(offset)
	if c.next >= len(pts) {
		return nil
	}

	first := c.track.Points[0].Time

	out := make([]Sample, 0, len(pts)-c.next)

	for _, p := range pts[c.next:] {
		p.Time = base.Add(p.Time.Sub(first))
		out = append(out, p)
	}

	c.next = len(pts)

	return out
}

// Done reports whether every point has been replayed.
func (c *Cursor) Done() bool {
	return c.next >= len(c.track.Points)
}
