package shamir

import (
	"strings"

	ssserr "github.com/arlovane/mersig/pkg/errors"
)

// ShareSet is an ordered collection of Points plus an optional original
// Secret, present only immediately after a split.
type ShareSet struct {
	secret    *Secret
	hasSecret bool
	points    []Point
}

// Points returns the ShareSet's points.
func (ss ShareSet) Points() []Point {
	return ss.points
}

// Secret returns the original secret and whether it is present. It is
// present only on a freshly split ShareSet, never on one parsed from text.
func (ss ShareSet) Secret() (Secret, bool) {
	if !ss.hasSecret || ss.secret == nil {
		return Secret{}, false
	}
	return *ss.secret, true
}

// String renders the ShareSet as newline-separated shares (§4.9).
func (ss ShareSet) String() string {
	lines := make([]string, len(ss.points))
	for i, p := range ss.points {
		lines[i] = p.String()
	}
	return strings.Join(lines, "\n")
}

// ParseShareSet parses a newline-separated list of shares. Any newline
// convention is accepted and blank lines are tolerated. A ShareSet parsed
// from strings has no original Secret attached.
func ParseShareSet(s string) (ShareSet, error) {
	lines := strings.Split(strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(s), "\n")

	points := make([]Point, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		p, err := ParsePoint(line)
		if err != nil {
			return ShareSet{}, err
		}
		points = append(points, p)
	}

	if len(points) == 0 {
		return ShareSet{}, ssserr.ErrNoShareValues
	}

	return ShareSet{points: points}, nil
}
