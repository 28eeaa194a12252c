package flood

import (
	"fmt"
	"io"
)

// WriteLeakFile writes trail in the .lin format map editors read to draw
// the leak line: one "x y z" line per point, occupant to outside.
func WriteLeakFile(w io.Writer, trail *LeakTrail) error {
	for _, p := range trail.Points {
		if _, err := fmt.Fprintf(w, "%g %g %g\n", p.X, p.Y, p.Z); err != nil {
			return fmt.Errorf("flood: writing leak file: %w", err)
		}
	}
	return nil
}
