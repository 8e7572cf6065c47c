package boundary

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tessellate/meshfront/mesherr"
)

// LoadCSV reads a boundary loop in the external CSV format from r: one
// vertex per line, fields `x, y, marker, size_hint, range_hint`.
// Fields 1–2 are required floats; field 3 is required and must parse
// as an integer > 0; fields 4–5 are optional and default to -1.0 (no
// local hint) when elided. Any parsing failure — non-numeric field, a
// missing required field, or marker <= 0 — returns an
// *mesherr.InvalidBoundary carrying the 1-based source line. On
// success it calls b.SetShape with the parsed rows.
func (b *Boundary) LoadCSV(r io.Reader) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var coords []mgl64.Vec2
	var markers []int
	var props []VertexProps

	line := 0
	for {
		line++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if pe, ok := err.(*csv.ParseError); ok {
				line = pe.StartLine
			}
			return &mesherr.InvalidBoundary{Line: line, Reason: "malformed CSV row: " + err.Error()}
		}
		if len(record) == 0 {
			continue
		}
		// The reader skips blank lines, so take the row's true source
		// line from the reader rather than from the row count.
		line, _ = reader.FieldPos(0)

		if len(record) < 3 {
			return &mesherr.InvalidBoundary{Line: line, Reason: "expected at least x, y, marker"}
		}

		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return &mesherr.InvalidBoundary{Line: line, Reason: "field 1 (x) is not numeric: " + record[0]}
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return &mesherr.InvalidBoundary{Line: line, Reason: "field 2 (y) is not numeric: " + record[1]}
		}
		marker, err := strconv.Atoi(record[2])
		if err != nil {
			return &mesherr.InvalidBoundary{Line: line, Reason: "field 3 (marker) is not an integer: " + record[2]}
		}
		if marker <= 0 {
			return &mesherr.InvalidBoundary{Line: line, Reason: "marker must be > 0"}
		}

		size, rng := -1.0, -1.0
		if len(record) > 3 && record[3] != "" {
			size, err = strconv.ParseFloat(record[3], 64)
			if err != nil {
				return &mesherr.InvalidBoundary{Line: line, Reason: "field 4 (size_hint) is not numeric: " + record[3]}
			}
		}
		if len(record) > 4 && record[4] != "" {
			rng, err = strconv.ParseFloat(record[4], 64)
			if err != nil {
				return &mesherr.InvalidBoundary{Line: line, Reason: "field 5 (range_hint) is not numeric: " + record[4]}
			}
		}

		coords = append(coords, mgl64.Vec2{x, y})
		markers = append(markers, marker)
		props = append(props, VertexProps{Size: size, Range: rng})
	}

	if len(coords) < 3 {
		return mesherr.NewInvalidBoundary("CSV boundary requires at least 3 vertex rows")
	}

	return b.SetShape(coords, markers, props)
}
