// Package tsplib — TSPLIB95 instance reading.
//
// An instance file is a header of "KEYWORD : value" lines followed by a
// data section introduced by a bare section keyword and terminated by EOF.
// The loader parses the full keyword grammar, then accepts exactly what the
// in-core solver supports: symmetric TSP with a 2D coordinate section and
// one of the EUC_2D / MAX_2D / MAN_2D / CEIL_2D / ATT / GEO metrics.
// Everything else is recognised and rejected with a precise error.
//
// Coordinate values may be integers or floating point; the numeric mode is
// detected from the first data line and applied to the whole section, as
// TSPLIB files never mix the two.
package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/heldkarp/core"
	"github.com/katalvlaran/heldkarp/symmat"
)

// Instance is a fully loaded TSPLIB95 problem: its metadata and the
// materialised triangular distance matrix.
type Instance struct {
	Meta core.Metadata
	Dist *symmat.Sym[core.Distance]
}

// ParseFile opens and parses a TSPLIB95 instance file.
//
// Errors: ErrIO when the file cannot be read; otherwise the parse errors
// of Parse.
func ParseFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a TSPLIB95 instance from r.
//
// The header is consumed up to the first data-section keyword; the section
// is then parsed and projected into distances via the instance's metric.
//
// Errors: the metadata taxonomy sentinels, ErrUnsupported for well-formed
// but out-of-scope instances, ErrDataSection for malformed coordinates.
func Parse(r io.Reader) (*Instance, error) {
	var (
		sc   = bufio.NewScanner(r)
		meta core.Metadata
	)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	section, err := parseHeader(sc, &meta)
	if err != nil {
		return nil, err
	}
	if section == "" {
		// Header ended (EOF marker or stream end) without any data section.
		return nil, wrapToken(ErrDataSection, "missing data section")
	}

	if err = checkSupported(&meta, section); err != nil {
		return nil, err
	}

	points, err := parseNodeCoordSection(sc, meta.Dimension)
	if err != nil {
		return nil, err
	}

	dist, err := buildDistances(&meta, points)
	if err != nil {
		return nil, err
	}

	return &Instance{Meta: meta, Dist: dist}, nil
}

// parseHeader consumes specification lines until a data-section keyword or
// the EOF marker. It returns the section keyword ("" if none was seen).
func parseHeader(sc *bufio.Scanner, meta *core.Metadata) (string, error) {
	// NO_COORDS is the TSPLIB default when the keyword is absent.
	meta.NodeCoordType = core.NoCoords

	var (
		line string
		err  error
	)
	for sc.Scan() {
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "EOF" {
			return "", nil
		}

		// "KEYWORD : value" versus a bare data-section keyword.
		if k, v, ok := strings.Cut(line, ":"); ok {
			if err = applySpecification(meta, strings.TrimSpace(k), strings.TrimSpace(v)); err != nil {
				return "", err
			}

			continue
		}

		if isDataKeyword(line) {
			return line, nil
		}

		return "", wrapToken(ErrInvalidKeyword, line)
	}
	if err = sc.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrIO, err)
	}

	return "", nil
}

// isDataKeyword recognises the TSPLIB95 data-section keywords.
func isDataKeyword(s string) bool {
	switch s {
	case "NODE_COORD_SECTION", "DEPOT_SECTION", "DEMAND_SECTION",
		"EDGE_DATA_SECTION", "FIXED_EDGES_SECTION", "DISPLAY_DATA_SECTION",
		"TOUR_SECTION", "EDGE_WEIGHT_SECTION":
		return true
	}

	return false
}

// applySpecification dispatches one "KEYWORD : value" header line.
func applySpecification(meta *core.Metadata, keyword, value string) error {
	var err error
	switch keyword {
	case "NAME":
		meta.Name = value
	case "TYPE":
		meta.Type, err = parseProblemType(value)
	case "COMMENT":
		meta.Comment = value
	case "DIMENSION":
		meta.Dimension, err = parsePositiveInt(value)
	case "CAPACITY":
		meta.Capacity, err = parsePositiveInt(value)
	case "EDGE_WEIGHT_TYPE":
		meta.EdgeWeightType, err = parseEdgeWeightType(value)
	case "EDGE_WEIGHT_FORMAT":
		meta.EdgeWeightFmt, err = parseEdgeWeightFormat(value)
	case "EDGE_DATA_FORMAT":
		meta.EdgeDataFmt, err = parseEdgeDataFormat(value)
	case "NODE_COORD_TYPE":
		meta.NodeCoordType, err = parseNodeCoordType(value)
	case "DISPLAY_DATA_TYPE":
		meta.DisplayDataType, err = parseDisplayDataType(value)
	default:
		return wrapToken(ErrInvalidKeyword, keyword)
	}

	return err
}

func parsePositiveInt(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, wrapToken(ErrInvalidDimension, value)
	}

	return n, nil
}

func parseProblemType(value string) (core.ProblemType, error) {
	switch value {
	case "TSP":
		return core.TypeTSP, nil
	case "ATSP":
		return core.TypeATSP, nil
	case "SOP":
		return core.TypeSOP, nil
	case "HCP":
		return core.TypeHCP, nil
	case "TOUR":
		return core.TypeTOUR, nil
	}

	return 0, wrapToken(ErrInvalidProblemType, value)
}

func parseEdgeWeightType(value string) (core.EdgeWeightType, error) {
	switch value {
	case "EXPLICIT":
		return core.WeightExplicit, nil
	case "EUC_2D":
		return core.WeightEuc2D, nil
	case "EUC_3D":
		return core.WeightEuc3D, nil
	case "MAX_2D":
		return core.WeightMax2D, nil
	case "MAX_3D":
		return core.WeightMax3D, nil
	case "MAN_2D":
		return core.WeightMan2D, nil
	case "MAN_3D":
		return core.WeightMan3D, nil
	case "CEIL_2D":
		return core.WeightCeil2D, nil
	case "GEO":
		return core.WeightGeo, nil
	case "ATT":
		return core.WeightAtt, nil
	case "XRAY1":
		return core.WeightXray1, nil
	case "XRAY2":
		return core.WeightXray2, nil
	case "SPECIAL":
		return core.WeightSpecial, nil
	}

	return 0, wrapToken(ErrInvalidEdgeWeightType, value)
}

func parseEdgeWeightFormat(value string) (core.EdgeWeightFormat, error) {
	switch value {
	case "FUNCTION":
		return core.FormatFunction, nil
	case "FULL_MATRIX":
		return core.FormatFullMatrix, nil
	case "UPPER_ROW":
		return core.FormatUpperRow, nil
	case "LOWER_ROW":
		return core.FormatLowerRow, nil
	case "UPPER_DIAG_ROW":
		return core.FormatUpperDiagRow, nil
	case "LOWER_DIAG_ROW":
		return core.FormatLowerDiagRow, nil
	case "UPPER_COL":
		return core.FormatUpperCol, nil
	case "LOWER_COL":
		return core.FormatLowerCol, nil
	case "UPPER_DIAG_COL":
		return core.FormatUpperDiagCol, nil
	case "LOWER_DIAG_COL":
		return core.FormatLowerDiagCol, nil
	}

	return 0, wrapToken(ErrInvalidEdgeWeightFormat, value)
}

func parseEdgeDataFormat(value string) (core.EdgeDataFormat, error) {
	switch value {
	case "EDGE_LIST":
		return core.EdgeDataEdgeList, nil
	case "ADJ_LIST":
		return core.EdgeDataAdjList, nil
	}

	return 0, wrapToken(ErrInvalidEdgeDataFormat, value)
}

func parseNodeCoordType(value string) (core.NodeCoordType, error) {
	switch value {
	case "TWOD_COORDS":
		return core.TwoDCoords, nil
	case "THREED_COORDS":
		return core.ThreeDCoords, nil
	case "NO_COORDS":
		return core.NoCoords, nil
	}

	return 0, wrapToken(ErrInvalidNodeCoordType, value)
}

func parseDisplayDataType(value string) (core.DisplayDataType, error) {
	switch value {
	case "COORD_DISPLAY":
		return core.DisplayCoord, nil
	case "TWOD_DISPLAY":
		return core.DisplayTwoD, nil
	case "NO_DISPLAY":
		return core.DisplayNone, nil
	}

	return 0, wrapToken(ErrInvalidDisplayDataType, value)
}

// checkSupported verifies the parsed header against the in-core scope.
func checkSupported(meta *core.Metadata, section string) error {
	if meta.Type != core.TypeTSP {
		return wrapToken(ErrUnsupported, "problem type "+meta.Type.String())
	}
	if meta.Dimension <= 0 {
		return wrapToken(ErrInvalidDimension, "DIMENSION missing")
	}
	if section != "NODE_COORD_SECTION" {
		return wrapToken(ErrUnsupported, "data section "+section)
	}

	switch meta.EdgeWeightType {
	case core.WeightEuc2D, core.WeightMax2D, core.WeightMan2D,
		core.WeightCeil2D, core.WeightAtt, core.WeightGeo:
		return nil
	}

	return wrapToken(ErrUnsupported, "edge weight type "+meta.EdgeWeightType.String())
}

// parseNodeCoordSection reads dim lines of "index x y". The numeric mode
// (integer versus floating point) is sampled from the first line's x and y
// tokens (floating point if either carries '.', 'e' or 'E') and applied to
// the whole section.
func parseNodeCoordSection(sc *bufio.Scanner, dim int) ([]Point, error) {
	// Cap the preallocation: DIMENSION is attacker-controlled input and a
	// lying header must not force a giant allocation before the line count
	// disproves it.
	prealloc := dim
	if prealloc > 65_536 {
		prealloc = 65_536
	}

	var (
		points  = make([]Point, 0, prealloc)
		isFloat bool
		line    string
		fields  []string
		x, y    float64
		err     error
	)
	for sc.Scan() {
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "EOF" {
			break
		}

		fields = strings.Fields(line)
		if len(fields) < 3 {
			return nil, wrapToken(ErrDataSection, line)
		}

		if len(points) == 0 {
			isFloat = strings.ContainsAny(fields[1], ".eE") || strings.ContainsAny(fields[2], ".eE")
		}

		x, err = parseCoord(fields[1], isFloat)
		if err != nil {
			return nil, err
		}
		y, err = parseCoord(fields[2], isFloat)
		if err != nil {
			return nil, err
		}

		points = append(points, Point{X: x, Y: y})
		if len(points) == dim {
			break
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	if len(points) != dim {
		return nil, wrapToken(ErrDataSection,
			fmt.Sprintf("expected %d coordinate lines, got %d", dim, len(points)))
	}

	return points, nil
}

// parseCoord parses one coordinate token in the sampled numeric mode.
func parseCoord(token string, isFloat bool) (float64, error) {
	if isFloat {
		x, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return 0, wrapToken(ErrDataSection, token)
		}

		return x, nil
	}

	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, wrapToken(ErrDataSection, token)
	}

	return float64(n), nil
}

// buildDistances projects the coordinate list into the triangular distance
// store with the instance's metric, in parallel for large triangles.
func buildDistances(meta *core.Metadata, points []Point) (*symmat.Sym[core.Distance], error) {
	if meta.EdgeWeightType == core.WeightGeo {
		geo := make([]GeoPoint, len(points))
		var i int
		for i = range points {
			geo[i] = ToGeoPoint(points[i])
		}

		return symmat.NewFromFuncParallel(meta.Dimension, func(r, c int) core.Distance {
			return GeoDist(geo[r], geo[c])
		})
	}

	metric, ok := metricFor(meta.EdgeWeightType)
	if !ok {
		return nil, wrapToken(ErrUnsupported, "edge weight type "+meta.EdgeWeightType.String())
	}

	return symmat.NewFromFuncParallel(meta.Dimension, func(r, c int) core.Distance {
		return metric(points[r], points[c])
	})
}
