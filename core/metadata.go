// Package core — TSPLIB95 instance metadata and its keyword domains.
//
// The enum types mirror the value domains of the TSPLIB95 specification
// header keywords. The solver itself consumes only Dimension and (via the
// loader's metric choice) EdgeWeightType; the remaining fields are carried
// so the loader can reject what it does not support with a precise message.
package core

// ProblemType is the TYPE header keyword domain.
type ProblemType int

// TYPE values.
const (
	TypeTSP ProblemType = iota
	TypeATSP
	TypeSOP
	TypeHCP
	TypeTOUR
)

// String returns the TSPLIB spelling.
func (p ProblemType) String() string {
	switch p {
	case TypeTSP:
		return "TSP"
	case TypeATSP:
		return "ATSP"
	case TypeSOP:
		return "SOP"
	case TypeHCP:
		return "HCP"
	case TypeTOUR:
		return "TOUR"
	}

	return "UNKNOWN"
}

// EdgeWeightType is the EDGE_WEIGHT_TYPE header keyword domain.
type EdgeWeightType int

// EDGE_WEIGHT_TYPE values.
const (
	WeightExplicit EdgeWeightType = iota
	WeightEuc2D
	WeightEuc3D
	WeightMax2D
	WeightMax3D
	WeightMan2D
	WeightMan3D
	WeightCeil2D
	WeightGeo
	WeightAtt
	WeightXray1
	WeightXray2
	WeightSpecial
)

// String returns the TSPLIB spelling.
func (w EdgeWeightType) String() string {
	switch w {
	case WeightExplicit:
		return "EXPLICIT"
	case WeightEuc2D:
		return "EUC_2D"
	case WeightEuc3D:
		return "EUC_3D"
	case WeightMax2D:
		return "MAX_2D"
	case WeightMax3D:
		return "MAX_3D"
	case WeightMan2D:
		return "MAN_2D"
	case WeightMan3D:
		return "MAN_3D"
	case WeightCeil2D:
		return "CEIL_2D"
	case WeightGeo:
		return "GEO"
	case WeightAtt:
		return "ATT"
	case WeightXray1:
		return "XRAY1"
	case WeightXray2:
		return "XRAY2"
	case WeightSpecial:
		return "SPECIAL"
	}

	return "UNKNOWN"
}

// EdgeWeightFormat is the EDGE_WEIGHT_FORMAT header keyword domain.
// FormatUnset marks an absent keyword.
type EdgeWeightFormat int

// EDGE_WEIGHT_FORMAT values.
const (
	FormatUnset EdgeWeightFormat = iota
	FormatFunction
	FormatFullMatrix
	FormatUpperRow
	FormatLowerRow
	FormatUpperDiagRow
	FormatLowerDiagRow
	FormatUpperCol
	FormatLowerCol
	FormatUpperDiagCol
	FormatLowerDiagCol
)

// EdgeDataFormat is the EDGE_DATA_FORMAT header keyword domain.
type EdgeDataFormat int

// EDGE_DATA_FORMAT values.
const (
	EdgeDataUnset EdgeDataFormat = iota
	EdgeDataEdgeList
	EdgeDataAdjList
)

// NodeCoordType is the NODE_COORD_TYPE header keyword domain.
// The TSPLIB default is NO_COORDS.
type NodeCoordType int

// NODE_COORD_TYPE values.
const (
	NoCoords NodeCoordType = iota
	TwoDCoords
	ThreeDCoords
)

// DisplayDataType is the DISPLAY_DATA_TYPE header keyword domain.
type DisplayDataType int

// DISPLAY_DATA_TYPE values.
const (
	DisplayUnset DisplayDataType = iota
	DisplayCoord
	DisplayTwoD
	DisplayNone
)

// Metadata is the parsed specification part of a TSPLIB95 instance file.
// Zero values of the optional fields mean "keyword absent".
type Metadata struct {
	Name            string
	Type            ProblemType
	Comment         string
	Dimension       int
	Capacity        int
	EdgeWeightType  EdgeWeightType
	EdgeWeightFmt   EdgeWeightFormat
	EdgeDataFmt     EdgeDataFormat
	NodeCoordType   NodeCoordType
	DisplayDataType DisplayDataType
}
