// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRoadNetwork is the canonical name for the RoadNetwork constructor.
	MethodRoadNetwork = "RoadNetwork"
	// MethodLayout is the canonical name for the Layout constructor.
	MethodLayout = "Layout"
)

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// MinRoadNetworkNodes is the smallest node count RoadNetwork accepts.
const MinRoadNetworkNodes = 1

// DefaultNearest is the default k of the k-nearest-neighbor road rule.
const DefaultNearest = 4

// DefaultMargin keeps nodes this far from every canvas border.
const DefaultMargin = 50.0

// fallbackNameFormat names nodes once the name pool is exhausted.
const fallbackNameFormat = "Node %d"

// roadLabelFormat labels a road by the ids of the node that created it and
// its neighbor.
const roadLabelFormat = "Road %d-%d"

// Synthetic geographic frame: the canvas maps onto a 0.1°×0.1° box centered
// on these coordinates.
const (
	originLat = 40.7128
	originLon = -74.0060
	geoSpan   = 0.1
)

// DefaultNamePool holds the district names used for the first nodes.
var DefaultNamePool = []string{
	"Downtown", "Airport", "Mall", "Hospital", "University", "Stadium",
	"Beach", "Harbor", "Station", "Plaza", "Park", "Bridge",
	"Market", "Tower", "Center", "District", "Junction", "Terminal",
	"Complex", "Square",
}
