package airports

// Region codes emitted by RegionFromCoords. RegionOther is the total
// fallback for coordinates no box claims.
const (
	RegionTurkey           = "TURKEY"
	RegionNorthAmericaEast = "NORTH_AMERICA_EAST"
	RegionNorthAmericaWest = "NORTH_AMERICA_WEST"
	RegionCentralAmerica   = "CENTRAL_AMERICA"
	RegionSouthAmerica     = "SOUTH_AMERICA"
	RegionWesternEurope    = "WESTERN_EUROPE"
	RegionCentralEurope    = "CENTRAL_EUROPE"
	RegionMiddleEast       = "MIDDLE_EAST"
	RegionRussia           = "RUSSIA"
	RegionEastAsia         = "EAST_ASIA"
	RegionSoutheastAsia    = "SOUTHEAST_ASIA"
	RegionSouthAsia        = "SOUTH_ASIA"
	RegionAfrica           = "AFRICA"
	RegionOceania          = "OCEANIA"
	RegionOther            = "OTHER"
)

// regionBox is an inclusive lat/lng bounding box tagged with a region code.
type regionBox struct {
	region         string
	minLat, maxLat float64
	minLng, maxLng float64
}

// regionBoxes is evaluated in order and the order is load-bearing: the
// Turkey box overlaps the Europe boxes and must be tested first, Southeast
// Asia must claim Indonesia before the Oceania box does, and the Middle
// East box must run before Africa so the Arabian peninsula is not folded
// into the Africa box.
var regionBoxes = []regionBox{
	{RegionTurkey, 36, 42, 26, 45},
	{RegionNorthAmericaEast, 24, 60, -100, -50},
	{RegionNorthAmericaWest, 24, 72, -170, -100},
	{RegionCentralAmerica, 7, 24, -120, -60},
	{RegionSouthAmerica, -56, 7, -90, -30},
	{RegionWesternEurope, 36, 62, -10, 8},
	{RegionCentralEurope, 36, 62, 8, 26},
	{RegionMiddleEast, 12, 40, 34, 63},
	{RegionRussia, 50, 82, 26, 180},
	{RegionEastAsia, 18, 54, 100, 150},
	{RegionSoutheastAsia, -11, 18, 92, 141},
	{RegionSouthAsia, 5, 35, 60, 92},
	{RegionAfrica, -35, 37, -18, 52},
	{RegionOceania, -50, 0, 110, 180},
}

// RegionFromCoords classifies a coordinate into a coarse region code via
// the ordered bounding-box rules above. It is total: coordinates outside
// every box classify as RegionOther. Pure function.
func RegionFromCoords(lat, lng float64) string {
	for _, box := range regionBoxes {
		if lat >= box.minLat && lat <= box.maxLat && lng >= box.minLng && lng <= box.maxLng {
			return box.region
		}
	}
	return RegionOther
}

// regionalGroups are sets of regions treated as mutually "close" when
// deciding land vs air: a cross-region trip inside one group still ships
// by road below the land-distance threshold.
var regionalGroups = [][]string{
	{RegionWesternEurope, RegionCentralEurope, RegionTurkey},
	{RegionNorthAmericaEast, RegionNorthAmericaWest, RegionCentralAmerica},
	{RegionEastAsia, RegionSoutheastAsia},
	{RegionMiddleEast, RegionTurkey},
}

// SameRegionalGroup reports whether both regions belong to at least one
// common regional group. A region is trivially in the same group as itself.
func SameRegionalGroup(a, b string) bool {
	if a == b {
		return true
	}
	for _, group := range regionalGroups {
		var hasA, hasB bool
		for _, region := range group {
			if region == a {
				hasA = true
			}
			if region == b {
				hasB = true
			}
		}
		if hasA && hasB {
			return true
		}
	}
	return false
}

// AllRegions returns every region code the classifier can emit, including
// RegionOther.
func AllRegions() []string {
	out := make([]string, 0, len(regionBoxes)+1)
	for _, box := range regionBoxes {
		out = append(out, box.region)
	}
	return append(out, RegionOther)
}
