package geo

// Proximity bands for a school relative to the home location.
const (
	BandWalking   = "walking"
	BandCycling   = "cycling"
	BandCommuting = "commuting"
	BandFar       = "far"
)

// Distance thresholds for classification (kilometers).
const (
	walkingThreshold   = 1.5
	cyclingThreshold   = 5.0
	commutingThreshold = 15.0
)

// Classify returns the proximity band for a distance in kilometers.
// Rules:
//   - walking: distance <= 1.5km
//   - cycling: distance <= 5km
//   - commuting: distance <= 15km
//   - far: anything beyond
func Classify(distanceKM float64) string {
	switch {
	case distanceKM <= walkingThreshold:
		return BandWalking
	case distanceKM <= cyclingThreshold:
		return BandCycling
	case distanceKM <= commutingThreshold:
		return BandCommuting
	default:
		return BandFar
	}
}
