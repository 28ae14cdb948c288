// Package geo computes great-circle distances and proximity bands between school
// locations and a home coordinate.
package geo

import (
	"math"
	"strconv"

	"github.com/twpayne/go-geom"
)

// EarthRadiusKM is the spherical Earth radius used by Distance. It is an
// approximation; results are only compared against each other.
const EarthRadiusKM = 6373.0

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lon float64 `json:"longitude"`
	Lat float64 `json:"latitude"`
}

// ToGeom converts the point to a go-geom XY point with SRID 4326.
func (p Point) ToGeom() *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{p.Lon, p.Lat}).SetSRID(4326)
}

// Distance returns the haversine distance between a and b in kilometers,
// rounded to 2 decimals. Degree ranges are not validated.
func Distance(a, b Point) float64 {
	lat1 := radians(a.Lat)
	lon1 := radians(a.Lon)
	lat2 := radians(b.Lat)
	lon2 := radians(b.Lon)

	dLon := lon2 - lon1
	dLat := lat2 - lat1

	h := math.Pow(math.Sin(dLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return Round2(EarthRadiusKM * c)
}

// Round2 rounds v to 2 decimal places. Exact halves go to the even digit and
// the decision is made on the exact binary value, so 0.125 gives 0.12 and
// 2.675 (stored just below) gives 2.67.
func Round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
