package export

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/college-select/college-cli/internal/geo"
	"github.com/college-select/college-cli/internal/model"
)

// Marker symbols for the sector of a school.
const (
	SymbolPrivate = "triangle"
	SymbolPublic  = "circle"
	SymbolHome    = "building"
)

// MapOptions describes the map rendition of a ranking.
type MapOptions struct {
	Home     geo.Point
	HomeTown string
	Palette  Palette
}

// FeatureCollection builds one Point feature per ranked result, in ranking
// order, followed by a feature for the home location. Markers are colored by
// department priority; schools in the home town use the highlight color.
func FeatureCollection(results []model.RankedResult, opts MapOptions) (*geojson.FeatureCollection, error) {
	homeTown := model.Normalize(opts.HomeTown)
	bounds := geom.NewBounds(geom.XY)

	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(results)+1)}
	for i, r := range results {
		if r.Location == nil {
			return nil, eris.Errorf("geojson export: record %s has no location", r.ID)
		}
		pt := r.Location.ToGeom()
		bounds.Extend(pt)

		symbol, sector := SymbolPublic, "Public"
		if r.Sector == model.SectorPrivate {
			symbol, sector = SymbolPrivate, "Private"
		}
		color := opts.Palette.Color(r.DepartmentPriority)
		if homeTown != "" && model.Normalize(r.Town) == homeTown {
			color = opts.Palette.HighlightColor()
		}

		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       r.ID,
			Geometry: pt,
			Properties: map[string]interface{}{
				"row":           i,
				"name":          r.Name,
				"town":          r.Town,
				"department":    r.Department,
				"sector":        string(r.Sector),
				"honors_rate":   r.HonorsRate,
				"success_rate":  r.SuccessRatePct,
				"distance_km":   r.DistanceKM,
				"proximity":     geo.Classify(r.DistanceKM),
				"title":         strconv.Itoa(i) + " " + r.Name,
				"description":   sector + " " + r.Department,
				"marker-symbol": symbol,
				"marker-color":  color,
			},
		})
	}

	home := opts.Home.ToGeom()
	bounds.Extend(home)
	fc.Features = append(fc.Features, &geojson.Feature{
		ID:       "home",
		Geometry: home,
		Properties: map[string]interface{}{
			"title":         opts.HomeTown,
			"marker-symbol": SymbolHome,
			"marker-color":  opts.Palette.HighlightColor(),
		},
	})
	fc.BBox = bounds
	return fc, nil
}

// WriteGeoJSON writes the map rendition of a ranking to path.
func WriteGeoJSON(path string, results []model.RankedResult, opts MapOptions) error {
	fc, err := FeatureCollection(results, opts)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return eris.Wrap(err, "geojson export: marshal")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrap(err, "geojson export: write file")
	}
	return nil
}
