package geojson

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	orbjson "github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/eqslice/geom"
)

// Sentinel errors returned by Decode and Encode.
var (
	// ErrBadGeoJSON indicates input that does not parse as GeoJSON, or a
	// polygon whose outer ring is structurally broken.
	ErrBadGeoJSON = errors.New("geojson: malformed document")

	// ErrNoPolygon indicates a well-formed document without a single
	// Polygon or MultiPolygon geometry in it.
	ErrNoPolygon = errors.New("geojson: no polygonal geometry found")
)

// Decode extracts the first polygonal outer ring from a GeoJSON document.
//
// Accepted inputs are a FeatureCollection (the first Polygon or MultiPolygon
// feature wins), a single Feature, or a bare geometry object. The GeoJSON
// closing vertex is dropped and clockwise rings are reversed, so the result
// is always an open counter-clockwise geom.Polygon. Interior rings are
// ignored.
func Decode(data []byte) (geom.Polygon, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadGeoJSON, err)
	}

	switch head.Type {
	case "FeatureCollection":
		fc, err := orbjson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadGeoJSON, err)
		}
		for _, f := range fc.Features {
			if f == nil {
				continue
			}
			if ring, ok := outerRing(f.Geometry); ok {
				return ringPolygon(ring)
			}
		}

		return nil, fmt.Errorf("%w: collection holds %d features", ErrNoPolygon, len(fc.Features))
	case "Feature":
		f, err := orbjson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadGeoJSON, err)
		}
		if ring, ok := outerRing(f.Geometry); ok {
			return ringPolygon(ring)
		}

		return nil, fmt.Errorf("%w: feature geometry is not polygonal", ErrNoPolygon)
	default:
		g, err := orbjson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadGeoJSON, err)
		}
		if ring, ok := outerRing(g.Geometry()); ok {
			return ringPolygon(ring)
		}

		return nil, fmt.Errorf("%w: document carries %s", ErrNoPolygon, g.Type)
	}
}

// Encode renders the polygon and its cuts as a GeoJSON FeatureCollection:
// one Polygon feature (property "area") followed by one LineString feature
// per cut. Each cut carries its zero-based order as "index" and the x
// coordinate of its first endpoint as "x"; for canonical-frame cuts that is
// the sweep coordinate.
func Encode(p geom.Polygon, segs []geom.Segment) ([]byte, error) {
	if len(p) < 3 {
		return nil, fmt.Errorf("%w: polygon has %d vertices", ErrNoPolygon, len(p))
	}

	// GeoJSON wants the ring closed: first position repeated at the end.
	ring := make(orb.Ring, 0, len(p)+1)
	for _, v := range p {
		ring = append(ring, orb.Point{v.X, v.Y})
	}
	ring = append(ring, ring[0])

	outline := orbjson.NewFeature(orb.Polygon{ring})
	outline.Properties["area"] = p.Area()

	fc := orbjson.NewFeatureCollection()
	fc.Append(outline)
	for i, s := range segs {
		cut := orbjson.NewFeature(orb.LineString{
			{s.Bottom.X, s.Bottom.Y},
			{s.Top.X, s.Top.Y},
		})
		cut.Properties["index"] = i
		cut.Properties["x"] = s.X()
		fc.Append(cut)
	}

	out, err := json.Marshal(fc)
	if err != nil {
		return nil, fmt.Errorf("geojson: encode: %w", err)
	}

	return out, nil
}

// outerRing extracts the outer ring of a polygonal geometry. For a
// MultiPolygon the first member polygon wins.
func outerRing(g orb.Geometry) (orb.Ring, bool) {
	switch v := g.(type) {
	case orb.Polygon:
		if len(v) > 0 {
			return v[0], true
		}
	case orb.MultiPolygon:
		if len(v) > 0 && len(v[0]) > 0 {
			return v[0][0], true
		}
	}

	return nil, false
}

// ringPolygon converts a GeoJSON ring to an open CCW polygon.
func ringPolygon(r orb.Ring) (geom.Polygon, error) {
	n := len(r)
	if n > 0 && r[0] == r[n-1] {
		n-- // the ring repeats its first position at the end
	}
	if n < 3 {
		return nil, fmt.Errorf("%w: outer ring has %d distinct positions", ErrBadGeoJSON, n)
	}

	p := make(geom.Polygon, n)
	for i := 0; i < n; i++ {
		p[i] = geom.Pt(r[i][0], r[i][1])
	}

	return p.EnsureCCW(), nil
}
