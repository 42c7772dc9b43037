// Package geojson bridges the partitioner and the interchange format most
// polygon data actually arrives in.
//
// 🚀 What lives here?
//
//	Decode — pull the first polygonal outer ring out of a GeoJSON document
//	         (FeatureCollection, Feature, or bare geometry) as a CCW
//	         geom.Polygon, with the redundant closing vertex dropped
//	Encode — write a polygon and its cut segments back out as a
//	         FeatureCollection: one Polygon feature plus one LineString
//	         feature per cut, tagged with its order and position
//
// ✨ Conventions:
//   - orientation is normalized on the way in: clockwise outer rings are
//     reversed, so downstream packages always see counter-clockwise input
//   - holes are ignored — the partitioner works on convex outlines, and a
//     convex polygon has none
//   - encoding closes the ring again, as the GeoJSON spec requires
//
// ⚙️ Usage:
//
//	p, err := geojson.Decode(data)            // outer ring, CCW
//	cuts, err := partition.Partition(p, 4, nil)
//	out, err := geojson.Encode(p, cuts)       // FeatureCollection bytes
//
// The heavy lifting is done by github.com/paulmach/orb and its geojson
// subpackage; this package only fixes the conventions above on top.
package geojson
