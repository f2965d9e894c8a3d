package utils

import (
	"math"
	"strings"

	"github.com/mmcloughlin/geohash"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// cityIndexPrecision is the geohash length used for the coarse city
// index. Five characters is roughly a 5 km cell, narrow enough that a
// map pin shares a prefix with its metro area.
const cityIndexPrecision = 5

// CalculateDistance returns the distance between two points in
// kilometers using the Haversine formula.
func CalculateDistance(point1, point2 GeoPoint) float64 {
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// RoundTo1 rounds v to one decimal place
func RoundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

// EncodePoint converts a point to a geohash string
func EncodePoint(point GeoPoint, precision uint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
}

// CityDistance estimates the road distance in km between two known
// cities, rounded to one decimal. The second return is false when
// either city is not in the registry.
func CityDistance(source, destination string) (float64, bool) {
	src, ok := LookupCity(source)
	if !ok {
		return 0, false
	}
	dst, ok := LookupCity(destination)
	if !ok {
		return 0, false
	}
	return RoundTo1(CalculateDistance(src.Point(), dst.Point())), true
}

// NearestCity resolves a raw map pin to the closest registered city.
// A coarse geohash prefix match narrows the candidates before the
// exact haversine comparison; when no city shares a prefix the full
// registry is scanned.
func NearestCity(point GeoPoint) City {
	pinHash := geohash.EncodeWithPrecision(point.Latitude, point.Longitude, cityIndexPrecision)

	best := cities[0]
	bestDist := math.MaxFloat64
	bestPrefix := -1

	for _, city := range cities {
		prefix := commonPrefixLen(pinHash, city.geohash)
		if prefix < bestPrefix {
			continue
		}
		d := CalculateDistance(point, city.Point())
		if prefix > bestPrefix || d < bestDist {
			best = city
			bestDist = d
			bestPrefix = prefix
		}
	}

	return best
}

func commonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// LookupCity finds a registered city by name, case-insensitive
func LookupCity(name string) (City, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, city := range cities {
		if strings.ToLower(city.Name) == needle {
			return city, true
		}
	}
	return City{}, false
}
