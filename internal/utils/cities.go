package utils

import "github.com/mmcloughlin/geohash"

// City is a registered freight hub with its coordinates
type City struct {
	Name      string
	Latitude  float64
	Longitude float64

	geohash string // coarse index cell, computed at init
}

// Point returns the city center as a GeoPoint
func (c City) Point() GeoPoint {
	return GeoPoint{Latitude: c.Latitude, Longitude: c.Longitude}
}

// cities is the registry of supported pickup/delivery hubs
var cities = []City{
	{Name: "Delhi", Latitude: 28.6139, Longitude: 77.2090},
	{Name: "Mumbai", Latitude: 19.0760, Longitude: 72.8777},
	{Name: "Bengaluru", Latitude: 12.9716, Longitude: 77.5946},
	{Name: "Kolkata", Latitude: 22.5726, Longitude: 88.3639},
	{Name: "Chennai", Latitude: 13.0827, Longitude: 80.2707},
	{Name: "Hyderabad", Latitude: 17.3850, Longitude: 78.4867},
	{Name: "Pune", Latitude: 18.5204, Longitude: 73.8567},
	{Name: "Ahmedabad", Latitude: 23.0225, Longitude: 72.5714},
	{Name: "Jaipur", Latitude: 26.9124, Longitude: 75.7873},
	{Name: "Surat", Latitude: 21.1702, Longitude: 72.8311},
	{Name: "Lucknow", Latitude: 26.8467, Longitude: 80.9462},
	{Name: "Kanpur", Latitude: 26.4499, Longitude: 80.3319},
	{Name: "Nagpur", Latitude: 21.1458, Longitude: 79.0882},
	{Name: "Indore", Latitude: 22.7196, Longitude: 75.8577},
	{Name: "Thane", Latitude: 19.2183, Longitude: 72.9781},
	{Name: "Bhopal", Latitude: 23.2599, Longitude: 77.4126},
	{Name: "Visakhapatnam", Latitude: 17.6868, Longitude: 83.2185},
	{Name: "Patna", Latitude: 25.5941, Longitude: 85.1376},
	{Name: "Vadodara", Latitude: 22.3072, Longitude: 73.1812},
	{Name: "Ghaziabad", Latitude: 28.6692, Longitude: 77.4538},
	{Name: "Ludhiana", Latitude: 30.9010, Longitude: 75.8573},
	{Name: "Agra", Latitude: 27.1767, Longitude: 78.0081},
	{Name: "Nashik", Latitude: 19.9975, Longitude: 73.7898},
	{Name: "Ranchi", Latitude: 23.3441, Longitude: 85.3096},
	{Name: "Faridabad", Latitude: 28.4089, Longitude: 77.3178},
	{Name: "Meerut", Latitude: 28.9845, Longitude: 77.7064},
	{Name: "Rajkot", Latitude: 22.3039, Longitude: 70.8022},
	{Name: "Varanasi", Latitude: 25.3176, Longitude: 82.9739},
	{Name: "Srinagar", Latitude: 34.0837, Longitude: 74.7973},
	{Name: "Aurangabad", Latitude: 19.8762, Longitude: 75.3433},
	{Name: "Dhanbad", Latitude: 23.7957, Longitude: 86.4304},
	{Name: "Amritsar", Latitude: 31.6340, Longitude: 74.8723},
}

func init() {
	for i := range cities {
		cities[i].geohash = geohash.EncodeWithPrecision(
			cities[i].Latitude, cities[i].Longitude, cityIndexPrecision)
	}
}

// Cities returns the registered city list
func Cities() []City {
	return cities
}
