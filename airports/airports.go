// Package airports contains the static airport directory used for shipment
// route planning, the coarse region classifier, and airport selection.
//
// The directory is a curated set of major cargo-capable airports, not an
// exhaustive list. Every region the classifier can emit is represented, and
// each region carries at least one hub so selection stays deterministic.
// Coordinates were taken from the airports.json dataset at
// https://github.com/mwgg/Airports.
package airports

// Airport is an immutable reference-data entry. Region is one of the
// classifier's region codes and IsHub marks major transfer points preferred
// during selection.
type Airport struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Country string  `json:"country"`
	Region  string  `json:"region"`
	IsHub   bool    `json:"is_hub"`
}

// directory is the in-memory airport table. It is built once at package
// load and must never be mutated; Directory returns a copy.
var directory = []Airport{
	// North America East
	{"JFK", "John F. Kennedy International", 40.6413, -73.7781, "US", RegionNorthAmericaEast, true},
	{"EWR", "Newark Liberty International", 40.6895, -74.1745, "US", RegionNorthAmericaEast, true},
	{"ATL", "Hartsfield-Jackson Atlanta International", 33.6407, -84.4277, "US", RegionNorthAmericaEast, true},
	{"ORD", "Chicago O'Hare International", 41.9742, -87.9073, "US", RegionNorthAmericaEast, true},
	{"MIA", "Miami International", 25.7959, -80.2870, "US", RegionNorthAmericaEast, false},
	{"BOS", "Boston Logan International", 42.3656, -71.0096, "US", RegionNorthAmericaEast, false},
	{"DFW", "Dallas/Fort Worth International", 32.8998, -97.0403, "US", RegionNorthAmericaEast, false},
	{"YYZ", "Toronto Pearson International", 43.6777, -79.6248, "CA", RegionNorthAmericaEast, true},
	{"YUL", "Montreal-Trudeau International", 45.4706, -73.7408, "CA", RegionNorthAmericaEast, false},

	// North America West
	{"LAX", "Los Angeles International", 33.9416, -118.4085, "US", RegionNorthAmericaWest, true},
	{"SFO", "San Francisco International", 37.6213, -122.3790, "US", RegionNorthAmericaWest, true},
	{"SEA", "Seattle-Tacoma International", 47.4502, -122.3088, "US", RegionNorthAmericaWest, false},
	{"DEN", "Denver International", 39.8561, -104.6737, "US", RegionNorthAmericaWest, false},
	{"LAS", "Harry Reid International", 36.0840, -115.1537, "US", RegionNorthAmericaWest, false},
	{"YVR", "Vancouver International", 49.1967, -123.1815, "CA", RegionNorthAmericaWest, false},

	// Central America
	{"MEX", "Mexico City International", 19.4363, -99.0721, "MX", RegionCentralAmerica, true},
	{"CUN", "Cancun International", 21.0365, -86.8771, "MX", RegionCentralAmerica, false},
	{"PTY", "Tocumen International", 9.0714, -79.3835, "PA", RegionCentralAmerica, true},
	{"SJO", "Juan Santamaria International", 9.9939, -84.2088, "CR", RegionCentralAmerica, false},

	// South America
	{"GRU", "Sao Paulo-Guarulhos International", -23.4356, -46.4731, "BR", RegionSouthAmerica, true},
	{"EZE", "Buenos Aires-Ezeiza International", -34.8222, -58.5358, "AR", RegionSouthAmerica, false},
	{"BOG", "El Dorado International", 4.7016, -74.1469, "CO", RegionSouthAmerica, true},
	{"SCL", "Santiago-Arturo Merino Benitez", -33.3930, -70.7858, "CL", RegionSouthAmerica, false},
	{"LIM", "Jorge Chavez International", -12.0219, -77.1143, "PE", RegionSouthAmerica, true},

	// Western Europe
	{"LHR", "London Heathrow", 51.4700, -0.4543, "GB", RegionWesternEurope, true},
	{"CDG", "Paris Charles de Gaulle", 49.0097, 2.5479, "FR", RegionWesternEurope, true},
	{"AMS", "Amsterdam Schiphol", 52.3105, 4.7683, "NL", RegionWesternEurope, true},
	{"MAD", "Madrid-Barajas", 40.4722, -3.5608, "ES", RegionWesternEurope, true},
	{"BCN", "Barcelona-El Prat", 41.2974, 2.0833, "ES", RegionWesternEurope, false},
	{"ORY", "Paris Orly", 48.7262, 2.3652, "FR", RegionWesternEurope, false},
	{"DUB", "Dublin Airport", 53.4264, -6.2499, "IE", RegionWesternEurope, false},
	{"LIS", "Lisbon Humberto Delgado", 38.7742, -9.1342, "PT", RegionWesternEurope, false},

	// Central Europe
	{"FRA", "Frankfurt am Main", 50.0379, 8.5622, "DE", RegionCentralEurope, true},
	{"MUC", "Munich Franz Josef Strauss", 48.3538, 11.7861, "DE", RegionCentralEurope, true},
	{"ZRH", "Zurich Airport", 47.4582, 8.5555, "CH", RegionCentralEurope, false},
	{"VIE", "Vienna International", 48.1103, 16.5697, "AT", RegionCentralEurope, false},
	{"CPH", "Copenhagen Kastrup", 55.6180, 12.6508, "DK", RegionCentralEurope, false},
	{"OSL", "Oslo Gardermoen", 60.1976, 11.1004, "NO", RegionCentralEurope, false},
	{"ARN", "Stockholm Arlanda", 59.6498, 17.9237, "SE", RegionCentralEurope, false},
	{"WAW", "Warsaw Chopin", 52.1672, 20.9679, "PL", RegionCentralEurope, false},
	{"PRG", "Prague Vaclav Havel", 50.1008, 14.2632, "CZ", RegionCentralEurope, false},

	// Turkey
	{"IST", "Istanbul Airport", 41.2753, 28.7519, "TR", RegionTurkey, true},
	{"SAW", "Istanbul Sabiha Gokcen", 40.8986, 29.3092, "TR", RegionTurkey, false},
	{"ESB", "Ankara Esenboga", 40.1281, 32.9951, "TR", RegionTurkey, false},
	{"AYT", "Antalya Airport", 36.8987, 30.8005, "TR", RegionTurkey, false},

	// Middle East
	{"DXB", "Dubai International", 25.2532, 55.3657, "AE", RegionMiddleEast, true},
	{"DOH", "Doha Hamad International", 25.2731, 51.6081, "QA", RegionMiddleEast, true},
	{"AUH", "Abu Dhabi International", 24.4331, 54.6511, "AE", RegionMiddleEast, false},
	{"RUH", "Riyadh King Khalid International", 24.9576, 46.6988, "SA", RegionMiddleEast, false},
	{"TLV", "Tel Aviv Ben Gurion", 32.0114, 34.8867, "IL", RegionMiddleEast, false},

	// Russia
	{"SVO", "Moscow Sheremetyevo", 55.9726, 37.4146, "RU", RegionRussia, true},
	{"DME", "Moscow Domodedovo", 55.4088, 37.9063, "RU", RegionRussia, false},
	{"LED", "Saint Petersburg Pulkovo", 59.8003, 30.2625, "RU", RegionRussia, false},
	{"SVX", "Yekaterinburg Koltsovo", 56.7431, 60.8027, "RU", RegionRussia, false},
	{"OVB", "Novosibirsk Tolmachevo", 55.0126, 82.6507, "RU", RegionRussia, false},

	// East Asia
	{"PEK", "Beijing Capital International", 40.0799, 116.6031, "CN", RegionEastAsia, true},
	{"PVG", "Shanghai Pudong International", 31.1443, 121.8083, "CN", RegionEastAsia, true},
	{"HKG", "Hong Kong International", 22.3080, 113.9185, "HK", RegionEastAsia, true},
	{"NRT", "Tokyo Narita International", 35.7720, 140.3929, "JP", RegionEastAsia, true},
	{"HND", "Tokyo Haneda", 35.5494, 139.7798, "JP", RegionEastAsia, false},
	{"ICN", "Seoul Incheon International", 37.4602, 126.4407, "KR", RegionEastAsia, true},
	{"TPE", "Taiwan Taoyuan International", 25.0797, 121.2342, "TW", RegionEastAsia, false},

	// Southeast Asia
	{"SIN", "Singapore Changi", 1.3644, 103.9915, "SG", RegionSoutheastAsia, true},
	{"BKK", "Bangkok Suvarnabhumi", 13.6900, 100.7501, "TH", RegionSoutheastAsia, true},
	{"KUL", "Kuala Lumpur International", 2.7456, 101.7099, "MY", RegionSoutheastAsia, false},
	{"CGK", "Jakarta Soekarno-Hatta", -6.1256, 106.6559, "ID", RegionSoutheastAsia, false},
	{"MNL", "Manila Ninoy Aquino International", 14.5086, 121.0194, "PH", RegionSoutheastAsia, false},

	// South Asia
	{"DEL", "Delhi Indira Gandhi International", 28.5562, 77.1000, "IN", RegionSouthAsia, true},
	{"BOM", "Mumbai Chhatrapati Shivaji Maharaj", 19.0896, 72.8656, "IN", RegionSouthAsia, true},
	{"MAA", "Chennai International", 12.9941, 80.1709, "IN", RegionSouthAsia, false},
	{"DAC", "Dhaka Hazrat Shahjalal International", 23.8433, 90.3978, "BD", RegionSouthAsia, false},
	{"CMB", "Colombo Bandaranaike International", 7.1808, 79.8841, "LK", RegionSouthAsia, false},

	// Africa
	{"JNB", "Johannesburg O.R. Tambo International", -26.1392, 28.2460, "ZA", RegionAfrica, true},
	{"CPT", "Cape Town International", -33.9715, 18.6021, "ZA", RegionAfrica, false},
	{"CAI", "Cairo International", 30.1219, 31.4056, "EG", RegionAfrica, true},
	{"NBO", "Nairobi Jomo Kenyatta International", -1.3192, 36.9278, "KE", RegionAfrica, true},
	{"LOS", "Lagos Murtala Muhammed International", 6.5774, 3.3212, "NG", RegionAfrica, false},
	{"ADD", "Addis Ababa Bole International", 8.9779, 38.7993, "ET", RegionAfrica, false},
	{"CMN", "Casablanca Mohammed V International", 33.3675, -7.5900, "MA", RegionAfrica, false},

	// Oceania
	{"SYD", "Sydney Kingsford Smith", -33.9461, 151.1772, "AU", RegionOceania, true},
	{"MEL", "Melbourne Tullamarine", -37.6690, 144.8410, "AU", RegionOceania, false},
	{"BNE", "Brisbane Airport", -27.3842, 153.1175, "AU", RegionOceania, false},
	{"PER", "Perth Airport", -31.9385, 115.9672, "AU", RegionOceania, false},
	{"AKL", "Auckland Airport", -37.0082, 174.7850, "NZ", RegionOceania, true},
}

// Directory returns a copy of the airport table in directory order.
func Directory() []Airport {
	out := make([]Airport, len(directory))
	copy(out, directory)
	return out
}

// ByCode looks up an airport by IATA code. The second return value is
// false when the code is not in the directory.
func ByCode(code string) (Airport, bool) {
	for _, a := range directory {
		if a.Code == code {
			return a, true
		}
	}
	return Airport{}, false
}
