package mockapi

import "github.com/solecraft/client-go/api"

// seed loads the development data set.
func (s *Server) seed() {
	s.products = []api.Product{
		{ID: "prod-001", Name: "Leather Care Kit", Brand: "SoleCraft", Category: "care", Price: 24.99, Rating: 4.6, InStock: true},
		{ID: "prod-002", Name: "Suede Brush", Brand: "SoleCraft", Category: "care", Price: 9.99, Rating: 4.2, InStock: true},
		{ID: "prod-003", Name: "Heel Grips (2 pairs)", Brand: "ComfortStep", Category: "accessories", Price: 7.49, Rating: 3.9, InStock: true},
		{ID: "prod-004", Name: "Waterproofing Spray", Brand: "DryFeet", Category: "care", Price: 14.99, Rating: 4.4, InStock: false},
		{ID: "prod-005", Name: "Cedar Shoe Trees", Brand: "ComfortStep", Category: "accessories", Price: 29.99, Rating: 4.8, InStock: true},
		{ID: "prod-006", Name: "Waxed Laces 120cm", Brand: "DryFeet", Category: "accessories", Price: 4.99, Rating: 4.0, InStock: true},
	}

	s.services = []api.Service{
		{ID: "svc-001", Name: "Sole Replacement", Description: "Full rubber or leather sole replacement", Price: 45, Duration: "3 days", Category: "repair"},
		{ID: "svc-002", Name: "Heel Repair", Description: "Heel tip replacement and rebuild", Price: 20, Duration: "1 day", Category: "repair"},
		{ID: "svc-003", Name: "Deep Clean & Condition", Description: "Hand clean, condition and polish", Price: 30, Duration: "2 days", Category: "care"},
		{ID: "svc-004", Name: "Stretching", Description: "Width and length stretching", Price: 15, Duration: "1 day", Category: "fit"},
	}

	s.cobblers = []api.Cobbler{
		{
			ID: "cob-001", CobblerID: "SC-101", Name: "Heritage Shoe Repair",
			Location: api.GeoPoint{Type: "Point", Coordinates: [2]float64{-0.1276, 51.5072}},
			Rating:   4.7, Reviews: 182, Phone: "02071234567", Hours: "9-18",
			Services: []string{"Sole Replacement", "Heel Repair"}, Address: "12 Mercer St",
			Verified: true, Speciality: "leather soles",
			AvailableSlots: []string{"10:00", "11:30", "14:00"},
		},
		{
			ID: "cob-002", CobblerID: "SC-102", Name: "QuickFix Cobblers",
			Location: api.GeoPoint{Type: "Point", Coordinates: [2]float64{-0.1420, 51.5010}},
			Rating:   4.1, Reviews: 64, Phone: "02079876543", Hours: "8-20",
			Services: []string{"Heel Repair", "Stretching"}, Address: "3 Station Parade",
			Verified: false, Speciality: "while-you-wait repairs",
			AvailableSlots: []string{"09:00", "16:30"},
		},
		{
			ID: "cob-003", CobblerID: "SC-103", Name: "North End Boot Works",
			Location: api.GeoPoint{Type: "Point", Coordinates: [2]float64{-0.0754, 51.5850}},
			Rating:   4.9, Reviews: 240, Phone: "02081112222", Hours: "10-17",
			Services: []string{"Sole Replacement", "Deep Clean & Condition"}, Address: "88 High Rd",
			Verified: true, Speciality: "boots and brogues",
			AvailableSlots: []string{"10:30", "13:00", "15:30"},
		},
	}
}
