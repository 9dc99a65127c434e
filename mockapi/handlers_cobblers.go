package mockapi

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/solecraft/client-go/api"
)

const defaultRadiusKm = 10.0

func (s *Server) handleCobblers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(q.Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		writeMessage(w, http.StatusBadRequest, "lat and lng are required")
		return
	}
	radius, err := strconv.ParseFloat(q.Get("radius"), 64)
	if err != nil || radius <= 0 {
		radius = defaultRadiusKm
	}
	verifiedOnly := q.Get("verified") == "true"
	search := strings.ToLower(q.Get("search"))
	var wantedServices []string
	if raw := q.Get("services"); raw != "" {
		wantedServices = strings.Split(raw, ",")
	}

	s.lock.RLock()
	defer s.lock.RUnlock()

	matches := make([]api.Cobbler, 0)
	for _, c := range s.cobblers {
		distance := haversineKm(lat, lng, c.Location.Lat(), c.Location.Lng())
		if distance > radius {
			continue
		}
		if verifiedOnly && !c.Verified {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Speciality), search) {
			continue
		}
		if !offersAll(c.Services, wantedServices) {
			continue
		}
		c.Distance = fmt.Sprintf("%.1f km", distance)
		matches = append(matches, c)
	}
	writeJSON(w, http.StatusOK, api.CobblersResponse{Success: true, Cobblers: matches})
}

func offersAll(offered, wanted []string) bool {
	for _, want := range wanted {
		found := false
		for _, have := range offered {
			if strings.EqualFold(have, strings.TrimSpace(want)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// haversineKm returns the great-circle distance between two points.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func (s *Server) handleBookCobbler(w http.ResponseWriter, r *http.Request) {
	cobblerID := mux.Vars(r)["id"]

	s.lock.RLock()
	found := false
	for _, c := range s.cobblers {
		if c.ID == cobblerID {
			found = true
			break
		}
	}
	s.lock.RUnlock()
	if !found {
		writeMessage(w, http.StatusNotFound, "cobbler not found")
		return
	}

	var req api.AppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := api.NewValidator().ValidateAppointment(req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	appointment := api.Appointment{
		AppointmentID:   uuid.New().String(),
		CobblerID:       cobblerID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		ServiceType:     req.ServiceType,
	}
	s.lock.Lock()
	s.appointments = append(s.appointments, appointment)
	s.lock.Unlock()

	writeJSON(w, http.StatusCreated, api.AppointmentResponse{Success: true, Appointment: &appointment})
}
