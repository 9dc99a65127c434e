package mockapi

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/solecraft/client-go/api"
)

const defaultPageSize = 12

func (s *Server) handleServices(w http.ResponseWriter, _ *http.Request) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	writeJSON(w, http.StatusOK, api.ServicesResponse{Success: true, Services: s.services})
}

func (s *Server) handleBookService(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["id"]

	s.lock.RLock()
	found := false
	for _, svc := range s.services {
		if svc.ID == serviceID {
			found = true
			break
		}
	}
	s.lock.RUnlock()
	if !found {
		writeMessage(w, http.StatusNotFound, "service not found")
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
		ServiceID:       serviceID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		ServiceType:     req.ServiceType,
	}
	s.lock.Lock()
	s.appointments = append(s.appointments, appointment)
	s.lock.Unlock()

	writeJSON(w, http.StatusCreated, api.AppointmentResponse{Success: true, Appointment: &appointment})
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	s.lock.RLock()
	filtered := make([]api.Product, 0, len(s.products))
	for _, p := range s.products {
		if !matchProduct(p, q) {
			continue
		}
		filtered = append(filtered, p)
	}
	s.lock.RUnlock()

	sortProducts(filtered, q.Get("sortBy"))

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = defaultPageSize
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	writeJSON(w, http.StatusOK, api.ProductsResponse{
		Success:  true,
		Products: filtered[start:end],
		Pagination: api.Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   total,
			ItemsPerPage: limit,
		},
	})
}

func matchProduct(p api.Product, q map[string][]string) bool {
	get := func(key string) string {
		if v, ok := q[key]; ok && len(v) > 0 {
			return v[0]
		}
		return ""
	}
	if search := strings.ToLower(get("search")); search != "" {
		if !strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Brand), search) {
			return false
		}
	}
	if brand := get("brand"); brand != "" && !strings.EqualFold(p.Brand, brand) {
		return false
	}
	if category := get("category"); category != "" && !strings.EqualFold(p.Category, category) {
		return false
	}
	if minPrice, err := strconv.ParseFloat(get("minPrice"), 64); err == nil && p.Price < minPrice {
		return false
	}
	if maxPrice, err := strconv.ParseFloat(get("maxPrice"), 64); err == nil && p.Price > maxPrice {
		return false
	}
	return true
}

func sortProducts(products []api.Product, sortBy string) {
	switch sortBy {
	case "price-low":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case "price-high":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case "rating":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	default:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	}
}

func (s *Server) handleBrands(w http.ResponseWriter, _ *http.Request) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	writeJSON(w, http.StatusOK, api.FiltersResponse{Success: true, Values: distinct(s.products, func(p api.Product) string { return p.Brand })})
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	writeJSON(w, http.StatusOK, api.FiltersResponse{Success: true, Values: distinct(s.products, func(p api.Product) string { return p.Category })})
}

func distinct(products []api.Product, key func(api.Product) string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, p := range products {
		if k := key(p); k != "" && !seen[k] {
			seen[k] = true
			values = append(values, k)
		}
	}
	sort.Strings(values)
	return values
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	inStock := 0
	ratingSum := 0.0
	for _, p := range s.products {
		if p.InStock {
			inStock++
		}
		ratingSum += p.Rating
	}
	avg := 0.0
	if len(s.products) > 0 {
		avg = ratingSum / float64(len(s.products))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"stats": api.ShopStats{
			TotalProducts:   len(s.products),
			InStockProducts: inStock,
			TotalOrders:     s.orders,
			AverageRating:   avg,
		},
	})
}
