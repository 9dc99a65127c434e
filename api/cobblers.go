package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// CobblerQuery are the nearby-cobbler search parameters.
type CobblerQuery struct {
	Lat          float64
	Lng          float64
	Radius       float64
	Services     []string
	VerifiedOnly bool
	Search       string
}

func (q CobblerQuery) values() url.Values {
	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(q.Lat, 'f', -1, 64))
	values.Set("lng", strconv.FormatFloat(q.Lng, 'f', -1, 64))
	if q.Radius > 0 {
		values.Set("radius", strconv.FormatFloat(q.Radius, 'f', -1, 64))
	}
	if len(q.Services) > 0 {
		values.Set("services", strings.Join(q.Services, ","))
	}
	if q.VerifiedOnly {
		values.Set("verified", "true")
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	return values
}

// Cobblers searches for cobblers near a location.
func (c *Client) Cobblers(ctx context.Context, query CobblerQuery) ([]Cobbler, error) {
	var resp CobblersResponse
	if err := c.gw.Get(ctx, RouteCobblers, query.values(), &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("cobbler search failed: %s", orDefault(resp.Message, "unknown error"))
	}
	return resp.Cobblers, nil
}

// BookCobbler books an appointment with a cobbler.
func (c *Client) BookCobbler(ctx context.Context, cobblerID string, req AppointmentRequest) (*Appointment, error) {
	if err := c.validator.ValidateAppointment(req); err != nil {
		return nil, err
	}
	var resp AppointmentResponse
	path := fmt.Sprintf("%s/%s/book", RouteCobblers, cobblerID)
	if err := c.gw.Post(ctx, path, req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Appointment == nil {
		return nil, fmt.Errorf("booking failed: %s", orDefault(resp.Message, "unknown error"))
	}
	return resp.Appointment, nil
}
