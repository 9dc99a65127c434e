package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ProductQuery are the product list filters; zero values are omitted from
// the query string and the backend applies its defaults.
type ProductQuery struct {
	Page     int
	Limit    int
	SortBy   string
	Search   string
	Brand    string
	Category string
	MinPrice float64
	MaxPrice float64
}

func (q ProductQuery) values() url.Values {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.SortBy != "" {
		values.Set("sortBy", q.SortBy)
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Brand != "" {
		values.Set("brand", q.Brand)
	}
	if q.Category != "" {
		values.Set("category", q.Category)
	}
	if q.MinPrice > 0 {
		values.Set("minPrice", strconv.FormatFloat(q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice > 0 {
		values.Set("maxPrice", strconv.FormatFloat(q.MaxPrice, 'f', -1, 64))
	}
	return values
}

// Services lists the repair services.
func (c *Client) Services(ctx context.Context) ([]Service, error) {
	var resp ServicesResponse
	if err := c.gw.Get(ctx, RouteServices, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Services, nil
}

// BookService books an appointment for a repair service.
func (c *Client) BookService(ctx context.Context, serviceID string, req AppointmentRequest) (*Appointment, error) {
	if err := c.validator.ValidateAppointment(req); err != nil {
		return nil, err
	}
	var resp AppointmentResponse
	path := fmt.Sprintf("%s/%s/book", RouteServices, serviceID)
	if err := c.gw.Post(ctx, path, req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Appointment == nil {
		return nil, fmt.Errorf("booking failed: %s", orDefault(resp.Message, "unknown error"))
	}
	return resp.Appointment, nil
}

// Products fetches one page of the product catalog.
func (c *Client) Products(ctx context.Context, query ProductQuery) (*ProductsResponse, error) {
	var resp ProductsResponse
	if err := c.gw.Get(ctx, RouteProducts, query.values(), &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("product fetch failed: %s", orDefault(resp.Message, "unknown error"))
	}
	return &resp, nil
}

// Brands returns the brand filter metadata. Best-effort: the endpoint is on
// the silent list.
func (c *Client) Brands(ctx context.Context) ([]string, error) {
	var resp FiltersResponse
	if err := c.gw.Get(ctx, RouteProductBrands, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// Categories returns the category filter metadata.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var resp FiltersResponse
	if err := c.gw.Get(ctx, RouteProductCategories, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// Stats returns the aggregate shop figures.
func (c *Client) Stats(ctx context.Context) (*ShopStats, error) {
	var resp struct {
		Success bool      `json:"success"`
		Stats   ShopStats `json:"stats"`
	}
	if err := c.gw.Get(ctx, RouteShopStats, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Stats, nil
}
