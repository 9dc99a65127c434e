// Package api is the typed client for the SoleCraft REST backend. Every
// call goes through the gateway pipeline, so requests arrive decorated with
// the stored credential and 401s are handled uniformly.
package api

import (
	"github.com/solecraft/client-go/gateway"
)

// Client groups the backend endpoints behind typed methods.
type Client struct {
	gw        *gateway.Client
	validator *Validator
}

func New(gw *gateway.Client) *Client {
	return &Client{
		gw:        gw,
		validator: NewValidator(),
	}
}
