package api

import (
	"context"
	"fmt"

	"github.com/solecraft/client-go/users"
)

// Login exchanges credentials for a token and profile. A non-2xx status or
// a success=false envelope both surface as errors carrying the backend's
// message.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	if err := c.validator.ValidateCredentials(email, password); err != nil {
		return nil, err
	}
	var resp AuthResponse
	if err := c.gw.Post(ctx, RouteAuthLogin, loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("login failed: %s", orDefault(resp.Message, "unknown error"))
	}
	return &resp, nil
}

// Register creates an account; on success the backend also returns a token
// so the new user is logged in immediately.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if err := c.validator.ValidateRegistration(req); err != nil {
		return nil, err
	}
	var resp AuthResponse
	if err := c.gw.Post(ctx, RouteAuthRegister, req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("registration failed: %s", orDefault(resp.Message, "unknown error"))
	}
	return &resp, nil
}

// Verify asks the backend whether the decorated credential is still valid.
// It satisfies session.Verifier.
func (c *Client) Verify(ctx context.Context) (bool, error) {
	var resp VerifyResponse
	if err := c.gw.Post(ctx, RouteAuthVerify, nil, &resp); err != nil {
		return false, err
	}
	return resp.Success, nil
}

// ForgotPassword starts a password reset for the given email.
func (c *Client) ForgotPassword(ctx context.Context, email string) (*ForgotPasswordResponse, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	var resp ForgotPasswordResponse
	if err := c.gw.Post(ctx, RouteAuthForgotPassword, forgotPasswordRequest{Email: email}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Profile fetches the authoritative user profile.
func (c *Client) Profile(ctx context.Context) (*users.Profile, error) {
	var resp ProfileResponse
	if err := c.gw.Get(ctx, RouteAuthProfile, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.User == nil {
		return nil, fmt.Errorf("profile fetch failed: %s", orDefault(resp.Message, "unknown error"))
	}
	return resp.User, nil
}

func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
