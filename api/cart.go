package api

import (
	"context"
	"fmt"
)

type cartAddRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type cartUpdateRequest struct {
	Quantity int `json:"quantity"`
}

// Cart returns the current cart contents.
func (c *Client) Cart(ctx context.Context) ([]CartItem, error) {
	var resp CartResponse
	if err := c.gw.Get(ctx, RouteCart, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// AddToCart adds quantity units of a product to the cart.
func (c *Client) AddToCart(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	var resp CartResponse
	if err := c.gw.Post(ctx, RouteCartAdd, cartAddRequest{ProductID: productID, Quantity: quantity}, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("add to cart failed: %s", orDefault(resp.Message, "unknown error"))
	}
	return nil
}

// UpdateCartItem sets the quantity of an existing cart line.
func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int) error {
	var resp CartResponse
	path := fmt.Sprintf("%s/%s", RouteCartUpdate, itemID)
	if err := c.gw.Put(ctx, path, cartUpdateRequest{Quantity: quantity}, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("cart update failed: %s", orDefault(resp.Message, "unknown error"))
	}
	return nil
}

// RemoveFromCart deletes a cart line.
func (c *Client) RemoveFromCart(ctx context.Context, itemID string) error {
	path := fmt.Sprintf("%s/%s", RouteCartRemove, itemID)
	return c.gw.Delete(ctx, path, nil)
}

// Wishlist returns the wishlisted product IDs.
func (c *Client) Wishlist(ctx context.Context) ([]string, error) {
	var resp WishlistResponse
	if err := c.gw.Get(ctx, RouteWishlist, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// AddToWishlist wishlists a product.
func (c *Client) AddToWishlist(ctx context.Context, productID string) error {
	path := fmt.Sprintf("%s/%s", RouteWishlist, productID)
	return c.gw.Post(ctx, path, nil, nil)
}

// RemoveFromWishlist removes a product from the wishlist.
func (c *Client) RemoveFromWishlist(ctx context.Context, productID string) error {
	path := fmt.Sprintf("%s/%s", RouteWishlist, productID)
	return c.gw.Delete(ctx, path, nil)
}
