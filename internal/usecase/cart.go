package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

const cartKeyPrefix = "cart:"

func cartKey(sessionID string) string {
	return cartKeyPrefix + sessionID
}

// loadCart restores the cart snapshot for a session. A missing or
// malformed snapshot yields an empty cart rather than an error, so a
// broken entry can never lock a visitor out of the store.
func (u *UseCase) loadCart(ctx context.Context, sessionID string) ([]CartItem, error) {

	raw, err := u.carts.Get(ctx, cartKey(sessionID))
	if err != nil {
		return nil, fmt.Errorf("failed to load cart for session %s: %w", sessionID, err)
	}
	if raw == "" {
		return []CartItem{}, nil
	}

	var items []CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("discarding malformed cart snapshot for session %s: %v", sessionID, err)
		return []CartItem{}, nil
	}

	return items, nil
}

func (u *UseCase) saveCart(ctx context.Context, sessionID string, items []CartItem) error {

	if items == nil {
		items = []CartItem{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize cart for session %s: %w", sessionID, err)
	}

	if err := u.carts.Set(ctx, cartKey(sessionID), string(raw), 0); err != nil {
		return fmt.Errorf("failed to persist cart for session %s: %w", sessionID, err)
	}

	return nil
}

func (u *UseCase) cartResponse(items []CartItem) (CartResponse, error) {

	total, err := TotalPrice(items)
	if err != nil {
		return CartResponse{}, err
	}

	return CartResponse{
		Items:      items,
		TotalItems: TotalItems(items),
		TotalPrice: total.StringFixed(2),
	}, nil
}

func (u *UseCase) GetCart(ctx context.Context, req GetCartRequest) (CartResponse, error) {

	items, err := u.loadCart(ctx, req.SessionID)
	if err != nil {
		return CartResponse{}, err
	}

	return u.cartResponse(items)
}

// AddItemToCart appends a new line with quantity 1, or bumps the
// quantity when the publication is already in the cart.
func (u *UseCase) AddItemToCart(ctx context.Context, req AddItemToCartRequest) (CartResponse, error) {

	items, err := u.loadCart(ctx, req.SessionID)
	if err != nil {
		return CartResponse{}, err
	}

	found := false
	for i := range items {
		if items[i].PublicationID == req.PublicationID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, CartItem{
			PublicationID: req.PublicationID,
			Title:         req.Title,
			ImageURL:      req.ImageURL,
			MonthlyPrice:  req.MonthlyPrice,
			Quantity:      1,
		})
	}

	if err := u.saveCart(ctx, req.SessionID, items); err != nil {
		return CartResponse{}, err
	}

	return u.cartResponse(items)
}

// UpdateCartItem sets the quantity of an existing line. A quantity of
// zero or less removes the line instead of keeping a dead record.
func (u *UseCase) UpdateCartItem(ctx context.Context, req UpdateCartItemRequest) (CartResponse, error) {

	if req.Quantity <= 0 {
		return u.DeleteItemFromCart(ctx, DeleteItemFromCartRequest{
			SessionID:     req.SessionID,
			PublicationID: req.PublicationID,
		})
	}

	items, err := u.loadCart(ctx, req.SessionID)
	if err != nil {
		return CartResponse{}, err
	}

	for i := range items {
		if items[i].PublicationID == req.PublicationID {
			items[i].Quantity = req.Quantity
			break
		}
	}

	if err := u.saveCart(ctx, req.SessionID, items); err != nil {
		return CartResponse{}, err
	}

	return u.cartResponse(items)
}

func (u *UseCase) DeleteItemFromCart(ctx context.Context, req DeleteItemFromCartRequest) (CartResponse, error) {

	items, err := u.loadCart(ctx, req.SessionID)
	if err != nil {
		return CartResponse{}, err
	}

	kept := items[:0]
	for _, item := range items {
		if item.PublicationID != req.PublicationID {
			kept = append(kept, item)
		}
	}

	if err := u.saveCart(ctx, req.SessionID, kept); err != nil {
		return CartResponse{}, err
	}

	return u.cartResponse(kept)
}

func (u *UseCase) ClearCart(ctx context.Context, req ClearCartRequest) error {
	return u.saveCart(ctx, req.SessionID, []CartItem{})
}
