package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	data map[string]string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{data: map[string]string{}}
}

func (s *fakeStorage) Get(ctx context.Context, key string) (string, error) {
	return s.data[key], nil
}

func (s *fakeStorage) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	s.data[key] = fmt.Sprint(value)
	return nil
}

func addRequest(session, id, price string) AddItemToCartRequest {
	return AddItemToCartRequest{
		SessionID:     session,
		PublicationID: id,
		Title:         "Projeto " + id,
		ImageURL:      "https://example.com/" + id + ".png",
		MonthlyPrice:  price,
	}
}

func TestAddItemToCart(t *testing.T) {
	ctx := context.Background()

	t.Run("repeated adds accumulate into one line", func(t *testing.T) {
		u := New(nil, newFakeStorage(), nil)

		var resp CartResponse
		var err error
		for i := 0; i < 5; i++ {
			resp, err = u.AddItemToCart(ctx, addRequest("s1", "a", "29.90"))
			require.NoError(t, err)
		}

		require.Len(t, resp.Items, 1)
		require.Equal(t, int32(5), resp.Items[0].Quantity)
		require.Equal(t, int32(5), resp.TotalItems)
	})

	t.Run("distinct publications keep insertion order", func(t *testing.T) {
		u := New(nil, newFakeStorage(), nil)

		_, err := u.AddItemToCart(ctx, addRequest("s1", "a", "29.90"))
		require.NoError(t, err)
		resp, err := u.AddItemToCart(ctx, addRequest("s1", "b", "15.00"))
		require.NoError(t, err)

		require.Len(t, resp.Items, 2)
		require.Equal(t, "a", resp.Items[0].PublicationID)
		require.Equal(t, "b", resp.Items[1].PublicationID)
	})

	t.Run("sessions do not share carts", func(t *testing.T) {
		u := New(nil, newFakeStorage(), nil)

		_, err := u.AddItemToCart(ctx, addRequest("s1", "a", "29.90"))
		require.NoError(t, err)

		resp, err := u.GetCart(ctx, GetCartRequest{SessionID: "s2"})
		require.NoError(t, err)
		require.Empty(t, resp.Items)
	})
}

func TestUpdateCartItem(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) *UseCase {
		t.Helper()
		u := New(nil, newFakeStorage(), nil)
		_, err := u.AddItemToCart(ctx, addRequest("s1", "a", "29.90"))
		require.NoError(t, err)
		_, err = u.AddItemToCart(ctx, addRequest("s1", "b", "15.00"))
		require.NoError(t, err)
		return u
	}

	t.Run("sets the quantity", func(t *testing.T) {
		u := seed(t)

		resp, err := u.UpdateCartItem(ctx, UpdateCartItemRequest{SessionID: "s1", PublicationID: "a", Quantity: 7})
		require.NoError(t, err)
		require.Equal(t, int32(7), resp.Items[0].Quantity)
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		u := seed(t)

		resp, err := u.UpdateCartItem(ctx, UpdateCartItemRequest{SessionID: "s1", PublicationID: "a", Quantity: 0})
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		require.Equal(t, "b", resp.Items[0].PublicationID)
	})

	t.Run("negative quantity removes the line", func(t *testing.T) {
		u := seed(t)

		resp, err := u.UpdateCartItem(ctx, UpdateCartItemRequest{SessionID: "s1", PublicationID: "a", Quantity: -3})
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		require.Equal(t, "b", resp.Items[0].PublicationID)
	})

	t.Run("unknown publication is a no-op", func(t *testing.T) {
		u := seed(t)

		resp, err := u.UpdateCartItem(ctx, UpdateCartItemRequest{SessionID: "s1", PublicationID: "zzz", Quantity: 3})
		require.NoError(t, err)
		require.Len(t, resp.Items, 2)
		require.Equal(t, int32(2), resp.TotalItems)
	})
}

func TestDeleteItemFromCart(t *testing.T) {
	ctx := context.Background()
	u := New(nil, newFakeStorage(), nil)

	_, err := u.AddItemToCart(ctx, addRequest("s1", "a", "29.90"))
	require.NoError(t, err)
	_, err = u.AddItemToCart(ctx, addRequest("s1", "b", "15.00"))
	require.NoError(t, err)

	resp, err := u.DeleteItemFromCart(ctx, DeleteItemFromCartRequest{SessionID: "s1", PublicationID: "a"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	require.Equal(t, "b", resp.Items[0].PublicationID)

	resp, err = u.DeleteItemFromCart(ctx, DeleteItemFromCartRequest{SessionID: "s1", PublicationID: "a"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
}

func TestCartRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := newFakeStorage()

	u := New(nil, storage, nil)
	_, err := u.AddItemToCart(ctx, addRequest("s1", "a", "29.90"))
	require.NoError(t, err)
	_, err = u.AddItemToCart(ctx, addRequest("s1", "b", "15.00"))
	require.NoError(t, err)
	_, err = u.AddItemToCart(ctx, addRequest("s1", "a", "29.90"))
	require.NoError(t, err)

	before, err := u.GetCart(ctx, GetCartRequest{SessionID: "s1"})
	require.NoError(t, err)

	// A fresh usecase over the same storage sees the identical cart.
	reloaded := New(nil, storage, nil)
	after, err := reloaded.GetCart(ctx, GetCartRequest{SessionID: "s1"})
	require.NoError(t, err)
	require.Equal(t, before.Items, after.Items)
}

func TestLoadCartFailsOpen(t *testing.T) {
	ctx := context.Background()
	storage := newFakeStorage()
	storage.data["cart:s1"] = "{not json"

	u := New(nil, storage, nil)
	resp, err := u.GetCart(ctx, GetCartRequest{SessionID: "s1"})
	require.NoError(t, err)
	require.Empty(t, resp.Items)
	require.Equal(t, "0.00", resp.TotalPrice)
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()
	storage := newFakeStorage()

	u := New(nil, storage, nil)
	_, err := u.AddItemToCart(ctx, addRequest("s1", "a", "29.90"))
	require.NoError(t, err)

	require.NoError(t, u.ClearCart(ctx, ClearCartRequest{SessionID: "s1"}))

	require.Equal(t, "[]", storage.data["cart:s1"])

	resp, err := u.GetCart(ctx, GetCartRequest{SessionID: "s1"})
	require.NoError(t, err)
	require.Empty(t, resp.Items)
	require.Equal(t, int32(0), resp.TotalItems)
}
