package usecase

import (
	"context"
	"time"
)

type Interface interface {
	ListPublications(ctx context.Context) (resp ListPublicationsResponse, err error)
	GetPublication(ctx context.Context, req GetPublicationRequest) (resp GetPublicationResponse, err error)
	CreatePublication(ctx context.Context, req CreatePublicationRequest) (resp CreatePublicationResponse, err error)
	UpdatePublication(ctx context.Context, req UpdatePublicationRequest) (resp UpdatePublicationResponse, err error)
	DeletePublication(ctx context.Context, req DeletePublicationRequest) error
	GetWhatsappNumber(ctx context.Context) (string, error)
	GetSiteSettings(ctx context.Context) (resp SiteSettingsResponse, err error)
	GetAllSettings(ctx context.Context) (map[string]string, error)
	SaveSettings(ctx context.Context, req SaveSettingsRequest) error
	GetCart(ctx context.Context, req GetCartRequest) (resp CartResponse, err error)
	AddItemToCart(ctx context.Context, req AddItemToCartRequest) (resp CartResponse, err error)
	UpdateCartItem(ctx context.Context, req UpdateCartItemRequest) (resp CartResponse, err error)
	DeleteItemFromCart(ctx context.Context, req DeleteItemFromCartRequest) (resp CartResponse, err error)
	ClearCart(ctx context.Context, req ClearCartRequest) error
	Checkout(ctx context.Context, req CheckoutRequest) (resp CheckoutResponse, err error)
}

// CartStorage is the durable snapshot store behind the session cart.
// pkg/redis satisfies it; tests plug in a map.
type CartStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// EventSender receives a fire-and-forget notification for every
// dispatched checkout. A nil sender disables notifications.
type EventSender interface {
	Send(key string, message string) error
}
