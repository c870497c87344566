package usecase

import "time"

type AuthClient struct {
	UserID string
	Token  string
}

type Publication struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	MonthlyPrice string    `json:"monthlyPrice"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ListPublicationsResponse struct {
	Publications []Publication
}

type GetPublicationRequest struct {
	ID string
}

type GetPublicationResponse struct {
	Publication Publication
}

type CreatePublicationRequest struct {
	Client       AuthClient
	Title        string
	Description  string
	ImageURL     string
	MonthlyPrice string
}

type CreatePublicationResponse struct {
	Publication Publication
}

type UpdatePublicationRequest struct {
	Client       AuthClient
	ID           string
	Title        *string
	Description  *string
	ImageURL     *string
	MonthlyPrice *string
}

type UpdatePublicationResponse struct {
	Publication Publication
}

type DeletePublicationRequest struct {
	Client AuthClient
	ID     string
}

type SiteSettingsResponse struct {
	Title     string `json:"title"`
	HeroImage string `json:"heroImage"`
}

type SaveSettingsRequest struct {
	Client         AuthClient
	SiteTitle      *string
	HeroImage      *string
	WhatsappNumber *string
}

// CartItem is one line of the session cart. MonthlyPrice stays a
// decimal-as-string end to end, exactly as the catalog stores it.
type CartItem struct {
	PublicationID string `json:"publicationId"`
	Title         string `json:"title"`
	ImageURL      string `json:"imageUrl"`
	MonthlyPrice  string `json:"monthlyPrice"`
	Quantity      int32  `json:"quantity"`
}

type GetCartRequest struct {
	SessionID string
}

type CartResponse struct {
	Items      []CartItem `json:"items"`
	TotalItems int32      `json:"totalItems"`
	TotalPrice string     `json:"totalPrice"`
}

type AddItemToCartRequest struct {
	SessionID     string
	PublicationID string
	Title         string
	ImageURL      string
	MonthlyPrice  string
}

type UpdateCartItemRequest struct {
	SessionID     string
	PublicationID string
	Quantity      int32
}

type DeleteItemFromCartRequest struct {
	SessionID     string
	PublicationID string
}

type ClearCartRequest struct {
	SessionID string
}

type CheckoutData struct {
	Name          string
	City          string
	Observation   string
	PaymentMethod string
}

type CheckoutRequest struct {
	SessionID string
	CheckoutData
}

type CheckoutResponse struct {
	WhatsAppURL string `json:"whatsappUrl"`
}
