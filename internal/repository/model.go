package repository

import "time"

// AuthClient is the per-request capability derived from a verified bearer
// token. Mutating operations require one so writes are always tied to an
// authenticated user, never to ambient credentials.
type AuthClient struct {
	UserID string
	Token  string
}

type Publication struct {
	ID           string    `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	ImageURL     string    `json:"imageUrl" db:"image_url"`
	MonthlyPrice string    `json:"monthlyPrice" db:"monthly_price"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Setting struct {
	ID    string `json:"id" db:"id"`
	Key   string `json:"key" db:"key"`
	Value string `json:"value" db:"value"`
}

type CreatePublicationRequest struct {
	Title        string
	Description  string
	ImageURL     string
	MonthlyPrice string
}

type UpdatePublicationRequest struct {
	Title        *string
	Description  *string
	ImageURL     *string
	MonthlyPrice *string
}

type SettingPair struct {
	Key   string
	Value string
}
