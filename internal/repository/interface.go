package repository

import "context"

type Interface interface {
	ListPublications(ctx context.Context) ([]Publication, error)
	GetPublication(ctx context.Context, id string) (Publication, error)
	CreatePublication(ctx context.Context, client AuthClient, req CreatePublicationRequest) (Publication, error)
	UpdatePublication(ctx context.Context, client AuthClient, id string, req UpdatePublicationRequest) (Publication, error)
	DeletePublication(ctx context.Context, client AuthClient, id string) error
	GetSetting(ctx context.Context, key string) (Setting, error)
	GetAllSettings(ctx context.Context) ([]Setting, error)
	SaveSettings(ctx context.Context, client AuthClient, pairs []SettingPair) error
}
