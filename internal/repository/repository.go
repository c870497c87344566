package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	trmsqlx "github.com/avito-tech/go-transaction-manager/sqlx"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("not found")

type StoreRepository struct {
	db        *sqlx.DB
	getter    *trmsqlx.CtxGetter
	trManager *manager.Manager
}

func NewStoreRepository(db *sqlx.DB) *StoreRepository {
	return &StoreRepository{
		db:        db,
		getter:    trmsqlx.DefaultCtxGetter,
		trManager: manager.Must(trmsqlx.NewDefaultFactory(db)),
	}
}

func (r *StoreRepository) ListPublications(ctx context.Context) ([]Publication, error) {

	publications := []Publication{}

	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &publications, ListPublicationsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list publications: %w", err)
	}

	return publications, nil
}

func (r *StoreRepository) GetPublication(ctx context.Context, id string) (Publication, error) {

	var publication Publication

	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &publication, GetPublicationSQL, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Publication{}, ErrNotFound
	}
	if err != nil {
		return Publication{}, fmt.Errorf("failed to get publication: %w", err)
	}

	return publication, nil
}

func (r *StoreRepository) CreatePublication(ctx context.Context, client AuthClient, req CreatePublicationRequest) (Publication, error) {

	if client.UserID == "" {
		return Publication{}, errors.New("create publication requires an authenticated client")
	}

	var publication Publication

	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &publication, InsertPublicationSQL,
		req.Title, req.Description, req.ImageURL, req.MonthlyPrice)
	if err != nil {
		return Publication{}, fmt.Errorf("failed to create publication: %w", err)
	}

	return publication, nil
}

func (r *StoreRepository) UpdatePublication(ctx context.Context, client AuthClient, id string, req UpdatePublicationRequest) (Publication, error) {

	if client.UserID == "" {
		return Publication{}, errors.New("update publication requires an authenticated client")
	}

	var publication Publication

	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &publication, UpdatePublicationSQL,
		id, req.Title, req.Description, req.ImageURL, req.MonthlyPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return Publication{}, ErrNotFound
	}
	if err != nil {
		return Publication{}, fmt.Errorf("failed to update publication: %w", err)
	}

	return publication, nil
}

func (r *StoreRepository) DeletePublication(ctx context.Context, client AuthClient, id string) error {

	if client.UserID == "" {
		return errors.New("delete publication requires an authenticated client")
	}

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, DeletePublicationSQL, id)
	if err != nil {
		return fmt.Errorf("failed to delete publication: %w", err)
	}

	return nil
}

func (r *StoreRepository) GetSetting(ctx context.Context, key string) (Setting, error) {

	var setting Setting

	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &setting, GetSettingSQL, key)
	if errors.Is(err, sql.ErrNoRows) {
		return Setting{}, ErrNotFound
	}
	if err != nil {
		return Setting{}, fmt.Errorf("failed to get setting %q: %w", key, err)
	}

	return setting, nil
}

func (r *StoreRepository) GetAllSettings(ctx context.Context) ([]Setting, error) {

	settings := []Setting{}

	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &settings, GetAllSettingsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	return settings, nil
}

// SaveSettings upserts every pair inside one transaction so a partial
// admin update can never leave the settings table half-written.
func (r *StoreRepository) SaveSettings(ctx context.Context, client AuthClient, pairs []SettingPair) error {

	if client.UserID == "" {
		return errors.New("save settings requires an authenticated client")
	}

	return r.trManager.Do(ctx, func(ctx context.Context) error {
		for _, pair := range pairs {
			var setting Setting
			err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &setting, UpsertSettingSQL, pair.Key, pair.Value)
			if err != nil {
				return fmt.Errorf("failed to upsert setting %q: %w", pair.Key, err)
			}
		}
		return nil
	})
}
