package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vitrine-lab/vitrineserv/internal/repository"
)

const (
	DefaultWhatsappNumber = "5511999999999"
	DefaultSiteTitle      = "Meu Portfólio"

	settingSiteTitle      = "site_title"
	settingHeroImage      = "hero_image"
	settingWhatsappNumber = "whatsapp_number"
)

type UseCase struct {
	r      repository.Interface
	carts  CartStorage
	sender EventSender
}

func New(r repository.Interface, carts CartStorage, sender EventSender) *UseCase {
	return &UseCase{
		r:      r,
		carts:  carts,
		sender: sender,
	}
}

func toPublication(p repository.Publication) Publication {
	return Publication{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		MonthlyPrice: p.MonthlyPrice,
		CreatedAt:    p.CreatedAt,
	}
}

func toRepositoryClient(c AuthClient) repository.AuthClient {
	return repository.AuthClient{
		UserID: c.UserID,
		Token:  c.Token,
	}
}

func (u *UseCase) ListPublications(ctx context.Context) (resp ListPublicationsResponse, err error) {

	publications, err := u.r.ListPublications(ctx)
	if err != nil {
		return resp, fmt.Errorf("failed to list publications: %w", err)
	}

	resp.Publications = make([]Publication, 0, len(publications))
	for _, p := range publications {
		resp.Publications = append(resp.Publications, toPublication(p))
	}

	return resp, nil
}

func (u *UseCase) GetPublication(ctx context.Context, req GetPublicationRequest) (resp GetPublicationResponse, err error) {

	publication, err := u.r.GetPublication(ctx, req.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return resp, ErrNotFound
	}
	if err != nil {
		return resp, fmt.Errorf("failed to get publication: %w", err)
	}

	resp.Publication = toPublication(publication)
	return resp, nil
}

func validatePublicationInput(title, description, imageURL, monthlyPrice string) *ValidationError {

	verr := newValidationError()

	if strings.TrimSpace(title) == "" {
		verr.Fields["title"] = "title is required"
	}
	if strings.TrimSpace(description) == "" {
		verr.Fields["description"] = "description is required"
	}
	if strings.TrimSpace(imageURL) == "" {
		verr.Fields["imageUrl"] = "imageUrl is required"
	}
	if strings.TrimSpace(monthlyPrice) == "" {
		verr.Fields["monthlyPrice"] = "monthlyPrice is required"
	} else if _, err := decimal.NewFromString(monthlyPrice); err != nil {
		verr.Fields["monthlyPrice"] = "monthlyPrice must be a decimal number"
	}

	if len(verr.Fields) == 0 {
		return nil
	}
	return verr
}

func (u *UseCase) CreatePublication(ctx context.Context, req CreatePublicationRequest) (resp CreatePublicationResponse, err error) {

	if verr := validatePublicationInput(req.Title, req.Description, req.ImageURL, req.MonthlyPrice); verr != nil {
		return resp, verr
	}

	publication, err := u.r.CreatePublication(ctx, toRepositoryClient(req.Client), repository.CreatePublicationRequest{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		MonthlyPrice: req.MonthlyPrice,
	})
	if err != nil {
		return resp, fmt.Errorf("failed to create publication: %w", err)
	}

	resp.Publication = toPublication(publication)
	return resp, nil
}

func (u *UseCase) UpdatePublication(ctx context.Context, req UpdatePublicationRequest) (resp UpdatePublicationResponse, err error) {

	verr := newValidationError()
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		verr.Fields["title"] = "title cannot be empty"
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		verr.Fields["description"] = "description cannot be empty"
	}
	if req.ImageURL != nil && strings.TrimSpace(*req.ImageURL) == "" {
		verr.Fields["imageUrl"] = "imageUrl cannot be empty"
	}
	if req.MonthlyPrice != nil {
		if _, perr := decimal.NewFromString(*req.MonthlyPrice); perr != nil {
			verr.Fields["monthlyPrice"] = "monthlyPrice must be a decimal number"
		}
	}
	if len(verr.Fields) > 0 {
		return resp, verr
	}

	publication, err := u.r.UpdatePublication(ctx, toRepositoryClient(req.Client), req.ID, repository.UpdatePublicationRequest{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		MonthlyPrice: req.MonthlyPrice,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return resp, ErrNotFound
	}
	if err != nil {
		return resp, fmt.Errorf("failed to update publication: %w", err)
	}

	resp.Publication = toPublication(publication)
	return resp, nil
}

func (u *UseCase) DeletePublication(ctx context.Context, req DeletePublicationRequest) error {

	if err := u.r.DeletePublication(ctx, toRepositoryClient(req.Client), req.ID); err != nil {
		return fmt.Errorf("failed to delete publication: %w", err)
	}

	return nil
}

func (u *UseCase) settingOrDefault(ctx context.Context, key, fallback string) (string, error) {

	setting, err := u.r.GetSetting(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		return fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get setting %q: %w", key, err)
	}

	return setting.Value, nil
}

func (u *UseCase) GetWhatsappNumber(ctx context.Context) (string, error) {
	return u.settingOrDefault(ctx, settingWhatsappNumber, DefaultWhatsappNumber)
}

func (u *UseCase) GetSiteSettings(ctx context.Context) (resp SiteSettingsResponse, err error) {

	title, err := u.settingOrDefault(ctx, settingSiteTitle, DefaultSiteTitle)
	if err != nil {
		return resp, err
	}

	heroImage, err := u.settingOrDefault(ctx, settingHeroImage, "")
	if err != nil {
		return resp, err
	}

	return SiteSettingsResponse{
		Title:     title,
		HeroImage: heroImage,
	}, nil
}

func (u *UseCase) GetAllSettings(ctx context.Context) (map[string]string, error) {

	settings, err := u.r.GetAllSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	result := map[string]string{}
	for _, setting := range settings {
		switch setting.Key {
		case settingSiteTitle:
			result["siteTitle"] = setting.Value
		case settingHeroImage:
			result["heroImage"] = setting.Value
		case settingWhatsappNumber:
			result["whatsappNumber"] = setting.Value
		}
	}

	return result, nil
}

func (u *UseCase) SaveSettings(ctx context.Context, req SaveSettingsRequest) error {

	var pairs []repository.SettingPair
	if req.SiteTitle != nil {
		pairs = append(pairs, repository.SettingPair{Key: settingSiteTitle, Value: *req.SiteTitle})
	}
	if req.HeroImage != nil {
		pairs = append(pairs, repository.SettingPair{Key: settingHeroImage, Value: *req.HeroImage})
	}
	if req.WhatsappNumber != nil {
		pairs = append(pairs, repository.SettingPair{Key: settingWhatsappNumber, Value: *req.WhatsappNumber})
	}

	if len(pairs) == 0 {
		return nil
	}

	if err := u.r.SaveSettings(ctx, toRepositoryClient(req.Client), pairs); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}
