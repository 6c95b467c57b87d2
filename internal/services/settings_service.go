package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"oneconversion/internal/repositories"
	"oneconversion/pkg/utils"
)

const (
	SettingSite      = "site"
	SettingCheckout  = "checkout"
	SettingFooter    = "footer"
	SettingMarketing = "marketing"

	settingsCacheTTL = 5 * time.Minute
)

type SiteSettings struct {
	SiteName       string `json:"site_name"`
	FaviconURL     string `json:"favicon_url"`
	SidebarLogoURL string `json:"sidebar_logo_url"`
}

type CheckoutSettings struct {
	ShowAlert    bool   `json:"show_alert"`
	AlertMessage string `json:"alert_message"`
}

type FooterSettings struct {
	SecurePurchaseTitle string `json:"secure_purchase_title"`
	ProtectedDataTitle  string `json:"protected_data_title"`
	CompanyName         string `json:"company_name"`
	CNPJ                string `json:"cnpj"`
	Address             string `json:"address"`
	ContactEmail        string `json:"contact_email"`
	Copyright           string `json:"copyright"`
	TermsURL            string `json:"terms_url"`
	PrivacyURL          string `json:"privacy_url"`
}

type MarketingScripts struct {
	GTMHead         string `json:"gtm_head"`
	GTMBody         string `json:"gtm_body"`
	FacebookPixelID string `json:"facebook_pixel_id"`
}

// settingDefaults doubles as the registry of valid setting names. First read
// of a missing document persists and returns its default.
var settingDefaults = map[string]interface{}{
	SettingSite: SiteSettings{
		SiteName:   "OneConversion",
		FaviconURL: "/favicon.ico",
	},
	SettingCheckout: CheckoutSettings{
		ShowAlert:    true,
		AlertMessage: "⚠️ Atenção: O não pagamento do Pix pode gerar uma negativação no Serasa e SPC.",
	},
	SettingFooter: FooterSettings{
		SecurePurchaseTitle: "Compra Segura",
		ProtectedDataTitle:  "Dados Protegidos",
		TermsURL:            "#",
		PrivacyURL:          "#",
	},
	SettingMarketing: MarketingScripts{},
}

type SettingsServiceInterface interface {
	GetSetting(ctx context.Context, name string) (json.RawMessage, error)
	SaveSetting(ctx context.Context, name string, payload json.RawMessage) error
}

type SettingsService struct {
	settings repositories.SettingRepositoryInterface
	cache    *redis.Client
	logger   *zap.Logger
}

func NewSettingsService(
	settings repositories.SettingRepositoryInterface,
	cache *redis.Client,
	logger *zap.Logger,
) SettingsServiceInterface {
	return &SettingsService{
		settings: settings,
		cache:    cache,
		logger:   logger,
	}
}

func settingsCacheKey(name string) string {
	return fmt.Sprintf("settings:%s", name)
}

func (s *SettingsService) GetSetting(ctx context.Context, name string) (json.RawMessage, error) {
	if _, known := settingDefaults[name]; !known {
		return nil, utils.ErrSettingNotFound
	}

	if cached, err := s.cache.Get(ctx, settingsCacheKey(name)).Result(); err == nil {
		return json.RawMessage(cached), nil
	} else if err != redis.Nil {
		s.logger.Warn("settings cache read failed, falling back to database",
			zap.String("name", name), zap.Error(err))
	}

	setting, err := s.settings.Find(ctx, name)
	if err != nil {
		s.logger.Error("failed to load setting", zap.String("name", name), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	var payload json.RawMessage
	if setting == nil {
		payload, err = json.Marshal(settingDefaults[name])
		if err != nil {
			return nil, err
		}
		if err := s.settings.Upsert(ctx, name, []byte(payload)); err != nil {
			s.logger.Error("failed to seed default setting", zap.String("name", name), zap.Error(err))
			return nil, utils.ErrDatabaseError
		}
	} else {
		payload = json.RawMessage(setting.Payload)
	}

	s.cacheSet(ctx, name, payload)
	return payload, nil
}

func (s *SettingsService) SaveSetting(ctx context.Context, name string, payload json.RawMessage) error {
	prototype, known := settingDefaults[name]
	if !known {
		return utils.ErrSettingNotFound
	}

	// Round-trip through the typed document so stray fields are dropped and
	// the stored shape stays canonical.
	normalized, err := normalizeSettingPayload(prototype, payload)
	if err != nil {
		return err
	}

	if err := s.settings.Upsert(ctx, name, []byte(normalized)); err != nil {
		s.logger.Error("failed to save setting", zap.String("name", name), zap.Error(err))
		return utils.ErrDatabaseError
	}

	s.cacheSet(ctx, name, normalized)
	return nil
}

func normalizeSettingPayload(prototype interface{}, payload json.RawMessage) (json.RawMessage, error) {
	switch prototype.(type) {
	case SiteSettings:
		var doc SiteSettings
		if err := json.Unmarshal(payload, &doc); err != nil {
			return nil, err
		}
		return json.Marshal(doc)
	case CheckoutSettings:
		var doc CheckoutSettings
		if err := json.Unmarshal(payload, &doc); err != nil {
			return nil, err
		}
		return json.Marshal(doc)
	case FooterSettings:
		var doc FooterSettings
		if err := json.Unmarshal(payload, &doc); err != nil {
			return nil, err
		}
		return json.Marshal(doc)
	case MarketingScripts:
		var doc MarketingScripts
		if err := json.Unmarshal(payload, &doc); err != nil {
			return nil, err
		}
		return json.Marshal(doc)
	default:
		return nil, utils.ErrSettingNotFound
	}
}

func (s *SettingsService) cacheSet(ctx context.Context, name string, payload json.RawMessage) {
	if err := s.cache.Set(ctx, settingsCacheKey(name), string(payload), settingsCacheTTL).Err(); err != nil {
		s.logger.Warn("settings cache write failed", zap.String("name", name), zap.Error(err))
	}
}
