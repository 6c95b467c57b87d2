package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"oneconversion/pkg/utils"
)

// unreachableRedis exercises the cache-miss fallback path: every cache call
// fails and the service must keep working against the repository alone.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
}

func TestGetSettingUnknownName(t *testing.T) {
	svc := NewSettingsService(newFakeSettingRepo(), unreachableRedis(), zaptest.NewLogger(t))

	_, err := svc.GetSetting(context.Background(), "does-not-exist")

	assert.ErrorIs(t, err, utils.ErrSettingNotFound)
}

func TestGetSettingSeedsDefault(t *testing.T) {
	repo := newFakeSettingRepo()
	svc := NewSettingsService(repo, unreachableRedis(), zaptest.NewLogger(t))

	payload, err := svc.GetSetting(context.Background(), SettingCheckout)
	require.NoError(t, err)

	var doc CheckoutSettings
	require.NoError(t, json.Unmarshal(payload, &doc))
	assert.True(t, doc.ShowAlert)
	assert.Contains(t, doc.AlertMessage, "Serasa")

	assert.Equal(t, 1, repo.upserts, "default must be persisted on first read")

	// Second read comes from the repository, not another seed.
	_, err = svc.GetSetting(context.Background(), SettingCheckout)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.upserts)
}

func TestGetSettingReturnsStoredDocument(t *testing.T) {
	repo := newFakeSettingRepo()
	stored := `{"site_name":"Minha Loja","favicon_url":"/icon.png","sidebar_logo_url":""}`
	require.NoError(t, repo.Upsert(context.Background(), SettingSite, []byte(stored)))
	svc := NewSettingsService(repo, unreachableRedis(), zaptest.NewLogger(t))

	payload, err := svc.GetSetting(context.Background(), SettingSite)
	require.NoError(t, err)

	var doc SiteSettings
	require.NoError(t, json.Unmarshal(payload, &doc))
	assert.Equal(t, "Minha Loja", doc.SiteName)
}

func TestSaveSettingNormalizesPayload(t *testing.T) {
	repo := newFakeSettingRepo()
	svc := NewSettingsService(repo, unreachableRedis(), zaptest.NewLogger(t))

	raw := `{"site_name":"Loja Nova","favicon_url":"/fav.ico","unknown_field":"dropped"}`
	require.NoError(t, svc.SaveSetting(context.Background(), SettingSite, []byte(raw)))

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(repo.settings[SettingSite], &doc))
	assert.Equal(t, "Loja Nova", doc["site_name"])
	assert.NotContains(t, doc, "unknown_field")
}

func TestSaveSettingUnknownName(t *testing.T) {
	svc := NewSettingsService(newFakeSettingRepo(), unreachableRedis(), zaptest.NewLogger(t))

	err := svc.SaveSetting(context.Background(), "nope", []byte(`{}`))

	assert.ErrorIs(t, err, utils.ErrSettingNotFound)
}

func TestSaveSettingRejectsMalformedDocument(t *testing.T) {
	svc := NewSettingsService(newFakeSettingRepo(), unreachableRedis(), zaptest.NewLogger(t))

	err := svc.SaveSetting(context.Background(), SettingCheckout, []byte(`{"show_alert":"not-a-bool"}`))

	assert.Error(t, err)
}
