package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

// chdir is t.Chdir from Go 1.24, reimplemented for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestInitConfigDefaults(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir()) // make sure no config.yaml is picked up

	InitConfig()

	assert.Equal(t, "https://storagescan-newton.0g.ai/tool", AppConfig.WebsiteURL)
	assert.Equal(t, 60, AppConfig.TransactionDelay)
	assert.Equal(t, 10, AppConfig.ControlTimeout)
	assert.Equal(t, 20, AppConfig.PopupTimeout)
	assert.Equal(t, 30, AppConfig.SuccessTimeout)
	assert.Equal(t, 3, AppConfig.SettleDelay)
	assert.Equal(t, 3, AppConfig.ConfirmAttempts)
	assert.Equal(t, 3, AppConfig.ConfirmRetries)
	assert.Equal(t, 3, AppConfig.SuccessRetries)
	assert.Equal(t, 3, AppConfig.AcquireRetries)
	assert.False(t, AppConfig.Headless)
	assert.NotEmpty(t, AppConfig.ScratchPath)
	assert.NotEmpty(t, AppConfig.BrowserPath)
}

func TestConfigFileOverridesDefaults(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	chdir(t, dir)

	content := "transaction_delay: 15\npopup_timeout: 5\n"
	if err := os.WriteFile("config.yaml", []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	InitConfig()

	assert.Equal(t, 15, AppConfig.TransactionDelay)
	assert.Equal(t, 5, AppConfig.PopupTimeout)
	// Untouched keys keep their defaults.
	assert.Equal(t, 30, AppConfig.SuccessTimeout)
}
