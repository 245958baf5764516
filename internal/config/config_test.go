package config_test

import (
	"testing"
	"time"

	"ksa-hris/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PAYSLIP_STORAGE", "")
	t.Setenv("EOS_ACCRUAL_POLICY", "")
	t.Setenv("PORT", "")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "local", cfg.Payslip.Storage)
	assert.Equal(t, "tiered", cfg.EOS.AccrualPolicy)
	assert.Equal(t, 3*time.Second, cfg.Kafka.PollInterval)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("s3 without bucket", func(t *testing.T) {
		t.Setenv("PAYSLIP_STORAGE", "s3")
		t.Setenv("S3_BUCKET", "")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("unknown accrual policy", func(t *testing.T) {
		t.Setenv("PAYSLIP_STORAGE", "local")
		t.Setenv("EOS_ACCRUAL_POLICY", "quarterly")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("bad retries", func(t *testing.T) {
		t.Setenv("DB_MAX_RETRIES", "many")

		_, err := config.Load()
		assert.Error(t, err)
	})
}
