package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpersona/seedgen/internal/domain"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Empty(t, cfg.Persona)
	assert.Equal(t, SinkFile, cfg.Sink)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.False(t, cfg.HasSeed)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), cfg.Range.Start)
	assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), cfg.Range.End)
	assert.Equal(t, 365, cfg.Range.Days())
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("PERSONA", "ROHAN_SOFTWARE_DEV")
	t.Setenv("START_DATE", "2024-06-01")
	t.Setenv("END_DATE", "2024-06-30")
	t.Setenv("SEED", "1234")
	t.Setenv("SINK", "postgres")
	t.Setenv("DB_CONN", "host=db port=5432 user=u password=p dbname=d sslmode=disable")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "ROHAN_SOFTWARE_DEV", cfg.Persona)
	assert.Equal(t, 30, cfg.Range.Days())
	assert.True(t, cfg.HasSeed)
	assert.EqualValues(t, 1234, cfg.Seed)
	assert.Equal(t, SinkPostgres, cfg.Sink)
}

func TestNewConfig_InvertedDateRangeFails(t *testing.T) {
	t.Setenv("START_DATE", "2025-12-31")
	t.Setenv("END_DATE", "2025-01-01")

	_, err := NewConfig()
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestNewConfig_MalformedDateFails(t *testing.T) {
	t.Setenv("START_DATE", "01/01/2025")

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestNewConfig_UnknownSinkFails(t *testing.T) {
	t.Setenv("SINK", "kafka")

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestNewConfig_BadSeedFails(t *testing.T) {
	t.Setenv("SEED", "not-a-number")

	_, err := NewConfig()
	assert.Error(t, err)
}
