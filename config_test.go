package splice_test

import (
	"testing"

	"github.com/fwojciec/splice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkers_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		markers splice.Markers
		wantErr string
	}{
		{name: "valid pair", markers: splice.Markers{Start: "BALANCE SHEETS", End: "OPERATIONS"}},
		{name: "missing start", markers: splice.Markers{End: "OPERATIONS"}, wantErr: "start marker required"},
		{name: "blank end", markers: splice.Markers{Start: "BALANCE SHEETS", End: "  "}, wantErr: "end marker required"},
		{name: "identical markers", markers: splice.Markers{Start: "X", End: "X"}, wantErr: "start and end markers must differ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.markers.Validate()

			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, splice.EINVALID, splice.ErrorCode(err))
			assert.Equal(t, tt.wantErr, splice.ErrorMessage(err))
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("default config is valid", func(t *testing.T) {
		t.Parallel()

		cfg := splice.DefaultConfig()

		require.NoError(t, cfg.Validate())
		assert.Equal(t, "CONSOLIDATED BALANCE SHEETS", cfg.Markers.Start)
		assert.Equal(t, splice.DefaultTags, cfg.Tags)
		assert.Equal(t, "ix:", cfg.WrapperPrefix)
	})

	t.Run("rejects empty tag list", func(t *testing.T) {
		t.Parallel()

		cfg := splice.DefaultConfig()
		cfg.Tags = nil

		err := cfg.Validate()

		assert.Equal(t, splice.EINVALID, splice.ErrorCode(err))
	})

	t.Run("rejects blank tag", func(t *testing.T) {
		t.Parallel()

		cfg := splice.DefaultConfig()
		cfg.Tags = []string{"h1", ""}

		err := cfg.Validate()

		assert.Equal(t, splice.EINVALID, splice.ErrorCode(err))
	})
}

func TestProfile_Config(t *testing.T) {
	t.Parallel()

	t.Run("fills defaults", func(t *testing.T) {
		t.Parallel()

		cfg := splice.Profile{Start: "A", End: "B"}.Config()

		assert.Equal(t, splice.Markers{Start: "A", End: "B"}, cfg.Markers)
		assert.Equal(t, splice.DefaultTags, cfg.Tags)
		assert.Equal(t, splice.DefaultWrapperPrefix, cfg.WrapperPrefix)
		assert.Equal(t, splice.DefaultTitle, cfg.Title)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		t.Parallel()

		cfg := splice.Profile{Start: "A", End: "B", Tags: []string{"td"}, WrapperPrefix: "xbrli:", Title: "T"}.Config()

		assert.Equal(t, []string{"td"}, cfg.Tags)
		assert.Equal(t, "xbrli:", cfg.WrapperPrefix)
		assert.Equal(t, "T", cfg.Title)
	})

	t.Run("does not alias default tags", func(t *testing.T) {
		t.Parallel()

		cfg := splice.Profile{Start: "A", End: "B"}.Config()
		cfg.Tags[0] = "changed"

		assert.Equal(t, "h1", splice.DefaultTags[0])
	})
}

func TestProfileNames(t *testing.T) {
	t.Parallel()

	names := splice.ProfileNames(splice.BuiltinProfiles())

	assert.Equal(t, []string{"balance-sheet", "cash-flows", "income-statement"}, names)
}
