package logpkg

import (
	"testing"

	"github.com/go-petr/pet-ledger/pkg/configpkg"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name        string
		environment string
		wantLevel   zerolog.Level
	}{
		{
			name:        "Production",
			environment: "production",
			wantLevel:   zerolog.InfoLevel,
		},
		{
			name:        "Development",
			environment: "development",
			wantLevel:   zerolog.TraceLevel,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			logger := New(configpkg.Config{Environment: tc.environment})

			require.Equal(t, tc.wantLevel, logger.GetLevel())
		})
	}
}
