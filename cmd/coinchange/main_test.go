package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	opterrors "github.com/ducminhle1904/coinchange-ga/internal/errors"
	"github.com/ducminhle1904/coinchange-ga/pkg/config"
)

func TestExitCode(t *testing.T) {
	_, cfgErr := config.NewRunConfigManager().LoadConfig("", func(string) (string, bool) { return "", false },
		map[string]interface{}{"population_size": 1})

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"cancelled", opterrors.NewCancelledError("orchestrator", "RunBatch", context.Canceled), exitInterrupted},
		{"config validation", cfgErr, exitUsage},
		{"configuration", opterrors.NewConfigurationError("main", "LoadEnv", errors.New("bad line")), exitUsage},
		{"flag parse", fmt.Errorf("targets: %w", errors.New(`invalid integer "abc"`)), exitUsage},
		{"report output", errors.Join(nil, opterrors.NewOutputError("reporting", "ReportBatch", os.ErrPermission)), exitFailure},
		{"targets file", opterrors.NewInputError("cli", "LoadTargets", os.ErrNotExist), exitFailure},
		{"unknown", errors.New("boom"), exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
