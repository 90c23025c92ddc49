//go:build linux || darwin

package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"

	"github.com/bnema/overpane/internal/logging"
)

func TestCoreDumpsEnabled(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"", true},
		{"1", true},
		{"yes", true},
		{"0", false},
		{"false", false},
		{" OFF ", false},
		{"no", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, coreDumpsEnabled(tt.env))
		})
	}
}

func TestRaisedCoreLimit(t *testing.T) {
	tests := []struct {
		name   string
		in     unix.Rlimit
		want   unix.Rlimit
		wantOK bool
	}{
		{"soft below hard", unix.Rlimit{Cur: 0, Max: 4096}, unix.Rlimit{Cur: 4096, Max: 4096}, true},
		{"soft below unlimited", unix.Rlimit{Cur: 0, Max: unix.RLIM_INFINITY}, unix.Rlimit{Cur: unix.RLIM_INFINITY, Max: unix.RLIM_INFINITY}, true},
		{"already at hard", unix.Rlimit{Cur: 4096, Max: 4096}, unix.Rlimit{Cur: 4096, Max: 4096}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := raisedCoreLimit(tt.in)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupCoreDumps_DisabledByEnv(t *testing.T) {
	s := setupCoreDumps("0")

	assert.True(t, s.disabled)
	assert.NoError(t, s.err)
}

func TestLogCoreDumpLimits(t *testing.T) {
	tests := []struct {
		name  string
		setup coreDumpSetup
		want  []string
	}{
		{
			name:  "disabled",
			setup: coreDumpSetup{disabled: true},
			want:  []string{"core dumps left at system defaults", `"env":"OVERPANE_CORE_DUMPS"`},
		},
		{
			name:  "failed",
			setup: coreDumpSetup{err: errors.New("operation not permitted")},
			want:  []string{`"level":"warn"`, "operation not permitted"},
		},
		{
			name: "raised",
			setup: coreDumpSetup{
				before: unix.Rlimit{Cur: 0, Max: unix.RLIM_INFINITY},
				after:  unix.Rlimit{Cur: unix.RLIM_INFINITY, Max: unix.RLIM_INFINITY},
			},
			want: []string{`"soft":"unlimited"`, `"raised":true`, `"component":"gtk"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			prev := startupCoreDumps
			t.Cleanup(func() { startupCoreDumps = prev })
			startupCoreDumps = tt.setup

			var buf bytes.Buffer
			ctx := logging.WithContext(context.Background(), logging.New(logging.Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf}))

			// Act
			logCoreDumpLimits(ctx)

			// Assert
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
