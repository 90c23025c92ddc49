//go:build linux || darwin

package main

import (
	"context"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/bnema/overpane/internal/logging"
)

// coreDumpsEnv turns core dump setup off when set to 0, false, no or off.
const coreDumpsEnv = "OVERPANE_CORE_DUMPS"

// coreDumpSetup is what enableCrashForensics did, kept until logging exists.
type coreDumpSetup struct {
	disabled bool
	err      error
	before   unix.Rlimit
	after    unix.Rlimit
}

var startupCoreDumps coreDumpSetup

// enableCrashForensics lets a crash inside GTK's C code leave a core dump
// next to the Go traceback.
func enableCrashForensics() {
	startupCoreDumps = setupCoreDumps(os.Getenv(coreDumpsEnv))
}

func setupCoreDumps(env string) coreDumpSetup {
	if !coreDumpsEnabled(env) {
		return coreDumpSetup{disabled: true}
	}
	debug.SetTraceback("crash")

	var s coreDumpSetup
	if s.err = unix.Getrlimit(unix.RLIMIT_CORE, &s.before); s.err != nil {
		return s
	}
	s.after = s.before
	if raised, ok := raisedCoreLimit(s.before); ok {
		if s.err = unix.Setrlimit(unix.RLIMIT_CORE, &raised); s.err == nil {
			s.after = raised
		}
	}
	return s
}

func coreDumpsEnabled(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "0", "false", "no", "off":
		return false
	}
	return true
}

// raisedCoreLimit lifts the soft limit to the hard one. ok is false when
// there is nothing to raise.
func raisedCoreLimit(lim unix.Rlimit) (unix.Rlimit, bool) {
	if lim.Cur >= lim.Max {
		return lim, false
	}
	lim.Cur = lim.Max
	return lim, true
}

func logCoreDumpLimits(ctx context.Context) {
	log := logging.FromContext(logging.WithComponent(ctx, "gtk"))
	s := startupCoreDumps
	switch {
	case s.disabled:
		log.Debug().Str("env", coreDumpsEnv).Msg("core dumps left at system defaults")
	case s.err != nil:
		log.Warn().Err(s.err).Msg("core dump limit could not be adjusted")
	default:
		log.Debug().
			Str("soft", rlimitString(s.after.Cur)).
			Str("hard", rlimitString(s.after.Max)).
			Bool("raised", s.after.Cur != s.before.Cur).
			Msg("core dumps enabled")
	}
}

func rlimitString(v uint64) string {
	if v == unix.RLIM_INFINITY {
		return "unlimited"
	}
	return strconv.FormatUint(v, 10)
}
