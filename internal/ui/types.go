package ui

import (
	"time"

	gopsutil_net "github.com/shirou/gopsutil/v3/net"
)

// Safar is built on Bubble Tea, which follows the Elm Architecture
// (Model-View-Update). These shared types describe the pieces that move
// through that loop.

// Mock timings. The prototype has no backend, so anything asynchronous is a
// timer: the ride search "finds" a captain after searchDuration, a full OTP
// auto-submits shortly after the last digit, the pickup panel settles after a
// drag, and a rated trip returns home on its own.
const (
	searchDuration      = 3000 * time.Millisecond
	otpAutoSubmitDelay  = 300 * time.Millisecond
	panelSettleDuration = 220 * time.Millisecond
	ratingHomeDelay     = 500 * time.Millisecond

	networkPollInterval = 2500 * time.Millisecond
)

type (
	networkStatusMsg struct {
		online   bool
		counters gopsutil_net.IOCountersStat
		t        time.Time
		err      error
	}

	// Timer messages carry the id they were scheduled with; a stale id
	// (screen changed, timer rescheduled) is dropped.
	searchDoneMsg    struct{ id int }
	otpAutoSubmitMsg struct{ id int }
	panelSettleMsg   struct{ id int }
	ratingDoneMsg    struct{ id int }
)

// ConfigChangedMsg signals that a file in the config directory changed on
// disk. Both config.toml and prefs.toml trigger it.
type ConfigChangedMsg struct {
	Path string
}
