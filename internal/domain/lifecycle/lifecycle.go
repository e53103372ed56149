// Package lifecycle holds shared bounds for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each start or stop hook (DB ping, HTTP shutdown, scheduler stop).
const DefaultTimeout = 15 * time.Second
