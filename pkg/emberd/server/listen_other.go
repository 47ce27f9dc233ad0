//go:build !linux

package server

import (
	"fmt"
	"net"
)

// listenBacklog matches spec.md §4.H's fixed backlog of 256, though only
// the Linux build (listen.go) can actually request it from the OS; other
// platforms fall back to whatever net.Listen negotiates.
const listenBacklog = 256

// listen is the non-Linux fallback: plain net.Listen. SO_REUSEADDR is
// net.Listen's default behavior on most platforms already; the explicit
// backlog tuning in listen.go is Linux-specific (golang.org/x/sys/unix's
// raw socket path), matching where shockwave/pkg/shockwave/socket itself
// draws the platform line (tuning_linux.go vs tuning_other.go).
func listen(port int) (net.Listener, error) {
	return net.Listen("tcp4", fmt.Sprintf(":%d", port))
}
