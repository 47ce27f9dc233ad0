//go:build linux

package server

import (
	"fmt"
	"net"
	"os"

	"golang.org/x/sys/unix"
)

// listenBacklog matches spec.md §4.H's fixed backlog of 256.
const listenBacklog = 256

// listen binds an IPv4 stream socket on port with SO_REUSEADDR and a
// listen backlog of 256, per spec.md §4.H. Go's net package doesn't
// expose a backlog knob (it derives one from the OS's somaxconn), so
// this builds the socket directly with golang.org/x/sys/unix instead of
// going through net.Listen — the same kind of raw-fd tuning
// shockwave/pkg/shockwave/socket performs, just for the one knob this
// spec actually asks for.
func listen(port int) (net.Listener, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, fmt.Errorf("server: socket: %w", err)
	}

	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("server: setsockopt SO_REUSEADDR: %w", err)
	}

	addr := unix.SockaddrInet4{Port: port}
	if err := unix.Bind(fd, &addr); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("server: bind: %w", err)
	}

	if err := unix.Listen(fd, listenBacklog); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("server: listen: %w", err)
	}

	file := os.NewFile(uintptr(fd), fmt.Sprintf("emberd-listener-%d", port))
	ln, err := net.FileListener(file)
	file.Close()
	if err != nil {
		return nil, fmt.Errorf("server: FileListener: %w", err)
	}
	return ln, nil
}
