package srv

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"
)

// StatusLine is the line printed once the server is listening.
func StatusLine(mode Mode, ip string, port int) string {
	addr := net.JoinHostPort(ip, strconv.Itoa(port))
	if m, ok := mode.(DirMode); ok {
		return fmt.Sprintf("Serving %s on %s", m.Root, addr)
	}
	return fmt.Sprintf("Serving on %s", addr)
}

// lookupIPAddr is swapped out by tests.
var lookupIPAddr = net.DefaultResolver.LookupIPAddr

// ResolveIP returns the first IPv4 address of the local host name. When the
// name does not resolve to one, the host name itself is returned.
func ResolveIP(ctx context.Context) (string, error) {
	host, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("hostname: %w", err)
	}
	addrs, err := lookupIPAddr(ctx, host)
	if err != nil {
		return host, nil
	}
	for _, a := range addrs {
		if v4 := a.IP.To4(); v4 != nil {
			return v4.String(), nil
		}
	}
	return host, nil
}
