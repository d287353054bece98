// Package fetcher downloads article pages and extracts their readable text
// with go-readability. Outbound requests are restricted to public hosts.
package fetcher

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"net/url"
	"syscall"

	"newatalk/internal/usecase/fetch"
)

// validateURL accepts only absolute http(s) URLs. With denyPrivateIPs every
// address the host resolves to must be public.
func validateURL(ctx context.Context, urlStr string, denyPrivateIPs bool) error {
	u, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("%w: parse error: %v", fetch.ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q not allowed (only http/https)", fetch.ErrInvalidURL, u.Scheme)
	}
	hostname := u.Hostname()
	if hostname == "" {
		return fmt.Errorf("%w: empty hostname", fetch.ErrInvalidURL)
	}
	if u.User != nil {
		return fmt.Errorf("%w: credentials in URL", fetch.ErrInvalidURL)
	}
	if !denyPrivateIPs {
		return nil
	}

	addrs, err := net.DefaultResolver.LookupNetIP(ctx, "ip", hostname)
	if err != nil {
		return fmt.Errorf("%w: DNS lookup failed for %s: %v", fetch.ErrInvalidURL, hostname, err)
	}
	for _, addr := range addrs {
		if isPrivateIP(addr) {
			return fmt.Errorf("%w: hostname %q resolves to %s", fetch.ErrPrivateIP, hostname, addr)
		}
	}
	return nil
}

// isPrivateIP covers loopback, RFC 1918 / RFC 4193 private ranges, link-local,
// and the unspecified address.
func isPrivateIP(addr netip.Addr) bool {
	addr = addr.Unmap()
	return addr.IsLoopback() ||
		addr.IsPrivate() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsUnspecified()
}

// denyPrivateControl is a net.Dialer Control hook that refuses private peers.
// It closes the gap between validateURL's lookup and the actual connection.
func denyPrivateControl(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("%w: %v", fetch.ErrInvalidURL, err)
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return fmt.Errorf("%w: %v", fetch.ErrInvalidURL, err)
	}
	if isPrivateIP(addr) {
		return fmt.Errorf("%w: dial %s", fetch.ErrPrivateIP, addr)
	}
	return nil
}
