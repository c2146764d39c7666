package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// parseCIDRs turns addresses and ranges into networks. Bare addresses are
// treated as single-host ranges; unparsable entries are skipped.
func parseCIDRs(entries []string) []*net.IPNet {
	out := make([]*net.IPNet, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if !strings.Contains(entry, "/") {
			ip := net.ParseIP(entry)
			if ip == nil {
				continue
			}
			bits := 32
			if ip.To4() == nil {
				bits = 128
			}
			out = append(out, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		if _, ipNet, err := net.ParseCIDR(entry); err == nil {
			out = append(out, ipNet)
		}
	}
	return out
}

func containsIP(nets []*net.IPNet, ip net.IP) bool {
	for _, n := range nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// IPFilterMiddleware blocks requests based on client address. Blocked
// ranges always win; a non-empty allowlist admits only its ranges.
func IPFilterMiddleware(blocklist, allowlist []string) gin.HandlerFunc {
	blocked := parseCIDRs(blocklist)
	allowed := parseCIDRs(allowlist)

	return func(c *gin.Context) {
		clientIP := net.ParseIP(c.ClientIP())
		if clientIP == nil {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		if containsIP(blocked, clientIP) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		if len(allowed) > 0 && !containsIP(allowed, clientIP) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Next()
	}
}
