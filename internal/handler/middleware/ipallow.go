package middleware

import (
	"log/slog"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewIPAllowlist gates a route group to the given source IPs or CIDR
// ranges. An empty list disables the check, which is the development
// default.
func NewIPAllowlist(allowed []string) gin.HandlerFunc {
	if len(allowed) == 0 {
		return func(c *gin.Context) { c.Next() }
	}

	var (
		nets []*net.IPNet
		ips  []net.IP
	)
	for _, entry := range allowed {
		if _, cidr, err := net.ParseCIDR(entry); err == nil {
			nets = append(nets, cidr)
			continue
		}
		if ip := net.ParseIP(entry); ip != nil {
			ips = append(ips, ip)
			continue
		}
		slog.Warn("ignoring unparsable allowlist entry", "entry", entry)
	}

	return func(c *gin.Context) {
		client := net.ParseIP(c.ClientIP())
		if client != nil {
			for _, ip := range ips {
				if ip.Equal(client) {
					c.Next()
					return
				}
			}
			for _, cidr := range nets {
				if cidr.Contains(client) {
					c.Next()
					return
				}
			}
		}

		slog.Warn("rejected request from unlisted source", "client_ip", c.ClientIP(), "path", c.Request.URL.Path)
		c.AbortWithStatus(http.StatusForbidden)
	}
}
