package ratelimit

import (
	"net/http"
	"strings"
)

// healthPath is never rate limited.
const healthPath = "/health"

var unlimited = EndpointConfig{Path: healthPath, Method: http.MethodGet}

// MatchEndpoint finds the limit for a request. Exact paths win over prefixes,
// longer prefixes over shorter ones, and a specific method over "*".
// It returns nil when no entry applies.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == healthPath && method == http.MethodGet {
		cfg := unlimited
		return &cfg
	}

	var best *EndpointConfig
	bestScore := -1
	for i := range configs {
		cfg := &configs[i]
		if cfg.Method != method && cfg.Method != "*" {
			continue
		}

		score := -1
		switch {
		case cfg.Path == path:
			score = 2 * (len(cfg.Path) + 1)
		case strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path):
			score = 2 * len(cfg.Path)
		}
		if score < 0 {
			continue
		}
		if cfg.Method == method {
			score++
		}
		if score > bestScore {
			best, bestScore = cfg, score
		}
	}
	return best
}
