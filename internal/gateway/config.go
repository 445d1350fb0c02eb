package gateway

import (
	"strconv"
	"strings"

	"muxed/internal/model"
)

// ParseConfig extracts base-index and pane-base-index from the combined
// "show-options -g" / "show-options -g -w" output (one "key value" pair
// per line; unset keys default to 0). Grounded on original_source's
// src/tmux/config.rs Config::from_string.
func ParseConfig(options string) model.MultiplexerConfig {
	values := make(map[string]string)
	for _, line := range strings.Split(options, "\n") {
		fields := strings.SplitN(line, " ", 2)
		if len(fields) != 2 {
			continue
		}
		values[fields[0]] = strings.TrimSpace(fields[1])
	}
	return model.MultiplexerConfig{
		BaseIndex:     parseIntDefault(values["base-index"], 0),
		PaneBaseIndex: parseIntDefault(values["pane-base-index"], 0),
	}
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// GetMultiplexerConfig queries and parses the live base-index/
// pane-base-index configuration.
func (g *Gateway) GetMultiplexerConfig() (model.MultiplexerConfig, error) {
	options, err := g.GetConfig()
	if err != nil {
		return model.MultiplexerConfig{}, err
	}
	return ParseConfig(options), nil
}
