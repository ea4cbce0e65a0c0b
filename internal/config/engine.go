package config

import (
	"fmt"
	"strings"
)

// Supported synthesis engines. LunarlistONNX is the default: it is the only
// engine that needs no separately installed model toolkit.
const (
	EngineLunarlistONNX = "lunarlist-onnx"
	EngineKhanomTan     = "khanomtan"
	EngineLunarlist     = "lunarlist"
	EngineVachana       = "vachana"
)

func NormalizeEngine(raw string) (string, error) {
	engine := strings.ToLower(strings.TrimSpace(raw))
	if engine == "" {
		engine = EngineLunarlistONNX
	}
	// Tolerate the underscore spelling used by the upstream model releases.
	engine = strings.ReplaceAll(engine, "_", "-")
	switch engine {
	case EngineLunarlistONNX, EngineKhanomTan, EngineLunarlist, EngineVachana:
		return engine, nil
	default:
		return "", fmt.Errorf(
			"invalid engine %q (expected %s|%s|%s|%s)",
			raw,
			EngineLunarlistONNX,
			EngineKhanomTan,
			EngineLunarlist,
			EngineVachana,
		)
	}
}
