// Package tts dispatches normalized text to an external synthesis engine
// and hands back the resulting audio.
package tts

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/example/go-thai-tts/internal/config"
	textpkg "github.com/example/go-thai-tts/internal/text"
)

type Service struct {
	cfg    config.Config
	engine Engine
	voices *VoiceRegistry
	opts   textpkg.Options
}

func NewService(cfg config.Config) (*Service, error) {
	name, err := config.NormalizeEngine(cfg.TTS.Engine)
	if err != nil {
		return nil, err
	}

	voices := NewVoiceRegistry(name)
	if cfg.TTS.ManifestPath != "" {
		if err := voices.LoadManifest(cfg.TTS.ManifestPath); err != nil {
			return nil, err
		}
	}

	var engine Engine
	if cfg.TTS.BaseURL != "" {
		engine = NewHTTPEngine(cfg.TTS.BaseURL, time.Duration(cfg.Server.RequestTimeout)*time.Second)
	} else {
		engine = &CLIEngine{
			Name:           name,
			ExecutablePath: cfg.TTS.CLIPath,
			Quiet:          cfg.TTS.Quiet,
			Stderr:         os.Stderr,
		}
	}

	return &Service{
		cfg:    cfg,
		engine: engine,
		voices: voices,
		opts: textpkg.Options{
			ExpandNumbers:  cfg.Preprocess.ExpandNumbers,
			ExpandMaiYamok: cfg.Preprocess.ExpandMaiYamok,
		},
	}, nil
}

// Preprocess runs the text normalization pipeline with the configured stages.
func (s *Service) Preprocess(input string) string {
	return textpkg.Preprocess(input, s.opts)
}

func (s *Service) ListVoices() []Voice {
	return s.voices.ListVoices()
}

// Synthesize normalizes and preprocesses input, resolves the voice, and
// delegates to the engine. The returned bytes are a complete WAV file.
func (s *Service) Synthesize(ctx context.Context, input, voiceID, language string) ([]byte, error) {
	normalized, err := textpkg.Normalize(input)
	if err != nil {
		return nil, err
	}

	processed := textpkg.Preprocess(normalized, s.opts)

	if voiceID == "" {
		voiceID = s.cfg.TTS.Voice
	}
	voice, err := s.voices.Resolve(voiceID)
	if err != nil {
		return nil, err
	}

	if language == "" {
		language = s.cfg.TTS.Language
	}

	return s.engine.Synthesize(ctx, Request{
		Text:     processed,
		Voice:    voice.ID,
		Language: language,
	})
}

// SynthesizeToFile synthesizes input and writes the WAV to path, creating a
// temp file when path is empty. It returns the path written.
func (s *Service) SynthesizeToFile(ctx context.Context, input, voiceID, language, path string) (string, error) {
	wavData, err := s.Synthesize(ctx, input, voiceID, language)
	if err != nil {
		return "", err
	}

	if path == "" {
		f, err := os.CreateTemp("", "thaitts-*.wav")
		if err != nil {
			return "", fmt.Errorf("create temp output: %w", err)
		}
		path = f.Name()
		if _, err := f.Write(wavData); err != nil {
			_ = f.Close()
			return "", fmt.Errorf("write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("close %s: %w", path, err)
		}
		return path, nil
	}

	if err := os.WriteFile(path, wavData, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
