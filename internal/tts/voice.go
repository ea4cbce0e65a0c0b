package tts

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/example/go-thai-tts/internal/config"
)

type Voice struct {
	ID       string `json:"id"`
	Engine   string `json:"engine"`
	Language string `json:"language"`
}

// ErrUnknownVoice is returned when a voice ID is not in the engine's set.
var ErrUnknownVoice = errors.New("unknown voice")

// builtinVoices lists the speakers each engine ships with; the first entry
// per engine is the default. The lunarlist models are single-speaker and
// have no entry.
var builtinVoices = map[string][]Voice{
	config.EngineVachana: {
		{ID: "th_f_1", Engine: config.EngineVachana, Language: "th-th"},
		{ID: "th_m_1", Engine: config.EngineVachana, Language: "th-th"},
		{ID: "th_f_2", Engine: config.EngineVachana, Language: "th-th"},
		{ID: "th_m_2", Engine: config.EngineVachana, Language: "th-th"},
	},
	config.EngineKhanomTan: {
		{ID: "Linda", Engine: config.EngineKhanomTan, Language: "th-th"},
	},
}

// VoiceRegistry resolves voice IDs for one engine.
type VoiceRegistry struct {
	engine string
	voices []Voice
	byID   map[string]Voice
}

func NewVoiceRegistry(engine string) *VoiceRegistry {
	r := &VoiceRegistry{engine: engine}
	r.setVoices(builtinVoices[engine])
	return r
}

// LoadManifest replaces the built-in voice set with entries from a JSON
// manifest. Entries for other engines are ignored.
func (r *VoiceRegistry) LoadManifest(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read voice manifest: %w", err)
	}

	var manifest struct {
		Voices []Voice `json:"voices"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("decode voice manifest: %w", err)
	}

	var voices []Voice
	for _, v := range manifest.Voices {
		if v.ID == "" {
			return errors.New("voice manifest contains empty id")
		}
		if v.Engine != "" && v.Engine != r.engine {
			continue
		}
		voices = append(voices, v)
	}
	r.setVoices(voices)
	return nil
}

func (r *VoiceRegistry) setVoices(voices []Voice) {
	r.voices = append([]Voice(nil), voices...)
	r.byID = make(map[string]Voice, len(voices))
	for _, v := range voices {
		r.byID[v.ID] = v
	}
}

func (r *VoiceRegistry) ListVoices() []Voice {
	return append([]Voice(nil), r.voices...)
}

// Resolve maps a voice ID to a registry entry. An empty ID selects the
// engine default. Engines without a voice set pass the ID through untouched.
func (r *VoiceRegistry) Resolve(id string) (Voice, error) {
	if len(r.voices) == 0 {
		return Voice{ID: id, Engine: r.engine}, nil
	}

	if id == "" {
		return r.voices[0], nil
	}

	v, ok := r.byID[id]
	if !ok {
		return Voice{}, fmt.Errorf("%w: %q (engine %s supports %s)",
			ErrUnknownVoice, id, r.engine, strings.Join(r.ids(), ", "))
	}
	return v, nil
}

func (r *VoiceRegistry) ids() []string {
	ids := make([]string, 0, len(r.voices))
	for _, v := range r.voices {
		ids = append(ids, v.ID)
	}
	return ids
}
