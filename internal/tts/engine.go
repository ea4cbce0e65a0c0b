package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"strings"
	"time"
)

// Request carries one synthesis call to an engine.
type Request struct {
	Text     string
	Voice    string
	Language string
}

// Engine produces WAV bytes from normalized text. Implementations reach an
// external synthesizer; nothing in this package runs a model in-process.
type Engine interface {
	Synthesize(ctx context.Context, req Request) ([]byte, error)
}

// CLIEngine shells out to an engine executable that reads text on stdin and
// writes WAV on stdout.
type CLIEngine struct {
	Name           string // engine name, names the default executable
	ExecutablePath string
	Quiet          bool
	Stderr         io.Writer
}

func (e *CLIEngine) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	exe := e.ExecutablePath
	if exe == "" {
		exe = e.Name + "-tts"
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("empty input text")
	}

	cmd := exec.CommandContext(ctx, exe, buildCLIArgs(req, e.Quiet)...)
	cmd.Stdin = strings.NewReader(req.Text)
	if e.Stderr != nil {
		cmd.Stderr = e.Stderr
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func buildCLIArgs(req Request, quiet bool) []string {
	args := []string{"generate", "--text", "-", "--output", "-"}
	if strings.TrimSpace(req.Voice) != "" {
		args = append(args, "--voice", req.Voice)
	}
	if strings.TrimSpace(req.Language) != "" {
		args = append(args, "--language", req.Language)
	}
	if quiet {
		args = append(args, "--quiet")
	}
	return args
}

// HTTPEngine posts synthesis requests to a model server speaking the same
// JSON contract as this repository's own /tts endpoint.
type HTTPEngine struct {
	baseURL string
	client  *http.Client
}

func NewHTTPEngine(baseURL string, timeout time.Duration) *HTTPEngine {
	return &HTTPEngine{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type httpSynthRequest struct {
	Text     string `json:"text"`
	Voice    string `json:"voice,omitempty"`
	Language string `json:"language,omitempty"`
}

func (e *HTTPEngine) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	body, err := json.Marshal(httpSynthRequest{
		Text:     req.Text,
		Voice:    req.Voice,
		Language: req.Language,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/tts", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("engine request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeEngineError(resp)
	}

	wavData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read engine response: %w", err)
	}
	return wavData, nil
}

func decodeEngineError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		return fmt.Errorf("engine returned %s: %s", resp.Status, payload.Error)
	}
	return fmt.Errorf("engine returned %s", resp.Status)
}
