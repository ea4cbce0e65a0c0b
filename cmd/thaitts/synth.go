package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/example/go-thai-tts/internal/audio"
	"github.com/example/go-thai-tts/internal/config"
	textpkg "github.com/example/go-thai-tts/internal/text"
	"github.com/example/go-thai-tts/internal/tts"
	"github.com/spf13/cobra"
)

func newSynthCmd() *cobra.Command {
	var text string
	var out string
	var voice string
	var language string
	var chunk bool
	var maxChunkChars int
	var noPreprocess bool

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Synthesize Thai text to WAV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			inputText, err := readInputText(text, os.Stdin)
			if err != nil {
				return err
			}

			// Preprocessing runs before chunking so decimal points never
			// masquerade as sentence boundaries.
			prepared, err := prepareSynthText(inputText, cfg, noPreprocess)
			if err != nil {
				return err
			}

			chunks, err := buildSynthesisChunks(prepared, chunk, maxChunkChars)
			if err != nil {
				return err
			}

			result, err := synthesizeChunks(cmd.Context(), cfg, chunks, voice, language)
			if err != nil {
				return mapSynthError(err, cfg.TTS.Engine)
			}

			return writeSynthOutput(out, result, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to synthesize (if empty, read from stdin)")
	cmd.Flags().StringVar(&out, "out", "out.wav", "Output WAV path ('-' for stdout)")
	cmd.Flags().StringVar(&voice, "voice", "", "Voice ID (overrides config)")
	cmd.Flags().StringVar(&language, "language", "", "Language tag (overrides config)")
	cmd.Flags().BoolVar(&chunk, "chunk", false, "Split text into sentence chunks and synthesize sequentially")
	cmd.Flags().IntVar(&maxChunkChars, "max-chunk-chars", 220, "Maximum characters per chunk when --chunk is enabled")
	cmd.Flags().BoolVar(&noPreprocess, "no-preprocess", false, "Skip numeral and mai yamok expansion")

	return cmd
}

func prepareSynthText(input string, cfg config.Config, noPreprocess bool) (string, error) {
	normalized, err := textpkg.Normalize(input)
	if err != nil {
		return "", err
	}
	if noPreprocess {
		return normalized, nil
	}
	return textpkg.Preprocess(normalized, textpkg.Options{
		ExpandNumbers:  cfg.Preprocess.ExpandNumbers,
		ExpandMaiYamok: cfg.Preprocess.ExpandMaiYamok,
	}), nil
}

func buildSynthesisChunks(input string, chunk bool, maxChunkChars int) ([]string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty input text")
	}
	if !chunk {
		return []string{input}, nil
	}

	chunks := textpkg.ChunkText(input, maxChunkChars)
	out := make([]string, 0, len(chunks))
	for _, c := range chunks {
		c = strings.TrimSpace(c)
		if c != "" {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no non-empty chunks produced from input")
	}
	return out, nil
}

func synthesizeChunks(ctx context.Context, cfg config.Config, chunks []string, voice, language string) ([]byte, error) {
	// Chunks are already preprocessed; the service must not expand again.
	synthCfg := cfg
	synthCfg.Preprocess.ExpandNumbers = false
	synthCfg.Preprocess.ExpandMaiYamok = false

	svc, err := tts.NewService(synthCfg)
	if err != nil {
		return nil, fmt.Errorf("initialize tts service: %w", err)
	}

	results := make([][]byte, 0, len(chunks))
	for i, chunkText := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		wavBytes, err := svc.Synthesize(ctx, chunkText, voice, language)
		if err != nil {
			return nil, fmt.Errorf("chunk %d synthesis failed: %w", i+1, err)
		}
		results = append(results, wavBytes)
	}

	if len(results) == 1 {
		return results[0], nil
	}
	return concatenateWAVChunks(results)
}

func concatenateWAVChunks(chunkWAVs [][]byte) ([]byte, error) {
	clips := make([]audio.Clip, 0, len(chunkWAVs))
	for i, data := range chunkWAVs {
		clip, err := audio.DecodeWAV(data)
		if err != nil {
			return nil, fmt.Errorf("decode chunk %d WAV: %w", i+1, err)
		}
		clips = append(clips, clip)
	}

	merged, err := audio.Concat(clips...)
	if err != nil {
		return nil, fmt.Errorf("merge chunk WAVs: %w", err)
	}

	out, err := audio.EncodeWAV(merged)
	if err != nil {
		return nil, fmt.Errorf("encode merged WAV: %w", err)
	}
	return out, nil
}

func writeSynthOutput(outPath string, wavData []byte, stdout io.Writer) error {
	if outPath == "-" {
		if stdout == nil {
			return fmt.Errorf("stdout writer is nil")
		}
		_, err := stdout.Write(wavData)
		return err
	}
	return os.WriteFile(outPath, wavData, 0o644)
}

func mapSynthError(err error, engine string) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf(
			"synth failed: %s-tts executable not found; set --tts-cli-path or THAITTS_TTS_CLI_PATH: %w",
			engine, err)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("synth failed: engine returned non-zero exit; check stderr details above: %w", err)
	}

	return err
}
