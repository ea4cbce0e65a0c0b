package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	textpkg "github.com/example/go-thai-tts/internal/text"
	"github.com/spf13/cobra"
)

func newPreprocessCmd() *cobra.Command {
	var text string
	var expandNumbers bool
	var expandMaiYamok bool

	cmd := &cobra.Command{
		Use:   "preprocess",
		Short: "Normalize Thai text for synthesis and print the result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			input, err := readInputText(text, os.Stdin)
			if err != nil {
				return err
			}

			normalized, err := textpkg.Normalize(input)
			if err != nil {
				return err
			}

			opts := textpkg.Options{
				ExpandNumbers:  cfg.Preprocess.ExpandNumbers,
				ExpandMaiYamok: cfg.Preprocess.ExpandMaiYamok,
			}
			if cmd.Flags().Changed("expand-numbers") {
				opts.ExpandNumbers = expandNumbers
			}
			if cmd.Flags().Changed("expand-mai-yamok") {
				opts.ExpandMaiYamok = expandMaiYamok
			}

			_, err = fmt.Fprintln(os.Stdout, textpkg.Preprocess(normalized, opts))
			return err
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to preprocess (if empty, read from stdin)")
	cmd.Flags().BoolVar(&expandNumbers, "expand-numbers", true, "Spell out Arabic numerals as Thai words")
	cmd.Flags().BoolVar(&expandMaiYamok, "expand-mai-yamok", true, "Expand mai yamok repetition marks")

	return cmd
}

func readInputText(text string, stdin io.Reader) (string, error) {
	if strings.TrimSpace(text) != "" {
		return text, nil
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	input := strings.TrimSpace(string(b))
	if input == "" {
		return "", fmt.Errorf("either provide --text or pipe text on stdin")
	}
	return input, nil
}
