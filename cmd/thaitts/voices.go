package main

import (
	"fmt"
	"os"

	"github.com/example/go-thai-tts/internal/tts"
	"github.com/spf13/cobra"
)

func newVoicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "voices",
		Short: "List the voices available for the configured engine",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			svc, err := tts.NewService(cfg)
			if err != nil {
				return err
			}

			voices := svc.ListVoices()
			if len(voices) == 0 {
				_, err = fmt.Fprintln(os.Stdout, "(engine has a single built-in voice)")
				return err
			}

			for _, v := range voices {
				if _, err := fmt.Fprintf(os.Stdout, "%s\t%s\t%s\n", v.ID, v.Engine, v.Language); err != nil {
					return err
				}
			}
			return nil
		},
	}

	return cmd
}
