package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/searchwire/searchwire/internal/reqfile"
	"github.com/searchwire/searchwire/xcontent"
)

func newFilterCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Work with filter trees",
	}
	cmd.AddCommand(newFilterRenderCmd(a))
	return cmd
}

func newFilterRenderCmd(a *app) *cobra.Command {
	var file, format string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a filter definition to its query document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.Output.Format
			}

			raw, err := readInput(file)
			if err != nil {
				return err
			}
			def, err := reqfile.ParseFilter(raw)
			if err != nil {
				return err
			}
			flt, err := def.Filter()
			if err != nil {
				return err
			}

			b := xcontent.NewBuilder()
			if err := flt.Source(b, nil); err != nil {
				return fmt.Errorf("render filter: %w", err)
			}
			doc, err := b.Bytes()
			if err != nil {
				return fmt.Errorf("render filter: %w", err)
			}

			if format == "pretty" {
				var indented bytes.Buffer
				if err := json.Indent(&indented, doc, "", "  "); err != nil {
					return fmt.Errorf("indent document: %w", err)
				}
				doc = indented.Bytes()
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(doc))
			a.log.Debug("filter rendered", zap.Int("bytes", len(doc)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Filter definition YAML (- for stdin)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: json, pretty")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
