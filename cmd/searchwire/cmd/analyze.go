package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/searchwire/searchwire"
	"github.com/searchwire/searchwire/internal/reqfile"
	"github.com/searchwire/searchwire/streamio"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Work with analyze requests",
	}
	cmd.AddCommand(newAnalyzeValidateCmd(a))
	cmd.AddCommand(newAnalyzeEncodeCmd(a))
	cmd.AddCommand(newAnalyzeDecodeCmd(a))
	return cmd
}

func newAnalyzeValidateCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an analyze request definition",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadAnalyzeRequest(file)
			if err != nil {
				return err
			}
			if ve := req.Validate(); ve != nil {
				for _, f := range ve.Failures {
					fmt.Fprintln(cmd.OutOrStdout(), "invalid:", f)
				}
				return ve
			}
			a.log.Info("request is valid",
				zap.String("index", req.Index()),
				zap.Int("text_len", len(req.Text())),
			)
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Request definition YAML (- for stdin)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newAnalyzeEncodeCmd(a *app) *cobra.Command {
	var file, out string
	var compress bool

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode an analyze request to its binary wire form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("compress") {
				compress = a.cfg.Output.Compress
			}

			req, err := loadAnalyzeRequest(file)
			if err != nil {
				return err
			}
			if ve := req.Validate(); ve != nil {
				return ve
			}

			var buf bytes.Buffer
			if compress {
				cout, err := streamio.NewCompressedOutput(&buf)
				if err != nil {
					return err
				}
				if err := req.WriteTo(cout.Output); err != nil {
					return err
				}
				if err := cout.Close(); err != nil {
					return err
				}
			} else if err := req.WriteTo(streamio.NewOutput(&buf)); err != nil {
				return err
			}

			if err := writeOutput(cmd, out, buf.Bytes()); err != nil {
				return err
			}
			a.log.Info("request encoded",
				zap.Int("bytes", buf.Len()),
				zap.Bool("compressed", compress),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Request definition YAML (- for stdin)")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "Output file (- for stdout)")
	cmd.Flags().BoolVar(&compress, "compress", false, "zstd-compress the encoded request")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newAnalyzeDecodeCmd(a *app) *cobra.Command {
	var file string
	var compress bool

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a binary analyze request and print it as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(file)
			if err != nil {
				return err
			}

			var in *streamio.Input
			if compress {
				cin, err := streamio.NewCompressedInput(bytes.NewReader(raw))
				if err != nil {
					return err
				}
				defer cin.Close()
				in = cin.Input
			} else {
				in = streamio.NewInput(bytes.NewReader(raw))
			}

			var req searchwire.AnalyzeRequest
			if err := req.ReadFrom(in); err != nil {
				return err
			}

			rendered, err := yaml.Marshal(reqfile.FromRequest(&req))
			if err != nil {
				return fmt.Errorf("render request: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(rendered)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Encoded request file (- for stdin)")
	cmd.Flags().BoolVar(&compress, "compress", false, "Input is zstd-compressed")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func loadAnalyzeRequest(file string) (*searchwire.AnalyzeRequest, error) {
	raw, err := readInput(file)
	if err != nil {
		return nil, err
	}
	f, err := reqfile.ParseAnalyze(raw)
	if err != nil {
		return nil, err
	}
	return f.Request()
}

func readInput(file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(os.Stdin)
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	return raw, nil
}

func writeOutput(cmd *cobra.Command, out string, raw []byte) error {
	if out == "" || out == "-" {
		_, err := cmd.OutOrStdout().Write(raw)
		return err
	}
	if err := os.WriteFile(out, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}
