// seehuhn.de/go/sigil - name sigils on a 26-letter wheel
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package main provides the sigil binary entry point.
// Sigil draws names as paths on a 26-letter wheel, as SVG previews,
// PNG images and PDF files, and serves them over HTTP.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"seehuhn.de/go/sigil"
	"seehuhn.de/go/sigil/internal/config"
	"seehuhn.de/go/sigil/internal/server"
	"seehuhn.de/go/sigil/raster"
	"seehuhn.de/go/sigil/scene"
	"seehuhn.de/go/sigil/sigilpdf"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "sigil"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the persistent flags shared by all subcommands.
type options struct {
	configPath string
	logLevel   string
}

// load reads the configuration file, if any, and sets up logging.
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if o.configPath != "" {
		var err error
		cfg, err = config.LoadFromFile(o.configPath)
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(cfg.Log.Level)}))
	slog.SetDefault(logger)
	return cfg, nil
}

// parseLevel maps a level name to a slog level; unknown names mean info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Draw names as sigils on a 26-letter wheel",
		Long: `Sigil places the letters A to Z on a wheel and traces a name through
them.  Every repeated letter alternates between the outer and the inner
ring of points, so each occurrence gets a point of its own.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		traceCmd(),
		svgCmd(opts),
		pngCmd(opts),
		pdfCmd(opts),
		serveCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)

	return cmd
}

func traceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace NAME",
		Short: "Print the ring binding and position of every letter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeTrace(cmd.OutOrStdout(), args[0])
		},
	}
}

func writeTrace(w io.Writer, name string) error {
	l := sigil.DefaultLayout()
	for i, b := range sigil.Trace(name) {
		pt, ok := l.Point(b.Letter, b.Ring, sigil.PreviewSigilRadii)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%2d  %c  %-5s  %7.2f %7.2f\n", i, b.Letter, b.Ring, pt.X, pt.Y); err != nil {
			return err
		}
	}
	return nil
}

func svgCmd(opts *options) *cobra.Command {
	var (
		output  string
		letters bool
	)
	cmd := &cobra.Command{
		Use:   "svg NAME",
		Short: "Write the wheel diagram as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("letters") {
				letters = cfg.Preview.ShowLetters
			}
			s := sigil.Preview(args[0], letters, sigil.PreviewStyle())
			if output == "" || output == "-" {
				return scene.WriteSVG(cmd.OutOrStdout(), s)
			}
			return writeFile(output, func(w io.Writer) error { return scene.WriteSVG(w, s) })
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&letters, "letters", true, "Show the letter labels")
	return cmd
}

func pngCmd(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "png NAME",
		Short: "Write the exported sigil image as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			name := args[0]
			data, err := raster.NewExporter(sigil.ExportStyle(), cfg.Export.Size).Update(name)
			if err != nil {
				return err
			}
			fileName := outputPath(cfg, output, name, ".png")
			err = writeFile(fileName, func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			})
			if err != nil {
				return err
			}
			slog.Info("wrote image", "file", fileName, "bytes", len(data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default NAME_Sigil.png in export.dir)")
	return cmd
}

func pdfCmd(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "pdf NAME",
		Short: "Write the exported sigil as a single-page PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			name := args[0]
			fileName := outputPath(cfg, output, name, ".pdf")
			if err := sigilpdf.Write(fileName, sigil.ExportScene(name, sigil.ExportStyle())); err != nil {
				return err
			}
			slog.Info("wrote pdf", "file", fileName)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default NAME_Sigil.pdf in export.dir)")
	return cmd
}

func serveCmd(opts *options) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve sigils over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(cfg, slog.Default()).ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}

// outputPath returns the explicit output file, or a name derived from the
// sigil name inside the export directory.
func outputPath(cfg *config.Config, output, name, ext string) string {
	if output != "" {
		return output
	}
	return filepath.Join(cfg.Export.Dir, sigil.FileName(name, "_Sigil", ext))
}

func writeFile(fileName string, write func(io.Writer) error) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", fileName, err)
	}
	return nil
}
