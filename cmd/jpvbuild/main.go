// Command jpvbuild drives C4 (pkg/index.Build) over one or more XML
// dictionary sources, writing a packed buffer per enabled source. It
// is the build-time counterpart to cmd/jpvquery, and the front-end
// spec.md §6 documents as "out of scope ... treated only as external
// collaborators" — this file is that collaborator, kept deliberately
// thin over pkg/index/pkg/jmdict.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/udoprog/jpv-go/internal/config"
	"github.com/udoprog/jpv-go/pkg/index"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("build failed")
	}
}

func newRootCmd() *cobra.Command {
	var (
		jmdictPath    string
		kanjidicPath  string
		jmnedictPath  string
		outDir        string
		disableNames  []string
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:   "jpvbuild",
		Short: "Compile JMdict/Kanjidic2/JMnedict XML sources into packed indices",
		RunE: func(cmd *cobra.Command, args []string) error {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			cfg := config.DefaultBuild(outDir)
			paths := map[config.Kind]string{
				config.KindJMdict:    jmdictPath,
				config.KindKanjidic2: kanjidicPath,
				config.KindJMnedict:  jmnedictPath,
			}
			for i := range cfg.Sources {
				s := &cfg.Sources[i]
				for _, dn := range disableNames {
					if dn == s.Name {
						s.Enabled = false
					}
				}
				s.Path = paths[s.Kind]
			}

			if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			for _, name := range cfg.Disabled() {
				log.Info().Str("source", name).Msg("source disabled, skipping")
			}

			for _, src := range cfg.Enabled() {
				if src.Path == "" {
					log.Warn().Str("source", src.Name).Msg("no input path given, skipping")
					continue
				}
				if err := buildOne(ctx, src, cfg.OutputDir); err != nil {
					return fmt.Errorf("build %s: %w", src.Name, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&jmdictPath, "jmdict", "", "path to JMdict XML")
	cmd.Flags().StringVar(&kanjidicPath, "kanjidic2", "", "path to Kanjidic2 XML")
	cmd.Flags().StringVar(&jmnedictPath, "jmnedict", "", "path to JMnedict XML")
	cmd.Flags().StringVar(&outDir, "out", "indices", "output directory for packed indices")
	cmd.Flags().StringSliceVar(&disableNames, "disable", nil, "sub-index name to skip (repeatable)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	return cmd
}

// buildOne streams one dictionary source through pkg/index.Build and
// writes the resulting packed buffer to <outDir>/<name>.bin.
func buildOne(ctx context.Context, src config.Source, outDir string) error {
	f, err := os.Open(src.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	start := time.Now()
	reporter := &logReporter{name: src.Name}
	buf, err := index.Build(ctx, reporter, src.Name, src.Kind.IndexKind(), f)
	if err != nil {
		return err
	}

	dest := filepath.Join(outDir, src.Name+".bin")
	if err := os.WriteFile(dest, buf, 0o644); err != nil {
		return err
	}

	log.Info().
		Str("source", src.Name).
		Str("path", dest).
		Int("bytes", len(buf)).
		Dur("elapsed", time.Since(start)).
		Msg("index written")
	return nil
}

// logReporter adapts index.Reporter onto zerolog, following the
// donor's OnProgress-callback-to-log-line pattern.
type logReporter struct {
	name  string
	total int
	done  int
}

func (r *logReporter) InstrumentStart(module, message string, total int) {
	r.total = total
	log.Info().Str("source", r.name).Str("module", module).Int("total", total).Msg(message)
}

func (r *logReporter) InstrumentProgress(delta int) {
	r.done += delta
	log.Debug().Str("source", r.name).Int("done", r.done).Msg("progress")
}

func (r *logReporter) InstrumentEnd(final int) {
	log.Info().Str("source", r.name).Int("count", final).Msg("stream complete")
}
