package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	adaptersfs "github.com/bft-labs/enochian/internal/adapters/fs"
	logAdapter "github.com/bft-labs/enochian/internal/adapters/log"
	"github.com/bft-labs/enochian/internal/app"
	"github.com/bft-labs/enochian/internal/cliconfig"
	"github.com/bft-labs/enochian/internal/domain"
	"github.com/bft-labs/enochian/internal/ports"
	"github.com/bft-labs/enochian/internal/report"
)

const helpDescription = `
Turn text into a perfected coin: a byte sequence scaled so its sum is 496,
with Shannon entropy held at or below the ceiling.

The pipeline extracts the UTF-8 bytes of the input (halved once when their
sum exceeds the master name sum of 664), scales them by 496/sum, and checks
the result against the entropy ceiling and the checksum target.

Configure via file ($HOME/.enochian/config.toml), ENOCHIAN_* env vars, or flags.
`

var exampleUsage = strings.TrimSpace(`
  enochian run --create-sample
  enochian run a.txt b.txt --format json --workers 2
  enochian watch data/Dynamic_Torus.txt --debounce 250ms
  enochian constants --config ./enochian.toml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// cli carries resolved configuration between cobra hooks and commands.
type cli struct {
	cfg     cliconfig.Config
	cfgPath string
	log     zerolog.Logger
	out     io.Writer
}

// load resolves configuration: file, then env, then explicitly set flags.
func (c *cli) load(cmd *cobra.Command, args []string) error {
	cfgFile := c.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
	if len(args) > 0 {
		changed["input"] = true
		c.cfg.Input = args[0]
	}

	if cfgFile != "" && adaptersfs.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&c.cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&c.cfg, changed); err != nil {
		return fmt.Errorf("env config: %w", err)
	}

	lvl, err := c.cfg.Level()
	if err != nil {
		return err
	}
	c.log = c.log.Level(lvl)
	return nil
}

func (c *cli) logger() ports.Logger {
	return logAdapter.NewZerologAdapterWithLogger(c.log)
}

func (c *cli) factory() app.Factory {
	policy, _ := c.cfg.OverflowPolicy()
	logger := c.logger()
	return func() (*app.Pipeline, error) {
		return app.NewPipeline(c.cfg.Constants,
			app.WithLogger(logger),
			app.WithOverflowPolicy(policy),
		)
	}
}

func (c *cli) ensureSample(path string) error {
	created, err := adaptersfs.EnsureSample(path)
	if err != nil {
		return fmt.Errorf("create sample: %w", err)
	}
	if created {
		c.log.Info().Str("path", path).Msg("sample input created")
	}
	return nil
}

func (c *cli) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [files...]",
		Short: "Run the pipeline once over one or more input files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.cfg.Validate(); err != nil {
				return err
			}
			files := args
			if len(files) == 0 {
				files = []string{c.cfg.Input}
			}
			if c.cfg.CreateSample {
				for _, f := range files {
					if err := c.ensureSample(f); err != nil {
						return err
					}
				}
			}

			format, _ := c.cfg.ReportFormat()
			ctx := cmd.Context()
			src := adaptersfs.NewSourceFiles()

			if len(files) == 1 {
				p, err := c.factory()()
				if err != nil {
					return err
				}
				text, err := src.ReadSource(ctx, files[0])
				if err != nil {
					return fmt.Errorf("read %s: %w", files[0], err)
				}
				r, err := p.Run(files[0], text)
				if err != nil {
					return err
				}
				return adaptersfs.NewReportFile(c.cfg.Output, format, c.out).Write(ctx, r)
			}

			outcomes, err := app.RunBatch(ctx, files, src, c.factory(), c.cfg.Workers)
			if err != nil {
				return err
			}

			var failed int
			for i, o := range outcomes {
				if o.Err != nil {
					failed++
					c.log.Error().Err(o.Err).Str("source", o.Name).Msg("run failed")
					continue
				}
				if err := c.reportWriter(i, o.Name, format).Write(ctx, o.Report); err != nil {
					return fmt.Errorf("write report for %s: %w", o.Name, err)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d inputs failed", failed, len(outcomes))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&c.cfg.CreateSample, "create-sample", c.cfg.CreateSample, "write the sample input when a file is missing")
	cmd.Flags().IntVar(&c.cfg.Workers, "workers", c.cfg.Workers, "maximum concurrent pipelines in batch mode")
	return cmd
}

// reportWriter returns the writer for the index-th batch input. With --output
// set, the output is a directory holding one report per input.
func (c *cli) reportWriter(index int, name string, format report.Format) ports.ReportWriter {
	if c.cfg.Output == "" {
		return adaptersfs.NewReportFile("", format, c.out)
	}
	path := adaptersfs.BatchReportPath(c.cfg.Output, index, name, format)
	return adaptersfs.NewReportFile(path, format, c.out)
}

func (c *cli) watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Re-run the pipeline whenever the input file changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.cfg.Validate(); err != nil {
				return err
			}
			if c.cfg.CreateSample {
				if err := c.ensureSample(c.cfg.Input); err != nil {
					return err
				}
			}

			p, err := c.factory()()
			if err != nil {
				return err
			}
			format, _ := c.cfg.ReportFormat()
			writer := adaptersfs.NewReportFile(c.cfg.Output, format, c.out)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			handle := func(r report.Report, err error) {
				if err != nil {
					return
				}
				if werr := writer.Write(ctx, r); werr != nil {
					c.log.Error().Err(werr).Msg("write report")
				}
			}

			w := app.NewWatcher(app.WatchConfig{
				Path:          c.cfg.Input,
				DebounceDelay: c.cfg.DebounceDelay,
			}, p, adaptersfs.NewSourceFiles(), handle, c.logger())

			if err := w.Run(ctx); err != nil {
				return err
			}
			c.log.Info().Msg("received signal, stopping...")
			return nil
		},
	}
	cmd.Flags().BoolVar(&c.cfg.CreateSample, "create-sample", c.cfg.CreateSample, "write the sample input when the file is missing")
	cmd.Flags().DurationVar(&c.cfg.DebounceDelay, "debounce", c.cfg.DebounceDelay, "delay after a change before re-running")
	return cmd
}

func (c *cli) sampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample [path]",
		Short: "Write the sample input if it does not exist",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := adaptersfs.EnsureSample(c.cfg.Input)
			if err != nil {
				return fmt.Errorf("create sample: %w", err)
			}
			if created {
				fmt.Fprintf(c.out, "created %s\n", c.cfg.Input)
			} else {
				fmt.Fprintf(c.out, "%s already exists\n", c.cfg.Input)
			}
			return nil
		},
	}
}

func (c *cli) constantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "Print the active constants and run the self-check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k := c.cfg.Constants
			fmt.Fprintf(c.out, "master_name_sum   %d\n", k.MasterNameSum)
			fmt.Fprintf(c.out, "perfected_target  %d\n", k.PerfectedTarget)
			fmt.Fprintf(c.out, "black_cross_key   %d\n", k.BlackCrossKey)
			fmt.Fprintf(c.out, "esoteric_d        %d\n", k.EsotericD)
			fmt.Fprintf(c.out, "multiplier        %d\n", k.Multiplier)
			fmt.Fprintf(c.out, "entropy_ceiling   %g\n", k.EntropyCeiling)
			fmt.Fprintf(c.out, "checksum_modulus  %d\n", k.ChecksumModulus)
			fmt.Fprintf(c.out, "symmetry_work     %d\n", domain.SymmetryWork)
			fmt.Fprintf(c.out, "scaling_constant  ((%d + %d) * %d) - 1 = %d\n",
				k.BlackCrossKey, k.EsotericD, k.Multiplier, k.ScalingConstant())

			if err := k.Validate(); err != nil {
				fmt.Fprintln(c.out, "self-check        FAILED")
				return err
			}
			fmt.Fprintln(c.out, "self-check        ok")
			return nil
		},
	}
}

func main() {
	c := &cli{
		cfg: cliconfig.DefaultConfig(),
		log: logAdapter.NewConsoleAdapter(os.Stderr, zerolog.InfoLevel).Logger(),
		out: os.Stdout,
	}

	root := &cobra.Command{
		Use:               "enochian",
		Short:             "Transform text into a perfected, low-entropy byte sequence",
		Long:              strings.TrimSpace(helpDescription),
		Example:           exampleUsage,
		Version:           fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.load,
	}

	root.PersistentFlags().StringVar(&c.cfgPath, "config", "", "path to config file (default: $HOME/.enochian/config.toml)")
	root.PersistentFlags().StringVar(&c.cfg.LogLevel, "log-level", c.cfg.LogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&c.cfg.Overflow, "overflow", c.cfg.Overflow, "out-of-range scaled values: wrap or clamp")
	root.PersistentFlags().StringVar(&c.cfg.Format, "format", c.cfg.Format, "report format: text, json or yaml")
	root.PersistentFlags().StringVar(&c.cfg.Output, "output", c.cfg.Output, "report file (directory in batch mode); stdout when empty")

	root.AddCommand(c.runCmd(), c.watchCmd(), c.sampleCmd(), c.constantsCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		ev := c.log.Error().Err(err)
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			ev = ev.Float64("entropy", vErr.Entropy).Float64("ceiling", vErr.Ceiling)
		}
		ev.Msg("enochian")
		os.Exit(1)
	}
}
