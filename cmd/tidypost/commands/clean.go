package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tidypost/tidypost/internal/logger"
	"github.com/tidypost/tidypost/internal/output"
	"github.com/tidypost/tidypost/internal/pipeline"
	"github.com/tidypost/tidypost/internal/progress"
	"github.com/tidypost/tidypost/internal/store"
	"github.com/tidypost/tidypost/pkg/editor"
)

// cleanOptions collects the validated flag values for one run.
type cleanOptions struct {
	Input        string `validate:"required"`
	Output       string
	ProgressFile string `validate:"required"`
	Provider     string `validate:"oneof=anthropic openai"`
	Model        string
	APIKey       string `validate:"required"`
	BaseURL      string
	Format       string        `validate:"oneof=json jsonl yaml"`
	CallDelay    time.Duration `validate:"min=0"`
	Cooldown     time.Duration `validate:"min=0"`
	MaxTokens    int           `validate:"min=1"`
	Timeout      time.Duration `validate:"min=0"`
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean a blog post collection",
	Long: `Clean every post in a JSON collection: strip leftover markup,
send title and body to the LLM for grammar and punctuation fixes, then
normalize quotes and wrap body paragraphs in <p> tags.

Posts are processed one at a time, in order, with a pause between API
calls. A post whose API call fails gets the regex-only cleanup instead
and is retried on the next run.

Examples:
  # Clean to a file
  tidypost clean -i posts.json -o cleaned.json

  # Clean to stdout as JSONL
  tidypost clean -i posts.json --format jsonl

  # Keep the checkpoint somewhere specific
  tidypost clean -i posts.json --progress-file /tmp/run1.json`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	flags := cleanCmd.Flags()

	// Input / output
	flags.StringP("input", "i", "", "path to the post collection JSON (required)")
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "json", "output format: json, jsonl, yaml")
	flags.String("progress-file", ".tidypost-progress.json", "checkpoint file for resumable runs")

	// LLM settings
	flags.StringP("provider", "p", "anthropic", "LLM provider: anthropic, openai")
	flags.StringP("model", "m", "", "model name (provider-specific)")
	flags.StringP("api-key", "k", "", "API key (or use env var)")
	flags.String("base-url", "", "custom API base URL")
	flags.Int("max-tokens", 4096, "completion token cap per call")
	flags.Duration("timeout", 60*time.Second, "per-request timeout")

	// Pacing
	flags.Duration("call-delay", time.Second, "pause after each API call")
	flags.Duration("cooldown", 10*time.Second, "pause after a failed post")

	_ = cleanCmd.MarkFlagRequired("input")

	_ = viper.BindPFlag("provider", flags.Lookup("provider"))
	_ = viper.BindPFlag("model", flags.Lookup("model"))
	_ = viper.BindPFlag("api_key", flags.Lookup("api-key"))
	_ = viper.BindPFlag("base_url", flags.Lookup("base-url"))
}

func runClean(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts, err := collectCleanOptions(cmd)
	if err != nil {
		logger.Error("invalid options", "error", err)
		return err
	}

	posts, err := store.Load(opts.Input)
	if err != nil {
		logger.Error("failed to load posts", "path", opts.Input, "error", err)
		return err
	}
	logger.Debug("posts loaded", "count", len(posts), "path", opts.Input)

	ed, err := editor.New(editor.Config{
		Provider:  opts.Provider,
		APIKey:    opts.APIKey,
		BaseURL:   opts.BaseURL,
		Model:     opts.Model,
		MaxTokens: opts.MaxTokens,
		Timeout:   opts.Timeout,
	})
	if err != nil {
		logger.Error("failed to create editor", "provider", opts.Provider, "error", err)
		return err
	}
	logger.Debug("editor ready", "provider", ed.Name())

	checkpoint, err := progress.Open(opts.ProgressFile)
	if err != nil {
		logger.Error("failed to open checkpoint", "path", opts.ProgressFile, "error", err)
		return err
	}
	if checkpoint.Len() > 0 {
		logger.Info("resuming from checkpoint",
			"path", opts.ProgressFile, "completed", checkpoint.Len())
	}

	quiet := viper.GetBool("quiet")
	runner := pipeline.New(ed, checkpoint,
		pipeline.WithCallDelay(opts.CallDelay),
		pipeline.WithFailureCooldown(opts.Cooldown),
		pipeline.WithEventFunc(func(ev pipeline.Event) {
			renderProgress(ev, quiet)
		}),
	)

	sum, err := runner.Run(ctx, posts)
	if !quiet {
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		logger.Error("run aborted", "error", err)
		return err
	}

	outFile := os.Stdout
	if opts.Output != "" {
		f, err := os.Create(opts.Output) //#nosec G304 -- CLI tool writes to user-specified output file
		if err != nil {
			logger.Error("failed to create output file", "path", opts.Output, "error", err)
			return err
		}
		defer func() { _ = f.Close() }()
		outFile = f
	}

	writer, err := output.NewWriter(outFile, output.Format(opts.Format))
	if err != nil {
		logger.Error("failed to create output writer", "format", opts.Format, "error", err)
		return err
	}
	if err := writer.WriteAll(posts); err != nil {
		logger.Error("failed to write output", "error", err)
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	logger.Info("run complete",
		"total", sum.Total, "cleaned", sum.Cleaned,
		"cached", sum.Cached, "failed", sum.Failed)
	if !quiet {
		fmt.Fprintf(os.Stderr, "Done: %d cleaned, %d cached, %d failed (of %d)\n",
			sum.Cleaned, sum.Cached, sum.Failed, sum.Total)
	}

	// Per-post failures were already logged and the fallback applied,
	// so they don't fail the command.
	return nil
}

// collectCleanOptions gathers flag and config values and validates the
// combination before any work starts.
func collectCleanOptions(cmd *cobra.Command) (cleanOptions, error) {
	flags := cmd.Flags()

	opts := cleanOptions{}
	opts.Input, _ = flags.GetString("input")
	opts.Output, _ = flags.GetString("output")
	opts.ProgressFile, _ = flags.GetString("progress-file")
	opts.Format, _ = flags.GetString("format")
	opts.MaxTokens, _ = flags.GetInt("max-tokens")
	opts.Timeout, _ = flags.GetDuration("timeout")
	opts.CallDelay, _ = flags.GetDuration("call-delay")
	opts.Cooldown, _ = flags.GetDuration("cooldown")

	// Flag values fall back to config file and environment.
	opts.Provider = viper.GetString("provider")
	opts.Model = viper.GetString("model")
	opts.APIKey = viper.GetString("api_key")
	opts.BaseURL = viper.GetString("base_url")

	if err := validator.New().Struct(opts); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, ve := range verrs {
				if ve.Field() == "APIKey" {
					return opts, fmt.Errorf("no API key: set --api-key or the provider's env var")
				}
			}
		}
		return opts, err
	}
	return opts, nil
}

// renderProgress writes a one-line status per post to stderr,
// overwriting in place so the terminal shows a moving counter. Failures
// get their own line so they stay visible.
func renderProgress(ev pipeline.Event, quiet bool) {
	if quiet {
		return
	}
	switch ev.State {
	case pipeline.StateCleaning:
		fmt.Fprintf(os.Stderr, "\r\033[K[%d/%d] cleaning: %s", ev.Index+1, ev.Total, ev.Title)
	case pipeline.StateCached:
		fmt.Fprintf(os.Stderr, "\r\033[K[%d/%d] cached: %s", ev.Index+1, ev.Total, ev.Title)
	case pipeline.StateFailed:
		fmt.Fprintf(os.Stderr, "\r\033[K[%d/%d] failed: %s (%v)\n", ev.Index+1, ev.Total, ev.Title, ev.Err)
	}
}
