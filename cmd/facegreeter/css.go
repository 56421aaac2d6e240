package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/facegreeter/internal/config"
	"github.com/jmylchreest/facegreeter/internal/theme"
)

var cssOpts struct {
	watch bool
}

// cssCmd prints the stylesheet generated from the config.
var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the generated stylesheet",
	Long: `Print the CSS facegreeter generates from the config file.

The output is what the greeter installs above any theme_file. Use --watch
to print it again each time the config file changes, which is handy while
editing colours or fonts.`,
	RunE: runCSS,
}

func init() {
	cssCmd.Flags().BoolVarP(&cssOpts.watch, "watch", "w", false,
		"Regenerate when the config file changes")
	rootCmd.AddCommand(cssCmd)
}

func runCSS(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if err := writeStylesheet(out, cfg); err != nil {
		return err
	}
	if !cssOpts.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchStylesheet(ctx, out)
}

// writeStylesheet renders the stylesheet for c to w.
func writeStylesheet(w io.Writer, c *config.Config) error {
	sheet, err := theme.Generate(c)
	if err != nil {
		return fmt.Errorf("failed to generate stylesheet: %w", err)
	}
	_, err = io.WriteString(w, sheet.String())
	return err
}

func watchStylesheet(ctx context.Context, out io.Writer) error {
	w, err := config.NewWatcher(configPath(), logger)
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}

	w.SetReloadCallback(func(updated *config.Config) {
		fmt.Fprintf(out, "/* reloaded %s */\n", configPath())
		if err := writeStylesheet(out, updated); err != nil {
			logger.Warn("stylesheet not regenerated", "error", err)
		}
	})
	w.SetErrorCallback(func(err error) {
		logger.Warn("ignoring invalid config change", "error", err)
	})

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("failed to watch config: %w", err)
	}
	defer w.Stop()

	<-ctx.Done()
	return nil
}
