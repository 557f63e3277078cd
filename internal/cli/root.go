package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"
	"github.com/topi314/tint"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "bitwise",
		Short:        "bitwise does bitmask arithmetic on 64 bit integers",
		Long:         "Numbers may be written in decimal or with a 0x, 0o or 0b prefix.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), verbose))
		},
	}
	cmd.AddGroup(&cobra.Group{
		ID:    "conversions",
		Title: "Conversions",
	}, &cobra.Group{
		ID:    "operations",
		Title: "Operations",
	})

	cmd.PersistentFlags().BoolP("binary", "b", false, "print results in binary")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log parsed arguments to stderr")
	cmd.CompletionOptions.DisableDescriptions = true

	NewBitsCmd(cmd)
	NewMaskCmd(cmd)
	NewBitCmd(cmd)
	NewFlagsCmd(cmd)
	NewShiftCmd(cmd)

	return cmd
}

func Execute(command *cobra.Command) {
	err := command.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &tint.Options{Level: level, NoColor: true}
	if f, ok := w.(*os.File); ok {
		w = colorable.NewColorable(f)
		opts.NoColor = false
	}
	return slog.New(tint.NewHandler(w, opts))
}
