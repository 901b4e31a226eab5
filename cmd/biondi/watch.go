package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/philipparndt/biondi/internal/capture"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Report new capture files as they are saved",
	Long:  "Watch the capture directory and print the size of every capture once it has been written completely.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := cfg.Captures
	if len(args) == 1 {
		dir = args[0]
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	w, err := capture.NewWatcher(cfg.Debounce(), func(path string) {
		region, err := capture.FileSource{Path: path}.Capture(context.Background())
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Skipping %s: %v\n", path, err)
			return
		}
		fmt.Fprintf(out, "%s: %dx%d\n", path, region.Width, region.Height)
	})
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Watch(dir); err != nil {
		return err
	}
	w.Start()

	fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", dir)
	<-ctx.Done()
	return nil
}
