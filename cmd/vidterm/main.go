// Package main is the entry point for the vidterm player.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vidterm/vidterm/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// First signal cancels the session; a second one force-exits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 2)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		cancel()
		<-signals
		os.Exit(1)
	}()

	err = application.Run(ctx)
	if code := app.ExitCode(err); code != 0 {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return code
	}
	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool

	flag.BoolVar(&opts.Debug, "debug", false, "Show the playback status line")
	flag.BoolVar(&opts.Debug, "b", false, "Show the playback status line (shorthand)")
	flag.BoolVar(&opts.NoAudio, "no-audio", false, "Play without sound")
	flag.BoolVar(&opts.NoAudio, "m", false, "Play without sound (shorthand)")
	flag.BoolVar(&opts.Dump, "dump", false, "Encode the input to a .vidtxt file instead of playing it")
	flag.BoolVar(&opts.Dump, "d", false, "Encode the input to a .vidtxt file (shorthand)")
	flag.IntVar(&opts.Columns, "columns", 0, "Output width in characters (default: terminal width)")
	flag.IntVar(&opts.Lines, "lines", 0, "Output height in characters (default: terminal height)")
	flag.StringVar(&opts.Size, "size", "", "Output size as COLSxLINES, e.g. 120x40")
	flag.StringVar(&opts.Output, "o", "", "Dump output path (default: derived from the input name)")
	flag.StringVar(&opts.ConfigPath, "config", "", "Path to the defaults file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "vidterm - play videos as text in your terminal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: vidterm [options] <video file, URL, or .vidtxt file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vidterm movie.mp4              Play a video\n")
		fmt.Fprintf(os.Stderr, "  vidterm movie.vidtxt           Play a pre-encoded text video\n")
		fmt.Fprintf(os.Stderr, "  vidterm -d -o out.vidtxt m.mp4 Encode a video for later playback\n")
		fmt.Fprintf(os.Stderr, "  vidterm -b -m movie.mp4        Play silent with the status line\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("vidterm %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	opts.Input = flag.Arg(0)
	return opts
}
