package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/KirkDiggler/announcer/internal/audio"
	"github.com/KirkDiggler/announcer/internal/audio/device"
	"github.com/KirkDiggler/announcer/internal/config"
	"github.com/spf13/cobra"
)

// options are the command line flags. Flags that were set win over the environment.
type options struct {
	addr            string
	device          string
	cuesFile        string
	overlap         string
	maxVoices       int
	sessionStartCue bool
	requestTimeout  time.Duration
	redisAddr       string
	envFile         string
	listDevices     bool
	mute            bool
	verbose         bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "announcer",
		Short: "Play kill-streak announcements for a game's player updates",
		Long: `announcer - listens for player updates and plays arena-style announcer cues.

The game posts {"name": "...", "kills": N} to the update endpoint whenever the
player's kill count changes. Rising counts earn multi-kill and killing-spree
cues, a new name or a lower count starts over.

Settings come from the environment (and an optional .env file), flags override them.

Examples:
  # Serve on the default address using the default output device
  announcer

  # Pick a device and let new cues cut off old ones
  announcer --device "USB Audio" --overlap interrupt

  # Show the output devices and exit
  announcer --list-devices`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(opts.verbose)
			slog.SetDefault(logger)

			if opts.listDevices {
				return device.List(cmd.OutOrStdout())
			}

			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			return run(cmd.Context(), cfg, opts.mute, logger)
		},
	}

	bindFlags(cmd, opts)

	return cmd
}

func bindFlags(cmd *cobra.Command, opts *options) {
	flags := cmd.Flags()
	flags.StringVar(&opts.addr, "addr", config.DefaultAddr, "address the update endpoint listens on (ANNOUNCER_ADDR)")
	flags.StringVar(&opts.device, "device", "", "output device name or part of it, empty for the default (ANNOUNCER_DEVICE)")
	flags.StringVar(&opts.cuesFile, "cues", "", "YAML file overriding cue clips (ANNOUNCER_CUES_FILE)")
	flags.StringVar(&opts.overlap, "overlap", string(audio.OverlapMix), "what a new cue does to a playing one: mix or interrupt (ANNOUNCER_OVERLAP)")
	flags.IntVar(&opts.maxVoices, "max-voices", audio.DefaultMaxVoices, "clips that may sound at once in mix mode (ANNOUNCER_MAX_VOICES)")
	flags.BoolVar(&opts.sessionStartCue, "session-start-cue", false, "announce the first update of a new player (ANNOUNCER_SESSION_START_CUE)")
	flags.DurationVar(&opts.requestTimeout, "request-timeout", config.DefaultRequestTimeout, "per-request timeout (ANNOUNCER_REQUEST_TIMEOUT)")
	flags.StringVar(&opts.redisAddr, "redis-addr", "", "keep the player record in Redis at this address (REDIS_ADDR)")
	flags.StringVar(&opts.envFile, "env-file", "", "load settings from this file instead of .env")
	flags.BoolVar(&opts.listDevices, "list-devices", false, "print output devices and exit")
	flags.BoolVar(&opts.mute, "mute", false, "track updates without opening an audio device")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
