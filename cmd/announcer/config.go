package main

import (
	"github.com/KirkDiggler/announcer/internal/audio"
	"github.com/KirkDiggler/announcer/internal/config"
	"github.com/spf13/cobra"
)

// loadConfig reads the environment then applies the flags the user set
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	var envFiles []string
	if opts.envFile != "" {
		envFiles = append(envFiles, opts.envFile)
	}

	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = opts.addr
	}
	if flags.Changed("device") {
		cfg.Device = opts.device
	}
	if flags.Changed("cues") {
		cfg.CuesFile = opts.cuesFile
	}
	if flags.Changed("overlap") {
		cfg.Overlap = audio.OverlapPolicy(opts.overlap)
	}
	if flags.Changed("max-voices") {
		cfg.MaxVoices = opts.maxVoices
	}
	if flags.Changed("session-start-cue") {
		cfg.SessionStartCue = opts.sessionStartCue
	}
	if flags.Changed("request-timeout") {
		cfg.RequestTimeout = opts.requestTimeout
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = opts.redisAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
