package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"

	"github.com/leterax/citydrive/internal/config"
	"github.com/leterax/citydrive/internal/logging"
	"github.com/leterax/citydrive/pkg/audio"
	"github.com/leterax/citydrive/pkg/audio/device"
	"github.com/leterax/citydrive/pkg/engine"
	"github.com/leterax/citydrive/pkg/newmodule"
	"github.com/leterax/citydrive/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "Path to the config file (defaults to "+config.DefaultFile+" when present)")
	logLevel := flag.String("log-level", "", "Override the configured log level (TRACE, DEBUG, INFO, WARN, ERROR)")
	noAudio := flag.Bool("no-audio", false, "Run without opening an audio device")
	flag.Parse()

	if err := run(*configPath, *logLevel, *noAudio); err != nil {
		fmt.Fprintf(os.Stderr, "newmodule: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logLevel string, noAudio bool) error {
	if configPath == "" {
		if _, err := os.Stat(config.DefaultFile); err == nil {
			configPath = config.DefaultFile
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if noAudio {
		cfg.Audio.Enabled = false
	}

	log := logging.New(cfg.LogLevel, os.Stderr, false)
	log.Info().Str("config", configPath).Msg("Starting NewModule")

	sounds := openAudio(cfg.Audio, log)
	defer sounds.Close()

	opts := engine.DefaultHostOptions()
	opts.GravityScalar = cfg.Physics.GravityScalar
	opts.StepsPerRender = cfg.Physics.StepsPerRender
	host := engine.NewHost(opts, log)

	// The renderer owns the GL context, which must exist before the scene is built
	renderer, err := render.NewRenderer(host, render.WindowOptions{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		VSync:  cfg.Window.VSync,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}

	module := newmodule.New(host, sounds, newmodule.Options{
		SharedMultimediaPath: cfg.SharedMultimediaPath,
		SoundsPath:           cfg.SoundsPath,
		StartBackground:      cfg.Module.StartBackground,
		GravityScalar:        cfg.Physics.GravityScalar,
	}, log)
	host.Register(module)

	if err := host.Start(); err != nil {
		renderer.Cleanup()
		return fmt.Errorf("failed to start module: %w", err)
	}

	renderer.Run()
	log.Info().Uint64("frames", host.FrameCount()).Msg("Shut down")
	return nil
}

// closingEngine closes the device after the engine has stopped every sound
type closingEngine struct {
	*audio.BeepEngine
	device *device.Speaker
}

func (e closingEngine) Close() error {
	err := e.BeepEngine.Close()
	e.device.Close()
	return err
}

// openAudio opens the speaker, falling back to a silent output so the
// scene still runs on machines without a sound device.
func openAudio(cfg config.AudioConfig, log zerolog.Logger) audio.Engine {
	rate := beep.SampleRate(cfg.SampleRate)
	if !cfg.Enabled {
		log.Info().Msg("Audio disabled")
		return audio.NewBeepEngine(&audio.SilentOutput{}, rate, log)
	}

	speaker, err := device.OpenSpeaker(rate, cfg.Buffer)
	if err != nil {
		log.Warn().Err(err).Msg("No audio device, continuing without sound")
		return audio.NewBeepEngine(&audio.SilentOutput{}, rate, log)
	}

	log.Info().Int("sampleRate", cfg.SampleRate).Dur("buffer", cfg.Buffer).Msg("Audio initialized")
	return closingEngine{BeepEngine: audio.NewBeepEngine(speaker, rate, log), device: speaker}
}
