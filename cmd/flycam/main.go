package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/alecthomas/kong"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/leterax/go-flycam/internal/config"
	"github.com/leterax/go-flycam/internal/glfwhost"
	"github.com/leterax/go-flycam/pkg/flycam"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

var CLI struct {
	Debug bool `help:"Whether to enable debug logging."`

	Run struct {
		Config string `arg:"" optional:"" name:"config" help:"YAML configuration file layered over the defaults." type:"existingfile"`
	} `cmd:"" default:"withargs" help:"Open a window and fly the camera."`

	Config struct {
	} `cmd:"" help:"Write the default configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("flycam"),
		kong.Description("a free-fly spectator camera"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("debug logging enabled")
	}

	switch ctx.Command() {
	case "run", "run <config>":
		if err := runCommand(CLI.Run.Config); err != nil {
			writeError(err)
		}
	case "config":
		os.Stdout.Write(config.Default)
	}
}

func runCommand(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	bindings, err := glfwhost.ResolveBindings(cfg.Bindings)
	if err != nil {
		return fmt.Errorf("invalid key bindings: %w", err)
	}

	registry, err := flycam.NewRegistry(cfg.Movement, bindings)
	if err != nil {
		return err
	}

	window, err := glfwhost.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}

	rig := flycam.NewRig[glfw.Key](registry, flycam.DefaultCameraEntity(), flycam.WithLogger(log.Logger))

	host := glfwhost.NewHost(window, rig, log.Logger)
	defer host.Cleanup()

	log.Info().
		Float32("speed", cfg.Movement.Speed).
		Float32("sensitivity", cfg.Movement.Sensitivity).
		Str("toggle_capture", cfg.Bindings.ToggleCapture).
		Msg("starting flycam")

	host.Run()
	return nil
}
