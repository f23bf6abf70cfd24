package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/phanxgames/movieclip"
	"github.com/urfave/cli/v3"
)

// Runner holds the dependencies shared by the command actions.
type Runner struct {
	logger *log.Logger
	output io.Writer
}

// RunnerOpts configures NewRunner.
type RunnerOpts struct {
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a Runner, filling in stderr logging and stdout output.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	return &Runner{logger: opts.Logger, output: opts.Output}
}

func clipFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "atlas",
			Aliases:  []string{"a"},
			Usage:    "Path to the TexturePacker atlas JSON",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "clip",
			Usage:    "Path to the bitmap clip JSON",
			Required: true,
		},
	}
}

func (r *Runner) register() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "labels",
			Usage:  "List a clip's frame count and labels",
			Flags:  clipFlags(),
			Action: r.Labels,
		},
		{
			Name:  "play",
			Usage: "Step a clip through simulated ticks and print frame changes",
			Flags: append(clipFlags(),
				&cli.StringFlag{
					Name:    "config",
					Aliases: []string{"c"},
					Usage:   "Path to configuration file",
				},
				&cli.IntFlag{
					Name:  "ticks",
					Usage: "Override the number of ticks to run",
				},
			),
			Action: r.Play,
		},
		{
			Name:   "config",
			Usage:  "Print the default configuration",
			Action: r.PrintConfig,
		},
	}
}

// Labels prints the frame count and label table of a clip.
func (r *Runner) Labels(ctx context.Context, cmd *cli.Command) error {
	node, err := loadClip(cmd.String("atlas"), cmd.String("clip"))
	if err != nil {
		return err
	}
	clip := node.Bitmap
	fmt.Fprintf(r.output, "%s: %d frames\n", node.Name, clip.NumFrames())
	for _, l := range clip.Labels() {
		fmt.Fprintf(r.output, "%6d  %s\n", l.Position, l.Name)
	}
	return nil
}

// Play steps a clip and prints every frame change and label hit.
func (r *Runner) Play(ctx context.Context, cmd *cli.Command) error {
	config := DefaultConfig()
	if path := cmd.String("config"); path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return err
		}
		config = loaded
	}
	if ticks := int(cmd.Int("ticks")); ticks > 0 {
		config.Playback.Ticks = ticks
	}
	if lvl, err := log.ParseLevel(config.Log.Level); err == nil {
		r.logger.SetLevel(lvl)
	}

	node, err := loadClip(cmd.String("atlas"), cmd.String("clip"))
	if err != nil {
		return err
	}
	return r.play(ctx, node, config)
}

func (r *Runner) play(ctx context.Context, node *movieclip.Node, config *Config) error {
	movieclip.SetLogger(r.logger)
	defer movieclip.SetLogger(nil)
	scene := movieclip.NewScene()
	if config.Log.Debug {
		scene.SetDebugMode(true)
		defer scene.SetDebugMode(false)
	}

	tick := 0
	scene.SetEntityStore(storeFunc(func(ev movieclip.ClipEvent) {
		if ev.Type == movieclip.EventLabel {
			fmt.Fprintf(r.output, "tick %4d  label %s\n", tick, ev.Label)
			return
		}
		fmt.Fprintf(r.output, "tick %4d  frame %d\n", tick, ev.Frame)
	}))

	clip := node.Bitmap
	if config.Playback.Framerate > 0 {
		clip.SetFramerate(config.Playback.Framerate)
	}
	clip.SetLoop(config.Playback.Loop)
	if config.Playback.Start != "" {
		clip.GotoAndPlay(movieclip.AtLabel(config.Playback.Start))
	}
	scene.Root().AddChild(node)

	r.logger.Info("playing", "clip", node.Name, "frames", clip.NumFrames(),
		"fps", clip.Framerate(), "ticks", config.Playback.Ticks)
	for tick = 0; tick < config.Playback.Ticks; tick++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		scene.Advance(config.Playback.DeltaMS)
	}
	label, _ := clip.CurrentLabel()
	r.logger.Info("done", "frame", clip.CurrentFrame(), "label", label)
	return nil
}

// PrintConfig writes the embedded default configuration.
func (r *Runner) PrintConfig(ctx context.Context, cmd *cli.Command) error {
	_, err := r.output.Write(exampleConf)
	return err
}

func loadClip(atlasPath, clipPath string) (*movieclip.Node, error) {
	atlasData, err := os.ReadFile(atlasPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas: %w", err)
	}
	atlas, err := movieclip.LoadAtlas(atlasData, nil)
	if err != nil {
		return nil, err
	}
	clipData, err := os.ReadFile(clipPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read clip: %w", err)
	}
	data, err := movieclip.ParseBitmapClipData(clipData)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(clipPath), filepath.Ext(clipPath))
	return movieclip.NewBitmapClip(name, atlas, data)
}

// storeFunc adapts a function to movieclip.EntityStore.
type storeFunc func(movieclip.ClipEvent)

func (f storeFunc) EmitEvent(ev movieclip.ClipEvent) { f(ev) }
