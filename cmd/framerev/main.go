package main

import (
	"errors"
	"image"
	"io"
	"os"

	"github.com/bodgit/framerev"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
)

var errRequired = errors.New("flag is required")

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
	// -h is taken by the frame height
	cli.HelpFlag = &cli.BoolFlag{
		Name:  "help",
		Usage: "show help",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard)
	if c.Bool("verbose") {
		logger.SetOutput(c.App.ErrWriter)
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func newRepacker(c *cli.Context) *framerev.Repacker {
	return framerev.New(newLogger(c), framerev.WithWorkers(c.Int("workers")))
}

func exitError(err error) error {
	if err == nil {
		return nil
	}
	var ce *framerev.ConfigError
	if errors.As(err, &ce) {
		return cli.Exit(err, 2)
	}
	return cli.Exit(err, 1)
}

func requireString(c *cli.Context, name string) (string, error) {
	s := c.String(name)
	if s == "" {
		return "", &framerev.ConfigError{Param: name, Err: errRequired}
	}
	return s, nil
}

func requirePositive(c *cli.Context, name string) (int, error) {
	s, err := requireString(c, name)
	if err != nil {
		return 0, err
	}
	return framerev.ParsePositive(name, s)
}

func repack(c *cli.Context) error {
	input, err := requireString(c, "input")
	if err != nil {
		return err
	}
	output, err := requireString(c, "output")
	if err != nil {
		return err
	}

	var frame image.Point
	if frame.X, err = requirePositive(c, "width"); err != nil {
		return err
	}
	if frame.Y, err = requirePositive(c, "height"); err != nil {
		return err
	}

	var framesPerRow int
	if c.IsSet("frames-per-row") {
		if framesPerRow, err = framerev.ParsePositive("frames-per-row", c.String("frames-per-row")); err != nil {
			return err
		}
	}

	return newRepacker(c).RepackFile(input, output, frame, framesPerRow)
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "framerev"
	app.Usage = "Repack the frames of a grid-organized sprite sheet"
	app.Version = "1.0.0"
	app.ErrWriter = os.Stderr
	// Exit codes are handled in main
	app.ExitErrHandler = func(*cli.Context, error) {}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "path to input image",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "path to output image, overwritten if it exists",
		},
		&cli.StringFlag{
			Name:    "width",
			Aliases: []string{"w"},
			Usage:   "width of a frame in pixels",
		},
		&cli.StringFlag{
			Name:    "height",
			Aliases: []string{"h"},
			Usage:   "height of a frame in pixels",
		},
		&cli.StringFlag{
			Name:    "frames-per-row",
			Aliases: []string{"r"},
			Usage:   "number of frames per row in the output image",
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"j"},
			EnvVars: []string{"FRAMEREV_WORKERS"},
			Value:   1,
			Usage:   "number of frames to copy concurrently",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			EnvVars: []string{"FRAMEREV_VERBOSE"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NumFlags() == 0 && c.NArg() == 0 {
			return cli.ShowAppHelp(c)
		}
		return exitError(repack(c))
	}

	app.Commands = []*cli.Command{
		{
			Name:        "batch",
			Usage:       "Repack every sheet listed in a manifest",
			Description: `FILE is an HCL manifest. An optional top-level "workers" attribute sets
   how many sheets are repacked concurrently. Each sheet is a labelled block:

     sheet "hero" {
       input          = "hero.png"
       output         = "hero-packed.png"
       frame_width    = 32
       frame_height   = 32
       frames_per_row = 4 # optional
     }

   Relative paths are resolved against the directory containing FILE. The
   first failing sheet stops the batch once sheets already in progress finish.`,
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				return exitError(newRepacker(c).Batch(c.Args().First()))
			},
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		code := 1
		var ec cli.ExitCoder
		if errors.As(err, &ec) {
			code = ec.ExitCode()
		}
		log.Error(err)
		os.Exit(code)
	}
}
