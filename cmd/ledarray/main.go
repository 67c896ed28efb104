package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/mgutz/logxi" // Using a forked copy of this package results in build issues

	"github.com/karlmutch/envflag" // Forked copy of https://github.com/GoBike/envflag
	"github.com/karlmutch/errors"

	"github.com/TeamNorCal/ledarray"
	"github.com/TeamNorCal/ledarray/model"
	"github.com/TeamNorCal/ledarray/version"
)

var (
	logger = logxi.New("ledarray")

	verbose    = flag.Bool("v", false, "When enabled will print internal logging for this tool")
	configFile = flag.String("config", "show.yaml", "The YAML file describing the strip, palettes and transforms to run")
	driverName = flag.String("driver", "term", "Where frames are sent, one of term, opc or discard")
	opcServer  = flag.String("opc", "127.0.0.1:7890", "The address of the OPC server (fcserver) used by the opc driver")
	opcChannel = flag.Uint("channel", 0, "The OPC channel the strip is attached to")
	fps        = flag.Float64("fps", 0, "Frames per second, 0 runs frames back to back")
)

func usage() {
	fmt.Fprintln(os.Stderr, path.Base(os.Args[0]))
	fmt.Fprintln(os.Stderr, "usage: ", os.Args[0], "[options]       show → LED strip (ledarray)      ", version.GitHash, "    ", version.BuildTime)
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "ledarray animates an addressable LED strip from keyframe palettes and per frame transforms")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Environment Variables:")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "options can also be extracted from environment variables by changing dashes '-' to underscores and using upper case.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "log levels are handled by the LOGXI env variables, these are documented at https://github.com/mgutz/logxi")
}

func init() {
	flag.Usage = usage
}

func main() {

	// Parse the CLI flags
	if !flag.Parsed() {
		envflag.Parse()
	}

	if *verbose {
		logger.SetLevel(logxi.LevelDebug)
	}

	logger.Debug(fmt.Sprintf("%s built at %s, against commit id %s\n", os.Args[0], version.BuildTime, version.GitHash))

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(-1)
	}
}

func run() (err errors.Error) {
	show, err := model.Load(*configFile)
	if err != nil {
		return err
	}

	stopC := make(chan os.Signal, 1)
	signal.Notify(stopC, os.Interrupt, syscall.SIGTERM)

	out, closer, err := openOutput(show, stopC)
	if err != nil {
		return err
	}
	defer closer()

	strip, err := ledarray.NewStrip(show.Strip.LEDs, out)
	if err != nil {
		return err
	}
	strip.Clear()

	leds, err := ledarray.Build(show, strip)
	if err != nil {
		return err
	}

	interval := time.Duration(0)
	if *fps > 0 {
		interval = time.Duration(float64(time.Second) / *fps)
	}

	quitC := make(chan struct{})
	go func() {
		<-stopC
		logger.Debug("stop requested")
		close(quitC)
	}()

	frames, err := ledarray.Animate(leds, interval, quitC)
	logger.Debug(fmt.Sprintf("%d frames shown", frames))
	return err
}
