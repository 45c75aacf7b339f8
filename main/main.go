package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/echolane/voice-utils/audio"
	verr "github.com/echolane/voice-utils/errors"
	vlog "github.com/echolane/voice-utils/logger"
)

type options struct {
	Quiet bool `short:"q" long:"quiet" description:"Validate only, print nothing"`

	Args struct {
		Path string `positional-arg-name:"FILE"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	logger := vlog.NewLogger(vlog.LevelError)

	var opts options
	_, err := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash).Parse()
	if err != nil {
		fail(logger, err)
	}

	contents, err := os.ReadFile(opts.Args.Path)
	if err != nil {
		fail(logger, verr.WrapError(err, "Reading audio file"))
	}

	capture, err := audio.DecodeWAV(contents)
	if err != nil {
		fail(logger, verr.WrapErrorf(err, "Validating %q", opts.Args.Path))
	}

	if !opts.Quiet {
		fmt.Printf("sample rate: %d Hz\n", capture.Format.SampleRate)
		fmt.Printf("channels:    %d\n", capture.Format.Channels)
		fmt.Printf("bit depth:   %d\n", capture.Format.BitDepth)
		fmt.Printf("duration:    %s\n", capture.Duration())
	}
}

func fail(logger vlog.Logger, err error) {
	logger.Error("main", err.Error())
	os.Exit(1)
}
