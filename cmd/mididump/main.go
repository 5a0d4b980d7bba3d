package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Garik-/mididecode/pkg/midi"
	"go.uber.org/zap"
)

var (
	inFlag      = flag.String("i", "", "File with one hex encoded message per line, empty or - for stdin")
	smfFlag     = flag.String("smf", "", "Standard MIDI file to dump instead of hex input")
	refFlag     = flag.Bool("ref", false, "Also print the gomidi rendering of every message")
	verboseFlag = flag.Bool("v", false, "Debug logging to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-i <file|->] | -smf <file.mid>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *inFlag != "" && *smfFlag != "" {
		flag.Usage()
		os.Exit(2)
	}

	if *verboseFlag {
		l, err := zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
		defer l.Sync()
		enableDebugLogging(l)
	}

	classifier := midi.NewClassifier(midi.WithLogger(dumpLog))
	p := newPrinter(os.Stdout, *refFlag)

	var err error
	if *smfFlag != "" {
		err = dumpSMF(*smfFlag, classifier, p)
	} else {
		err = dumpHex(*inFlag, classifier, p)
	}

	if err != nil {
		log.Fatal(err)
	}
}
