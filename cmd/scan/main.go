package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

const (
	maxGoroutines = 10
)

var (
	listFlag    = flag.String("l", "", "The path to the list of midi files,\nfind . -type f -name \"*.mid\" > midi_list.txt")
	maxFlag     = flag.Int("p", maxGoroutines, "Number of files processed in parallel, must be > 0")
	verboseFlag = flag.Bool("v", false, "Debug logging to stderr")
)

func readList(file *os.File) <-chan string {
	out := make(chan string)

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)

	go func() {
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				out <- line
			}
		}
		close(out)
	}()

	return out
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s \n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *listFlag == "" {
		flag.Usage()
		return
	}

	if *maxFlag <= 0 {
		flag.Usage()
		return
	}

	if *verboseFlag {
		l, err := zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
		defer l.Sync()
		enableDebugLogging(l)
	}

	f, err := os.Open(*listFlag)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	paths := readList(f)
	t, err := scanFiles(ctx, paths, *maxFlag)
	if err != nil {
		log.Fatal(err)
	}

	t.print(os.Stdout)
}
