package main

import (
	"context"
	"os"
	"sync"

	"github.com/Garik-/mididecode/pkg/smf"
	"go.uber.org/zap"
)

type result struct {
	name   string
	tracks []*smf.Track
	err    error
}

var decode = decodeFile

func decodeFile(name string) *result {
	out := &result{name: name}
	f, err := os.Open(name)
	if err != nil {
		out.err = err
		return out
	}

	defer f.Close()

	decoder := smf.NewDecoder(f, smf.WithLogger(decoderLog))
	err = decoder.Decode()
	if err != nil {
		out.err = err
		return out
	}

	out.tracks = decoder.Tracks
	return out
}

func decodeWorker(ctx context.Context, paths <-chan string, cntRoutines int) (<-chan *result, <-chan struct{}) {
	log := decoderLog.Named("decodeWorker")
	out := make(chan *result)
	done := make(chan struct{}, 1)

	go func() {
		var wg sync.WaitGroup
		goroutines := make(chan struct{}, cntRoutines)

	loop:
		for path := range paths {
			select {
			case goroutines <- struct{}{}:
			case <-ctx.Done():
				log.Debug("context done")
				break loop
			}
			wg.Add(1)
			go func(ctx context.Context, path string, goroutines <-chan struct{}, out chan<- *result, wg *sync.WaitGroup) {
				defer wg.Done()
				defer func() { <-goroutines }()

				if ctx.Err() != nil {
					log.Debug("skip decodeFile", zap.String("path", path))
					return
				}

				select {
				case out <- decode(path):
				case <-ctx.Done():
					log.Debug("decodeFile context done", zap.String("path", path))
				}
			}(ctx, path, goroutines, out, &wg)
		}

		wg.Wait()
		close(goroutines)
		close(out)

		done <- struct{}{}
		close(done)
	}()

	return out, done
}
