package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/Garik-/mididecode/pkg/midi"
	"github.com/Garik-/mididecode/pkg/smf"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// category -> kind -> count
type kindMap map[string]int
type categoryMap map[midi.Category]kindMap

type tally struct {
	files        int
	events       int
	malformed    int
	unrecognized int
	categories   categoryMap
}

func newTally() *tally {
	return &tally{categories: make(categoryMap)}
}

func (t *tally) add(e *smf.Event) {
	t.events++

	switch {
	case midi.IsMalformed(e.Err):
		t.malformed++
		return
	case e.Err != nil:
		t.unrecognized++
		return
	}

	kinds, ok := t.categories[e.Message.Category()]
	if !ok {
		kinds = make(kindMap)
		t.categories[e.Message.Category()] = kinds
	}
	kinds[kindName(e.Message)]++
}

func kindName(m midi.Message) string {
	switch m := m.(type) {
	case midi.Voice:
		return m.Kind.String()
	case midi.ChannelMode:
		if m.Mode.Kind != 0 {
			return m.Kind.String() + "/" + m.Mode.Kind.String()
		}
		return m.Kind.String()
	case midi.SystemCommon:
		return m.Kind.String()
	case midi.RealTime:
		return m.Kind.String()
	}
	return fmt.Sprintf("%T", m)
}

func scanFiles(parent context.Context, paths <-chan string, cntRoutines int) (*tally, error) {
	log := tallyLog.Named("scanFiles")
	ctx, cancel := context.WithCancel(parent)
	results, done := decodeWorker(ctx, paths, cntRoutines)

	defer func() {
		log.Debug("cancel")
		cancel()
		<-done // wait decodeWorker closed
	}()

	t := newTally()

	for result := range results {
		if result.err != nil {
			return nil, fmt.Errorf("%s: %w", result.name, result.err)
		}

		log.Debug("result", zap.String("name", result.name), zap.Int("tracks", len(result.tracks)))

		t.files++
		for _, track := range result.tracks {
			for _, event := range track.Events {
				t.add(event)
			}
		}
	}

	return t, nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	kindStyle  = lipgloss.NewStyle().PaddingLeft(2)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func (t *tally) print(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%d files, %d events", t.files, t.events)))

	categories := make([]midi.Category, 0, len(t.categories))
	for c := range t.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	for _, c := range categories {
		fmt.Fprintln(w, c.String())

		kinds := t.categories[c]
		names := make([]string, 0, len(kinds))
		for name := range kinds {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			fmt.Fprintln(w, kindStyle.Render(fmt.Sprintf("%-28s %d", name, kinds[name])))
		}
	}

	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("malformed %d, unrecognized %d", t.malformed, t.unrecognized)))
}
