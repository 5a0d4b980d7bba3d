package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Garik-/mididecode/pkg/midi"
	"github.com/Garik-/mididecode/pkg/smf"
)

// openInput returns stdin for an empty name or "-".
func openInput(name string) (*os.File, error) {
	if name == "" || name == "-" {
		return os.Stdin, nil
	}
	return os.Open(name)
}

func dumpHex(name string, c *midi.Classifier, p *printer) error {
	f, err := openInput(name)
	if err != nil {
		return err
	}
	if f != os.Stdin {
		defer f.Close()
	}

	return classifyLines(f, c, p)
}

func classifyLines(r io.Reader, c *midi.Classifier, p *printer) error {
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++

		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		raw, err := parseHex(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		m, err := c.Classify(raw)
		p.print(fmt.Sprintf("line %d", line), raw, m, err)
	}

	return scanner.Err()
}

// parseHex accepts bytes like "90 3c 64", "903c64" or "0x90 0x3c 0x64".
func parseHex(s string) ([]byte, error) {
	var sb strings.Builder
	for _, field := range strings.Fields(s) {
		field = strings.ToLower(field)
		sb.WriteString(strings.TrimPrefix(field, "0x"))
	}
	return hex.DecodeString(sb.String())
}

func dumpSMF(name string, c *midi.Classifier, p *printer) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	decoder := smf.NewDecoder(f, smf.WithLogger(dumpLog), smf.WithClassifier(c))
	if err := decoder.Decode(); err != nil {
		return err
	}

	for i, track := range decoder.Tracks {
		for _, e := range track.Events {
			p.print(fmt.Sprintf("track %d tick %d", i, e.Ticks), e.Raw, e.Message, e.Err)
		}
	}

	return nil
}
