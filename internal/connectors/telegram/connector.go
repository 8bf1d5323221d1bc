// Package telegram reads telegram-history-dump export files. Each
// export is newline-delimited JSON, one event object per line; the
// connector filters non-message noise and hands normalised messages to
// the session grouper.
package telegram

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/remem-labs/remem/internal/core/domain"
	"github.com/remem-labs/remem/internal/core/ports/driven"
	"github.com/remem-labs/remem/internal/logger"
	"github.com/remem-labs/remem/internal/normalisers/telegram"
)

// Suffix is the export file extension the connector discovers.
const Suffix = ".jsonl"

// maxLineBytes bounds a single export line. Long forwarded posts fit
// comfortably; anything larger is a corrupt file.
const maxLineBytes = 4 * 1024 * 1024

// Connector reads chat export files into message sequences.
type Connector struct {
	normaliser *telegram.Normaliser
}

// New creates a connector.
func New(counter driven.TokenCounter) *Connector {
	return &Connector{normaliser: telegram.New(counter)}
}

// Discover resolves files and directories into the sorted list of
// export files beneath them. Directories are walked recursively; plain
// files must carry the export suffix.
func (c *Connector) Discover(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if !info.IsDir() {
			if strings.HasSuffix(path, Suffix) {
				files = append(files, path)
			}
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(p, Suffix) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", path, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// Messages lazily reads one export file. Non-message events and
// messages with neither text nor media are skipped before
// normalisation; a decode or normalisation failure aborts the file.
func (c *Connector) Messages(path string) iter.Seq2[domain.ChatMessage, error] {
	return func(yield func(domain.ChatMessage, error) bool) {
		f, err := os.Open(path)
		if err != nil {
			yield(domain.ChatMessage{}, fmt.Errorf("open %s: %w", path, err))
			return
		}
		defer f.Close()

		for msg, err := range c.read(f) {
			if err != nil {
				yield(domain.ChatMessage{}, fmt.Errorf("%s: %w", path, err))
				return
			}
			if !yield(msg, nil) {
				return
			}
		}
	}
}

// read decodes and normalises messages from one export stream.
func (c *Connector) read(r io.Reader) iter.Seq2[domain.ChatMessage, error] {
	return func(yield func(domain.ChatMessage, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

		line := 0
		skipped := 0
		for scanner.Scan() {
			line++
			raw := bytes.TrimSpace(scanner.Bytes())
			if len(raw) == 0 {
				continue
			}

			ev, err := telegram.ParseEvent(raw)
			if err != nil {
				yield(domain.ChatMessage{}, fmt.Errorf("line %d: %w", line, err))
				return
			}
			if !ev.Ingestible() {
				skipped++
				continue
			}

			msg, err := c.normaliser.Normalise(ev)
			if err != nil {
				yield(domain.ChatMessage{}, fmt.Errorf("line %d: %w", line, err))
				return
			}
			if !yield(msg, nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield(domain.ChatMessage{}, fmt.Errorf("read: %w", err))
			return
		}
		if skipped > 0 {
			logger.Debug("skipped %d non-message events", skipped)
		}
	}
}
