package analysis

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// dirNameRe matches result directories named threads_<T>_<R>_reqPerClient.
var dirNameRe = regexp.MustCompile(`^threads_(\d+)_(\d+)_reqPerClient$`)

// resultFileSep splits a result file name into queue variant and run suffix.
const resultFileSep = "_results_"

// parseDirName extracts (threads, requestsPerClient) from a result
// directory base name. ok is false when the name doesn't match the
// expected pattern.
func parseDirName(name string) (threads, reqs int, ok bool) {
	m := dirNameRe.FindStringSubmatch(name)
	if m == nil {
		return 0, 0, false
	}
	threads, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	reqs, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	return threads, reqs, true
}

// queueName extracts the queue variant from a result file name, the
// substring before the separator token. ok is false for files that are
// not result files.
func queueName(filename string) (string, bool) {
	queue, _, found := strings.Cut(filename, resultFileSep)
	if !found {
		return "", false
	}
	return queue, true
}

// Walker enumerates qualifying result files under the results root.
type Walker struct {
	root    string
	allowed map[int]bool
}

// NewWalker creates a Walker for the configured results tree.
func NewWalker(cfg Config) *Walker {
	return &Walker{
		root:    cfg.ResultsDir,
		allowed: cfg.allowedThreads(),
	}
}

// Walk calls visit for every result file in a qualifying directory.
// Directories that don't match the naming pattern are skipped silently;
// directories naming a thread count outside the allow-set are skipped
// with a notice. An error returned by visit aborts the walk.
func (w *Walker) Walk(visit func(path string, threads, reqs int, queue string) error) error {
	if _, err := os.Stat(w.root); os.IsNotExist(err) {
		// A missing root is the empty-result case, not a crash
		return nil
	}

	return filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}

		threads, reqs, ok := parseDirName(d.Name())
		if !ok {
			return nil
		}
		if !w.allowed[threads] {
			log.Info().
				Int("threads", threads).
				Str("dir", path).
				Msg("Skipping thread count beyond hardware capacity")
			return nil
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			queue, ok := queueName(entry.Name())
			if !ok {
				continue
			}
			if err := visit(filepath.Join(path, entry.Name()), threads, reqs, queue); err != nil {
				return err
			}
		}
		return nil
	})
}
