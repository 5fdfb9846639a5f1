package pipeline

import (
	"fmt"
	"os"
	"sync"
)

// fileID identifies a feed file's content cheaply: path plus size and
// modification time. A change to either invalidates cached results.
type fileID struct {
	path    string
	size    int64
	modNano int64
}

func statFile(path string) (fileID, error) {
	info, err := os.Stat(path)
	if err != nil {
		return fileID{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return fileID{path: path, size: info.Size(), modNano: info.ModTime().UnixNano()}, nil
}

type cacheKey struct {
	sentiment fileID
	trades    fileID
}

// Loader memoizes pipeline runs per process so repeated loads of identical
// input files skip re-parsing. The cache key is the identity of both feed
// files, so touching either file triggers a full recompute on the next
// Load. There is no partial recomputation: a miss always reruns the whole
// pipeline.
type Loader struct {
	opts Options

	mu   sync.Mutex
	key  cacheKey
	last *Result
}

// NewLoader builds a Loader for a fixed pair of feed paths.
func NewLoader(opts Options) *Loader {
	return &Loader{opts: opts}
}

// Load returns the cached Result when both input files are unchanged since
// the previous call, otherwise reruns the pipeline. Safe for concurrent
// callers; the returned tables must be treated as read-only.
func (l *Loader) Load() (*Result, error) {
	sentID, err := statFile(l.opts.SentimentPath)
	if err != nil {
		return nil, err
	}
	tradeID, err := statFile(l.opts.TradesPath)
	if err != nil {
		return nil, err
	}
	key := cacheKey{sentiment: sentID, trades: tradeID}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.last != nil && l.key == key {
		return l.last, nil
	}

	res, err := Run(l.opts)
	if err != nil {
		return nil, err
	}
	l.key = key
	l.last = res
	return res, nil
}
