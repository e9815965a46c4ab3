package theme

import (
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler receives each theme successfully reloaded by a Watcher. It runs
// on a watcher-owned goroutine; applying the theme to an environment must
// be handed over to whatever thread owns that environment.
type Handler func(path string, t *Theme)

// Watcher reloads theme files in a directory when they change.
type Watcher struct {
	fsw      *fsnotify.Watcher
	handler  Handler
	logger   *log.Logger
	debounce time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool

	done chan struct{}
	wg   sync.WaitGroup
}

// NewWatcher watches dir for theme file changes. A nil logger uses the
// standard logger.
func NewWatcher(dir string, handler Handler, logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = log.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		handler:  handler,
		logger:   logger,
		debounce: 100 * time.Millisecond,
		timers:   make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Close stops the watcher and cancels pending reloads.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	w.mu.Lock()
	w.closed = true
	for _, t := range w.timers {
		t.Stop()
	}
	w.timers = nil
	w.mu.Unlock()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.schedule(ev.Name)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Printf("theme: watch: %v", err)
		}
	}
}

// schedule arms (or re-arms) a reload for path. Editors fire several
// events per save; the reload runs once the burst has been quiet for the
// debounce window, so the file is read in its final state.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if t, ok := w.timers[path]; ok {
		t.Reset(w.debounce)
		return
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		closed := w.closed
		w.mu.Unlock()
		if !closed {
			w.reload(path)
		}
	})
}

// reload parses one changed file and hands the result to the handler.
func (w *Watcher) reload(path string) {
	t, err := Load(path)
	if err != nil {
		w.logger.Printf("theme: reload %s: %v", path, err)
		return
	}
	if t == nil {
		return
	}
	w.handler(path, t)
}

// Load parses a theme file by extension. Unknown extensions return a nil
// theme without error.
func Load(path string) (*Theme, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return LoadTOML(path)
	case ".json":
		return LoadJSON(path)
	case ".lua":
		return LoadLua(path)
	}
	return nil, nil
}
