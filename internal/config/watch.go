package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Reload is one re-read of the watched file. Err is set when the file failed to load;
// Config then holds the defaults Load returned.
type Reload struct {
	Config Config
	Err    error
}

// Watcher reloads a config file whenever it changes on disk. Only the newest reload is
// kept; Poll hands it to the frame loop without blocking.
type Watcher struct {
	path    string
	fs      *fsnotify.Watcher
	pending chan Reload
	done    chan struct{}
	once    sync.Once
}

// Watch starts watching path. The parent directory is watched rather than the file so
// editors that save by rename, and a file created after startup, are both picked up.
func Watch(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch: %w", err)
	}
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", dir, err)
	}
	w := &Watcher{
		path:    filepath.Clean(path),
		fs:      fsw,
		pending: make(chan Reload, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			cfg, err := Load(w.path)
			w.offer(Reload{Config: cfg, Err: err})
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.offer(Reload{Config: Default(), Err: fmt.Errorf("config: watch: %w", err)})
		}
	}
}

// offer replaces any reload the frame loop has not picked up yet.
func (w *Watcher) offer(r Reload) {
	select {
	case <-w.pending:
	default:
	}
	select {
	case w.pending <- r:
	default:
	}
}

// Poll returns the newest reload since the last call, if any.
func (w *Watcher) Poll() (Reload, bool) {
	select {
	case r := <-w.pending:
		return r, true
	default:
		return Reload{}, false
	}
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}
