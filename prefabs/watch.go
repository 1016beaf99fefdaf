package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long a file must stay quiet before its change is
// reported. Editors often save in several writes.
const settleDelay = 100 * time.Millisecond

type ChangeKind int

const (
	SceneChange ChangeKind = iota + 1
	ScriptChange
)

func (k ChangeKind) String() string {
	switch k {
	case SceneChange:
		return "scene"
	case ScriptChange:
		return "script"
	default:
		return "unknown"
	}
}

// Change names an edited file by base name ("scene.yaml", "orbit.tengo").
type Change struct {
	Name string
	Kind ChangeKind
}

// Classify reports which kind of prefab path refers to, if any.
func Classify(path string) (ChangeKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return SceneChange, true
	case ".tengo":
		return ScriptChange, true
	default:
		return 0, false
	}
}

// Watcher reports settled edits to scene specs and motion scripts.
type Watcher struct {
	Changes chan Change
	Errors  chan error

	fs        *fsnotify.Watcher
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewWatcher watches Dir and its scripts folder.
func NewWatcher() (*Watcher, error) {
	return NewWatcherFor(Dir, filepath.Join(Dir, "scripts"))
}

func NewWatcherFor(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		Changes: make(chan Change, 16),
		Errors:  make(chan error, 1),
		fs:      fsw,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.stop)
		err = w.fs.Close()
		<-w.done
		close(w.Changes)
		close(w.Errors)
	})
	return err
}

// Poll returns the next reported change without blocking.
func (w *Watcher) Poll() (Change, bool) {
	select {
	case c, ok := <-w.Changes:
		return c, ok
	default:
		return Change{}, false
	}
}

func (w *Watcher) run() {
	defer close(w.done)

	pending := make(map[string]ChangeKind)
	var settled <-chan time.Time
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			kind, ok := Classify(ev.Name)
			if !ok {
				continue
			}
			pending[filepath.Base(ev.Name)] = kind
			// every event restarts the window
			settled = time.After(settleDelay)
		case <-settled:
			settled = nil
			for name, kind := range pending {
				delete(pending, name)
				select {
				case w.Changes <- Change{Name: name, Kind: kind}:
				case <-w.stop:
					return
				}
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.stop:
			return
		}
	}
}
