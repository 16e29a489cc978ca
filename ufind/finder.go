package ufind

import (
	"bufio"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dendrascience/ufind/arena"
	"github.com/dendrascience/ufind/avl"
)

// Stats counts what a run did.
type Stats struct {
	Emitted    int // unique files written to the output
	Duplicates int // files suppressed as hard links of an emitted file
	Revisits   int // directories reached again and not re-entered
	Skipped    int // unsupported kinds and cross-device entries
	Errors     int // per-path failures
}

// seal is the device an argument started on.
type seal struct {
	dev uint64
	set bool
}

// task is one unit of pending work. Children of a listed directory already
// carry their identity; arguments and symbolic links must be resolved.
type task struct {
	path     string
	entry    Entry
	resolved bool
	seal     *seal
}

// Finder is the state of one traversal.
type Finder struct {
	cfg      Config
	fs       Filesystem
	log      logrus.Ext1FieldLogger
	w        io.Writer
	out      *bufio.Writer
	registry *Registry
	stats    Stats
	werr     error
}

// New creates a Finder. Without options it walks the host filesystem, logs
// through the standard logrus logger and writes to stdout.
func New(cfg Config, opts ...Option) *Finder {
	if cfg.MaxPathLen <= 0 {
		cfg.MaxPathLen = MaxPathLen
	}
	f := &Finder{
		cfg: cfg,
		fs:  OS(),
		log: logrus.StandardLogger(),
		w:   os.Stdout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	var ropts []avl.Option
	if cfg.Capacity > 0 {
		ropts = append(ropts, avl.WithCapacity(cfg.Capacity))
	}
	f.registry = NewRegistry(ropts...)
	f.out = bufio.NewWriter(f.w)
	return f
}

// Stats returns the counters accumulated so far.
func (f *Finder) Stats() Stats { return f.stats }

// Registry exposes the visited registry.
func (f *Finder) Registry() *Registry { return f.registry }

// Run processes every argument in order. Per-path failures are logged and
// counted; the returned error is only set when writing the output fails.
func (f *Finder) Run(args []string) error {
	switch f.cfg.Strategy {
	case StrategyWaves:
		f.runWaves(args)
	default:
		f.runDepthFirst(args)
	}
	if err := f.out.Flush(); err != nil && f.werr == nil {
		f.werr = err
	}
	f.log.Tracef("%s", f.registry.Describe())
	return f.werr
}

// Close releases the registry.
func (f *Finder) Close() error { return f.registry.Free() }

func (f *Finder) runDepthFirst(args []string) {
	var stack []task
	for _, arg := range args {
		f.log.Infof("processing %s", arg)
		stack = append(stack[:0], task{path: arg, seal: &seal{}})
		for len(stack) > 0 && f.werr == nil {
			t := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			children := f.step(t)
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
		}
	}
}

func (f *Finder) runWaves(args []string) {
	current, pending := arena.New[task](), arena.New[task]()
	defer current.Reset()
	defer pending.Reset()

	for _, arg := range args {
		f.log.Infof("processing %s", arg)
		if _, err := pending.Append(task{path: arg, seal: &seal{}}); err != nil {
			f.fail(&PathError{Context: "schedule", Path: arg, Kind: ErrCapacityExhausted, Err: err})
		}
	}
	for wave := 1; pending.Len() > 0 && f.werr == nil; wave++ {
		current, pending = pending, current
		pending.Clear()
		f.log.Debugf("wave %d: %d entries", wave, current.Len())
		for _, t := range current.All {
			for _, c := range f.step(*t) {
				if _, err := pending.Append(c); err != nil {
					f.fail(&PathError{Context: "schedule", Path: c.path, Kind: ErrCapacityExhausted, Err: err})
				}
			}
			if f.werr != nil {
				return
			}
		}
	}
}

// step handles one task and returns the work it discovered.
func (f *Finder) step(t task) []task {
	e := t.entry
	if !t.resolved {
		re, err := f.fs.Resolve(t.path)
		if err != nil {
			f.fail(err)
			return nil
		}
		e = re
	}
	if e.Kind != KindRegular && e.Kind != KindDirectory {
		f.skipKind(e.Kind, t.path)
		return nil
	}
	path := t.path
	if e.Path != "" {
		path = e.Path
	}
	if !f.admit(t.seal, e.Dev, path) {
		return nil
	}
	if e.Kind == KindDirectory {
		return f.visitDir(e.Identity, path, t.seal)
	}
	f.visitFile(e.Identity, path)
	return nil
}

// admit applies the device boundary policy.
func (f *Finder) admit(s *seal, dev uint64, path string) bool {
	if !f.cfg.OneFileSystem {
		return true
	}
	if !s.set {
		s.dev, s.set = dev, true
		return true
	}
	if dev != s.dev {
		f.stats.Skipped++
		f.log.Warnf("crossing device boundary, skipping %s", path)
		return false
	}
	return true
}

func (f *Finder) visitFile(id Identity, path string) {
	first, err := f.registry.MarkFile(id)
	if err != nil {
		f.fail(&PathError{Context: "visit:file", Path: path, Kind: ErrCapacityExhausted, Err: err})
		return
	}
	if !first {
		f.stats.Duplicates++
		f.log.Debugf("already emitted %d:%d, suppressing %s", id.Dev, id.Ino, path)
		return
	}
	f.emit(path)
}

func (f *Finder) visitDir(id Identity, path string, s *seal) []task {
	first, err := f.registry.MarkDir(id)
	if err != nil {
		f.fail(&PathError{Context: "visit:directory", Path: path, Kind: ErrCapacityExhausted, Err: err})
		return nil
	}
	if !first {
		f.stats.Revisits++
		f.log.Debugf("already visited, skipping directory %s", path)
		return nil
	}

	entries, rerr := f.fs.ReadDir(path)
	if rerr != nil && len(entries) == 0 {
		f.fail(rerr)
		return nil
	}
	f.log.Debugf("entering %s (%d entries)", path, len(entries))

	tasks := make([]task, 0, len(entries))
	for _, e := range entries {
		if e.Err != nil {
			f.fail(e.Err)
			continue
		}
		switch e.Kind {
		case KindRegular, KindDirectory, KindSymlink:
		default:
			f.skipKind(e.Kind, joinPath(path, e.Name))
			continue
		}
		child, err := childPath(path, e.Name, f.cfg.MaxPathLen)
		if err != nil {
			f.fail(err)
			continue
		}
		t := task{path: child, seal: s}
		if e.Kind != KindSymlink {
			t.entry, t.resolved = e, true
		}
		tasks = append(tasks, t)
	}
	if rerr != nil {
		f.fail(rerr)
	}
	return tasks
}

func (f *Finder) emit(path string) {
	if f.werr != nil {
		return
	}
	if _, err := f.out.WriteString(path); err != nil {
		f.werr = err
		return
	}
	if err := f.out.WriteByte(f.cfg.Separator); err != nil {
		f.werr = err
		return
	}
	f.stats.Emitted++
}

func (f *Finder) skipKind(k Kind, path string) {
	f.stats.Skipped++
	f.log.Warnf("can't handle <%s>, skipping %s", k, path)
}

func (f *Finder) fail(err error) {
	f.stats.Errors++
	f.log.Error(err.Error())
}
