package synchronizer

import (
	"time"

	"github.com/arthur-debert/fmlabel/pkg/label"
	"github.com/arthur-debert/fmlabel/pkg/logging"
	"github.com/arthur-debert/fmlabel/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultRetryDelay is the pause between failed handle acquisitions
const DefaultRetryDelay = time.Second

// State is the lifecycle of the file-index handle
type State int

const (
	Unacquired State = iota
	Acquired
)

func (s State) String() string {
	switch s {
	case Unacquired:
		return "unacquired"
	case Acquired:
		return "acquired"
	default:
		return "unknown"
	}
}

// Scheduler runs f on the handler goroutine after d
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// Compiler renders a label; label.Compiler satisfies it
type Compiler interface {
	Compile(extractors []types.ExtractorSpec, separator string, snapshot types.Snapshot) string
}

// Options tune a Synchronizer. Zero values pick the defaults.
type Options struct {
	RetryDelay time.Duration
	Compiler   Compiler
	Logger     *zerolog.Logger
}

// Synchronizer writes compiled labels into the host's file nodes
type Synchronizer struct {
	host      types.Host
	settings  types.SettingsStore
	scheduler Scheduler
	compiler  Compiler
	delay     time.Duration
	logger    zerolog.Logger

	index        types.FileIndex
	retryPending bool
	attempts     int
	ready        chan struct{}
}

// New creates a synchronizer in the Unacquired state
func New(host types.Host, settings types.SettingsStore, scheduler Scheduler, opts Options) *Synchronizer {
	s := &Synchronizer{
		host:      host,
		settings:  settings,
		scheduler: scheduler,
		compiler:  opts.Compiler,
		delay:     opts.RetryDelay,
		ready:     make(chan struct{}),
	}
	if s.compiler == nil {
		s.compiler = label.Compiler{Location: time.Local}
	}
	if s.delay <= 0 {
		s.delay = DefaultRetryDelay
	}
	if opts.Logger != nil {
		s.logger = *opts.Logger
	} else {
		s.logger = logging.GetLogger("synchronizer")
	}
	return s
}

// State reports whether the file index has been acquired
func (s *Synchronizer) State() State {
	if s.index == nil {
		return Unacquired
	}
	return Acquired
}

// Ready is closed once the file index has been acquired
func (s *Synchronizer) Ready() <-chan struct{} {
	return s.ready
}

// OnLayoutReady handles the host's layout-ready signal
func (s *Synchronizer) OnLayoutReady() {
	s.Initialize()
}

// OnMetadataChanged handles a metadata change for one file
func (s *Synchronizer) OnMetadataChanged(path string) {
	s.RefreshOne(path)
}

// OnSettingsChanged persists the configuration, then refreshes every label.
// A persistence failure is logged and does not block the refresh.
func (s *Synchronizer) OnSettingsChanged() {
	if err := s.settings.Save(); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to persist settings")
	}
	s.RefreshAll()
}

// Initialize acquires the file index, retrying until it exists, and then
// refreshes all labels. Calling it while a retry is pending is a no-op.
func (s *Synchronizer) Initialize() {
	if s.index != nil {
		s.RefreshAll()
		return
	}
	if s.retryPending {
		s.logger.Trace().Msg("Acquisition retry already scheduled")
		return
	}
	s.attempt()
}

func (s *Synchronizer) attempt() {
	s.attempts++
	index, ok := s.acquireHandle()
	if !ok {
		s.logger.Trace().
			Int("attempt", s.attempts).
			Dur("retryIn", s.delay).
			Msg("File index not available yet")
		s.retryPending = true
		s.scheduler.AfterFunc(s.delay, func() {
			s.retryPending = false
			s.attempt()
		})
		return
	}

	s.index = index
	close(s.ready)
	s.logger.Info().Int("attempts", s.attempts).Msg("Acquired file index")
	s.RefreshAll()
}

// acquireHandle returns the file index of the first pane that exposes one
func (s *Synchronizer) acquireHandle() (types.FileIndex, bool) {
	for _, pane := range s.host.VisiblePanes() {
		if pane == nil {
			continue
		}
		if index, ok := pane.FileIndex(); ok && index != nil {
			return index, true
		}
	}
	return nil, false
}

// RefreshAll rewrites the label of every tracked file
func (s *Synchronizer) RefreshAll() {
	if s.index == nil {
		s.logger.Trace().Msg("RefreshAll before acquisition, skipping")
		return
	}
	done := logging.LogOperationStart(s.logger, "refresh-all")
	defer done()

	cfg := s.settings.Current()
	nodes := s.index.Nodes()
	for _, node := range nodes {
		s.write(cfg, node)
	}
	s.logger.Debug().Int("files", len(nodes)).Msg("Refreshed all labels")
}

// RefreshOne rewrites the label of path. Untracked paths are ignored.
func (s *Synchronizer) RefreshOne(path string) {
	if s.index == nil {
		return
	}
	node, ok := s.index.Node(path)
	if !ok {
		s.logger.Trace().Str("path", path).Msg("File not tracked, skipping")
		return
	}
	s.write(s.settings.Current(), node)
}

func (s *Synchronizer) write(cfg types.Config, node types.FileNode) {
	snapshot, ok := s.host.MetadataSnapshot(node.Path())
	if !ok {
		snapshot = nil
	}
	text := s.compiler.Compile(cfg.Extractors, cfg.Separator, snapshot)
	node.SetDisplayAttribute(text)
	s.logger.Trace().Str("path", node.Path()).Str("label", text).Msg("Label written")
}
