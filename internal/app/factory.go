package app

import (
	"io"
	"os"

	"github.com/footprint-tools/cmdspec/internal/config"
	"github.com/footprint-tools/cmdspec/internal/domain"
	"github.com/footprint-tools/cmdspec/internal/log"
	"github.com/footprint-tools/cmdspec/internal/paths"
	"github.com/footprint-tools/cmdspec/internal/store"
	"github.com/footprint-tools/cmdspec/internal/ui"
	"github.com/footprint-tools/cmdspec/internal/ui/style"
)

// Options adjusts the services built from settings, usually from host
// flags.
type Options struct {
	// Pager options
	PagerDisabled bool
	PagerOverride string

	NoColor   bool
	NoHistory bool

	// LogLevel enables file logging at this level even when enable_log
	// is false.
	LogLevel string

	// Stdout and Stderr default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Services are the collaborators every front-end shares.
type Services struct {
	Settings config.Settings
	Logger   domain.Logger
	History  domain.HistoryStore
	Output   domain.OutputWriter
	ErrOut   io.Writer
	Styler   domain.Styler
	Colors   style.ColorConfig
}

// DefaultServices reads the rc file and builds services from it.
func DefaultServices(opts Options) *Services {
	settings := config.DefaultSettings()
	if f, err := config.Default(); err == nil {
		settings = config.Load(f)
	} else {
		log.Warn("app: no settings file: %v", err)
	}
	return NewServices(settings, opts)
}

// NewServices wires logging, history, styling and output. A history
// database that cannot be opened disables history rather than failing.
func NewServices(settings config.Settings, opts Options) *Services {
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	s := &Services{Settings: settings, ErrOut: stderr}

	s.Logger = log.NopLogger{}
	if settings.EnableLog || opts.LogLevel != "" {
		level := settings.LogLevel
		if opts.LogLevel != "" {
			level = opts.LogLevel
		}
		l, err := log.New(paths.LogFilePath(), log.ParseLevel(level), log.DefaultRotation())
		if err == nil {
			log.SetDefault(l)
			s.Logger = l
		}
	}

	if settings.EnableHistory && !opts.NoHistory {
		h, err := store.New(paths.HistoryDBPath())
		if err != nil {
			log.Warn("app: history disabled: %v", err)
		} else {
			s.History = h
		}
	}

	mode := style.ParseColorMode(settings.Color)
	if opts.NoColor {
		mode = style.ColorNever
	}
	st := style.Setup(mode, settings.Theme, stdout)
	s.Styler = st
	s.Colors = st.Colors()

	writerOpts := []ui.WriterOption{ui.WithConfigGetter(func(key string) (string, bool) {
		if key == "pager" && settings.Pager != "" {
			return settings.Pager, true
		}
		return "", false
	})}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	s.Output = ui.NewWriterTo(stdout, writerOpts...)

	return s
}

// NewTestServices returns services with no logging, history or color.
func NewTestServices(out domain.OutputWriter, errOut io.Writer) *Services {
	return &Services{
		Settings: config.DefaultSettings(),
		Logger:   log.NopLogger{},
		Output:   out,
		ErrOut:   errOut,
		Styler:   style.NopStyler{},
		Colors:   style.LoadColorConfig("default"),
	}
}

// Close releases the history database and the log file.
func (s *Services) Close() error {
	if s.History != nil {
		_ = s.History.Close()
	}
	if l, ok := s.Logger.(*log.Logger); ok && l == log.GetLogger() {
		log.SetDefault(nil)
	}
	if s.Logger != nil {
		_ = s.Logger.Close()
	}
	return nil
}
