package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/codepad"
	"github.com/iw2rmb/codepad/editor"
	"github.com/iw2rmb/codepad/settings"
)

var noteStyle = lipgloss.NewStyle().Faint(true)

type savedMsg struct{ path string }

type saveErrMsg struct{ err error }

type model struct {
	editor editor.Model
	path   string
	note   string
	log    *slog.Logger
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// One row is reserved for the note line.
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit
		case "ctrl+s":
			return m, saveFile(m.path, m.editor.Text())
		}
		m.note = ""
	case savedMsg:
		m.note = "saved " + msg.path
		m.log.Info("file saved", "path", msg.path)
		return m, nil
	case saveErrMsg:
		m.note = msg.err.Error()
		m.log.Error("save failed", "err", msg.err)
		return m, nil
	case settings.Change:
		m.log.Debug("settings changed", "source", msg.Source, "settings", msg.New.String())
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.editor.View() + "\n" + noteStyle.Render(m.note)
}

func saveFile(path, text string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return saveErrMsg{err: errors.New("no file to save to; pass a path argument")}
		}
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return saveErrMsg{err: fmt.Errorf("save %s: %w", path, err)}
		}
		return savedMsg{path: path}
	}
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { _ = f.Close() }, nil
}

func readInitial(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

func run() error {
	var (
		configPath  = flag.String("config", "", "settings file (default: user config dir)")
		logPath     = flag.String("log", "", "write debug logs to this file")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(codepad.VersionString())
		return nil
	}

	log, closeLog, err := newLogger(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	if *configPath == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			return err
		}
		*configPath = p
	}

	store := settings.Default()
	s, err := settings.Load(*configPath)
	if err != nil {
		return err
	}
	store.Set(s)

	filePath := flag.Arg(0)
	text, err := readInitial(filePath)
	if err != nil {
		return err
	}

	lipgloss.SetColorProfile(termenv.EnvColorProfile())

	ed := editor.New(editor.Config{
		Text:         text,
		Settings:     store,
		ShowLineNums: true,
		ShowStatus:   true,
		Style:        editor.DefaultStyle(),
		Logger:       log,
	})

	p := tea.NewProgram(model{editor: ed, path: filePath, log: log}, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Settings changed from the keyboard are persisted; reloads from the
	// file are forwarded so the status line repaints.
	unsubscribe := store.Subscribe(func(c settings.Change) {
		if c.Source == settings.SourceUI {
			if err := settings.Save(*configPath, c.New); err != nil {
				log.Warn("settings save failed", "path", *configPath, "err", err)
			}
		}
		go p.Send(c)
	})
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := settings.Watch(ctx, *configPath, store, log); err != nil {
			log.Warn("settings watch stopped", "err", err)
		}
	}()

	log.Info("codepad started", "version", codepad.Version(), "file", filePath, "settings", store.Get().String())
	_, err = p.Run()
	return err
}

func main() {
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
