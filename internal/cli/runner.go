package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/checklist/internal/config"
	"github.com/idilsaglam/checklist/internal/host"
	"github.com/idilsaglam/checklist/internal/logging"
	"github.com/idilsaglam/checklist/internal/prefs"
	"github.com/idilsaglam/checklist/internal/tasks"
	"github.com/idilsaglam/checklist/internal/tui"
	"github.com/idilsaglam/checklist/internal/ui"
)

// Options tune behavior from root flags.
type Options struct {
	Config    *config.Config
	Ephemeral bool        // keep everything in memory for this run
	Logger    *log.Logger // headless commands log here; nil means stderr
	Out       io.Writer   // command output; nil means stdout
}

func (o Options) out() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return os.Stdout
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.New(os.Stderr, logging.Options{Level: o.Config.LogLevel, Format: o.Config.LogFormat})
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if opt.Config == nil {
		opt.Config = config.Default()
	}
	if len(args) == 0 {
		return doUI(opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ui":
		return doUI(opt)

	case "ls":
		html := len(a) == 1 && a[0] == "--html"
		if len(a) > 1 || (len(a) == 1 && !html) {
			ui.Fail("usage: checklist ls [--html]")
			return 2
		}
		return doList(opt, html)

	case "add":
		if len(a) == 0 {
			ui.Fail("usage: checklist add <text...>")
			return 2
		}
		return doAdd(opt, strings.Join(a, " "))

	case "done", "rm":
		if len(a) != 1 {
			ui.Fail("usage: checklist " + cmd + " <id>")
			return 2
		}
		id, err := strconv.Atoi(a[0])
		if err != nil || id < 0 {
			ui.Fail(cmd + ": not a task id: " + a[0])
			return 2
		}
		if cmd == "done" {
			return doToggle(opt, id)
		}
		return doRemove(opt, id)

	case "clear":
		return doClear(opt)

	case "set":
		if len(a) != 2 {
			ui.Fail("usage: checklist set <opacity|background|text> <value>")
			return 2
		}
		return doSet(opt, a[0], a[1])

	case "prefs":
		return doPrefs(opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`checklist - an always-on-top task panel

Usage:
  checklist [flags] [subcommand] [args]

Subcommands:
  ui                   Open the panel (default)
  add <text...>        Add a task (text can be multiple words)
  ls [--html]          List tasks with their ids
  done <id>            Toggle a task between open and done
  rm <id>              Delete a task
  clear                Delete every completed task
  set opacity <0..1>   Window opacity
  set background <hex> Background color, e.g. #2c3e50
  set text <hex>       Text color, e.g. #ecf0f1
  prefs                Show current appearance settings

Examples:
  checklist add "Buy milk"
  checklist ls
  checklist done 0
  checklist set background "#ff0000"
`)
}

func doUI(opt Options) int {
	cfg := opt.Config
	logger, closer, err := logging.NewFile(cfg.LogPath(), logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Prefix: "checklist/ui",
	})
	if err != nil {
		ui.Fail("log: " + err.Error())
		return 1
	}
	defer closer.Close()

	window := host.NewWindow(cfg.Window, logger)
	s, err := openSession(opt, logger, window)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer s.Close()

	m := tui.New(s.tasks, s.prefs, s.surface, window, tui.Options{Theme: cfg.Theme, Logger: logger})
	if err := tui.Run(m); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

// withSession runs fn against a headless session.
func withSession(opt Options, fn func(*session) int) int {
	s, err := openSession(opt, opt.logger(), host.Nop{})
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer s.Close()
	return fn(s)
}

func doList(opt Options, html bool) int {
	return withSession(opt, func(s *session) int {
		list := s.tasks.Tasks()
		if html {
			if err := ui.RenderHTML(opt.out(), list); err != nil {
				ui.Fail("render: " + err.Error())
				return 1
			}
			return 0
		}
		th := s.surface.Theme(ui.SymbolsFor(opt.Config.Theme))
		remaining, total := s.tasks.Count()
		lines := []string{
			th.Title.Render("Checklist") + "  " + th.Muted.Render(ui.CountLabel(remaining, total)),
			ui.ProgressBar(total-remaining, total, 20),
			"",
		}
		if len(list) == 0 {
			lines = append(lines, ui.RenderTasks(list, th, -1))
		} else {
			rows := strings.Split(ui.RenderTasks(list, th, -1), "\n")
			for i, r := range rows {
				lines = append(lines, th.Muted.Render(fmt.Sprintf("%3d", list[i].ID))+r)
			}
		}
		fmt.Fprintln(opt.out(), ui.Panel(lines, th))
		return 0
	})
}

func doAdd(opt Options, text string) int {
	return withSession(opt, func(s *session) int {
		t, err := s.tasks.Add(text)
		if errors.Is(err, tasks.ErrEmptyText) {
			ui.Fail("add: empty text")
			return 2
		}
		if err != nil {
			ui.Fail(err.Error())
			return 1
		}
		ui.OK(fmt.Sprintf("added #%d", t.ID))
		return 0
	})
}

func doToggle(opt Options, id int) int {
	return withSession(opt, func(s *session) int {
		found, err := s.tasks.Toggle(id)
		if err != nil {
			ui.Fail(err.Error())
			return 1
		}
		if !found {
			fmt.Fprintln(os.Stderr, ui.Muted(fmt.Sprintf("no task with id %d; run `checklist ls` to see ids", id)))
			return 0
		}
		ui.OK("toggled")
		return 0
	})
}

func doRemove(opt Options, id int) int {
	return withSession(opt, func(s *session) int {
		removed, err := s.tasks.Delete(id)
		if err != nil {
			ui.Fail(err.Error())
			return 1
		}
		if !removed {
			fmt.Fprintln(os.Stderr, ui.Muted(fmt.Sprintf("no task with id %d; run `checklist ls` to see ids", id)))
			return 0
		}
		ui.OK("removed")
		return 0
	})
}

func doClear(opt Options) int {
	return withSession(opt, func(s *session) int {
		n, err := s.tasks.ClearCompleted()
		if err != nil {
			ui.Fail(err.Error())
			return 1
		}
		ui.OK(fmt.Sprintf("cleared %d", n))
		return 0
	})
}

func doSet(opt Options, field, value string) int {
	return withSession(opt, func(s *session) int {
		var err error
		switch field {
		case "opacity":
			v, perr := strconv.ParseFloat(value, 64)
			if perr != nil {
				ui.Fail("set opacity: not a number: " + value)
				return 2
			}
			err = s.prefs.SetOpacity(v)
		case "background", "bg":
			err = s.prefs.SetBackgroundColor(value)
		case "text", "fg":
			err = s.prefs.SetTextColor(value)
		default:
			ui.Fail("set: unknown field " + field)
			return 2
		}
		if errors.Is(err, prefs.ErrOpacityRange) || errors.Is(err, prefs.ErrInvalidColor) {
			ui.Fail("set " + field + ": " + err.Error())
			return 2
		}
		if err != nil {
			ui.Fail(err.Error())
			return 1
		}
		ui.OK(field + " updated")
		return 0
	})
}

func doPrefs(opt Options) int {
	return withSession(opt, func(s *session) int {
		p := s.prefs.Preferences()
		fmt.Fprintf(opt.out(), "opacity:    %s\n", prefs.OpacityLabel(p.Opacity))
		fmt.Fprintf(opt.out(), "background: %s (%s)\n", p.BackgroundColor, s.surface.BackgroundCSS())
		fmt.Fprintf(opt.out(), "text:       %s\n", p.TextColor)
		return 0
	})
}
