// Package xlog configures the global zerolog logger for the wordsearch
// command: a styled console writer on terminals, JSON elsewhere, and an
// optional rotated log file.
package xlog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/milden6/wordsearch/config"
)

//
// ---------- Colors ----------

const (
	colorTeal   = "#3ddbd9"
	colorBlue   = "#4589ff"
	colorBlueHi = "#78a9ff"
	colorBlueLo = "#0043ce"
	colorOrange = "#ff832b"
	colorRed    = "#da1e28"
	colorRedHi  = "#ff0000"
	colorGray   = "#8d8d8d"
	colorLight  = "#f4f4f4"
	colorDark   = "#262626"
)

// Styles holds the console styles of one theme.
type Styles struct {
	Timestamp lipgloss.Style
	Key       lipgloss.Style
	Message   lipgloss.Style
	Levels    map[string]string // level name to background color
}

// StylesByName returns the "light" theme or, for any other name, the dark
// one.
func StylesByName(name string) *Styles {
	s := &Styles{
		Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)),
		Key:       lipgloss.NewStyle().Foreground(lipgloss.Color(colorBlueHi)),
		Message:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorLight)),
		Levels: map[string]string{
			"debug": colorTeal,
			"info":  colorBlue,
			"warn":  colorOrange,
			"error": colorRed,
			"fatal": colorRedHi,
		},
	}
	if strings.ToLower(name) == "light" {
		s.Key = s.Key.Foreground(lipgloss.Color(colorBlueLo))
		s.Message = s.Message.Foreground(lipgloss.Color(colorDark))
		s.Levels["info"] = colorBlueLo
	}
	return s
}

// ConsoleWriter builds a zerolog.ConsoleWriter writing to out with styles.
func ConsoleWriter(out io.Writer, styles *Styles) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",

		FormatLevel: func(i any) string {
			lvl := strings.ToLower(fmt.Sprint(i))
			color, ok := styles.Levels[lvl]
			if !ok {
				color = colorGray
			}
			short := strings.ToUpper(lvl)
			if len(short) > 3 {
				short = short[:3]
			}
			return lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffffff")).
				Background(lipgloss.Color(color)).
				Padding(0, 1).
				Render(short)
		},

		FormatTimestamp: func(i any) string {
			return styles.Timestamp.Render(fmt.Sprint(i))
		},

		FormatFieldName: func(i any) string {
			eq := lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray))
			return styles.Key.Render(fmt.Sprint(i)) + eq.Render("=")
		},

		FormatMessage: func(i any) string {
			if i == nil {
				return ""
			}
			return styles.Message.Render(fmt.Sprint(i))
		},
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Setup points the global logger at out, styled if out is a terminal and
// JSON otherwise, and at cfg.File if set. The returned Closer closes the
// log file.
func Setup(cfg config.Log, out io.Writer) (io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var console io.Writer = out
	if isTerminal(out) {
		console = ConsoleWriter(out, StylesByName(cfg.Style))
	}

	writers := []io.Writer{console}
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		writers = append(writers, file)
		closer = file
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Logger()
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
