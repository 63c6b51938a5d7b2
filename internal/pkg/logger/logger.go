package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger define a interface para logging estruturado.
// A aplicação (Handler, Service, Repository) deve depender apenas desta interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
}

// SlogLogger é a implementação concreta de Logger sobre log/slog com saída JSON.
type SlogLogger struct {
	log  *slog.Logger
	exit func(code int)
}

// NewLogger cria um Logger JSON no stdout com o nível informado
// ("debug", "info", "warn" ou "error"; qualquer outro valor vira "info").
func NewLogger(level string) Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter cria um Logger que escreve no writer informado. Útil em testes.
func NewWithWriter(w io.Writer, level string) *SlogLogger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return &SlogLogger{
		log:  slog.New(handler).With("service", "mottufind-api"),
		exit: os.Exit,
	}
}

// Slog expõe o *slog.Logger subjacente para bibliotecas que o aceitam.
func (l *SlogLogger) Slog() *slog.Logger {
	return l.log
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "fatal":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *SlogLogger) logFields(level slog.Level, msg string, fields map[string]interface{}) {
	if !l.log.Enabled(context.Background(), level) {
		return
	}
	attrs := make([]slog.Attr, 0, len(fields))
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	l.log.LogAttrs(context.Background(), level, msg, attrs...)
}

func (l *SlogLogger) Debug(msg string, fields map[string]interface{}) {
	l.logFields(slog.LevelDebug, msg, fields)
}

func (l *SlogLogger) Info(msg string, fields map[string]interface{}) {
	l.logFields(slog.LevelInfo, msg, fields)
}

func (l *SlogLogger) Warn(msg string, fields map[string]interface{}) {
	l.logFields(slog.LevelWarn, msg, fields)
}

func (l *SlogLogger) Error(msg string, err error) {
	if err != nil {
		l.log.Error(msg, "error", err.Error())
		return
	}
	l.log.Error(msg)
}

// Fatal registra o erro e encerra o processo.
func (l *SlogLogger) Fatal(msg string, err error) {
	l.Error(msg, err)
	l.exit(1)
}

// Nop é um Logger que descarta tudo. Usado em testes.
type Nop struct{}

func (Nop) Debug(string, map[string]interface{}) {}
func (Nop) Info(string, map[string]interface{})  {}
func (Nop) Warn(string, map[string]interface{})  {}
func (Nop) Error(string, error)                  {}
func (Nop) Fatal(string, error)                  {}
