package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goccy/snowflake-bindings/internal/logger"
	"github.com/goccy/snowflake-bindings/loader"
	"github.com/goccy/snowflake-bindings/request"
)

type option struct {
	Bindings   []string      `description:"specify the bind file (.yaml/.yml/.json/.toml). can be repeated" long:"bindings" short:"b"`
	SQL        string        `description:"specify the sql text. overrides the sql in the bind file" long:"sql"`
	SequenceID uint64        `description:"specify the request sequence id" long:"sequence-id" default:"1"`
	Async      bool          `description:"mark the request as asynchronous" long:"async"`
	Internal   bool          `description:"mark the request as internal" long:"internal"`
	Indent     bool          `description:"indent the output json" long:"indent"`
	LogLevel   logger.Level  `description:"specify the log level (debug/info/warn/error)" long:"log-level" default:"error"`
	LogFormat  logger.Format `description:"specify the log format (console/json)" long:"log-format" default:"console"`
	Version    bool          `description:"print version" long:"version" short:"v"`
}

type exitCode int

const (
	exitOK    exitCode = 0
	exitError exitCode = 1
)

var (
	version  string
	revision string
)

func main() {
	os.Exit(int(run()))
}

func run() exitCode {
	args, opt, err := parseOpt()
	if err != nil {
		flagsErr, ok := err.(*flags.Error)
		if !ok {
			fmt.Fprintf(os.Stderr, "[sfbind] unknown parsed option error: %[1]T %[1]v\n", err)
			return exitError
		}
		if flagsErr.Type == flags.ErrHelp {
			return exitOK
		}
		return exitError
	}
	if err := render(context.Background(), os.Stdout, args, opt); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}
	return exitOK
}

func parseOpt() ([]string, option, error) {
	var opt option
	parser := flags.NewParser(&opt, flags.Default)
	args, err := parser.Parse()
	return args, opt, err
}

func sourceFromPath(path string) (loader.Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loader.YAMLSource(path), nil
	case ".json":
		return loader.JSONSource(path), nil
	case ".toml":
		return loader.TOMLSource(path), nil
	}
	return nil, fmt.Errorf("unsupported bind file extension: %s", path)
}

// render loads every bind file and writes the resulting exec request as json to w.
func render(ctx context.Context, w io.Writer, args []string, opt option) error {
	if opt.Version {
		fmt.Fprintf(w, "version: %s (%s)\n", version, revision)
		return nil
	}
	log, err := logger.New(opt.LogLevel, opt.LogFormat)
	if err != nil {
		return err
	}
	defer log.Sync()
	ctx = logger.WithLogger(ctx, log)

	paths := append(opt.Bindings, args...)
	sources := make([]loader.Source, 0, len(paths))
	for _, path := range paths {
		source, err := sourceFromPath(path)
		if err != nil {
			return err
		}
		sources = append(sources, source)
	}
	l := loader.New()
	if err := l.Load(sources...); err != nil {
		return err
	}
	sql := l.SQLText()
	if opt.SQL != "" {
		sql = opt.SQL
	}
	if sql == "" {
		return fmt.Errorf("the sql text was not specified by --sql or a bind file")
	}
	bindings, err := l.Bindings(ctx)
	if err != nil {
		return err
	}
	log.Info("rendering exec request", zap.Int("bindings", len(bindings)), zap.Uint64("sequenceId", opt.SequenceID))
	req := request.NewExecRequest(
		sql,
		bindings,
		request.WithAsync(opt.Async),
		request.WithSequenceID(opt.SequenceID),
		request.WithInternal(opt.Internal),
	)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if opt.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(req); err != nil {
		return fmt.Errorf("failed to encode exec request: %w", err)
	}
	return nil
}
