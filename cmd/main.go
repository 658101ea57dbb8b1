package main

import (
	"fmt"
	"os"
	"regexp"

	"go.uber.org/zap"

	"github.com/jgarciao/greppetto/internal/app"
	"github.com/jgarciao/greppetto/internal/config"
	"github.com/jgarciao/greppetto/internal/format"
	"github.com/jgarciao/greppetto/internal/logger"
	"github.com/jgarciao/greppetto/internal/source"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:]) // разобрать и проверить аргументы
	if err != nil {
		fmt.Fprintln(os.Stderr, "greppetto:", err)
		os.Exit(2)
	}

	// шаблон компилируется один раз, до чтения первой строки
	re, err := regexp.Compile(cfg.Pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "greppetto: invalid pattern %q: %v\n", cfg.Pattern, err)
		os.Exit(2)
	}

	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "greppetto: logger:", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	src := source.New(cfg.Files, os.Stdin, cfg.StdinLabel, func(path string, err error) {
		log.Warn("skipping input source", zap.String("path", path), zap.Error(err))
	})

	g := app.New(re, format.New(cfg.Mode), os.Stdout, log)
	if err := g.Run(src); err != nil {
		log.Error("run finished with errors", zap.Error(err))
		os.Exit(1)
	}
}
