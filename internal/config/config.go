package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RenderMode — формат вывода найденных строк. Режимы взаимоисключающие.
type RenderMode int

const (
	ModePlain RenderMode = iota
	ModeUnderscore
	ModeColor
	ModeMachine
)

func (m RenderMode) String() string {
	switch m {
	case ModeUnderscore:
		return "underscore"
	case ModeColor:
		return "color"
	case ModeMachine:
		return "machine"
	default:
		return "plain"
	}
}

func ParseMode(s string) (RenderMode, error) {
	switch strings.ToLower(s) {
	case "", "plain":
		return ModePlain, nil
	case "underscore":
		return ModeUnderscore, nil
	case "color":
		return ModeColor, nil
	case "machine":
		return ModeMachine, nil
	default:
		return ModePlain, fmt.Errorf("unknown render mode: %q", s)
	}
}

// Defaults — необязательный yaml-файл с настройками по умолчанию
// (путь задаётся флагом -config или переменной GREPPETTO_CONFIG)
type Defaults struct {
	Env         string `yaml:"env"`
	LogFile     string `yaml:"log_file"`
	StdinLabel  string `yaml:"stdin_label"`
	DefaultMode string `yaml:"default_mode"`
}

type Config struct {
	Pattern    string
	Files      []string
	Mode       RenderMode
	Env        string
	LogFile    string
	StdinLabel string
}

type flagOptions struct {
	underscore bool
	color      bool
	machine    bool
	configPath string
}

// ExpandArgs разворачивает объединённые короткие флаги режима ("-uc" -> "-u" "-c"),
// чтобы стандартный flag смог их распарсить. Остальные токены не трогаем.
func ExpandArgs(args []string) []string {
	short := map[rune]bool{'u': true, 'c': true, 'm': true}

	var out []string
	for i, a := range args {
		if a == "--" {
			out = append(out, args[i:]...)
			break
		}
		if !strings.HasPrefix(a, "-") || strings.HasPrefix(a, "--") || len(a) <= 2 {
			out = append(out, a)
			continue
		}

		runes := []rune(a[1:])
		known := true
		for _, r := range runes {
			if !short[r] {
				known = false
				break
			}
		}
		if !known {
			// не набор коротких флагов режима оставляем как есть
			out = append(out, a)
			continue
		}
		for _, r := range runes {
			out = append(out, "-"+string(r))
		}
	}
	return out
}

// ParseArgs разбирает аргументы командной строки в валидированный Config.
// Все ошибки здесь это ошибки использования (exit 2 на стороне main).
func ParseArgs(args []string) (*Config, error) {
	var opts flagOptions
	fs := flag.NewFlagSet("greppetto", flag.ContinueOnError)
	fs.BoolVar(&opts.underscore, "u", false, "print '^' under the matching text")
	fs.BoolVar(&opts.underscore, "underscore", false, "print '^' under the matching text")
	fs.BoolVar(&opts.color, "c", false, "highlight the matching text")
	fs.BoolVar(&opts.color, "color", false, "highlight the matching text")
	fs.BoolVar(&opts.machine, "m", false, "machine-readable output: origin:line:start:matched_text")
	fs.BoolVar(&opts.machine, "machine", false, "machine-readable output: origin:line:start:matched_text")
	fs.StringVar(&opts.configPath, "config", "", "path to yaml defaults file")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: greppetto [-u|-c|-m] [-config path] pattern [file ...]\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(ExpandArgs(args)); err != nil {
		return nil, err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return nil, errors.New("pattern is required")
	}

	defaults, err := loadDefaults(opts.configPath)
	if err != nil {
		return nil, err
	}

	mode, err := resolveMode(&opts, defaults.DefaultMode)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Pattern:    rest[0],
		Files:      rest[1:],
		Mode:       mode,
		Env:        defaults.Env,
		LogFile:    defaults.LogFile,
		StdinLabel: defaults.StdinLabel,
	}
	if cfg.StdinLabel == "" {
		cfg.StdinLabel = "stdin"
	}
	return cfg, nil
}

// resolveMode проверяет взаимоисключение флагов режима
func resolveMode(opts *flagOptions, fallback string) (RenderMode, error) {
	set := 0
	mode := ModePlain
	if opts.underscore {
		set++
		mode = ModeUnderscore
	}
	if opts.color {
		set++
		mode = ModeColor
	}
	if opts.machine {
		set++
		mode = ModeMachine
	}
	if set > 1 {
		return ModePlain, errors.New("only one of -u, -c, -m may be set")
	}
	if set == 0 {
		return ParseMode(fallback)
	}
	return mode, nil
}

// loadDefaults читает yaml-файл с настройками. Отсутствие файла не ошибка,
// если путь не был задан явно.
func loadDefaults(path string) (*Defaults, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv("GREPPETTO_CONFIG")
	}
	if path == "" {
		return &Defaults{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &Defaults{}, nil
		}
		return nil, fmt.Errorf("read defaults file: %w", err)
	}
	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse defaults file %s: %w", path, err)
	}
	return &d, nil
}
