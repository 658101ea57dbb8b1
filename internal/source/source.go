package source

import (
	"bufio"
	"io"
	"os"
)

// Record — одна строка входа: откуда пришла, её номер (с единицы) и текст
// без завершающего перевода строки.
type Record struct {
	Origin  string
	LineNum int
	Text    string
}

// WarnFunc вызывается для каждого источника, который не удалось прочитать
type WarnFunc func(path string, err error)

type Source struct {
	paths      []string
	stdin      io.Reader
	stdinLabel string
	warn       WarnFunc
}

// New создаёт источник строк: файлы в порядке аргументов, либо stdin, если
// файлов нет. warn может быть nil.
func New(paths []string, stdin io.Reader, stdinLabel string, warn WarnFunc) *Source {
	if warn == nil {
		warn = func(string, error) {}
	}
	return &Source{
		paths:      paths,
		stdin:      stdin,
		stdinLabel: stdinLabel,
		warn:       warn,
	}
}

// Walk последовательно отдаёт строки всех источников в fn. Недоступный файл
// пропускается с предупреждением, остальные читаются дальше. Возвращает
// количество источников, которые не удалось прочитать.
func (s *Source) Walk(fn func(Record)) int {
	if len(s.paths) == 0 {
		if err := scan(s.stdinLabel, s.stdin, fn); err != nil {
			s.warn(s.stdinLabel, err)
			return 1
		}
		return 0
	}

	failed := 0
	for _, path := range s.paths {
		f, err := os.Open(path)
		if err != nil {
			s.warn(path, err)
			failed++
			continue
		}
		err = scan(path, f, fn)
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			s.warn(path, err)
			failed++
		}
	}
	return failed
}

func scan(origin string, r io.Reader, fn func(Record)) error {
	sc := bufio.NewScanner(r)
	// запас под длинные строки
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		fn(Record{Origin: origin, LineNum: n, Text: sc.Text()})
	}
	return sc.Err()
}
