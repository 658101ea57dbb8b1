package app

import (
	"bufio"
	"fmt"
	"io"
	"regexp"

	"go.uber.org/zap"

	"github.com/jgarciao/greppetto/internal/format"
	"github.com/jgarciao/greppetto/internal/matcher"
	"github.com/jgarciao/greppetto/internal/source"
)

// Greppetto — конвейер поиска: источник строк -> матчер -> форматтер -> вывод.
// Шаблон и режим фиксируются при создании и не меняются по ходу сканирования.
type Greppetto struct {
	re   *regexp.Regexp
	fmtr format.Formatter
	out  io.Writer
	log  *zap.Logger
}

func New(re *regexp.Regexp, fmtr format.Formatter, out io.Writer, log *zap.Logger) *Greppetto {
	return &Greppetto{
		re:   re,
		fmtr: fmtr,
		out:  out,
		log:  log,
	}
}

// Run прогоняет все строки источника через матчер и форматтер, сохраняя
// исходный порядок. Строки без вхождений не печатаются. Ошибка возвращается,
// если хотя бы один источник не удалось прочитать; уже найденные результаты
// при этом остаются выведенными.
func (g *Greppetto) Run(src *source.Source) error {
	w := bufio.NewWriter(g.out)

	lines, matched := 0, 0
	failed := src.Walk(func(rec source.Record) {
		lines++
		ms := matcher.FindAll(g.re, rec.Text)
		out, ok := g.fmtr.Format(rec, ms)
		if !ok {
			return
		}
		matched++
		w.WriteString(out)
		w.WriteByte('\n')
	})

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	g.log.Debug("scan finished",
		zap.Int("lines", lines),
		zap.Int("matched", matched),
		zap.Int("failed_sources", failed),
	)

	if failed > 0 {
		return fmt.Errorf("%d input source(s) could not be read", failed)
	}
	return nil
}
