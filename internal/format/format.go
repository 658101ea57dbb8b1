package format

import (
	"fmt"
	"strings"

	"github.com/jgarciao/greppetto/internal/config"
	"github.com/jgarciao/greppetto/internal/matcher"
	"github.com/jgarciao/greppetto/internal/source"
)

// ANSI-последовательности подсветки. Контракт режима color: если убрать обе
// последовательности, строка побайтно совпадает с исходной.
const (
	ColorStart = "\033[95m"
	ColorReset = "\033[0m"
)

// Formatter превращает строку с найденными вхождениями в готовый вывод.
// Если вхождений нет, возвращает ok == false и строка не печатается вовсе.
type Formatter interface {
	Format(rec source.Record, ms []matcher.Match) (out string, ok bool)
}

// New — фабрика форматтеров по режиму вывода
func New(mode config.RenderMode) Formatter {
	switch mode {
	case config.ModeUnderscore:
		return underscoreFormatter{}
	case config.ModeColor:
		return colorFormatter{}
	case config.ModeMachine:
		return machineFormatter{}
	default:
		return plainFormatter{}
	}
}

// plainFormatter печатает совпавшую строку один раз без изменений
type plainFormatter struct{}

func (plainFormatter) Format(rec source.Record, ms []matcher.Match) (string, bool) {
	if len(ms) == 0 {
		return "", false
	}
	return rec.Text, true
}

// underscoreFormatter печатает строку и под ней строку той же длины,
// где позиции вхождений отмечены символом '^'
type underscoreFormatter struct{}

func (underscoreFormatter) Format(rec source.Record, ms []matcher.Match) (string, bool) {
	if len(ms) == 0 {
		return "", false
	}
	carets := []byte(strings.Repeat(" ", len(rec.Text)))
	for _, m := range ms {
		for i := m.Start; i < m.End; i++ {
			carets[i] = '^'
		}
	}
	return rec.Text + "\n" + string(carets), true
}

// colorFormatter подсвечивает каждое вхождение. Строка собирается слева
// направо через курсор последнего конца, поэтому смещения следующих
// вхождений вставками не ломаются.
type colorFormatter struct{}

func (colorFormatter) Format(rec source.Record, ms []matcher.Match) (string, bool) {
	if len(ms) == 0 {
		return "", false
	}
	var b strings.Builder
	last := 0
	for _, m := range ms {
		b.WriteString(rec.Text[last:m.Start])
		b.WriteString(ColorStart)
		b.WriteString(rec.Text[m.Start:m.End])
		b.WriteString(ColorReset)
		last = m.End
	}
	b.WriteString(rec.Text[last:])
	return b.String(), true
}

// machineFormatter выводит по записи origin:line:start:matched_text на каждое
// вхождение. Формат стабильный, его разбирают внешние инструменты.
type machineFormatter struct{}

func (machineFormatter) Format(rec source.Record, ms []matcher.Match) (string, bool) {
	if len(ms) == 0 {
		return "", false
	}
	lines := make([]string, 0, len(ms))
	for _, m := range ms {
		lines = append(lines, fmt.Sprintf("%s:%d:%d:%s", rec.Origin, rec.LineNum, m.Start, m.Text))
	}
	return strings.Join(lines, "\n"), true
}
