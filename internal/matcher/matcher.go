package matcher

import "regexp"

// Match — одно вхождение шаблона в строке. Start/End это байтовые смещения,
// End не включается (полуинтервал [Start, End)).
type Match struct {
	Start int
	End   int
	Text  string
}

// FindAll находит все непересекающиеся вхождения шаблона слева направо.
// Пустое (нулевой ширины) вхождение продвигает сканирование минимум на один
// символ, поэтому пустой шаблон не зацикливается.
func FindAll(re *regexp.Regexp, text string) []Match {
	idxs := re.FindAllStringIndex(text, -1)
	if idxs == nil {
		return nil
	}
	ms := make([]Match, 0, len(idxs))
	for _, p := range idxs {
		ms = append(ms, Match{Start: p[0], End: p[1], Text: text[p[0]:p[1]]})
	}
	return ms
}
