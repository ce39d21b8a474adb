package ui

import (
	"strings"
)

// ReadLine prints label and collects typed characters until Enter.
// Hidden input echoes '*'. Escape abandons the line and reports ok=false.
func (e *Engine) ReadLine(label string, hidden bool) (line string, ok bool, err error) {
	row := e.term.Row()
	if err := e.term.Write(label, StylePrompt); err != nil {
		return "", false, err
	}

	var buf []rune
	echo := func(r rune) string {
		if hidden {
			return "*"
		}
		return string(r)
	}

	for {
		ev, err := e.term.ReadKey()
		if err != nil {
			return "", false, err
		}

		switch ev.Code {
		case KeyEnter:
			return string(buf), true, e.term.NewLine()
		case KeyEscape, KeyCtrlC:
			return "", false, e.term.NewLine()
		case KeyBackspace, KeyDelete:
			if len(buf) == 0 {
				continue
			}
			buf = buf[:len(buf)-1]
			if err := e.term.MoveTo(row); err != nil {
				return "", false, err
			}
			var shown strings.Builder
			for _, r := range buf {
				shown.WriteString(echo(r))
			}
			if err := e.term.Write(label, StylePrompt); err != nil {
				return "", false, err
			}
			if err := e.term.Write(shown.String(), StyleNormal); err != nil {
				return "", false, err
			}
		case KeyChar:
			buf = append(buf, ev.Char)
			if err := e.term.Write(echo(ev.Char), StyleNormal); err != nil {
				return "", false, err
			}
		}
	}
}
