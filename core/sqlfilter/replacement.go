package sqlfilter

import "strings"

type scanState int8

const (
	stateLiteral scanState = iota
	stateEscape
	stateDone
)

// TranslateReplacement turns a replacement written with ant ReplaceRegExp conventions into the
// syntax of regexp.Regexp.Expand:
//
//   - "\N" (N a decimal digit) becomes "${N}"
//   - "$" becomes "$$", a literal dollar
//   - "\c" for any other character c becomes c
//   - a trailing "\" is kept as is
func TranslateReplacement(template string) string {
	var out strings.Builder
	out.Grow(len(template))

	state := stateLiteral
	i := 0
	for state != stateDone {
		switch state {
		case stateLiteral:
			if i == len(template) {
				state = stateDone
				continue
			}
			c := template[i]
			i++
			if c == '\\' {
				state = stateEscape
				continue
			}
			writeLiteral(&out, c)

		case stateEscape:
			if i == len(template) {
				out.WriteByte('\\')
				state = stateDone
				continue
			}
			c := template[i]
			i++
			if c >= '0' && c <= '9' {
				out.WriteString("${")
				out.WriteByte(c)
				out.WriteByte('}')
			} else {
				writeLiteral(&out, c)
			}
			state = stateLiteral
		}
	}

	return out.String()
}

func writeLiteral(out *strings.Builder, c byte) {
	if c == '$' {
		out.WriteString("$$")
		return
	}
	out.WriteByte(c)
}
