package sqlfilter

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateReplacement(t *testing.T) {
	tests := []struct {
		name     string
		template string
		expected string
	}{
		{"empty", "", ""},
		{"plain text", "SERIAL", "SERIAL"},
		{"back reference", `\1bar`, "${1}bar"},
		{"several back references", `\2 \1`, "${2} ${1}"},
		{"single digit only", `\12`, "${1}2"},
		{"dollar is literal", "$1", "$$1"},
		{"escaped dollar", `\$`, "$$"},
		{"trailing backslash", `abc\`, `abc\`},
		{"lone backslash", `\`, `\`},
		{"escaped backslash", `\\`, `\`},
		{"non digit escape", `\n\t`, "nt"},
		{"non ascii", `é\1ü`, "é${1}ü"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TranslateReplacement(tt.template))
		})
	}
}

func TestTranslatedReplacementExpands(t *testing.T) {
	re := regexp.MustCompile(`(\w+) int AUTO_INCREMENT`)

	assert.Equal(t, "id SERIAL", re.ReplaceAllString("id int AUTO_INCREMENT", TranslateReplacement(`\1 SERIAL`)))
	assert.Equal(t, "$id", re.ReplaceAllString("id int AUTO_INCREMENT", TranslateReplacement(`$\1`)))
	assert.Equal(t, `id\`, re.ReplaceAllString("id int AUTO_INCREMENT", TranslateReplacement(`\1\`)))
}
