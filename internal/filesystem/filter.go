package filesystem

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/lutece-go/lutece-sql/core/sqlfilter"
)

// FilterFile writes the content of srcPath to w, every line passed through filter. Line endings
// are written back unchanged.
func FilterFile(filter *sqlfilter.Filter, srcPath string, w io.Writer) error {
	in, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer in.Close()

	reader := bufio.NewReader(in)
	writer := bufio.NewWriter(w)

	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			content, ending := splitLineEnding(line)
			if _, werr := writer.WriteString(filter.Filter(content) + ending); werr != nil {
				return werr
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}

	return writer.Flush()
}

func splitLineEnding(line string) (string, string) {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2], "\r\n"
	}
	if strings.HasSuffix(line, "\n") {
		return line[:len(line)-1], "\n"
	}
	return line, ""
}
