package tui

import (
	"fmt"

	"github.com/mattn/go-shellwords"
)

// Split breaks an input line into tokens the way a shell would, honoring
// single and double quotes and backslash escapes. Shell operators such as
// ";" or "|" must be quoted.
func Split(line string) ([]string, error) {
	p := shellwords.NewParser()
	tokens, err := p.Parse(line)
	if err != nil {
		return nil, err
	}
	if p.Position >= 0 {
		r := []rune(line)
		return nil, fmt.Errorf("unexpected %q at column %d, quote it to use it as text", r[p.Position], p.Position+1)
	}
	return tokens, nil
}
