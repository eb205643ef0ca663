package palette

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseForest reads a prev_color[256] forest from text: one integer per
// line (comments starting with '#' and blank lines are skipped), where
// the nth non-comment line gives Forest[n]. A value of -1 (or a missing
// trailing line) means NoParent. Lines beyond 256 are ignored.
func ParseForest(r io.Reader) (Forest, error) {
	var f Forest
	for i := range f {
		f[i] = NoParent
	}
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() && i < len(f) {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			return Forest{}, fmt.Errorf("palette: parse forest line %d (%q): %w", i, line, err)
		}
		f[i] = int32(v)
		i++
	}
	if err := scanner.Err(); err != nil {
		return Forest{}, fmt.Errorf("palette: read forest: %w", err)
	}
	return f, nil
}
