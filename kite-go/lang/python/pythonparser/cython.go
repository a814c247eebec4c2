package pythonparser

import (
	"bytes"
	"regexp"
)

const cimportKeyword = "cimport"

// matches "cimport x" and "from x cimport y" at the start of a logical line;
// the submatch is the keyword itself
var cimportRe = regexp.MustCompile(`^\s*(?:from\s+[\w.]+\s+)?(cimport)\b`)

// rewriteCImports replaces every leading "cimport" keyword with "import " so the
// python grammar accepts it. Offsets are unchanged. The returned set holds the
// zero-based rows that were rewritten.
func rewriteCImports(src []byte) ([]byte, map[uint32]bool) {
	if !bytes.Contains(src, []byte(cimportKeyword)) {
		return src, nil
	}

	out := append([]byte(nil), src...)
	rows := make(map[uint32]bool)

	var row uint32
	for start := 0; start < len(out); row++ {
		stop := bytes.IndexByte(out[start:], '\n')
		if stop < 0 {
			stop = len(out)
		} else {
			stop += start
		}
		if m := cimportRe.FindSubmatchIndex(out[start:stop]); m != nil {
			copy(out[start+m[2]:start+m[3]], "import ")
			rows[row] = true
		}
		start = stop + 1
	}
	return out, rows
}
