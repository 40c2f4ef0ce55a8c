package grid

import (
	"bufio"
	"io"
)

// WriteASCII draws the map as text, one line per row. Each line starts with
// the row's indent in spaces, followed by a space and the byte returned by f
// for every cell of the row. Meant for debugging and test fixtures.
func (m *Map[C, D]) WriteASCII(w io.Writer, f func(C, D) byte) error {
	bw := bufio.NewWriter(w)

	row := -int(m.radius)
	nextRow := 0
	i := 0
	for c, d := range m.All() {
		if i == nextRow {
			if i != 0 {
				bw.WriteByte('\n')
			}
			for range m.family.RowIndent(row) {
				bw.WriteByte(' ')
			}
			nextRow += m.family.RowLen(m.radius, row)
			row++
		}
		bw.WriteByte(' ')
		bw.WriteByte(f(c, d))
		i++
	}
	bw.WriteByte('\n')

	return bw.Flush()
}
