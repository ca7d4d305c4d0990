package grid

import (
	"testing"
)

func FuzzGrid_RandomOpsKeepTiling(f *testing.F) {
	seeds := [][]byte{
		{},
		{0},
		{1, 2, 3, 4, 5},
		{255, 0, 128, 64, 32, 16, 8, 4, 2, 1},
		[]byte("merge-split-seed"),
		[]byte("insert-remove-resize"),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		r := &gridFuzzReader{data: data}
		g := New(Options{Rows: 1 + r.nextInt(5), Cols: 1 + r.nextInt(5)})
		if err := g.Check(); err != nil {
			t.Fatalf("initial grid: %v", err)
		}

		steps := len(data)
		if steps > 64 {
			steps = 64
		}
		for i := 0; i < steps; i++ {
			before := g.Version()
			op := r.nextInt(8)
			var res Result
			switch op {
			case 0:
				res = g.InsertRow(r.nextInt(g.Rows() + 2))
			case 1:
				res = g.InsertCol(r.nextInt(g.Cols() + 2))
			case 2:
				res = g.RemoveRow(r.nextInt(g.Rows() + 1))
			case 3:
				res = g.RemoveCol(r.nextInt(g.Cols() + 1))
			case 4:
				a := Pos{Row: r.nextInt(g.Rows()), Col: r.nextInt(g.Cols())}
				b := Pos{Row: r.nextInt(g.Rows()), Col: r.nextInt(g.Cols())}
				res = g.Merge(g.Select(a, b).Cells)
			case 5:
				res = g.Split(Pos{Row: r.nextInt(g.Rows()), Col: r.nextInt(g.Cols())})
			case 6:
				axis := AxisRow
				if r.nextBool() {
					axis = AxisCol
				}
				res = g.Resize(axis, r.nextInt(g.Dims().Count(axis)), float64(int(r.nextByte())-40))
			case 7:
				a := Pos{Row: r.nextInt(g.Rows()), Col: r.nextInt(g.Cols())}
				b := Pos{Row: r.nextInt(g.Rows()), Col: r.nextInt(g.Cols())}
				sel := g.Select(a, b)
				for _, p := range sel.Cells {
					if c, _ := g.Cell(p); c.Hidden {
						t.Fatalf("step %d: selection contains hidden cell %v", i, p)
					}
				}
				assertSelectionClosed(t, g, sel)
				continue
			}

			if err := g.Check(); err != nil {
				t.Fatalf("step %d op %d (%v): %v", i, op, res, err)
			}
			if res.Rejected() && g.Version() != before {
				t.Fatalf("step %d op %d: rejected op bumped version %d -> %d", i, op, before, g.Version())
			}
			if g.Version() < before {
				t.Fatalf("step %d: version went backwards", i)
			}
		}
	})
}

// assertSelectionClosed checks that every selected cell lies whole inside
// the selection's area.
func assertSelectionClosed(t *testing.T, g *Grid, sel Selection) {
	t.Helper()
	for _, p := range sel.Cells {
		c, _ := g.Cell(p)
		if !sel.Area.ContainsArea(c.Area()) {
			t.Fatalf("selected cell %v area %+v escapes %+v", p, c.Area(), sel.Area)
		}
	}
}

type gridFuzzReader struct {
	data []byte
	idx  int
}

func (r *gridFuzzReader) nextByte() byte {
	if len(r.data) == 0 {
		return 0
	}
	b := r.data[r.idx%len(r.data)]
	r.idx++
	return b
}

func (r *gridFuzzReader) nextBool() bool {
	return r.nextByte()&1 == 1
}

func (r *gridFuzzReader) nextInt(max int) int {
	if max <= 0 {
		return 0
	}
	return int(r.nextByte()) % max
}
