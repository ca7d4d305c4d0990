package grid

// ChangeKind identifies the mutation that produced a Change.
type ChangeKind uint8

const (
	ChangeInsert ChangeKind = iota
	ChangeRemove
	ChangeMerge
	ChangeSplit
	ChangeResize
	ChangeScale
	ChangeText
	ChangeStyle
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeInsert:
		return "insert"
	case ChangeRemove:
		return "remove"
	case ChangeMerge:
		return "merge"
	case ChangeSplit:
		return "split"
	case ChangeResize:
		return "resize"
	case ChangeScale:
		return "scale"
	case ChangeText:
		return "text"
	case ChangeStyle:
		return "style"
	default:
		return "unknown"
	}
}

// Change describes the most recent effective mutation.
//
// Axis and Index are set for insert, remove and resize. Area is set for
// merge, split, text and cell-level style changes.
type Change struct {
	Kind          ChangeKind
	VersionBefore uint64
	VersionAfter  uint64
	Axis          Axis
	Index         int
	Area          Area
	// MergesReset is true when the mutation cleared every merge in the grid.
	MergesReset bool
}

type changeBuilder struct {
	kind          ChangeKind
	versionBefore uint64
	axis          Axis
	index         int
	area          Area
	mergesReset   bool
}

// LastChange returns the most recent effective change.
func (g *Grid) LastChange() (Change, bool) {
	if !g.hasLastChange {
		return Change{}, false
	}
	return g.lastChange, true
}

func (g *Grid) beginChange(kind ChangeKind) changeBuilder {
	return changeBuilder{kind: kind, versionBefore: g.version}
}

func (g *Grid) commitChange(cb changeBuilder) {
	g.version++
	g.lastChange = Change{
		Kind:          cb.kind,
		VersionBefore: cb.versionBefore,
		VersionAfter:  g.version,
		Axis:          cb.axis,
		Index:         cb.index,
		Area:          cb.area,
		MergesReset:   cb.mergesReset,
	}
	g.hasLastChange = true
}
