package dbg

const (
	DbgFlagTranslate = 1 << iota
	DbgFlagFixup
	DbgFlagAll = DbgFlagTranslate | DbgFlagFixup
)

var flags int

func SetDebug(f int) {
	flags = f
}

func GetDebugTranslate() bool {
	return flags&DbgFlagTranslate != 0
}

func GetDebugFixup() bool {
	return flags&DbgFlagFixup != 0
}
