package pgtypemap

// coderInfo carries the identifying metadata shared by the built-in coders.
// It is set at construction and never mutated afterwards.
type coderInfo struct {
	name   string
	oid    uint32
	format int16
}

func (ci coderInfo) Name() string {
	return ci.name
}

func (ci coderInfo) OID() uint32 {
	return ci.oid
}

func (ci coderInfo) Format() int16 {
	return ci.format
}
