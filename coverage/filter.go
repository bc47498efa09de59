package coverage

import "fmt"

// FilterConfig decides which alignments count toward depth. The zero value
// accepts everything.
type FilterConfig struct {
	IncludeFlags uint16 // all of these bits must be set
	ExcludeFlags uint16 // none of these bits may be set
	MinMapQ      uint8
}

// Accept reports whether rec passes the flag and mapping quality filters.
func (c FilterConfig) Accept(rec Record) bool {
	if rec.MapQ < c.MinMapQ {
		return false
	}
	if c.IncludeFlags != 0 && rec.Flags&c.IncludeFlags != c.IncludeFlags {
		return false
	}
	if c.ExcludeFlags != 0 && rec.Flags&c.ExcludeFlags != 0 {
		return false
	}
	return true
}

func (c FilterConfig) String() string {
	return fmt.Sprintf("f:0x%x F:0x%x Q:%d", c.IncludeFlags, c.ExcludeFlags, c.MinMapQ)
}
