package extendedstorage

import "time"

// Offset in 100ns ticks between the platform epoch (1601-01-01 UTC) and the
// Unix epoch.
const filetimeEpochDelta = 116444736000000000

// Filetime is a 64-bit creation timestamp split into high/low 32-bit words,
// counted in 100-nanosecond ticks since 1601-01-01 UTC. The zero value means
// the underlying query produced no creation time; consumers decide the
// fallback (see [Filetime.IsZero]).
type Filetime struct {
	High uint32
	Low  uint32
}

// NewFiletime converts t into the split high/low tick representation.
func NewFiletime(t time.Time) Filetime {
	ticks := t.UnixNano()/100 + filetimeEpochDelta
	return Filetime{High: uint32(ticks >> 32), Low: uint32(ticks)}
}

// Time decodes the timestamp into a timezone-aware time in the local zone,
// exact down to 100ns resolution.
func (ft Filetime) Time() time.Time {
	ticks := int64(ft.High)<<32 | int64(ft.Low)
	return time.Unix(0, (ticks-filetimeEpochDelta)*100)
}

// IsZero reports whether the timestamp carries no value.
func (ft Filetime) IsZero() bool {
	return ft.High == 0 && ft.Low == 0
}
