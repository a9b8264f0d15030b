package extendedstorage

// DirEntry is a single record produced by a directory enumeration: the child
// name plus its platform attribute bitmask. Consumers that need full metadata
// re-resolve the entry through [Backend.Query].
type DirEntry struct {
	Name       string
	Attributes uint32
}

// NodeInfo is the result of a path attribute query.
type NodeInfo struct {
	Attributes uint32
	Created    Filetime
}

// DirEnumerator is a lazy, finite, non-restartable cursor over one
// directory's immediate children. The self/parent pseudo entries never
// appear. Close must run on every exit path and is idempotent; a cursor that
// reports an error or exhaustion has already released its handle.
type DirEnumerator interface {
	// Next returns the next entry. ok is false once the cursor is exhausted;
	// a non-nil err means a mid-enumeration read failed and the cursor is dead.
	Next() (entry DirEntry, ok bool, err error)

	Close() error
}

// Backend is the narrow OS capability set the entity model and tree engine
// are built on. Implementations hold no per-path state and are safe for
// concurrent use. Absence is reported through errors matching os.ErrNotExist;
// collisions through errors matching os.ErrExist.
type Backend interface {
	// Query resolves a path to its attribute bitmask and raw creation time.
	Query(path string) (NodeInfo, error)

	// Enumerate opens a cursor over path's immediate children. batchHint is
	// the number of entries fetched from the OS per read.
	Enumerate(path string, batchHint int) (DirEnumerator, error)

	// CopyFile duplicates byte content. With overwrite false an existing
	// destination fails the copy.
	CopyFile(src, dst string, overwrite bool) error

	// CopyPermissions applies src's permission bits to dst.
	CopyPermissions(src, dst string) error

	// CreateDir creates a single directory entry; the parent must exist.
	CreateDir(path string) error

	// CreateFile creates a new empty file, failing if the path is taken.
	CreateFile(path string) error

	RemoveFile(path string) error

	// RemoveDir removes an empty directory.
	RemoveDir(path string) error
}

// StatsReporter is implemented by backends that track cumulative disk I/O
// counts.
type StatsReporter interface {
	DiskReads() int64
	DiskWrites() int64
}
