package filesystem

import (
	"time"

	extendedstorage "github.com/Clement-Micard/ExtendedStorage"
)

// item is the metadata snapshot shared by File and Folder. Immutable after
// construction; never holds an OS handle.
type item struct {
	s       *Storage
	name    string
	path    string
	attrs   extendedstorage.ItemAttributes
	created time.Time
}

func (i *item) Name() string { return i.name }

func (i *item) Path() string { return i.path }

func (i *item) Attributes() extendedstorage.ItemAttributes { return i.attrs }

func (i *item) DateCreated() time.Time { return i.created }

var (
	_ extendedstorage.StorageItem = (*File)(nil)
	_ extendedstorage.StorageItem = (*Folder)(nil)
)
