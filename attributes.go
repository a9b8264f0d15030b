package extendedstorage

import "strings"

// ItemAttributes is the portable attribute flag set of a storage item. The
// bit values match the platform FILE_ATTRIBUTE_* constants so decoding from a
// native bitmask is pass-through and loses nothing; backends on platforms
// without a native bitmask synthesize the same bits.
type ItemAttributes uint32

const (
	AttrReadOnly  ItemAttributes = 0x00000001
	AttrHidden    ItemAttributes = 0x00000002
	AttrSystem    ItemAttributes = 0x00000004
	AttrDirectory ItemAttributes = 0x00000010
	AttrArchive   ItemAttributes = 0x00000020
	AttrNormal    ItemAttributes = 0x00000080
	AttrTemporary ItemAttributes = 0x00000100
)

// DecodeAttributes maps a platform attribute bitmask to the portable set.
func DecodeAttributes(raw uint32) ItemAttributes {
	return ItemAttributes(raw)
}

// Has reports whether all bits of flag are set.
func (a ItemAttributes) Has(flag ItemAttributes) bool {
	return a&flag == flag
}

func (a ItemAttributes) IsDirectory() bool { return a.Has(AttrDirectory) }
func (a ItemAttributes) IsReadOnly() bool  { return a.Has(AttrReadOnly) }
func (a ItemAttributes) IsHidden() bool    { return a.Has(AttrHidden) }
func (a ItemAttributes) IsSystem() bool    { return a.Has(AttrSystem) }

// String renders the set flags for log output, e.g. "directory|hidden".
func (a ItemAttributes) String() string {
	names := []struct {
		flag ItemAttributes
		name string
	}{
		{AttrReadOnly, "readonly"},
		{AttrHidden, "hidden"},
		{AttrSystem, "system"},
		{AttrDirectory, "directory"},
		{AttrArchive, "archive"},
		{AttrNormal, "normal"},
		{AttrTemporary, "temporary"},
	}

	var set []string
	for _, n := range names {
		if a.Has(n.flag) {
			set = append(set, n.name)
		}
	}
	if len(set) == 0 {
		return "none"
	}
	return strings.Join(set, "|")
}
