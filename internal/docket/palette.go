package docket

// PaletteEntry is a base/hover pair of CSS classes used to render a tag.
type PaletteEntry struct {
	Base  string `json:"base"`
	Hover string `json:"hover"`
}

// tagPalette is the fixed, ordered color palette for tags. ColorFor indexes
// into it, so reordering entries changes every tag's color.
var tagPalette = []PaletteEntry{
	{Base: "tag-blue", Hover: "tag-blue-hover"},
	{Base: "tag-green", Hover: "tag-green-hover"},
	{Base: "tag-amber", Hover: "tag-amber-hover"},
	{Base: "tag-red", Hover: "tag-red-hover"},
	{Base: "tag-violet", Hover: "tag-violet-hover"},
	{Base: "tag-pink", Hover: "tag-pink-hover"},
	{Base: "tag-teal", Hover: "tag-teal-hover"},
	{Base: "tag-indigo", Hover: "tag-indigo-hover"},
	{Base: "tag-orange", Hover: "tag-orange-hover"},
	{Base: "tag-slate", Hover: "tag-slate-hover"},
}

// ColorFor maps a tag to a palette entry by summing its character code
// points modulo the palette size. Pure and stable: the same tag always gets
// the same entry. Distinct tags may collide; that is acceptable.
func ColorFor(tag string) PaletteEntry {
	sum := 0
	for _, r := range tag {
		sum += int(r)
	}
	return tagPalette[sum%len(tagPalette)]
}

// PaletteSize reports the number of palette entries.
func PaletteSize() int {
	return len(tagPalette)
}
