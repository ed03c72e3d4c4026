package vdom

// tagClass records how HTML treats a tag.
type tagClass uint8

const (
	classVoid tagClass = 1 << iota
	classInline
)

var tagClasses = map[string]tagClass{
	// Void elements never have children or a closing tag.
	"area":   classVoid,
	"base":   classVoid,
	"col":    classVoid,
	"embed":  classVoid,
	"hr":     classVoid,
	"img":    classVoid,
	"input":  classVoid,
	"link":   classVoid,
	"meta":   classVoid,
	"param":  classVoid,
	"source": classVoid,
	"track":  classVoid,
	"br":     classVoid | classInline,
	"wbr":    classVoid | classInline,

	// Phrasing content stays on one line in pretty output.
	"a": classInline, "abbr": classInline, "b": classInline, "bdi": classInline,
	"bdo": classInline, "cite": classInline, "code": classInline, "data": classInline,
	"dfn": classInline, "em": classInline, "i": classInline, "kbd": classInline,
	"mark": classInline, "q": classInline, "ruby": classInline, "rp": classInline,
	"rt": classInline, "s": classInline, "samp": classInline, "small": classInline,
	"span": classInline, "strong": classInline, "sub": classInline, "sup": classInline,
	"time": classInline, "u": classInline, "var": classInline,
}

// IsVoidElement reports whether tag is an HTML void element.
func IsVoidElement(tag string) bool {
	return tagClasses[tag]&classVoid != 0
}

// IsInlineElement reports whether tag is phrasing content.
func IsInlineElement(tag string) bool {
	return tagClasses[tag]&classInline != 0
}

var booleanAttributes = map[string]struct{}{
	"allowfullscreen": {}, "async": {}, "autofocus": {}, "autoplay": {},
	"checked": {}, "controls": {}, "default": {}, "defer": {},
	"disabled": {}, "formnovalidate": {}, "hidden": {}, "inert": {},
	"ismap": {}, "itemscope": {}, "loop": {}, "multiple": {},
	"muted": {}, "nomodule": {}, "novalidate": {}, "open": {},
	"playsinline": {}, "readonly": {}, "required": {}, "reversed": {},
	"selected": {},
}

// IsBooleanAttribute reports whether name is an HTML boolean attribute,
// one whose presence alone means true.
func IsBooleanAttribute(name string) bool {
	_, ok := booleanAttributes[name]
	return ok
}
