package el

import "github.com/quill-ui/quill/pkg/vdom"

// Attr creates a static attribute item.
func Attr(name, value string) *Node {
	return vdom.StaticAttr(name, value)
}

// DynAttr creates an attribute item bound to the given dynamic slot.
func DynAttr(slot uint) *Node {
	return vdom.DynamicAttr(slot)
}

// Class sets the class attribute.
func Class(value string) *Node {
	return Attr("class", value)
}

// ID sets the id attribute.
func ID(value string) *Node {
	return Attr("id", value)
}

// Style sets the style attribute.
func Style(value string) *Node {
	return Attr("style", value)
}

// Href sets the href attribute.
func Href(value string) *Node {
	return Attr("href", value)
}

// Src sets the src attribute.
func Src(value string) *Node {
	return Attr("src", value)
}

// Alt sets the alt attribute.
func Alt(value string) *Node {
	return Attr("alt", value)
}

// Title sets the title attribute.
func Title(value string) *Node {
	return Attr("title", value)
}

// Type sets the type attribute.
func Type(value string) *Node {
	return Attr("type", value)
}

// Name sets the name attribute.
func Name(value string) *Node {
	return Attr("name", value)
}

// Value sets the value attribute.
func Value(value string) *Node {
	return Attr("value", value)
}

// Placeholder sets the placeholder attribute.
func Placeholder(value string) *Node {
	return Attr("placeholder", value)
}

// Disabled sets the disabled attribute.
func Disabled() *Node {
	return Attr("disabled", "")
}

// Checked sets the checked attribute.
func Checked() *Node {
	return Attr("checked", "")
}

// DataAttr sets a data-* attribute.
func DataAttr(suffix, value string) *Node {
	return Attr("data-"+suffix, value)
}

// AriaAttr sets an aria-* attribute.
func AriaAttr(suffix, value string) *Node {
	return Attr("aria-"+suffix, value)
}
