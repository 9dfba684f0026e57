// Element constructors for the el package.
package el

func Html(args ...any) *Node {
	return createElement("html", args)
}
func Head(args ...any) *Node {
	return createElement("head", args)
}
func Body(args ...any) *Node {
	return createElement("body", args)
}
func Header(args ...any) *Node {
	return createElement("header", args)
}
func Footer(args ...any) *Node {
	return createElement("footer", args)
}
func Main(args ...any) *Node {
	return createElement("main", args)
}
func Nav(args ...any) *Node {
	return createElement("nav", args)
}
func Section(args ...any) *Node {
	return createElement("section", args)
}
func Article(args ...any) *Node {
	return createElement("article", args)
}
func Aside(args ...any) *Node {
	return createElement("aside", args)
}
func H1(args ...any) *Node {
	return createElement("h1", args)
}
func H2(args ...any) *Node {
	return createElement("h2", args)
}
func H3(args ...any) *Node {
	return createElement("h3", args)
}
func H4(args ...any) *Node {
	return createElement("h4", args)
}
func H5(args ...any) *Node {
	return createElement("h5", args)
}
func H6(args ...any) *Node {
	return createElement("h6", args)
}
func Div(args ...any) *Node {
	return createElement("div", args)
}
func P(args ...any) *Node {
	return createElement("p", args)
}
func Span(args ...any) *Node {
	return createElement("span", args)
}
func A(args ...any) *Node {
	return createElement("a", args)
}
func Ul(args ...any) *Node {
	return createElement("ul", args)
}
func Ol(args ...any) *Node {
	return createElement("ol", args)
}
func Li(args ...any) *Node {
	return createElement("li", args)
}
func Table(args ...any) *Node {
	return createElement("table", args)
}
func Thead(args ...any) *Node {
	return createElement("thead", args)
}
func Tbody(args ...any) *Node {
	return createElement("tbody", args)
}
func Tr(args ...any) *Node {
	return createElement("tr", args)
}
func Th(args ...any) *Node {
	return createElement("th", args)
}
func Td(args ...any) *Node {
	return createElement("td", args)
}
func Form(args ...any) *Node {
	return createElement("form", args)
}
func Fieldset(args ...any) *Node {
	return createElement("fieldset", args)
}
func Label(args ...any) *Node {
	return createElement("label", args)
}
func Input(args ...any) *Node {
	return createElement("input", args)
}
func Textarea(args ...any) *Node {
	return createElement("textarea", args)
}
func Select(args ...any) *Node {
	return createElement("select", args)
}
func Option(args ...any) *Node {
	return createElement("option", args)
}
func Button(args ...any) *Node {
	return createElement("button", args)
}
func Img(args ...any) *Node {
	return createElement("img", args)
}
func Figure(args ...any) *Node {
	return createElement("figure", args)
}
func Figcaption(args ...any) *Node {
	return createElement("figcaption", args)
}
func Pre(args ...any) *Node {
	return createElement("pre", args)
}
func Code(args ...any) *Node {
	return createElement("code", args)
}
func Blockquote(args ...any) *Node {
	return createElement("blockquote", args)
}
func Em(args ...any) *Node {
	return createElement("em", args)
}
func Strong(args ...any) *Node {
	return createElement("strong", args)
}
func Small(args ...any) *Node {
	return createElement("small", args)
}
func Br(args ...any) *Node {
	return createElement("br", args)
}
func Hr(args ...any) *Node {
	return createElement("hr", args)
}
