package layouts

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/shopdocs/internal/catalog"
)

// htmx is loaded from a CDN; navigation still works without it.
const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// ContentID is the element the navigation swaps topic fragments into.
const ContentID = "topic"

// Base is the page shell: table of contents on the left, content on the right.
// entries must be in registration order; activeKey marks the current topic.
func Base(appName, title string, entries []catalog.Unit, activeKey string, content g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("es"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(title, appName))),
				h.Script(h.Src(htmxSrc), h.Defer()),
			),
			h.Body(
				h.Header(h.Class("site-header"),
					h.A(h.Href("/"), g.Text(appName)),
				),
				h.Div(h.Class("layout"),
					Nav(entries, activeKey),
					h.Main(h.ID(ContentID), content),
				),
			),
		),
	)
}

// Nav renders the table of contents.
func Nav(entries []catalog.Unit, activeKey string) g.Node {
	return h.Nav(h.Class("toc"), g.Attr("aria-label", "Temas"),
		h.Ul(
			g.Map(entries, func(u catalog.Unit) g.Node {
				href := TopicURL(u.Key)
				return h.Li(
					h.A(
						h.Href(href),
						hx.Get(href),
						hx.Target("#"+ContentID),
						hx.PushURL("true"),
						g.If(u.Key == activeKey, g.Attr("aria-current", "page")),
						g.Text(u.Title),
					),
				)
			}),
		),
	)
}
