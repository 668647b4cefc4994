package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/shopdocs/internal/catalog"
	"github.com/nfrund/shopdocs/internal/view"
	"github.com/nfrund/shopdocs/web/src/templates/layouts"
)

// Index is the landing page. last is the topic the reader visited most
// recently, or nil.
func Index(entries []catalog.Unit, last *catalog.Unit) g.Node {
	return h.Div(h.Class("index"),
		h.H1(g.Text("Documentación")),
		g.Iff(last != nil, func() g.Node { return continueReading(last) }),
		h.P(g.Textf("%d temas disponibles.", len(entries))),
		h.Ol(
			g.Map(entries, func(u catalog.Unit) g.Node {
				return h.Li(h.A(h.Href(layouts.TopicURL(u.Key)), g.Text(u.Title)))
			}),
		),
	)
}

func continueReading(u *catalog.Unit) g.Node {
	return h.P(h.Class("continue"),
		g.Text("Continuar leyendo: "),
		h.A(h.Href(layouts.TopicURL(u.Key)), g.Text(u.Title)),
	)
}

// Topic renders one topic. It is both the body of a full page and the fragment
// returned to htmx navigation.
func Topic(u catalog.Unit) g.Node {
	return h.Article(h.Class("topic"), g.Attr("data-key", u.Key),
		h.H1(g.Text(u.Title)),
		view.Payload(u.Payload),
	)
}

// NotFound is the fallback shown for keys with no topic.
func NotFound(key string) g.Node {
	return h.Div(h.Class("not-found"),
		h.H1(g.Text("Tema no encontrado")),
		h.P(g.Textf("No existe ningún tema con la clave «%s».", key)),
		h.P(h.A(h.Href("/"), g.Text("Volver al índice"))),
	)
}
