// Package components renders each section of the landing page as a view tree.
// Every function here is pure: the same site config and state always produce
// the same tree.
package components

import (
	"github.com/fasco-shop/storefront/internal/carousel"
	"github.com/fasco-shop/storefront/internal/config"
	"github.com/fasco-shop/storefront/internal/countdown"
	"github.com/fasco-shop/storefront/internal/view"
)

// ComponentAttr marks the root node of each section.
const ComponentAttr = "data-component"

// State is the live part of the page.
type State struct {
	Countdown countdown.Countdown
	Carousel  carousel.View
}

// App composes the whole page in display order.
func App(site config.Site, st State) *view.Node {
	return view.Div(view.Attrs{ComponentAttr: "app", "class": "w-full items-center justify-center"},
		NavBar(site),
		HeroMain(site),
		LogoMarquee(site),
		HomeCarousal(site, st),
	)
}

// NavBar renders the brand and navigation links.
func NavBar(site config.Site) *view.Node {
	links := make([]*view.Node, 0, len(site.Nav.Links))
	for _, l := range site.Nav.Links {
		attrs := view.Attrs{}
		if l.Highlight {
			attrs["class"] = "bg-black text-white rounded-md px-2 py-1"
		}
		var label *view.Node
		if l.Href != "" {
			label = view.El("a", view.Attrs{"href": l.Href}, view.Text(l.Label))
		} else {
			label = view.Text(l.Label)
		}
		links = append(links, view.Li(attrs, label).WithKey(l.Label))
	}

	return view.El("nav", view.Attrs{ComponentAttr: "navbar", "class": "w-3/4 mx-auto mt-6"},
		view.Div(view.Attrs{"class": "flex justify-between"},
			view.El("h1", view.Attrs{"class": "w-14 text-xl font-light"}, view.Text(site.Brand)),
			view.Div(nil,
				view.Ul(view.Attrs{"class": "flex gap-8 justify-center items-center"}, links...),
			),
		),
	)
}

// HeroMain renders the banner: side images framing the sale headline.
func HeroMain(site config.Site) *view.Node {
	hero := site.Hero
	img := func(i carousel.Image, class string) *view.Node {
		return view.Img(view.Attrs{"src": site.AssetURL(i.Src), "alt": i.Alt, "class": class})
	}

	return view.El("section", view.Attrs{ComponentAttr: "hero"},
		view.Div(view.Attrs{"class": "w-3/4 mx-auto mt-4 flex justify-between h-[70vh]"},
			view.Div(view.Attrs{"class": "bg-[#E0E0E0] flex-1 flex items-end rounded-md"},
				img(hero.Left, "w-[200px] h-[300px] object-contain rounded-sm"),
			),
			view.Div(view.Attrs{"class": "flex-1 mx-4 rounded-md flex flex-col justify-between"},
				img(hero.Top, "bg-[#E0E0E0] px-2 pt-2 rounded-lg object-contain w-full"),
				view.Div(view.Attrs{"class": "flex flex-col items-center gap-1"},
					optional(hero.Eyebrow, func(s string) *view.Node {
						return view.Span(view.Attrs{"class": "text-5xl text-gray-500 font-semibold"}, s)
					}),
					view.P(view.Attrs{
						"class": "text-8xl text-transparent font-bold",
						"style": "-webkit-text-stroke: 0.75px #000000",
					}, hero.Headline),
					optional(hero.Tagline, func(s string) *view.Node {
						return view.P(view.Attrs{"class": "m-1 text-md font-light"}, s)
					}),
					view.Button(view.Attrs{
						"type":  "button",
						"class": "bg-black text-[0.75rem] rounded-md uppercase text-white px-6 py-2 shadow shadow-black shadow-2xl",
					}, view.Text(hero.CTA)),
				),
				img(hero.Bottom, "rounded-lg object-contain"),
			),
			view.Div(view.Attrs{"class": "bg-[#E0E0E0] flex-1 items-end justify-center flex rounded-md"},
				img(hero.Right, "object-contain w-[200px] h-[300px]"),
			),
		),
	)
}

// HomeCarousal places the deal copy and countdown beside the image carousel.
func HomeCarousal(site config.Site, st State) *view.Node {
	return view.El("section", view.Attrs{ComponentAttr: "home-carousal", "id": "deals", "class": "w-3/4 mx-auto mt-20 mb-10 h-[80vh] flex items-center gap-10"},
		view.Div(view.Attrs{"class": "w-2/5 h-full"},
			BuyNow(site.Deal),
			Timer(st.Countdown),
		),
		view.Div(view.Attrs{"class": "w-full h-full"},
			ImageCarousal(site, st.Carousel),
		),
	)
}

// BuyNow renders the deal headline, description and call to action.
func BuyNow(deal config.Deal) *view.Node {
	return view.Div(view.Attrs{ComponentAttr: "buy-now"},
		view.El("h2", view.Attrs{"class": "text-4xl font-semibold"}, view.Text(deal.Headline)),
		optional(deal.Description, func(s string) *view.Node {
			return view.P(view.Attrs{"class": "mt-4 text-gray-500"}, s)
		}),
		view.Button(view.Attrs{
			"type":  "button",
			"class": "mt-6 bg-black text-white rounded-md uppercase px-8 py-3 shadow-lg",
		}, view.Text(deal.CTA)),
	)
}

func optional(s string, build func(string) *view.Node) *view.Node {
	if s == "" {
		return nil
	}
	return build(s)
}
