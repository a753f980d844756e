package components

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fasco-shop/storefront/internal/config"
	"github.com/fasco-shop/storefront/internal/view"
)

const (
	logoSize     = "100"
	dupKey       = "-dup"
	maskGradient = "linear-gradient(to right, transparent, black 10%, black 70%, transparent)"
)

// LogoMarquee renders the logo strip. The logo list is emitted twice in a row
// so the CSS scroll animation can loop at -50% without a visible seam.
func LogoMarquee(site config.Site) *view.Node {
	logos := site.Marquee.Logos

	set := func(suffix string, hidden bool) *view.Node {
		items := make([]*view.Node, 0, len(logos))
		for _, l := range logos {
			id := strconv.Itoa(l.ID)
			items = append(items, view.Li(nil,
				view.Img(view.Attrs{
					"src":    site.AssetURL(l.Src),
					"alt":    "Logo " + id,
					"width":  logoSize,
					"height": logoSize,
					"class":  "object-contain",
				}),
			).WithKey(id+suffix))
		}
		attrs := view.Attrs{"class": "flex gap-12 pr-12 items-center"}
		if hidden {
			attrs["aria-hidden"] = "true"
		}
		return view.Ul(attrs, items...)
	}

	return view.El("section", view.Attrs{
		ComponentAttr: "marquee",
		"class":       "marquee-mask w-full mx-auto overflow-hidden mt-5",
		"style":       "mask-image: " + maskGradient + "; -webkit-mask-image: " + maskGradient,
	},
		view.Div(view.Attrs{
			"class": "marquee-track flex w-max",
			"style": "animation: " + Animation(site.Marquee.Duration),
		},
			set("", false),
			set(dupKey, true),
		),
	)
}

// Animation is the CSS shorthand driving the marquee track.
func Animation(d time.Duration) string {
	return fmt.Sprintf("scroll %ss linear infinite", strconv.FormatFloat(d.Seconds(), 'f', -1, 64))
}
