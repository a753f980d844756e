package components

import (
	"strconv"

	"github.com/fasco-shop/storefront/internal/carousel"
	"github.com/fasco-shop/storefront/internal/config"
	"github.com/fasco-shop/storefront/internal/view"
)

// Carousel button actions, exposed as data-action for hosts that wire clicks.
const (
	ActionPrev = "carousel-prev"
	ActionNext = "carousel-next"
)

// ImageCarousal shows the image at the cursor large and the following one
// small, with the arrow buttons grouped to their left.
func ImageCarousal(site config.Site, v carousel.View) *view.Node {
	arrow := func(action, label, glyph string) *view.Node {
		return view.Button(view.Attrs{
			"type":        "button",
			"data-action": action,
			"aria-label":  label,
			"class":       "text-gray-500 hover:bg-gray-700 hover:cursor-pointer hover:text-white p-2 rounded-full shadow-lg shadow-gray-400",
		}, view.Span(view.Attrs{"aria-hidden": "true"}, glyph))
	}

	return view.Div(view.Attrs{
		ComponentAttr: "carousel",
		"data-cursor": strconv.Itoa(v.Cursor),
		"class":       "w-full flex justify-center items-center h-full ms-10 gap-4",
	},
		view.Div(view.Attrs{"class": "w-20"},
			arrow(ActionPrev, "Previous image", "←"),
			arrow(ActionNext, "Next image", "→"),
		),
		view.Div(view.Attrs{"class": "w-full h-full flex items-center gap-2 overflow-hidden"},
			view.Div(nil,
				view.Img(view.Attrs{
					"src":       site.AssetURL(v.Primary.Src),
					"alt":       v.Primary.Alt,
					"data-slot": "primary",
					"class":     "object-contain w-150",
				}),
			),
			view.Img(view.Attrs{
				"src":       site.AssetURL(v.Secondary.Src),
				"alt":       v.Secondary.Alt,
				"data-slot": "secondary",
				"class":     "object-contain w-60",
			}),
		),
	)
}
