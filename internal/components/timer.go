package components

import (
	"strconv"

	"github.com/fasco-shop/storefront/internal/countdown"
	"github.com/fasco-shop/storefront/internal/view"
)

// TimerHeading sits above the countdown boxes.
const TimerHeading = "Hurry, Before It’s Too Late!"

// Timer renders the countdown as four labeled boxes: days, hours, minutes, seconds.
func Timer(c countdown.Countdown) *view.Node {
	boxes := c.Boxes()
	items := make([]*view.Node, 0, len(boxes))
	for _, b := range boxes {
		items = append(items, view.Li(view.Attrs{"class": "text-center"},
			view.Span(view.Attrs{
				"class":      "block shadow-md shadow-gray-700/50 text-lg px-4 py-2 rounded tracking-widest",
				"data-field": b.Label,
			}, strconv.Itoa(b.Value)),
			view.El("label", view.Attrs{"class": "block mt-1"}, view.Text(b.Label)),
		).WithKey(strconv.Itoa(b.ID)))
	}

	return view.Div(view.Attrs{ComponentAttr: "timer", "class": "mt-6", "aria-live": "polite"},
		view.P(view.Attrs{"class": "text-lg"}, TimerHeading),
		view.Ul(view.Attrs{"class": "flex gap-4 mt-3"}, items...),
	)
}
