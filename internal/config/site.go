// Package config describes the storefront content: brand, navigation, hero,
// marquee logos and the promotional deal. It is loaded from YAML and overlaid
// onto the built-in defaults.
package config

import (
	"net/url"
	"path"
	"time"

	"github.com/fasco-shop/storefront/internal/carousel"
	"github.com/fasco-shop/storefront/internal/countdown"
)

// Site is the full page configuration.
type Site struct {
	Brand     string   `yaml:"brand" validate:"required"`
	Title     string   `yaml:"title" validate:"required"`
	Lang      string   `yaml:"lang" validate:"omitempty,bcp47_language_tag"`
	Scripts   []string `yaml:"scripts" validate:"dive,url"`
	AssetsDir string   `yaml:"assets_dir" validate:"required"`
	AssetBase string   `yaml:"asset_base" validate:"required"`

	Nav     Nav     `yaml:"nav"`
	Hero    Hero    `yaml:"hero"`
	Marquee Marquee `yaml:"marquee"`
	Deal    Deal    `yaml:"deal"`
}

// NavLink is one entry of the navigation bar.
type NavLink struct {
	Label     string `yaml:"label" validate:"required"`
	Href      string `yaml:"href"`
	Highlight bool   `yaml:"highlight,omitempty"`
}

// Nav holds the navigation links in display order.
type Nav struct {
	Links []NavLink `yaml:"links" validate:"dive"`
}

// Hero is the banner under the navigation bar.
type Hero struct {
	Left     carousel.Image `yaml:"left"`
	Top      carousel.Image `yaml:"top"`
	Bottom   carousel.Image `yaml:"bottom"`
	Right    carousel.Image `yaml:"right"`
	Eyebrow  string         `yaml:"eyebrow"`
	Headline string         `yaml:"headline" validate:"required"`
	Tagline  string         `yaml:"tagline"`
	CTA      string         `yaml:"cta" validate:"required"`
}

// Logo is one brand in the marquee strip.
type Logo struct {
	ID  int    `yaml:"id" validate:"gt=0"`
	Src string `yaml:"src" validate:"required"`
}

// Marquee is the scrolling logo strip.
type Marquee struct {
	Logos    []Logo        `yaml:"logos" validate:"min=1,unique=ID,dive"`
	Duration time.Duration `yaml:"duration" validate:"gt=0"`
}

// Deal is the promotional block: copy, countdown start and carousel images.
type Deal struct {
	Headline    string              `yaml:"headline" validate:"required"`
	Description string              `yaml:"description"`
	CTA         string              `yaml:"cta" validate:"required"`
	Countdown   countdown.Countdown `yaml:"countdown"`
	Images      []carousel.Image    `yaml:"images" validate:"min=1,dive"`
}

// Default returns the stock FASCO landing page.
func Default() Site {
	return Site{
		Brand:     "FASCO",
		Title:     "FASCO | Ultimate Sale",
		Lang:      "en",
		Scripts:   []string{"https://cdn.tailwindcss.com"},
		AssetsDir: "assets",
		AssetBase: "/assets",
		Nav: Nav{Links: []NavLink{
			{Label: "Home", Href: "#"},
			{Label: "Deals", Href: "#deals"},
			{Label: "New Arrivals", Href: "#new-arrivals"},
			{Label: "Packages", Href: "#packages"},
			{Label: "Sign in", Href: "#signin"},
			{Label: "Signup", Href: "#signup", Highlight: true},
		}},
		Hero: Hero{
			Left:     carousel.Image{Src: "HeroImages/left.png", Alt: "Left Hero Image"},
			Top:      carousel.Image{Src: "HeroImages/top.png", Alt: "Top Hero Image"},
			Bottom:   carousel.Image{Src: "HeroImages/bottom.png", Alt: "Bottom Hero Image"},
			Right:    carousel.Image{Src: "HeroImages/right.png", Alt: "Right Hero Image"},
			Eyebrow:  "ULTIMATE",
			Headline: "SALE",
			Tagline:  "NEW COLLECTION",
			CTA:      "Shop Now",
		},
		Marquee: Marquee{
			Logos: []Logo{
				{ID: 1, Src: "MarqueeLogoImages/logo-1.png"},
				{ID: 2, Src: "MarqueeLogoImages/logo-2.png"},
				{ID: 3, Src: "MarqueeLogoImages/logo-3.png"},
				{ID: 4, Src: "MarqueeLogoImages/logo-4.png"},
				{ID: 5, Src: "MarqueeLogoImages/logo.png"},
			},
			Duration: 25 * time.Second,
		},
		Deal: Deal{
			Headline:    "Deals Of The Month",
			Description: "Hand-picked pieces from the new collection at their lowest price of the season. Once the timer runs out, the offer is gone.",
			CTA:         "Buy Now",
			Countdown:   countdown.Initial,
			Images: []carousel.Image{
				{Src: "HomeCarousal/image-1.png", Alt: "Deal 1"},
				{Src: "HeroImages/left.png", Alt: "Deal 2"},
				{Src: "HomeCarousal/image.png", Alt: "Deal 3"},
			},
		},
	}
}

// AssetURL maps a configured image path to the URL used in markup.
// Absolute URLs pass through untouched.
func (s Site) AssetURL(src string) string {
	if IsRemote(src) {
		return src
	}
	if s.AssetBase == "" {
		return src
	}
	return path.Join(s.AssetBase, src)
}

// IsRemote reports whether src is an absolute URL rather than a file under
// the asset directory.
func IsRemote(src string) bool {
	u, err := url.Parse(src)
	return err == nil && u.Scheme != ""
}

// ImageRefs lists every image path the page references, in page order,
// without duplicates.
func (s Site) ImageRefs() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(src string) {
		if src == "" {
			return
		}
		if _, ok := seen[src]; ok {
			return
		}
		seen[src] = struct{}{}
		out = append(out, src)
	}
	for _, img := range []carousel.Image{s.Hero.Left, s.Hero.Top, s.Hero.Bottom, s.Hero.Right} {
		add(img.Src)
	}
	for _, l := range s.Marquee.Logos {
		add(l.Src)
	}
	for _, img := range s.Deal.Images {
		add(img.Src)
	}
	return out
}
