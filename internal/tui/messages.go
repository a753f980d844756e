package tui

import "github.com/fasco-shop/storefront/internal/page"

// Message types for Bubble Tea update loop.

// pageUpdateMsg carries a state change published by the page.
type pageUpdateMsg page.Update

// stoppedMsg signals that the update stream has ended.
type stoppedMsg struct{}
