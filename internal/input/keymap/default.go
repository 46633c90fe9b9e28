package keymap

// Defaults returns the built-in keymap: WASD movement on scan codes,
// arrows as a fallback, and a few chords that exercise wildcards.
func Defaults() *Document {
	doc := NewDocument("default")
	doc.Source = "default"

	// Movement works with or without shift held, so sprint can overlap.
	doc.Add("move.forward",
		Attrs{"scan": "17", "shift": "*"},
		Attrs{"virtual": "up", "shift": "*"})
	doc.Add("move.left",
		Attrs{"scan": "30", "shift": "*"},
		Attrs{"virtual": "left", "shift": "*"})
	doc.Add("move.back",
		Attrs{"scan": "31", "shift": "*"},
		Attrs{"virtual": "down", "shift": "*"})
	doc.Add("move.right",
		Attrs{"scan": "32", "shift": "*"},
		Attrs{"virtual": "right", "shift": "*"})

	doc.Add("jump", Attrs{"scan": "57", "shift": "*"})
	doc.Add("jump.land", Attrs{"scan": "57", "state": "released", "shift": "*"})

	doc.Add("sprint",
		Attrs{"virtual": "lshift", "shift": "*"},
		Attrs{"virtual": "rshift", "shift": "*"})
	doc.Add("crouch", Attrs{"virtual": "lctrl", "ctrl": "*"})

	doc.Add("menu", Attrs{"virtual": "escape"})
	doc.Add("quit", Attrs{"virtual": "q", "ctrl": "true"})
	return doc
}
