package view

// validTransitions contains the permitted navigation moves between overlays.
// The shop closes back into the profile rather than the stream, matching the
// client's overlay stacking.
var validTransitions = map[View][]View{
	ViewStream: {
		ViewProfile,
		ViewShop,
		ViewAdmin,
	},
	ViewProfile: {
		ViewShop,
		ViewAdmin,
	},
	ViewShop: {
		ViewProfile,
		ViewAdmin,
	},
	ViewAdmin: {
		ViewProfile,
		ViewShop,
	},
}

// IsTransitionAllowed reports whether moving from one view to another is
// valid. The stream is always reachable; it is both the initial state and the
// landing spot after logout.
func IsTransitionAllowed(from, to View) bool {
	if to == ViewStream {
		return true
	}

	allowed, ok := validTransitions[from]
	if !ok {
		return false
	}

	for _, v := range allowed {
		if v == to {
			return true
		}
	}

	return false
}
