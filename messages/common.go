package messages

import "github.com/aozyumenko/go-mesh/access"

// DelayResolution is the raster of the "delay" field carried by set messages,
// in seconds per raw unit.
const DelayResolution = 0.005

func tid() access.Field {
	return access.U8("tid")
}

// optTransitionTime and optDelay form the optional [transition_time, delay]
// tail of acknowledged and unacknowledged set messages.
func optTransitionTime() access.Field {
	return access.TransitionTime("transition_time").AsOptional()
}

func optDelay() access.Field {
	return access.Quantity("delay", 1, false, DelayResolution, 3).AsOptional()
}

func optRemainingTime() access.Field {
	return access.TransitionTime("remaining_time").AsOptional()
}
