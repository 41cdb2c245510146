package timetable

import (
	"github.com/go-playground/validator/v10"

	"github.com/Panthutk/UniPlan/core"
)

// EventInput is the payload for creating or updating a timetable event.
type EventInput struct {
	Title       string `json:"title"`
	Day         int    `json:"day" validate:"min=0,max=6"`
	Start       int    `json:"start" validate:"min=0,max=23"`
	End         int    `json:"end" validate:"min=0,max=23"`
	Description string `json:"description"`
}

const untitledEvent = "Untitled"

// Validate cleans and checks the input. A blank title becomes "Untitled";
// degenerate start/end are not rejected here, the service normalizes them.
func (in *EventInput) Validate(validate *validator.Validate) error {
	in.Title = core.CleanString(in.Title)
	if in.Title == "" {
		in.Title = untitledEvent
	}
	in.Description = core.CleanString(in.Description)
	return validate.Struct(in)
}

// normalized returns (start, end) with `start = min(given)` and
// `end = max(given, start+1)`, guaranteeing a strictly positive duration.
// Widening never leaves the 0..23 window: a degenerate 23-23 range becomes
// 22-23 rather than producing an end hour the backend cannot store.
func (in EventInput) normalized() (start, end int) {
	start, end = in.Start, in.End
	if end < start {
		start, end = end, start
	}
	if end <= start {
		if start == 23 {
			start = 22
		}
		end = start + 1
	}
	return start, end
}
