package models

// ProbeOutcome is the recorded result of loading one candidate URL
type ProbeOutcome string

const (
	ProbeSuccess ProbeOutcome = "success"
	ProbeFailure ProbeOutcome = "failure"
)

// ThumbnailState is the state of one thumbnail cascade
type ThumbnailState string

const (
	ThumbnailPending   ThumbnailState = "pending"
	ThumbnailSuccess   ThumbnailState = "success"
	ThumbnailExhausted ThumbnailState = "exhausted"
)

// ThumbnailTransition is what the renderer boundary receives on every step
type ThumbnailTransition struct {
	State ThumbnailState `json:"state"`
	Index int            `json:"index"`
	URL   string         `json:"url,omitempty"`
	Label string         `json:"label,omitempty"` // Degraded marker for exhausted cascades, e.g. "828·O"
}

// Terminal reports whether no further transitions follow
func (t ThumbnailTransition) Terminal() bool {
	return t.State == ThumbnailSuccess || t.State == ThumbnailExhausted
}

// ThumbnailResolution summarizes a finished cascade
type ThumbnailResolution struct {
	Family      Family                `json:"family"`
	GarmentID   int                   `json:"garmentId"`
	ColorID     int                   `json:"colorId"`
	Final       ThumbnailTransition   `json:"final"`
	Attempts    int                   `json:"attempts"`
	Transitions []ThumbnailTransition `json:"transitions"`
	Candidates  []string              `json:"candidates"`
}
