package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"figure-studio/models"
)

// Skip reasons reported by DecodeFigure
const (
	SkipMalformedSegment = "MalformedSegment"
	SkipUnknownFamily    = "UnknownFamily"
	SkipDuplicateFamily  = "DuplicateFamily"
)

// SegmentDiagnostic describes one segment DecodeFigure did not keep as-is
type SegmentDiagnostic struct {
	Segment string `json:"segment"`
	Reason  string `json:"reason"`
	Detail  string `json:"detail,omitempty"`
}

func (d SegmentDiagnostic) String() string {
	if d.Detail == "" {
		return fmt.Sprintf("%s: %s", d.Reason, d.Segment)
	}
	return fmt.Sprintf("%s: %s (%s)", d.Reason, d.Segment, d.Detail)
}

// FigureDecodeResult carries the parsed figure and whatever was skipped
type FigureDecodeResult struct {
	Figure  models.Figure
	Skipped []SegmentDiagnostic
}

// SkippedStrings formats the diagnostics for JSON responses and logs
func (r FigureDecodeResult) SkippedStrings() []string {
	if len(r.Skipped) == 0 {
		return nil
	}
	out := make([]string, len(r.Skipped))
	for i, d := range r.Skipped {
		out[i] = d.String()
	}
	return out
}

// EncodeFigure writes a figure as family-garmentId-color[-color2] segments
// joined with '.', in canonical family order. Unoccupied families are omitted.
func EncodeFigure(figure models.Figure) string {
	segments := make([]string, 0, len(figure))
	for _, family := range models.CanonicalFamilyOrder {
		part, ok := figure[family]
		if !ok {
			continue
		}
		segments = append(segments, encodeSegment(family, part))
	}
	return strings.Join(segments, ".")
}

func encodeSegment(family models.Family, part models.FigurePart) string {
	var b strings.Builder
	b.WriteString(string(family))
	b.WriteByte('-')
	b.WriteString(strconv.Itoa(part.GarmentID))
	for _, color := range part.ColorIDs {
		b.WriteByte('-')
		b.WriteString(strconv.Itoa(color))
	}
	return b.String()
}

// DecodeFigure parses a figure code best-effort. Malformed segments and
// unknown families are skipped and reported; it never fails.
func DecodeFigure(code string) FigureDecodeResult {
	result := FigureDecodeResult{Figure: models.Figure{}}

	for _, segment := range strings.Split(strings.TrimSpace(code), ".") {
		if segment == "" {
			continue
		}

		tokens := strings.Split(segment, "-")
		if len(tokens) < 3 || len(tokens) > 4 {
			result.Skipped = append(result.Skipped, SegmentDiagnostic{
				Segment: segment,
				Reason:  SkipMalformedSegment,
				Detail:  fmt.Sprintf("expected 3 or 4 tokens, got %d", len(tokens)),
			})
			continue
		}

		family := models.Family(tokens[0])
		if !family.IsKnown() {
			result.Skipped = append(result.Skipped, SegmentDiagnostic{
				Segment: segment,
				Reason:  SkipUnknownFamily,
			})
			continue
		}

		garmentID, ok := parseDigits(tokens[1])
		if !ok {
			result.Skipped = append(result.Skipped, SegmentDiagnostic{
				Segment: segment,
				Reason:  SkipMalformedSegment,
				Detail:  "garment id is not a number",
			})
			continue
		}

		colors := make([]int, 0, len(tokens)-2)
		valid := true
		for _, token := range tokens[2:] {
			color, ok := parseDigits(token)
			if !ok {
				valid = false
				break
			}
			colors = append(colors, color)
		}
		if !valid {
			result.Skipped = append(result.Skipped, SegmentDiagnostic{
				Segment: segment,
				Reason:  SkipMalformedSegment,
				Detail:  "color id is not a number",
			})
			continue
		}

		if _, seen := result.Figure[family]; seen {
			result.Skipped = append(result.Skipped, SegmentDiagnostic{
				Segment: segment,
				Reason:  SkipDuplicateFamily,
				Detail:  "replaces earlier segment",
			})
		}
		result.Figure[family] = models.FigurePart{GarmentID: garmentID, ColorIDs: colors}
	}

	return result
}

// MaxIDDigits bounds garment and color ids in a figure code
const MaxIDDigits = 9

// parseDigits accepts ASCII digits only; signs and spaces are rejected
func parseDigits(s string) (int, bool) {
	if s == "" || len(s) > MaxIDDigits {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// AvatarImageOptions are the pose and size parameters of the imaging service
type AvatarImageOptions struct {
	Direction     int
	HeadDirection int
	Size          string
	Gesture       string
	Action        string
}

// DefaultAvatarImageOptions matches the front-facing preview used by the pickers
func DefaultAvatarImageOptions() AvatarImageOptions {
	return AvatarImageOptions{
		Direction:     2,
		HeadDirection: 3,
		Size:          "m",
		Gesture:       "std",
		Action:        "std",
	}
}

// AvatarImageURL builds the imaging service URL for a full figure code
// base is the hotel root, e.g. https://www.habbo.com.br
func AvatarImageURL(base string, figureCode string, opts AvatarImageOptions) string {
	// Query order is kept stable so the URL can be used as a cache key
	q := []string{
		"figure=" + url.QueryEscape(figureCode),
		"direction=" + strconv.Itoa(opts.Direction),
		"head_direction=" + strconv.Itoa(opts.HeadDirection),
		"size=" + url.QueryEscape(opts.Size),
		"img_format=png",
		"gesture=" + url.QueryEscape(opts.Gesture),
		"action=" + url.QueryEscape(opts.Action),
	}
	return strings.TrimRight(base, "/") + "/habbo-imaging/avatarimage?" + strings.Join(q, "&")
}
