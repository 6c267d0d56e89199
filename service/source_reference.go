package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"figure-studio/figuredata"
)

// ReferenceTableFetcher serves the reference table itself as an official
// listing. It stands in for the official source when no endpoint is configured.
type ReferenceTableFetcher struct {
	Table *figuredata.Table
}

// Fetch renders the table's selectable garments in the official listing shape
func (f *ReferenceTableFetcher) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parts := make(map[string][]map[string]interface{})
	for _, family := range f.Table.Families() {
		colors := make([]string, 0)
		for _, c := range f.Table.SelectableColors(family) {
			colors = append(colors, strconv.Itoa(c))
		}
		for _, garment := range f.Table.Garments(family) {
			club := "0"
			if garment.Club {
				club = "1"
			}
			garmentColors := colors
			if !garment.Colorable {
				garmentColors = nil
			}
			parts[string(family)] = append(parts[string(family)], map[string]interface{}{
				"id":     strconv.Itoa(garment.ID),
				"colors": garmentColors,
				"club":   club,
				"gender": string(garment.Gender),
			})
		}
	}

	data, err := json.Marshal(map[string]interface{}{"figureParts": parts})
	if err != nil {
		return nil, fmt.Errorf("failed to render reference listing: %w", err)
	}
	return data, nil
}

// Describe names the fetcher in logs
func (f *ReferenceTableFetcher) Describe() string {
	return "figuredata"
}
