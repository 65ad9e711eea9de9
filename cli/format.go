package main

import (
	"fmt"

	"github.com/okrent/trackstats/data"
)

// intCol and floatCol render nullable columns; nil prints as empty.
func intCol(p *int64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%d", *p)
}

func floatCol(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%f", *p)
}

func videoTotals(result []data.VideoTotals) ([]string, [][]string) {
	rows := make([][]string, len(result))
	for i, r := range result {
		rows[i] = []string{r.Track, fmt.Sprintf("%.0f", r.TotalViews), fmt.Sprintf("%.0f", r.TotalLikes)}
	}
	return []string{"track", "total_views", "total_likes"}, rows
}
