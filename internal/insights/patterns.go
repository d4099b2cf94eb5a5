package insights

import (
	"fmt"
	"slices"
	"time"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/justestif/go-mood-recommender/internal/logging"
	"github.com/justestif/go-mood-recommender/internal/mood"
)

// PatternConfig holds clustering parameters.
type PatternConfig struct {
	MaxPatterns    int // Upper bound on k; the distinct final moods cap it further
	MinClusterSize int // Smaller clusters become outliers
}

// DefaultPatternConfig returns the recommended defaults.
func DefaultPatternConfig() PatternConfig {
	return PatternConfig{
		MaxPatterns:    4,
		MinClusterSize: 3,
	}
}

// Pattern is a group of analyses with similar fused mood distributions.
type Pattern struct {
	Name     string            `json:"name"`
	Dominant mood.Category     `json:"dominant_mood"`
	Centroid mood.Distribution `json:"centroid"`
	Count    int               `json:"count"`
	Share    float64           `json:"share"`
	Start    time.Time         `json:"start"`
	End      time.Time         `json:"end"`
}

type entryObservation struct {
	entry  *Entry
	coords clusters.Coordinates
}

func (o entryObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o entryObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// DetectPatterns clusters entries by their fused scores with k-means, one
// coordinate per mood category. It returns the patterns, largest first,
// and the entries that fell into clusters below MinClusterSize. Entries
// without scores are outliers.
func DetectPatterns(entries []Entry, cfg PatternConfig) ([]Pattern, []Entry) {
	if len(entries) == 0 {
		return nil, nil
	}
	if cfg.MaxPatterns <= 0 {
		cfg.MaxPatterns = DefaultPatternConfig().MaxPatterns
	}

	var valid []*Entry
	var outliers []Entry
	distinct := map[mood.Category]bool{}
	for i := range entries {
		e := &entries[i]
		if e.FinalScores.Total() <= 0 {
			outliers = append(outliers, *e)
			continue
		}
		valid = append(valid, e)
		distinct[e.FinalMood] = true
	}

	k := min(cfg.MaxPatterns, len(distinct))
	if k == 0 || len(valid) < k {
		for _, e := range valid {
			outliers = append(outliers, *e)
		}
		return nil, outliers
	}

	var obs clusters.Observations
	for _, e := range valid {
		obs = append(obs, entryObservation{entry: e, coords: coordinates(e.FinalScores)})
	}

	result, err := kmeans.New().Partition(obs, k)
	if err != nil {
		logging.Warn().Err(err).Int("entries", len(valid)).Msg("k-means clustering failed")
		for _, e := range valid {
			outliers = append(outliers, *e)
		}
		return nil, outliers
	}

	var patterns []Pattern
	for _, cluster := range result {
		var members []Entry
		for _, o := range cluster.Observations {
			if eo, ok := o.(entryObservation); ok {
				members = append(members, *eo.entry)
			}
		}
		if len(members) == 0 {
			continue
		}
		if len(members) < cfg.MinClusterSize {
			outliers = append(outliers, members...)
			continue
		}

		slices.SortFunc(members, func(a, b Entry) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})

		centroid := mood.NewDistribution()
		for i, c := range mood.Categories() {
			centroid[c] = cluster.Center[i]
		}
		centroid = centroid.Normalize()
		dominant, _ := centroid.Top()

		patterns = append(patterns, Pattern{
			Name:     patternName(centroid),
			Dominant: dominant,
			Centroid: centroid.Rounded(4),
			Count:    len(members),
			Share:    float64(len(members)) / float64(len(entries)),
			Start:    members[0].CreatedAt,
			End:      members[len(members)-1].CreatedAt,
		})
	}

	slices.SortFunc(patterns, func(a, b Pattern) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return b.End.Compare(a.End)
	})

	return patterns, outliers
}

func coordinates(d mood.Distribution) clusters.Coordinates {
	n := d.Normalize()
	coords := make(clusters.Coordinates, mood.NumCategories)
	for i, c := range mood.Categories() {
		coords[i] = n[c]
	}
	return coords
}

// patternName describes a centroid: one clear mood, a blend of two, or a
// mix when nothing stands out.
func patternName(centroid mood.Distribution) string {
	first, second := topTwo(centroid)
	p1, p2 := centroid[first], centroid[second]

	switch {
	case p1 >= 0.6:
		return "Mostly " + title(first)
	case p1+p2 >= 0.6:
		return title(first) + " & " + title(second)
	default:
		return "Mixed"
	}
}

func topTwo(d mood.Distribution) (mood.Category, mood.Category) {
	cats := mood.Categories()
	slices.SortStableFunc(cats, func(a, b mood.Category) int {
		switch {
		case d[a] > d[b]:
			return -1
		case d[a] < d[b]:
			return 1
		default:
			return 0
		}
	})
	return cats[0], cats[1]
}

func title(c mood.Category) string {
	s := c.String()
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// FormatSpan renders a pattern's date range.
func (p Pattern) FormatSpan() string {
	const layout = "Jan 2, 2006"
	start, end := p.Start.Format(layout), p.End.Format(layout)
	if start == end {
		return start
	}
	return fmt.Sprintf("%s - %s", start, end)
}
