package ingest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/piwi3910/FurniLayout/internal/model"
	"github.com/piwi3910/FurniLayout/internal/predictor"
)

// WarnedItem names an item that still needs manual attention.
type WarnedItem struct {
	ID   string            `json:"id"`
	Name string            `json:"name"`
	Kind model.WarningKind `json:"kind"`
}

// ZoneCount is the number of placed items in one zone.
type ZoneCount struct {
	Zone  string `json:"zone"`
	Count int    `json:"count"`
}

// Summary is handed to the caller after a successful automatic layout.
type Summary struct {
	Floor          model.FloorID                   `json:"floor"`
	RoomType       string                          `json:"room_type"`
	ModelUsed      string                          `json:"model_used,omitempty"`
	Placed         int                             `json:"placed"`
	ReportedPlaced int                             `json:"reported_placed"`
	Zones          []ZoneCount                     `json:"zones"`
	Warned         []WarnedItem                    `json:"warned"`
	CollisionCount int                             `json:"collision_count"`
	TooCloseCount  int                             `json:"too_close_count"`
	FixPasses      int                             `json:"fix_passes"`
	Removed        []string                        `json:"removed"`
	Skipped        []string                        `json:"skipped"`
	Dropped        []string                        `json:"dropped"`
	Overflow       []string                        `json:"overflow"`
	Unresolved     *model.UnresolvedOverlapWarning `json:"unresolved,omitempty"`
}

// Summarize builds the caller-facing summary. dropped lists cart entries cut
// by truncation before the request was sent.
func Summarize(floor model.FloorID, resp predictor.Response, res Result, dropped []model.CatalogEntry) Summary {
	sum := Summary{
		Floor:          floor,
		RoomType:       resp.RoomType,
		ModelUsed:      resp.ModelUsed,
		Placed:         len(res.Items),
		ReportedPlaced: resp.TotalPlaced,
		CollisionCount: res.Report.CollisionCount,
		TooCloseCount:  res.Report.TooCloseCount,
		FixPasses:      res.Fix.Passes,
		Unresolved:     res.Fix.Warning,
	}

	zones := map[string]int{}
	for _, it := range res.Items {
		zones[it.Zone]++
		if it.Warning.HasWarning() {
			sum.Warned = append(sum.Warned, WarnedItem{ID: it.ID, Name: it.Name, Kind: it.Warning.Kind})
		}
	}
	for z, n := range zones {
		sum.Zones = append(sum.Zones, ZoneCount{Zone: z, Count: n})
	}
	sort.Slice(sum.Zones, func(i, j int) bool { return sum.Zones[i].Zone < sum.Zones[j].Zone })

	for _, it := range res.Fix.Removed {
		sum.Removed = append(sum.Removed, it.Name)
	}
	for _, sk := range res.Skipped {
		sum.Skipped = append(sum.Skipped, sk.Error())
	}
	for _, e := range dropped {
		sum.Dropped = append(sum.Dropped, e.Name)
	}
	for _, sg := range res.Overflow {
		name := sg.Name
		if name == "" {
			name = sg.ID
		}
		if name == "" {
			name = fallbackName
		}
		sum.Overflow = append(sum.Overflow, name)
	}
	return sum
}

// Message renders the summary as a multi-line report.
func (s Summary) Message() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Layout generated for floor %d\n", s.Floor)
	fmt.Fprintf(&b, "%d item(s) placed", s.Placed)
	if s.RoomType != "" {
		fmt.Fprintf(&b, " (room: %s)", strings.ReplaceAll(s.RoomType, "_", " "))
	}
	b.WriteString("\n")
	if s.ModelUsed != "" {
		fmt.Fprintf(&b, "Algorithm: %s\n", s.ModelUsed)
	}

	if len(s.Zones) > 0 {
		b.WriteString("\nZone distribution:\n")
		for _, z := range s.Zones {
			fmt.Fprintf(&b, "  %s: %d item(s)\n", z.Zone, z.Count)
		}
	}

	b.WriteString("\nValidation:\n")
	if s.CollisionCount == 0 {
		b.WriteString("  No overlaps\n")
	} else {
		fmt.Fprintf(&b, "  %d overlap(s) detected\n", s.CollisionCount)
	}
	if s.TooCloseCount > 0 {
		fmt.Fprintf(&b, "  %d pair(s) closer than the minimum spacing\n", s.TooCloseCount)
	} else {
		b.WriteString("  Spacing OK\n")
	}
	if s.FixPasses > 0 {
		fmt.Fprintf(&b, "  Auto-fix applied: %d pass(es)\n", s.FixPasses)
	}

	if s.Unresolved != nil && len(s.Unresolved.Pairs) > 0 {
		b.WriteString("\nStill overlapping:\n")
		pairs := s.Unresolved.Pairs
		for i, p := range pairs {
			if i == 5 {
				fmt.Fprintf(&b, "  ... and %d more\n", len(pairs)-5)
				break
			}
			fmt.Fprintf(&b, "  - %s\n", p)
		}
	}
	writeList(&b, "Removed by auto-fix", s.Removed)
	writeList(&b, "Skipped (invalid geometry)", s.Skipped)
	writeList(&b, "Not sent (over the item limit)", s.Dropped)
	writeList(&b, "Not placed (over the item limit)", s.Overflow)
	if len(s.Warned) > 0 {
		fmt.Fprintf(&b, "\n%d highlighted item(s) need manual adjustment\n", len(s.Warned))
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeList(b *strings.Builder, title string, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, n := range names {
		fmt.Fprintf(b, "  - %s\n", n)
	}
}
