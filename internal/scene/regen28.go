package scene

// Regen28Canvas is the 12x12 data space laid over a 20x14 inch figure
var Regen28Canvas = Canvas{
	XMin: 0, XMax: 12,
	YMin: 0, YMax: 12,
	WidthInches:  20,
	HeightInches: 14,
}

var regen28Palette = map[string]Color{
	"main":      MustColor("#2196F3"),
	"trackers":  MustColor("#E3F2FD"),
	"goals":     MustColor("#E8F5E8"),
	"mood":      MustColor("#FFF3E0"),
	"journal":   MustColor("#F3E5F5"),
	"dashboard": MustColor("#E8EAF6"),
	"mind":      MustColor("#BBDEFB"),
	"body":      MustColor("#C8E6C9"),
	"soul":      MustColor("#E1BEE7"),
	"beauty":    MustColor("#F8BBD9"),
	"financial": MustColor("#B2EBF2"),
}

// Regen28Palette returns a copy of the colours used by the ReGen28 diagram
func Regen28Palette() map[string]Color {
	p := make(map[string]Color, len(regen28Palette))
	for k, v := range regen28Palette {
		p[k] = v
	}
	return p
}

type trackerRow struct {
	category string
	desc     string
	fill     string
	text     string
}

var trackerRows = []trackerRow{
	{"Mind", "Meditation • Focus • Learning", "mind", "#1976D2"},
	{"Body", "Exercise • Sleep • Nutrition", "body", "#388E3C"},
	{"Soul", "Gratitude • Prayer • Connection", "soul", "#7B1FA2"},
	{"Beauty", "Skincare • Self-Care • Grooming", "beauty", "#C2185B"},
}

var (
	goalsLeft  = []string{"Career", "Personal", "Health", "Lifestyle"}
	goalsRight = []string{"Relationships", "Financial", "Education", "Custom"}
)

// Regen28 composes the ReGen28 wellness platform architecture diagram:
// trackers and goals up top, the mood tracker as a cross-cutting concern,
// journal and goal progress beneath it, and everything feeding the central
// dashboard at the bottom.
func Regen28() *Scene {
	s := New("regen28_architecture", Regen28Canvas)
	c := regen28Palette

	// Title
	s.AddShape(roundBox(1, 10.5, 10, 1, 0.2, c["main"], "#1976D2", 2, 0.8))
	s.AddLabel(text(6, 11, "ReGen28 Wellness Platform Architecture", 22, WeightBold, StyleNormal, "white", AlignCenter, AlignBaseline))

	// Daily trackers
	s.AddShape(roundBox(0.5, 6.5, 4.5, 3.5, 0.15, c["trackers"], "#1976D2", 1.5, 1))
	s.AddLabel(text(2.75, 9.5, "Daily Trackers", 18, WeightBold, StyleNormal, "#1976D2", AlignCenter, AlignBaseline))
	s.AddLabel(text(2.75, 9.1, "Habits & Wellness", 12, WeightNormal, StyleItalic, "#666", AlignCenter, AlignBaseline))

	for i, row := range trackerRows {
		y := 8.5 - float64(i)*0.6
		s.AddShape(roundBox(0.8, y-0.2, 3.9, 0.4, 0.08, c[row.fill], row.text, 1, 0.9))
		s.AddLabel(text(1.2, y, row.category, 13, WeightBold, StyleNormal, row.text, AlignLeft, AlignMiddle))
		s.AddLabel(text(1.2, y-0.15, row.desc, 10, WeightNormal, StyleNormal, "#444", AlignLeft, AlignMiddle))
	}

	// Long-term goals
	s.AddShape(roundBox(7, 6.5, 4.5, 3.5, 0.15, c["goals"], "#388E3C", 1.5, 1))
	s.AddLabel(text(9.25, 9.5, "Long-term Goals", 18, WeightBold, StyleNormal, "#388E3C", AlignCenter, AlignBaseline))
	s.AddLabel(text(9.25, 9.1, "Achievements & Milestones", 12, WeightNormal, StyleItalic, "#666", AlignCenter, AlignBaseline))

	goalColumn(s, goalsLeft, 7.3, 8.1, c["financial"])
	goalColumn(s, goalsRight, 9.2, 10, c["financial"])

	// Universal mood tracker
	s.AddShape(roundBox(3.5, 4.8, 5, 1.2, 0.15, c["mood"], "#F57C00", 2, 1))
	s.AddLabel(text(6, 5.7, "Universal Mood Tracker", 16, WeightBold, StyleNormal, "#E65100", AlignCenter, AlignBaseline))
	s.AddLabel(text(6, 5.4, "Daily Mood • Energy Level • Overall Wellness", 11, WeightNormal, StyleNormal, "#BF360C", AlignCenter, AlignBaseline))
	s.AddLabel(text(6, 5.1, "Correlates with trackers, goals, and journal entries", 10, WeightNormal, StyleItalic, "#666", AlignCenter, AlignBaseline))

	// Journal system
	s.AddShape(roundBox(0.5, 3.2, 4.5, 1.2, 0.15, c["journal"], "#7B1FA2", 1.5, 1))
	s.AddLabel(text(2.75, 4.1, "Journal System", 16, WeightBold, StyleNormal, "#4A148C", AlignCenter, AlignBaseline))
	s.AddLabel(text(2.75, 3.8, "Reflections • Prompts • Insights", 11, WeightNormal, StyleNormal, "#6A1B9A", AlignCenter, AlignBaseline))
	s.AddLabel(text(2.75, 3.5, "Mood tracking within entries", 10, WeightNormal, StyleItalic, "#666", AlignCenter, AlignBaseline))

	// Goal progress
	s.AddShape(roundBox(7, 3.2, 4.5, 1.2, 0.15, c["financial"], "#00695C", 1.5, 1))
	s.AddLabel(text(9.25, 4.1, "Goal Progress Tracking", 16, WeightBold, StyleNormal, "#004D40", AlignCenter, AlignBaseline))
	s.AddLabel(text(9.25, 3.8, "Milestones • Deadlines • Achievements", 11, WeightNormal, StyleNormal, "#00695C", AlignCenter, AlignBaseline))
	s.AddLabel(text(9.25, 3.5, "Photo documentation & progress notes", 10, WeightNormal, StyleItalic, "#666", AlignCenter, AlignBaseline))

	// Central dashboard, the root everything feeds into
	s.AddShape(roundBox(2, 0.8, 8, 1.8, 0.2, c["dashboard"], "#303F9F", 3, 1))
	s.AddLabel(text(6, 2.2, "CENTRAL DASHBOARD", 20, WeightBold, StyleNormal, "#1A237E", AlignCenter, AlignBaseline))
	s.AddLabel(text(6, 1.9, "Root Hub for All Platform Data", 14, WeightNormal, StyleItalic, "#283593", AlignCenter, AlignBaseline))
	s.AddLabel(text(6, 1.5, "Analytics • Insights • Progress Overview • Correlations", 12, WeightNormal, StyleNormal, "#3F51B5", AlignCenter, AlignBaseline))
	s.AddLabel(text(6, 1.2, "Unified view of wellness journey and goal achievement", 11, WeightNormal, StyleNormal, "#5C6BC0", AlignCenter, AlignBaseline))

	// Data flowing into the dashboard
	feed(s, Point{2.75, 6.5}, Point{3.5, 2.6}, "#1976D2", Point{2.5, 4.5}, "Tracker\nData")
	feed(s, Point{9.25, 6.5}, Point{8.5, 2.6}, "#388E3C", Point{9.5, 4.5}, "Goal\nProgress")
	feed(s, Point{6, 4.8}, Point{6, 2.6}, "#F57C00", Point{6.8, 3.7}, "Mood\nData")
	feed(s, Point{2.75, 3.2}, Point{4.5, 2.6}, "#7B1FA2", Point{3.2, 2.9}, "Journal\nInsights")
	feed(s, Point{9.25, 3.2}, Point{7.5, 2.6}, "#00695C", Point{8.8, 2.9}, "Progress\nUpdates")

	// Mood correlations
	correlate(s, Point{2.75, 6.5}, Point{3.5, 5.4})
	correlate(s, Point{9.25, 6.5}, Point{8.5, 5.4})
	correlate(s, Point{2.75, 4.4}, Point{3.5, 5.4})

	s.AddGrid(Grid{Step: 1, Color: MustColor("#BDBDBD"), Alpha: 0.1})

	return s
}

func goalColumn(s *Scene, goals []string, x, textX float64, fill Color) {
	for i, goal := range goals {
		y := 8.5 - float64(i)*0.4
		s.AddShape(Shape{
			Origin:    Point{x, y - 0.15},
			Width:     1.6,
			Height:    0.3,
			Style:     BoxSquare,
			Fill:      fill,
			Edge:      MustColor("#388E3C"),
			EdgeWidth: 1,
			Alpha:     0.7,
		})
		s.AddLabel(text(textX, y, goal, 11, WeightBold, StyleNormal, "#2E7D32", AlignCenter, AlignMiddle))
	}
}

func feed(s *Scene, from, to Point, col string, labelAt Point, label string) {
	s.AddArrow(Arrow{
		From:  from,
		To:    to,
		Style: LineSolid,
		Color: MustColor(col),
		Width: 3,
		Alpha: 0.8,
	})
	s.AddLabel(text(labelAt.X, labelAt.Y, label, 10, WeightBold, StyleNormal, col, AlignCenter, AlignBaseline))
}

func correlate(s *Scene, from, to Point) {
	s.AddArrow(Arrow{
		From:          from,
		To:            to,
		Style:         LineDashed,
		Color:         MustColor("#FF9800"),
		Width:         2,
		Alpha:         0.6,
		Bidirectional: true,
	})
}

func roundBox(x, y, w, h, pad float64, fill Color, edge string, lw, alpha float64) Shape {
	return Shape{
		Origin:    Point{x, y},
		Width:     w,
		Height:    h,
		Style:     BoxRound,
		Pad:       pad,
		Fill:      fill,
		Edge:      MustColor(edge),
		EdgeWidth: lw,
		Alpha:     alpha,
	}
}

func text(x, y float64, s string, size float64, weight FontWeight, style FontStyle, col string, ha HAlign, va VAlign) Label {
	return Label{
		Text:   s,
		At:     Point{x, y},
		Size:   size,
		Weight: weight,
		Style:  style,
		Color:  MustColor(col),
		HAlign: ha,
		VAlign: va,
	}
}
