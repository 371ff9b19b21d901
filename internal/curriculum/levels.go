package curriculum

import "fmt"

const (
	ChaptersPerSubject = 4
	LevelsPerChapter   = 5
	LevelCount         = ChaptersPerSubject * LevelsPerChapter
)

// Zone is a visual region of the level map. Zone i covers chapter i.
type Zone struct {
	ID   string
	Name string
	Icon string
	// TitlePrefix names the levels inside the zone, e.g. "森林試煉 3".
	TitlePrefix string
}

var zones = [ChaptersPerSubject]Zone{
	{ID: "forest", Name: "新手森林", Icon: "🌲", TitlePrefix: "森林試煉"},
	{ID: "ocean", Name: "知識海洋", Icon: "🐳", TitlePrefix: "海洋探險"},
	{ID: "sky", Name: "雲端神殿", Icon: "☁️", TitlePrefix: "天空挑戰"},
	{ID: "space", Name: "宇宙邊境", Icon: "🚀", TitlePrefix: "最終決戰"},
}

// Zones returns the map zones in order.
func Zones() []Zone {
	return zones[:]
}

// ValidLevel reports whether id is a level id of the catalog.
func ValidLevel(id int) bool {
	return id >= 1 && id <= LevelCount
}

// ChapterIndex returns the zero-based chapter (and zone) of a level.
func ChapterIndex(levelID int) int {
	idx := (levelID - 1) / LevelsPerChapter
	switch {
	case idx < 0:
		return 0
	case idx >= ChaptersPerSubject:
		return ChaptersPerSubject - 1
	}
	return idx
}

// Stage returns the one-based stage of a level within its chapter (1..5).
func Stage(levelID int) int {
	if levelID < 1 {
		return 1
	}
	return (levelID-1)%LevelsPerChapter + 1
}

// ZoneFor returns the zone a level is drawn in.
func ZoneFor(levelID int) Zone {
	return zones[ChapterIndex(levelID)]
}

// LevelTitle returns the default title of a level.
func LevelTitle(levelID int) string {
	if !ValidLevel(levelID) {
		return fmt.Sprintf("第 %d 關", levelID)
	}
	return fmt.Sprintf("%s %d", ZoneFor(levelID).TitlePrefix, levelID)
}

var stageSuffixes = [LevelsPerChapter]string{"初學篇", "練習篇", "應用篇", "進階篇", "挑戰篇"}

// Topic returns the display topic for a level of a subject, for example
// "幾何圖形探險 - 應用篇". Unknown inputs fall back to a generic topic.
func Topic(s Subject, levelID int) string {
	info, ok := subjects[s]
	if !ok || !ValidLevel(levelID) {
		return "綜合練習"
	}
	return fmt.Sprintf("%s - %s", info.Chapters[ChapterIndex(levelID)], stageSuffixes[Stage(levelID)-1])
}

// Chapter returns the chapter name a level belongs to.
func Chapter(s Subject, levelID int) string {
	info, ok := subjects[s]
	if !ok {
		return ""
	}
	return info.Chapters[ChapterIndex(levelID)]
}

// GradeContext describes the target school grade for a level.
func GradeContext(levelID int) string {
	switch {
	case levelID <= 5:
		return "國小一年級/二年級 (低年級)"
	case levelID <= 10:
		return "國小三年級/四年級 (中年級)"
	case levelID <= 15:
		return "國小五年級 (高年級)"
	default:
		return "國小六年級/國中銜接 (進階)"
	}
}

var stageFocus = [LevelsPerChapter]string{
	"Concept building: introduce the core definitions; emphasize recognition and memory.",
	"Basic practice: direct calculations or basic usage drills.",
	"Everyday application: story problems set in familiar situations.",
	"Deeper thinking: reverse reasoning, spot-the-mistake items and common traps.",
	"Boss challenge: multi-step problems that combine everything in the chapter.",
}

// StageFocus returns the learning focus of a stage (1..5).
func StageFocus(stage int) string {
	if stage < 1 || stage > LevelsPerChapter {
		return "Mixed review."
	}
	return stageFocus[stage-1]
}
