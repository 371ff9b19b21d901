package curriculum

import "fmt"

// Subject is a top-level curriculum track. The string value is the stable
// identity used as a persistence key.
type Subject string

const (
	SubjectMath    Subject = "MATH"
	SubjectChinese Subject = "CHINESE"
	SubjectEnglish Subject = "ENGLISH"
	SubjectLife    Subject = "LIFE"
)

// subjectOrder is the display order on the home screen.
var subjectOrder = []Subject{SubjectChinese, SubjectMath, SubjectEnglish, SubjectLife}

// AllSubjects returns every subject in display order.
func AllSubjects() []Subject {
	out := make([]Subject, len(subjectOrder))
	copy(out, subjectOrder)
	return out
}

// Valid reports whether s belongs to the closed subject set.
func (s Subject) Valid() bool {
	_, ok := subjects[s]
	return ok
}

// ParseSubject converts a persisted or user-supplied key into a Subject.
func ParseSubject(key string) (Subject, error) {
	s := Subject(key)
	if !s.Valid() {
		return "", fmt.Errorf("unknown subject %q", key)
	}
	return s, nil
}

// SubjectInfo holds the presentation metadata for a subject.
type SubjectInfo struct {
	ID          Subject
	Name        string
	Description string
	Icon        string
	Color       string // hex, used by the UI theme
	Chapters    [ChaptersPerSubject]string
}

var subjects = map[Subject]SubjectInfo{
	SubjectChinese: {
		ID:          SubjectChinese,
		Name:        "國語",
		Description: "文字的力量",
		Icon:        "📖",
		Color:       "#FB7185",
		Chapters:    [ChaptersPerSubject]string{"注音符號王國", "國字大會考", "詞語接龍挑戰", "閱讀素養大師"},
	},
	SubjectMath: {
		ID:          SubjectMath,
		Name:        "數學",
		Description: "數字的奧秘",
		Icon:        "🧮",
		Color:       "#38BDF8",
		Chapters:    [ChaptersPerSubject]string{"數與計算大師", "幾何圖形探險", "測量與統計王", "邏輯與應用神"},
	},
	SubjectEnglish: {
		ID:          SubjectEnglish,
		Name:        "英文",
		Description: "世界的語言",
		Icon:        "🔤",
		Color:       "#A78BFA",
		Chapters:    [ChaptersPerSubject]string{"字母與發音", "單字大蒐集", "生活對話通", "環遊世界去"},
	},
	SubjectLife: {
		ID:          SubjectLife,
		Name:        "生活",
		Description: "自然的探索",
		Icon:        "🍃",
		Color:       "#34D399",
		Chapters:    [ChaptersPerSubject]string{"校園與家庭", "自然觀察家", "生活好習慣", "科學小遊戲"},
	},
}

// Info returns the metadata for s. The zero value is returned for unknown
// subjects.
func Info(s Subject) SubjectInfo {
	return subjects[s]
}

// Name returns the display name of the subject.
func (s Subject) Name() string {
	if info, ok := subjects[s]; ok {
		return info.Name
	}
	return string(s)
}
