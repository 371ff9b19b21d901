package curriculum

// Story is the narrative frame shown on the welcome and story screens.
var Story = struct {
	Title       string
	Intro       string
	MascotName  string
	MascotEmoji string
}{
	Title:       "智慧王國大冒險",
	Intro:       "很久很久以前，智慧王國被「迷霧魔王」籠罩了！所有的知識都變成了碎片……勇敢的小小冒險家，請你幫助守護者「波波」，找回失落的知識寶石，讓王國重現光明吧！",
	MascotName:  "波波",
	MascotEmoji: "🦉",
}
