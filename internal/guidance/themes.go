package guidance

// themeOrder is the contract for classification: scoring iterates themes in
// this order and the first theme encountered wins ties. Do not reorder
// without updating the classifier tests that pin tie-break winners.
var themeOrder = []Theme{
	// Personal development
	"patience", "strength", "change",
	// Spiritual growth
	"prayer", "faith", "guidance",
	// Life areas
	"family", "health", "fitness", "wealth", "knowledge",
	// Character
	"honesty", "kindness", "justice",
	// Challenges
	"anxiety", "depression", "addiction",
	// Success and achievement
	"success", "leadership", "business",
}

// themeSynonyms awards a full point per exact keyword hit during
// classification.
var themeSynonyms = map[Theme][]string{
	"patience":   {"patience", "sabr", "endurance", "perseverance", "waiting", "trials", "difficulty"},
	"strength":   {"strength", "power", "resilience", "courage", "steadfastness", "determination"},
	"change":     {"change", "transformation", "improvement", "growth", "development", "progress"},
	"prayer":     {"prayer", "salah", "worship", "dua", "remembrance", "dhikr"},
	"faith":      {"faith", "iman", "belief", "trust", "conviction", "certainty"},
	"guidance":   {"guidance", "hidayah", "direction", "path", "way", "light"},
	"family":     {"family", "parents", "children", "spouse", "relatives", "kinship"},
	"health":     {"health", "healing", "wellness", "body", "medicine", "cure", "gym", "exercise", "workout", "fitness", "physical", "training", "sport", "run", "walk", "strong"},
	"fitness":    {"fitness", "gym", "workout", "exercise", "training", "cardio", "muscle", "stamina"},
	"wealth":     {"wealth", "money", "rizq", "provision", "sustenance", "work"},
	"knowledge":  {"knowledge", "ilm", "learning", "wisdom", "education", "understanding"},
	"honesty":    {"honesty", "truth", "sincerity", "integrity", "trustworthiness"},
	"kindness":   {"kindness", "compassion", "mercy", "gentleness", "care"},
	"justice":    {"justice", "fairness", "rights", "equality", "balance"},
	"anxiety":    {"anxiety", "worry", "fear", "stress", "concern", "unease"},
	"depression": {"sadness", "grief", "sorrow", "despair", "hope", "healing"},
	"addiction":  {"addiction", "habit", "compulsion", "self-control", "discipline"},
	"success":    {"success", "achievement", "victory", "accomplishment", "triumph"},
	"leadership": {"leadership", "responsibility", "authority", "management"},
	"business":   {"business", "trade", "commerce", "profession", "career"},
}

// practicalGuidance holds per-theme step templates. The first two entries of
// a theme's list become the leading practical steps for a matched goal, and
// the classifier also awards half a point when a keyword appears inside any
// of a theme's entries.
var practicalGuidance = map[Theme][]string{
	"patience": {
		"Make dua during difficult times: 'Rabbana afrigh 'alayna sabran' (Our Lord, pour upon us patience)",
		"Practice the 3-breath technique when feeling impatient",
		"Remember that every difficulty is temporary and has wisdom",
		"Read stories of Prophet Ayub (Job) for inspiration",
		"Set realistic timelines for your goals",
	},
	"prayer": {
		"Set 5 phone reminders for daily prayers",
		"Prepare a clean prayer space in your home",
		"Learn the meanings of Surah Al-Fatiha",
		"Make dua in your own language after each prayer",
		"Join congregation prayers when possible",
	},
	"change": {
		"Start with one small change and build momentum",
		"Write down your 'why' for wanting to change",
		"Find an accountability partner in your community",
		"Track your progress weekly",
		"Celebrate small victories along the way",
	},
	"family": {
		"Schedule weekly family time without devices",
		"Make dua for your family members daily",
		"Practice active listening with family",
		"Express gratitude to family members regularly",
		"Resolve conflicts with wisdom and patience",
	},
	"anxiety": {
		"Practice dhikr: Say 'La hawla wa la quwwata illa billah' 100 times",
		"Do wudu when feeling anxious - it brings calm",
		"Read Surah Al-Fatiha 7 times",
		"Practice deep breathing with 'Astaghfirullah'",
		"Seek professional help if anxiety persists",
	},
	"success": {
		"Begin every project with 'Bismillah'",
		"Set SMART goals aligned with Islamic values",
		"Work hard but trust in Allah's decree (Tawakkul)",
		"Help others succeed alongside your own journey",
		"Give charity (sadaqah) from your earnings",
	},
	"health": {
		"Make dua for good health and recovery",
		"Follow the Sunnah of moderate eating - a third for food, a third for drink, a third for breath",
		"Sleep early and rise for Fajr to anchor your day",
		"Treat your body as an amanah (trust) from Allah",
	},
	"fitness": {
		"Schedule movement around your prayers - stretch after Fajr, move after Asr",
		"Remember the hadith: the strong believer is better and more beloved to Allah than the weak believer",
		"Start small and stay consistent - deeds most beloved to Allah are the most regular",
	},
	"knowledge": {
		"Read one page of Quran with its meaning every day",
		"Keep a notebook of what you learn each week",
		"Seek a study circle or teacher in your community",
	},
	"guidance": {
		"Begin with 'Bismillah' and a clear intention (niyyah)",
		"Pray Istikhara when choosing between options",
		"Take one concrete step today, however small",
		"Review your intention weekly and renew it",
	},
}

// duaRecommendations maps a theme to its recommended supplication. Themes
// without an entry fall back to the "guidance" dua.
var duaRecommendations = map[Theme]string{
	"patience": "Rabbana afrigh 'alayna sabran wa thabbit aqdamana (Our Lord, pour upon us patience and plant firmly our feet)",
	"guidance": "Rabbana la tuzigh qulubana ba'd idh hadaytana (Our Lord, let not our hearts deviate after You have guided us)",
	"success":  "Rabbi a'inni wa la tu'in 'alayya (My Lord, help me and do not help against me)",
	"anxiety":  "Hasbunallahu wa ni'mal wakeel (Allah is sufficient for us, and He is the best disposer of affairs)",
	"change":   "Allahumma ahyini ma kanat al-hayatu khayran li (O Allah, keep me alive as long as life is good for me)",
	"family":   "Rabbi aw zi'ni an ashkura ni'mataka (My Lord, enable me to be grateful for Your favor)",
	"health":   "Allahumma 'afini fi badani (O Allah, grant me health in my body)",
	"prayer":   "Rabbi ij'alni muqima as-salati wa min dhurriyyati (My Lord, make me an establisher of prayer, and from my descendants)",
}

// relatedHabits maps a theme to habit names the tracker can suggest. Themes
// without an entry fall back to the "prayer" list. That default looks odd
// next to every other table defaulting to "guidance", but it is the behavior
// the app shipped with and the UI copy depends on it.
var relatedHabits = map[Theme][]string{
	"prayer":   {"Daily 5 prayers", "Morning dhikr", "Evening dua"},
	"patience": {"Daily istighfar", "Meditation", "Gratitude journaling"},
	"family":   {"Family time", "Call parents", "Help with chores"},
	"health":   {"Morning walk", "Drink more water", "Sleep before midnight"},
	"fitness":  {"Morning walk", "Stretch after Fajr", "Weekly exercise"},
	"anxiety":  {"Morning dhikr", "Deep breathing", "Daily istighfar"},
}

// reflectionTemplates and lifeApplicationTemplates each hold a small set of
// sentences per theme; the synthesizer picks one uniformly at random.
var reflectionTemplates = map[Theme][]string{
	"patience": {
		"Patience is not passive waiting but active perseverance with trust in Allah's timing.",
		"Every trial carries a hidden mercy for those who endure with sabr.",
	},
	"prayer": {
		"Prayer is the believer's daily meeting with their Lord - guard it and it guards you.",
		"The five prayers structure the day around what matters most.",
		"Khushu (presence of heart) turns ritual into nourishment.",
	},
	"change": {
		"Allah does not change the condition of a people until they change what is in themselves.",
		"Transformation begins with a sincere intention and a single step.",
	},
	"family": {
		"Kindness to family is among the most beloved deeds to Allah.",
		"The best of you are those who are best to their families.",
	},
	"anxiety": {
		"Hearts find rest in the remembrance of Allah.",
		"Worry shrinks when trust in Allah grows.",
	},
	"success": {
		"True success is achievement in this life without losing sight of the next.",
		"Tie your camel, then trust in Allah.",
	},
	"health": {
		"Your body has a right over you - honor it as a trust.",
		"A strong believer serves Allah and people with greater energy.",
	},
	"fitness": {
		"Caring for your strength is caring for your ability to do good.",
		"Consistency in small efforts outweighs bursts of zeal.",
	},
	"guidance": {
		"Begin every endeavor with Allah's name and seek His guidance.",
		"Whoever relies upon Allah - He is sufficient for him.",
		"Guidance comes to those who sincerely seek it.",
	},
}

var lifeApplicationTemplates = map[Theme][]string{
	"patience": {
		"Apply this when facing delays, difficulties, or when learning new skills.",
		"Return to this verse whenever progress feels slower than you hoped.",
	},
	"prayer": {
		"Incorporate this understanding into your daily worship routine.",
		"Let this verse shape how you prepare for your next prayer.",
	},
	"change": {
		"Use this guidance when setting personal development goals.",
		"Revisit this verse each time you review your weekly progress.",
	},
	"family": {
		"Bring this teaching into your next conversation with family.",
		"Let this verse soften your response in the next disagreement at home.",
	},
	"anxiety": {
		"Recite this when worry surfaces and pair it with slow breathing.",
		"Keep this verse close for moments of stress and uncertainty.",
	},
	"success": {
		"Read this before starting important work to anchor your intention.",
		"Measure your wins against this verse, not only against worldly metrics.",
	},
	"health": {
		"Let this verse remind you that caring for your body is an act of worship.",
		"Recall this teaching when choosing what to eat and when to rest.",
	},
	"fitness": {
		"Recall this verse when motivation dips during training.",
		"Let consistency in worship inspire consistency in exercise.",
	},
	"guidance": {
		"Reflect on this verse during your daily activities and decision-making.",
		"Return to this verse when you feel unsure of your direction.",
	},
}

// themeDescriptions feeds ThematicCollection.Description.
var themeDescriptions = map[Theme]string{
	"patience": "Building resilience and endurance through Islamic teachings",
	"prayer":   "Strengthening your connection with Allah through worship",
	"change":   "Personal transformation guided by Quranic wisdom",
	"family":   "Nurturing relationships with Islamic values",
	"anxiety":  "Finding peace and calm through Islamic practices",
	"success":  "Achieving goals while maintaining Islamic principles",
	"health":   "Caring for the body as a trust from Allah",
	"fitness":  "Building physical strength in service of faith",
}

var recommendedActions = map[Theme][]string{
	"patience": {"Practice daily dhikr", "Read stories of prophets", "Join Islamic study groups"},
	"prayer":   {"Attend mosque regularly", "Learn prayer meanings", "Make personal duas"},
	"change":   {"Set Islamic goals", "Find Muslim mentors", "Track spiritual progress"},
}

var defaultRecommendedActions = []string{"Seek Islamic knowledge", "Practice daily", "Connect with community"}

// themeSearchPhrases maps a theme to the query sent to the scripture source
// when building its thematic collection. Themes without an entry search for
// the theme name itself.
var themeSearchPhrases = map[Theme]string{
	"patience":   "patient",
	"prayer":     "prayer",
	"change":     "souls",
	"family":     "parents",
	"anxiety":    "hearts find rest",
	"success":    "successful",
	"health":     "healing",
	"fitness":    "strength",
	"strength":   "strength",
	"guidance":   "guidance",
	"wealth":     "provision",
	"knowledge":  "knowledge",
	"depression": "despair not",
	"faith":      "believe",
}

// KnownTheme reports whether t is part of the classification contract.
func KnownTheme(t Theme) bool {
	for _, other := range themeOrder {
		if other == t {
			return true
		}
	}
	return false
}

// ThemeDescription returns the human description of a theme, with a generic
// sentence for themes that have no curated copy.
func ThemeDescription(t Theme) string {
	if d, ok := themeDescriptions[t]; ok {
		return d
	}
	return "Islamic guidance for " + string(t)
}

// ThemeSearchPhrase returns the search query used for a theme's collection.
func ThemeSearchPhrase(t Theme) string {
	if p, ok := themeSearchPhrases[t]; ok {
		return p
	}
	return string(t)
}

// ThemeGuidanceEntries returns the practical-guidance template list for a
// theme, defaulting to the "guidance" list.
func ThemeGuidanceEntries(t Theme) []string {
	if g, ok := practicalGuidance[t]; ok {
		return g
	}
	return practicalGuidance[ThemeGuidance]
}

// ThemeRecommendedActions returns the recommended actions for a theme.
func ThemeRecommendedActions(t Theme) []string {
	if a, ok := recommendedActions[t]; ok {
		return a
	}
	return defaultRecommendedActions
}
