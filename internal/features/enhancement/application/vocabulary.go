package application

// keywordLabel is one entry of an ordered keyword table. Tables are slices,
// not maps: lookups are first-match-wins, so earlier entries take priority.
type keywordLabel struct {
	Keyword string
	Label   string
}

// keywordExclusions lists superstrings that must not count as a match for a
// keyword. Occurrences of each superstring are removed from the text before
// the keyword test, so "javascript" does not register as Java and neither
// "javascript" nor "typescript" registers as a script deliverable.
var keywordExclusions = map[string][]string{
	"java":   {"javascript"},
	"script": {"javascript", "typescript"},
}

// Fallback labels used when no table entry matches.
const (
	DefaultDomain          = "general problem solving"
	DefaultExperienceLevel = "intermediate"
	DefaultProjectType     = "general"
)

// domainTable maps keywords found in the role and task text to a coarse
// expertise area. More specific keywords come first.
var domainTable = []keywordLabel{
	{"iso", "compliance and standards"},
	{"audit", "compliance and standards"},
	{"certification", "compliance and standards"},
	{"security", "information security"},
	{"machine learning", "machine learning"},
	{"data", "data engineering and analytics"},
	{"devops", "infrastructure and operations"},
	{"cloud", "infrastructure and operations"},
	{"developer", "software development"},
	{"engineer", "software development"},
	{"software", "software development"},
	{"programmer", "software development"},
	{"marketing", "marketing and growth"},
	{"teacher", "education and training"},
	{"consultant", "business consulting"},
}

// projectTypeTable maps keywords found in the task text to the kind of
// deliverable being asked for.
var projectTypeTable = []keywordLabel{
	{"study plan", "learning roadmap"},
	{"roadmap", "learning roadmap"},
	{"curriculum", "learning roadmap"},
	{"api", "api development"},
	{"website", "web development"},
	{"web", "web development"},
	{"dashboard", "data visualization"},
	{"visualization", "data visualization"},
	{"app", "application development"},
	{"script", "automation"},
	{"pipeline", "automation"},
	{"report", "documentation"},
	{"documentation", "documentation"},
}

// techTable maps keywords anywhere in the combined text to canonical
// technology names. Unlike the other tables, every match is collected,
// preserving table order.
var techTable = []keywordLabel{
	{"python", "Python"},
	{"javascript", "JavaScript"},
	{"typescript", "TypeScript"},
	{"golang", "Go"},
	{"java", "Java"},
	{"react", "React"},
	{"node", "Node.js"},
	{"django", "Django"},
	{"flask", "Flask"},
	{"docker", "Docker"},
	{"kubernetes", "Kubernetes"},
	{"terraform", "Terraform"},
	{"aws", "AWS"},
	{"azure", "Azure"},
	{"postgres", "PostgreSQL"},
	{"sql", "SQL"},
	{"excel", "Excel"},
}

// experienceTable maps keywords found in the role text to an experience
// level. Senior titles come first so "senior beginner-friendly mentor"
// classifies as senior.
var experienceTable = []keywordLabel{
	{"principal", "principal"},
	{"staff", "staff"},
	{"lead", "senior"},
	{"senior", "senior"},
	{"expert", "expert"},
	{"junior", "junior"},
	{"intern", "junior"},
	{"beginner", "beginner"},
}

// learningTriggers flag the request as beginner-oriented when any of them
// appears in the combined text.
var learningTriggers = []string{
	"beginner",
	"new to",
	"my first",
	"first time",
	"just starting",
	"getting started",
	"learning",
	"student",
	"novice",
}

// knowledgeEntry is one supplementary-context rule: when Keyword appears in
// the combined text, Sentence is appended to the context section. StudyNote,
// when non-empty, is additionally appended if "study" appears in the task.
type knowledgeEntry struct {
	Keyword   string
	Sentence  string
	StudyNote string
}

// knowledgeTable holds fixed informational sentences keyed to named
// standards. Every matching entry fires, in table order.
var knowledgeTable = []knowledgeEntry{
	{
		Keyword:  "iso",
		Sentence: "ISO standards are crucial for ensuring consistency, quality, and safety across industries worldwide.",
	},
	{
		Keyword:   "iso 22301",
		Sentence:  "ISO 22301 helps organizations prepare for, respond to, and recover from disruptive incidents.",
		StudyNote: "An effective study plan should cover the standard's structure, key principles, implementation steps, and certification process.",
	},
	{
		Keyword:  "iso 9001",
		Sentence: "ISO 9001 helps organizations ensure they meet customer requirements and enhance satisfaction.",
	},
	{
		Keyword:  "iso 27001",
		Sentence: "ISO 27001 helps organizations protect their information assets.",
	},
}

// studyPlanElaboration is appended to the task when it asks for a study plan
// on ISO 22301.
const studyPlanElaboration = "The plan should include daily learning objectives, key concepts, practical exercises, and assessment methods. It should be structured to provide a comprehensive understanding of Business Continuity Management principles and ISO 22301 requirements."

// promptTitles and personaLeads are the candidate phrasings for the
// randomized parts of the rendered prompt. The picker chooses one of each
// per call.
var promptTitles = []string{
	"Enhanced Prompt",
	"Structured Prompt",
	"Expert Brief",
}

var personaLeads = []string{
	"You bring %s-level expertise in %s.",
	"Approach this with the judgment of a %s practitioner in %s.",
	"Draw on %s-level experience in %s.",
}
