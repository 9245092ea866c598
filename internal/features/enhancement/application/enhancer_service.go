package application

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"prompt-forge/backend/internal/features/enhancement/domain"
)

// EnhancerService defines the interface for the prompt enhancement service.
type EnhancerService interface {
	Enhance(req *domain.EnhanceRequest) *domain.EnhancedPrompt
}

// enhancerService is the implementation of EnhancerService. It holds no
// mutable state; the pick function is the only injected dependency, used to
// choose a title and persona phrasing per call.
type enhancerService struct {
	pick func(n int) int
}

// NewEnhancerService creates an enhancer whose title and persona phrasing
// are chosen from the shared math/rand source.
func NewEnhancerService() EnhancerService {
	return &enhancerService{pick: rand.Intn}
}

// NewEnhancerServiceWithPicker creates an enhancer with an explicit picker,
// which must return a value in [0, n). Tests use this to pin the random
// choices.
func NewEnhancerServiceWithPicker(pick func(n int) int) EnhancerService {
	return &enhancerService{pick: pick}
}

// Enhance turns raw role/context/task text into a structured prompt. It is
// total over non-empty inputs: unrecognized text falls back to the default
// labels and an empty technology list.
func (s *enhancerService) Enhance(req *domain.EnhanceRequest) *domain.EnhancedPrompt {
	roleLower := strings.ToLower(strings.TrimSpace(req.Role))
	contextLower := strings.ToLower(strings.TrimSpace(req.Context))
	taskLower := strings.ToLower(strings.TrimSpace(req.Task))
	combined := roleLower + " " + contextLower + " " + taskLower

	classification := domain.Classification{
		Domain:          firstMatch(roleLower+" "+taskLower, domainTable, DefaultDomain),
		ExperienceLevel: firstMatch(roleLower, experienceTable, DefaultExperienceLevel),
		ProjectType:     firstMatch(taskLower, projectTypeTable, DefaultProjectType),
		Technologies:    allMatches(combined, techTable),
		LearningMode:    anyContained(combined, learningTriggers),
	}

	roleRefined := refineRole(req.Role)
	contextEnhanced := enhanceContext(req.Context, combined, taskLower)
	taskEnhanced := enhanceTask(req.Task, taskLower, combined)

	title := promptTitles[s.pick(len(promptTitles))]
	persona := fmt.Sprintf(personaLeads[s.pick(len(personaLeads))],
		classification.ExperienceLevel, classification.Domain)

	objectives := gatedObjectives(classification, combined)
	requirements := gatedRequirements(classification, combined)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "%s %s\n\n", ensureTerminated(roleRefined), persona)
	fmt.Fprintf(&b, "## Context\n%s\n\n", contextEnhanced)
	fmt.Fprintf(&b, "## Task\n%s\n\n", taskEnhanced)
	if len(classification.Technologies) > 0 {
		fmt.Fprintf(&b, "Technology stack: %s.\n\n", strings.Join(classification.Technologies, ", "))
	}
	b.WriteString("## Objectives\n")
	for _, o := range objectives {
		fmt.Fprintf(&b, "- %s\n", o)
	}
	b.WriteString("\n## Requirements\n")
	for _, r := range requirements {
		fmt.Fprintf(&b, "- %s\n", r)
	}
	b.WriteString("\n## Deliverables\n")
	b.WriteString("Provide a detailed and structured response that addresses the task comprehensively. Include practical examples, implementation tips, and best practices where relevant. If you need any clarification or additional information, please ask specific questions.\n\n")
	b.WriteString("The response should be well-organized with clear headings, bullet points where appropriate, and a logical flow of information.")

	return &domain.EnhancedPrompt{
		Title:          title,
		Prompt:         b.String(),
		Classification: classification,
	}
}

// firstMatch scans the table in order and returns the label of the first
// keyword contained in text, or fallback when none match.
func firstMatch(text string, table []keywordLabel, fallback string) string {
	for _, e := range table {
		if containsKeyword(text, e.Keyword) {
			return e.Label
		}
	}
	return fallback
}

// allMatches collects the label of every keyword contained in text,
// preserving table order and dropping duplicate labels.
func allMatches(text string, table []keywordLabel) []string {
	var labels []string
	seen := make(map[string]bool)
	for _, e := range table {
		if containsKeyword(text, e.Keyword) && !seen[e.Label] {
			seen[e.Label] = true
			labels = append(labels, e.Label)
		}
	}
	return labels
}

// containsKeyword is the substring test used by the keyword tables, with the
// excluded superstrings stripped first.
func containsKeyword(text, keyword string) bool {
	for _, superstring := range keywordExclusions[keyword] {
		text = strings.ReplaceAll(text, superstring, "")
	}
	return strings.Contains(text, keyword)
}

func anyContained(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// refineRole rewrites the role into second-person phrasing. Roles already
// starting with an accepted lead-in pass through unchanged apart from
// capitalization. Returns the input unchanged only when it trims to empty,
// which the presentation layer prevents.
func refineRole(role string) string {
	r := strings.TrimSpace(role)
	if r == "" {
		return r
	}
	lower := strings.ToLower(r)
	switch {
	case strings.HasPrefix(lower, "you are"),
		strings.HasPrefix(lower, "as a"),
		strings.HasPrefix(lower, "as an"):
		// already an accepted lead-in
	case strings.HasPrefix(lower, "i am"):
		r = "You are" + r[len("i am"):]
	default:
		r = "You are a " + r
	}
	r = strings.ReplaceAll(r, "You are a You are a", "You are a")
	r = strings.ReplaceAll(r, "You are a As a", "You are a")
	runes := []rune(r)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// enhanceContext appends the supplementary sentence of every knowledge entry
// whose keyword appears in the combined text. The ISO 22301 study note fires
// additionally when the task mentions studying.
func enhanceContext(contextText, combined, taskLower string) string {
	out := strings.TrimSpace(contextText)
	var extra []string
	for _, e := range knowledgeTable {
		if !strings.Contains(combined, e.Keyword) {
			continue
		}
		extra = append(extra, e.Sentence)
		if e.StudyNote != "" && strings.Contains(taskLower, "study") {
			extra = append(extra, e.StudyNote)
		}
	}
	if len(extra) == 0 {
		return out
	}
	return ensureTerminated(out) + " " + strings.Join(extra, " ")
}

// enhanceTask extends a study-plan task with the fixed ISO 22301 elaboration.
func enhanceTask(task, taskLower, combined string) string {
	out := strings.TrimSpace(task)
	if strings.Contains(taskLower, "study plan") && strings.Contains(combined, "iso 22301") {
		out = ensureTerminated(out) + " " + studyPlanElaboration
	}
	return out
}

// gatedObjectives assembles the objective list in fixed priority order. Each
// candidate sentence is fixed text, and every predicate is monotone in the
// input keywords: adding a keyword can only add sentences, never rewrite or
// drop one. The lead sentence is unconditional so the list is never empty.
func gatedObjectives(c domain.Classification, combined string) []string {
	out := []string{"Address the task directly and completely."}
	if c.LearningMode {
		out = append(out, "Explain foundational concepts before moving to advanced material.")
		out = append(out, "Break the work into small, verifiable steps.")
	}
	if len(c.Technologies) > 0 {
		out = append(out, "Ground every recommendation in the stated technology stack.")
	}
	if strings.Contains(combined, "app") {
		out = append(out, "Outline the overall application structure before going into individual features.")
	}
	if c.ProjectType != DefaultProjectType {
		out = append(out, "Shape the answer as the kind of deliverable the task asks for.")
	}
	return out
}

// gatedRequirements assembles the requirement list, same rules as
// gatedObjectives.
func gatedRequirements(c domain.Classification, combined string) []string {
	var out []string
	if len(c.Technologies) > 0 {
		out = append(out, "Use the stated technologies for all examples and code snippets.")
	}
	if strings.Contains(combined, "app") {
		out = append(out, "Cover error handling, input validation, and basic security hygiene.")
	}
	if c.LearningMode {
		out = append(out, "Define technical terms on first use and explain why each step matters.")
	} else {
		out = append(out, "Assume working familiarity with standard tooling and skip introductory material.")
	}
	return out
}

func ensureTerminated(s string) string {
	if s == "" {
		return s
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
		return s
	}
	return s + "."
}
