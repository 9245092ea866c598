package application

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-forge/backend/internal/features/enhancement/domain"
)

// fixedPicker pins the title and persona choices so outputs are byte-stable.
func fixedPicker(int) int { return 0 }

func newFixedEnhancer() EnhancerService {
	return NewEnhancerServiceWithPicker(fixedPicker)
}

func TestEnhanceTotality(t *testing.T) {
	svc := newFixedEnhancer()

	cases := []domain.EnhanceRequest{
		{Role: "ISO Consultant", Context: "preparing a certification roadmap", Task: "create a study plan for iso 22301"},
		{Role: "Python Developer", Context: "beginner building my first app", Task: "create a data visualization app"},
		{Role: "florist", Context: "arranging flowers", Task: "make a bouquet"},
		{Role: "x", Context: "y", Task: "z"},
	}

	for _, req := range cases {
		result := svc.Enhance(&req)
		require.NotNil(t, result)
		assert.NotEmpty(t, result.Prompt, "prompt for role %q", req.Role)
		assert.NotEmpty(t, result.Title)
	}
}

func TestEnhanceIsDeterministicWithFixedPicker(t *testing.T) {
	svc := newFixedEnhancer()
	req := domain.EnhanceRequest{Role: "Python Developer", Context: "building a service", Task: "create an api"}

	first := svc.Enhance(&req)
	second := svc.Enhance(&req)

	assert.Equal(t, first.Prompt, second.Prompt)
	assert.Equal(t, first.Classification, second.Classification)
}

func TestEnhanceDefaultFallbacks(t *testing.T) {
	svc := newFixedEnhancer()
	req := domain.EnhanceRequest{Role: "florist", Context: "arranging flowers", Task: "make a bouquet"}

	result := svc.Enhance(&req)

	assert.Equal(t, DefaultDomain, result.Classification.Domain)
	assert.Equal(t, DefaultExperienceLevel, result.Classification.ExperienceLevel)
	assert.Equal(t, DefaultProjectType, result.Classification.ProjectType)
	assert.Empty(t, result.Classification.Technologies)
	assert.False(t, result.Classification.LearningMode)
}

func TestEnhanceFirstMatchWins(t *testing.T) {
	svc := newFixedEnhancer()

	// "security" is listed before "developer" in the domain table, so a role
	// containing both classifies as information security.
	req := domain.EnhanceRequest{Role: "security developer", Context: "hardening a service", Task: "review the design"}
	result := svc.Enhance(&req)
	assert.Equal(t, "information security", result.Classification.Domain)

	// "iso" comes before "security".
	req = domain.EnhanceRequest{Role: "iso and security specialist", Context: "internal review", Task: "prepare the report"}
	result = svc.Enhance(&req)
	assert.Equal(t, "compliance and standards", result.Classification.Domain)
}

func TestEnhanceCollectsAllTechnologiesInTableOrder(t *testing.T) {
	svc := newFixedEnhancer()
	req := domain.EnhanceRequest{
		Role:    "Developer",
		Context: "the stack is docker on aws",
		Task:    "write a python deployment script",
	}

	result := svc.Enhance(&req)

	assert.Equal(t, []string{"Python", "Docker", "AWS"}, result.Classification.Technologies)
}

func TestEnhanceMonotonicGating(t *testing.T) {
	svc := newFixedEnhancer()

	cases := []struct {
		name     string
		base     domain.EnhanceRequest
		addTask  string
		wantTech string
	}{
		{
			name:     "tech added to learning-mode app request",
			base:     domain.EnhanceRequest{Role: "Python Developer", Context: "beginner building my first app", Task: "create a data visualization app"},
			addTask:  " with docker",
			wantTech: "Docker",
		},
		{
			// "javascript" contains "script"; it must not flip the report
			// task into a script deliverable and rewrite that objective.
			name:     "tech keyword overlapping a project-type keyword",
			base:     domain.EnhanceRequest{Role: "Consultant", Context: "quarterly review", Task: "write a report"},
			addTask:  " using javascript",
			wantTech: "JavaScript",
		},
		{
			name:     "tech added to input with no other keywords",
			base:     domain.EnhanceRequest{Role: "florist", Context: "arranging flowers", Task: "make a bouquet"},
			addTask:  " tracked in excel",
			wantTech: "Excel",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			extended := tc.base
			extended.Task = tc.base.Task + tc.addTask

			baseResult := svc.Enhance(&tc.base)
			extendedResult := svc.Enhance(&extended)

			for _, line := range strings.Split(baseResult.Prompt, "\n") {
				if !strings.HasPrefix(line, "- ") {
					continue
				}
				assert.Contains(t, extendedResult.Prompt, line, "gated sentence dropped after adding a technology keyword")
			}
			assert.Contains(t, extendedResult.Classification.Technologies, tc.wantTech)
		})
	}
}

func TestEnhanceJavascriptIsNotJava(t *testing.T) {
	svc := newFixedEnhancer()

	result := svc.Enhance(&domain.EnhanceRequest{Role: "Developer", Context: "front end work", Task: "build a javascript widget"})
	assert.Contains(t, result.Classification.Technologies, "JavaScript")
	assert.NotContains(t, result.Classification.Technologies, "Java")

	result = svc.Enhance(&domain.EnhanceRequest{Role: "Developer", Context: "backend work", Task: "build a java service"})
	assert.Contains(t, result.Classification.Technologies, "Java")
}

func TestEnhanceISOStudyPlanExample(t *testing.T) {
	svc := newFixedEnhancer()
	req := domain.EnhanceRequest{
		Role:    "ISO Consultant",
		Context: "preparing a certification roadmap",
		Task:    "create a study plan for iso 22301",
	}

	result := svc.Enhance(&req)

	assert.Contains(t, result.Prompt, "ISO 22301 helps organizations prepare for, respond to, and recover from disruptive incidents.")
	assert.Contains(t, result.Prompt, "An effective study plan should cover the standard's structure, key principles, implementation steps, and certification process.")
	assert.Contains(t, result.Prompt, "The plan should include daily learning objectives, key concepts, practical exercises, and assessment methods.")
	assert.Equal(t, "compliance and standards", result.Classification.Domain)
}

func TestEnhancePythonBeginnerExample(t *testing.T) {
	svc := newFixedEnhancer()
	req := domain.EnhanceRequest{
		Role:    "Python Developer",
		Context: "beginner building my first app",
		Task:    "create a data visualization app",
	}

	result := svc.Enhance(&req)

	assert.True(t, result.Classification.LearningMode)
	assert.Contains(t, result.Classification.Technologies, "Python")
	assert.Contains(t, result.Prompt, "Explain foundational concepts before moving to advanced material.")
	assert.Contains(t, result.Prompt, "Define technical terms on first use and explain why each step matters.")
	assert.NotContains(t, result.Prompt, "skip introductory material")
}

func TestEnhanceRandomChoicesStayWithinCandidateSets(t *testing.T) {
	svc := NewEnhancerService()
	req := domain.EnhanceRequest{Role: "Developer", Context: "building a service", Task: "create an api"}

	for i := 0; i < 50; i++ {
		result := svc.Enhance(&req)
		assert.Contains(t, promptTitles, result.Title)
		assert.True(t, strings.HasPrefix(result.Prompt, "# "+result.Title+"\n"), "prompt should open with the chosen title")
	}
}

func TestRefineRole(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain role gets lead-in", "ISO Consultant", "You are a ISO Consultant"},
		{"existing you-are kept", "you are a mentor", "You are a mentor"},
		{"i-am rewritten", "i am a teacher", "You are a teacher"},
		{"as-an kept", "as an auditor", "As an auditor"},
		{"surrounding whitespace trimmed", "  Data Analyst  ", "You are a Data Analyst"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, refineRole(tc.in))
		})
	}
}

func TestEnsureTerminated(t *testing.T) {
	assert.Equal(t, "done.", ensureTerminated("done"))
	assert.Equal(t, "done.", ensureTerminated("done."))
	assert.Equal(t, "done!", ensureTerminated("done!"))
	assert.Equal(t, "", ensureTerminated(""))
}
