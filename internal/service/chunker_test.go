package service

import (
	"testing"

	"github.com/solenne-labs/profilechat/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestChunkProfile_EmptyProfile(t *testing.T) {
	chunks := ChunkProfile(&domain.Profile{})

	assert.Empty(t, chunks)
}

func TestChunkProfile_NilProfile(t *testing.T) {
	chunks := ChunkProfile(nil)

	assert.Empty(t, chunks)
}

func TestChunkProfile_NoEmptyChunkText(t *testing.T) {
	profile := fullProfile()

	chunks := ChunkProfile(profile)

	assert.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.NotEmpty(t, chunk.Text)
		assert.True(t, domain.IsValidSection(chunk.Section))
	}
}

func TestChunkProfile_Deterministic(t *testing.T) {
	profile := fullProfile()

	first := ChunkProfile(profile)
	second := ChunkProfile(profile)

	assert.Equal(t, first, second)
}

func TestChunkProfile_OneChunkPerItem(t *testing.T) {
	profile := &domain.Profile{
		Skills: &domain.Skills{
			Programming: []domain.Skill{
				{Name: "Go", Proficiency: "expert", YearsOfExperience: 8},
				{Name: "Python", Proficiency: "advanced", YearsOfExperience: 6},
			},
		},
		FAQs: []domain.FAQ{
			{Question: "Are you remote-friendly?", Answer: "Yes"},
		},
	}

	chunks := ChunkProfile(profile)

	assert.Len(t, chunks, 3)
	assert.Equal(t, domain.SectionSkills, chunks[0].Section)
	assert.Equal(t, domain.SectionSkills, chunks[1].Section)
	assert.Equal(t, domain.SectionFAQs, chunks[2].Section)
	assert.Contains(t, chunks[0].Text, "Go: expert level with 8 years of experience.")
	assert.Equal(t, "Q: Are you remote-friendly? A: Yes", chunks[2].Text)
}

func TestChunkProfile_SectionLabelsAreStructural(t *testing.T) {
	// A project whose text happens to look like a FAQ must still be labeled
	// by where it came from, not by its wording.
	profile := &domain.Profile{
		Projects: []domain.Project{
			{Name: "Q: the quiz engine", Description: "A: answer ranking service."},
		},
	}

	chunks := ChunkProfile(profile)

	assert.Len(t, chunks, 1)
	assert.Equal(t, domain.SectionProjects, chunks[0].Section)
}

func TestChunkProfile_SkipsEmptyItems(t *testing.T) {
	profile := &domain.Profile{
		Skills: &domain.Skills{
			Programming: []domain.Skill{{Name: ""}},
		},
		FAQs:         []domain.FAQ{{Question: "only a question", Answer: ""}},
		Achievements: []string{"", "  ", "Shipped v1"},
	}

	chunks := ChunkProfile(profile)

	assert.Len(t, chunks, 1)
	assert.Equal(t, domain.SectionAchievements, chunks[0].Section)
	assert.Equal(t, "Achievement: Shipped v1", chunks[0].Text)
}

func TestChunkProfile_ScalarSectionsSingleChunk(t *testing.T) {
	profile := &domain.Profile{
		Personal: &domain.PersonalInfo{
			Name:  "Ada Lovelace",
			Title: "Software Engineer",
			Bio:   "Builds reliable backends.",
		},
		WorkPreferences: &domain.WorkPreferences{
			WorkStyle:           "Remote-first",
			PreferredIndustries: []string{"fintech", "devtools"},
			SalaryExpectation:   "competitive",
		},
		Interests: []string{"rowing", "chess"},
	}

	chunks := ChunkProfile(profile)

	assert.Len(t, chunks, 3)
	assert.Equal(t, domain.SectionPersonal, chunks[0].Section)
	assert.Contains(t, chunks[0].Text, "Name: Ada Lovelace.")
	assert.Equal(t, domain.SectionWorkPreferences, chunks[1].Section)
	assert.Contains(t, chunks[1].Text, "Remote-first")
	assert.Contains(t, chunks[1].Text, "fintech, devtools")
	assert.Equal(t, domain.SectionInterests, chunks[2].Section)
	assert.Equal(t, "Interests: rowing, chess.", chunks[2].Text)
}

func TestChunkProfile_PublicationsLabeledOther(t *testing.T) {
	profile := &domain.Profile{
		Publications: []domain.Publication{
			{Title: "Fast Vector Scans", Venue: "SysConf", Year: "2024"},
		},
	}

	chunks := ChunkProfile(profile)

	assert.Len(t, chunks, 1)
	assert.Equal(t, domain.SectionOther, chunks[0].Section)
	assert.Contains(t, chunks[0].Text, "Fast Vector Scans")
}

func fullProfile() *domain.Profile {
	return &domain.Profile{
		Personal: &domain.PersonalInfo{
			Name:     "Ada Lovelace",
			Title:    "Software Engineer",
			Bio:      "Backend engineer focused on data systems.",
			Location: "Berlin",
		},
		Skills: &domain.Skills{
			Programming: []domain.Skill{
				{Name: "Go", Proficiency: "expert", YearsOfExperience: 8, Description: "Daily driver."},
			},
			AIMachineLearning: []domain.SkillCategory{
				{Category: "NLP", Technologies: []string{"transformers"}, Expertise: []string{"retrieval"}},
			},
			CloudDevOps: []domain.CloudCategory{
				{Category: "AWS", Technologies: []string{"S3", "ECS"}},
			},
			Frameworks: []string{"chi"},
			Tools:      []string{"Postgres"},
		},
		Experience: []domain.Experience{
			{
				Company:      "Initech",
				Role:         "Senior Engineer",
				Duration:     "2020-2024",
				Description:  "Owned the search platform.",
				Achievements: []string{"Cut latency by 40%"},
				Technologies: []string{"Go", "Postgres"},
			},
		},
		Projects: []domain.Project{
			{Name: "vectord", Description: "Tiny vector store.", Technologies: []string{"Go"}, Highlights: []string{"Zero-dep core"}},
		},
		Education: []domain.Education{
			{Institution: "TU Berlin", Degree: "BSc Computer Science", Duration: "2012-2016", Highlights: []string{"Graduated with honors"}},
		},
		Certifications: []domain.Certification{
			{Name: "AWS Solutions Architect", Issuer: "AWS", Year: "2022"},
		},
		Publications: []domain.Publication{
			{Title: "Fast Vector Scans", Venue: "SysConf", Year: "2024"},
		},
		Achievements: []string{"Speaker at GopherCon"},
		Interests:    []string{"rowing"},
		WorkPreferences: &domain.WorkPreferences{
			WorkStyle: "Remote-first",
		},
		FAQs: []domain.FAQ{
			{Question: "Are you remote-friendly?", Answer: "Yes"},
		},
	}
}
