package domain

// Section labels the part of the profile a chunk was derived from. The label
// is assigned structurally by the chunker when the chunk is created, never
// re-derived from the chunk text.
type Section string

const (
	SectionPersonal        Section = "personal"
	SectionSkills          Section = "skills"
	SectionExperience      Section = "experience"
	SectionProjects        Section = "projects"
	SectionEducation       Section = "education"
	SectionCertifications  Section = "certifications"
	SectionFAQs            Section = "faqs"
	SectionWorkPreferences Section = "work_preferences"
	SectionAchievements    Section = "achievements"
	SectionInterests       Section = "interests"
	SectionOther           Section = "other"
)

// IsValidSection checks whether s belongs to the closed section set.
func IsValidSection(s Section) bool {
	switch s {
	case SectionPersonal, SectionSkills, SectionExperience, SectionProjects,
		SectionEducation, SectionCertifications, SectionFAQs,
		SectionWorkPreferences, SectionAchievements, SectionInterests,
		SectionOther:
		return true
	}
	return false
}

// Chunk is one self-contained retrievable unit of profile text.
// Invariant: Text is never empty; sections with no meaningful content
// contribute zero chunks rather than empty ones.
type Chunk struct {
	Text    string
	Section Section
}

// ValidateChunk validates a Chunk instance.
func ValidateChunk(c *Chunk) error {
	if c == nil {
		return NewDomainError(ErrCodeInvalidInput, "chunk cannot be nil")
	}
	if c.Text == "" {
		return NewDomainError(ErrCodeInvalidInput, "chunk text cannot be empty")
	}
	if !IsValidSection(c.Section) {
		return NewDomainError(ErrCodeInvalidInput, "chunk section is invalid: "+string(c.Section))
	}
	return nil
}
