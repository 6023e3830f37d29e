package domain

// Profile is the single source document the assistant answers from.
// Every section is optional: a missing or empty section simply contributes
// nothing to the search index. The document is loaded once at startup and
// replaced wholesale when it changes, never patched in place.
type Profile struct {
	Personal        *PersonalInfo    `json:"personal,omitempty"`
	Contact         *ContactInfo     `json:"contact,omitempty"`
	Skills          *Skills          `json:"skills,omitempty"`
	Experience      []Experience     `json:"experience,omitempty"`
	Projects        []Project        `json:"projects,omitempty"`
	Education       []Education      `json:"education,omitempty"`
	Certifications  []Certification  `json:"certifications,omitempty"`
	Publications    []Publication    `json:"publications,omitempty"`
	Achievements    []string         `json:"achievements,omitempty"`
	Interests       []string         `json:"interests,omitempty"`
	WorkPreferences *WorkPreferences `json:"workPreferences,omitempty"`
	FAQs            []FAQ            `json:"faqs,omitempty"`
	Metadata        *ProfileMetadata `json:"metadata,omitempty"`
}

// PersonalInfo holds the headline identity of the profile owner.
type PersonalInfo struct {
	Name              string   `json:"name"`
	Title             string   `json:"title"`
	Tagline           string   `json:"tagline,omitempty"`
	Bio               string   `json:"bio,omitempty"`
	Location          string   `json:"location,omitempty"`
	YearsOfExperience int      `json:"yearsOfExperience,omitempty"`
	CurrentRole       string   `json:"currentRole,omitempty"`
	Availability      string   `json:"availability,omitempty"`
	PreferredRoles    []string `json:"preferredRoles,omitempty"`
}

// ContactInfo holds contact channels. Not indexed for retrieval.
type ContactInfo struct {
	Email     string `json:"email,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Skills groups skills by category.
type Skills struct {
	Programming       []Skill          `json:"programming,omitempty"`
	AIMachineLearning []SkillCategory  `json:"aiMachineLearning,omitempty"`
	CloudDevOps       []CloudCategory  `json:"cloudDevOps,omitempty"`
	Frameworks        []string         `json:"frameworks,omitempty"`
	Tools             []string         `json:"tools,omitempty"`
}

// Skill is a single named skill with proficiency and tenure.
type Skill struct {
	Name              string `json:"name"`
	Proficiency       string `json:"proficiency,omitempty"`
	YearsOfExperience int    `json:"yearsOfExperience,omitempty"`
	Description       string `json:"description,omitempty"`
}

// SkillCategory is a named group of technologies with areas of expertise.
type SkillCategory struct {
	Category     string   `json:"category"`
	Technologies []string `json:"technologies,omitempty"`
	Expertise    []string `json:"expertise,omitempty"`
}

// CloudCategory is a named group of cloud/devops technologies.
type CloudCategory struct {
	Category     string   `json:"category"`
	Technologies []string `json:"technologies,omitempty"`
}

// Experience is a single job entry.
type Experience struct {
	Company          string   `json:"company"`
	Role             string   `json:"role"`
	Duration         string   `json:"duration,omitempty"`
	Location         string   `json:"location,omitempty"`
	Type             string   `json:"type,omitempty"`
	Description      string   `json:"description,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Achievements     []string `json:"achievements,omitempty"`
	Technologies     []string `json:"technologies,omitempty"`
}

// Project is a single portfolio project.
type Project struct {
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Role         string       `json:"role,omitempty"`
	Duration     string       `json:"duration,omitempty"`
	Technologies []string     `json:"technologies,omitempty"`
	Highlights   []string     `json:"highlights,omitempty"`
	Links        ProjectLinks `json:"links,omitempty"`
}

// ProjectLinks holds optional project URLs.
type ProjectLinks struct {
	Live   string `json:"live,omitempty"`
	GitHub string `json:"github,omitempty"`
}

// Education is a single degree entry.
type Education struct {
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Field       string   `json:"field,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Location    string   `json:"location,omitempty"`
	GPA         string   `json:"gpa,omitempty"`
	Honors      string   `json:"honors,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

// Certification is a single certification entry.
type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer,omitempty"`
	Year         string `json:"year,omitempty"`
	CredentialID string `json:"credentialId,omitempty"`
}

// Publication is a single publication entry.
type Publication struct {
	Title string `json:"title"`
	Venue string `json:"venue,omitempty"`
	Year  string `json:"year,omitempty"`
	Link  string `json:"link,omitempty"`
}

// WorkPreferences describes what kind of work the profile owner wants.
type WorkPreferences struct {
	WorkStyle           string   `json:"workStyle,omitempty"`
	PreferredIndustries []string `json:"preferredIndustries,omitempty"`
	CompanySize         string   `json:"companySize,omitempty"`
	WillingToRelocate   bool     `json:"willingToRelocate,omitempty"`
	VisaSponsorship     string   `json:"visaSponsorship,omitempty"`
	SalaryExpectation   string   `json:"salaryExpectation,omitempty"`
}

// FAQ is a canned question/answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ProfileMetadata tracks document provenance.
type ProfileMetadata struct {
	LastUpdated string `json:"lastUpdated,omitempty"`
	Version     string `json:"version,omitempty"`
	Visibility  string `json:"visibility,omitempty"`
}

// PersonaConfig identifies the person the assistant speaks as. Supplied by
// configuration, never hardcoded.
type PersonaConfig struct {
	Name  string `json:"name" yaml:"name"`
	Title string `json:"title" yaml:"title"`
}

// FirstName returns the leading word of the persona name, used when the
// prompt addresses the person informally.
func (p PersonaConfig) FirstName() string {
	for i := 0; i < len(p.Name); i++ {
		if p.Name[i] == ' ' {
			return p.Name[:i]
		}
	}
	return p.Name
}
