package service

import (
	"fmt"
	"strings"

	"github.com/solenne-labs/profilechat/internal/domain"
)

// ChunkProfile turns a profile document into an ordered sequence of
// self-contained text chunks, one idea per chunk. Section labels are assigned
// from the part of the profile that produced the chunk. Absent or empty
// sections contribute no chunks. Pure and deterministic.
func ChunkProfile(profile *domain.Profile) []domain.Chunk {
	if profile == nil {
		return nil
	}

	var chunks []domain.Chunk
	add := func(section domain.Section, text string) {
		text = strings.TrimSpace(text)
		if text == "" {
			return
		}
		chunks = append(chunks, domain.Chunk{Text: text, Section: section})
	}

	if p := profile.Personal; p != nil {
		var parts []string
		if p.Name != "" {
			parts = append(parts, fmt.Sprintf("Name: %s.", p.Name))
		}
		if p.Title != "" {
			parts = append(parts, fmt.Sprintf("Title: %s.", p.Title))
		}
		if p.Bio != "" {
			parts = append(parts, p.Bio)
		}
		if p.Location != "" {
			parts = append(parts, fmt.Sprintf("Based in %s.", p.Location))
		}
		if p.Availability != "" {
			parts = append(parts, fmt.Sprintf("Availability: %s.", p.Availability))
		}
		add(domain.SectionPersonal, strings.Join(parts, " "))
	}

	if s := profile.Skills; s != nil {
		for _, skill := range s.Programming {
			if skill.Name == "" {
				continue
			}
			text := fmt.Sprintf("%s: %s level with %d years of experience.", skill.Name, skill.Proficiency, skill.YearsOfExperience)
			if skill.Description != "" {
				text += " " + skill.Description
			}
			add(domain.SectionSkills, text)
		}
		for _, cat := range s.AIMachineLearning {
			if cat.Category == "" {
				continue
			}
			text := fmt.Sprintf("%s expertise: %s.", cat.Category, strings.Join(cat.Technologies, ", "))
			if len(cat.Expertise) > 0 {
				text += fmt.Sprintf(" Specializing in: %s.", strings.Join(cat.Expertise, ", "))
			}
			add(domain.SectionSkills, text)
		}
		for _, cat := range s.CloudDevOps {
			if cat.Category == "" {
				continue
			}
			add(domain.SectionSkills, fmt.Sprintf("%s technologies: %s.", cat.Category, strings.Join(cat.Technologies, ", ")))
		}
		if len(s.Frameworks) > 0 {
			add(domain.SectionSkills, fmt.Sprintf("Frameworks: %s.", strings.Join(s.Frameworks, ", ")))
		}
		if len(s.Tools) > 0 {
			add(domain.SectionSkills, fmt.Sprintf("Tools: %s.", strings.Join(s.Tools, ", ")))
		}
	}

	for _, exp := range profile.Experience {
		if exp.Role == "" && exp.Company == "" {
			continue
		}
		text := fmt.Sprintf("%s at %s (%s). %s", exp.Role, exp.Company, exp.Duration, exp.Description)
		if len(exp.Achievements) > 0 {
			text += fmt.Sprintf(" Key achievements: %s.", strings.Join(exp.Achievements, ". "))
		}
		if len(exp.Technologies) > 0 {
			text += fmt.Sprintf(" Technologies: %s.", strings.Join(exp.Technologies, ", "))
		}
		add(domain.SectionExperience, text)
	}

	for _, project := range profile.Projects {
		if project.Name == "" {
			continue
		}
		text := fmt.Sprintf("Project: %s. %s", project.Name, project.Description)
		if len(project.Technologies) > 0 {
			text += fmt.Sprintf(" Technologies: %s.", strings.Join(project.Technologies, ", "))
		}
		if len(project.Highlights) > 0 {
			text += fmt.Sprintf(" Highlights: %s.", strings.Join(project.Highlights, ". "))
		}
		add(domain.SectionProjects, text)
	}

	for _, edu := range profile.Education {
		if edu.Degree == "" && edu.Institution == "" {
			continue
		}
		text := fmt.Sprintf("%s from %s (%s).", edu.Degree, edu.Institution, edu.Duration)
		if len(edu.Highlights) > 0 {
			text += " " + strings.Join(edu.Highlights, ". ") + "."
		}
		add(domain.SectionEducation, text)
	}

	for _, cert := range profile.Certifications {
		if cert.Name == "" {
			continue
		}
		text := fmt.Sprintf("Certification: %s", cert.Name)
		if cert.Issuer != "" {
			text += fmt.Sprintf(", issued by %s", cert.Issuer)
		}
		if cert.Year != "" {
			text += fmt.Sprintf(" (%s)", cert.Year)
		}
		add(domain.SectionCertifications, text+".")
	}

	for _, pub := range profile.Publications {
		if pub.Title == "" {
			continue
		}
		text := fmt.Sprintf("Publication: %s", pub.Title)
		if pub.Venue != "" {
			text += fmt.Sprintf(", %s", pub.Venue)
		}
		if pub.Year != "" {
			text += fmt.Sprintf(" (%s)", pub.Year)
		}
		add(domain.SectionOther, text+".")
	}

	for _, faq := range profile.FAQs {
		if faq.Question == "" || faq.Answer == "" {
			continue
		}
		add(domain.SectionFAQs, fmt.Sprintf("Q: %s A: %s", faq.Question, faq.Answer))
	}

	if wp := profile.WorkPreferences; wp != nil {
		var parts []string
		if wp.WorkStyle != "" {
			parts = append(parts, fmt.Sprintf("Work preferences: %s.", wp.WorkStyle))
		}
		if len(wp.PreferredIndustries) > 0 {
			parts = append(parts, fmt.Sprintf("Preferred industries: %s.", strings.Join(wp.PreferredIndustries, ", ")))
		}
		if wp.CompanySize != "" {
			parts = append(parts, fmt.Sprintf("Company size: %s.", wp.CompanySize))
		}
		if wp.VisaSponsorship != "" {
			parts = append(parts, fmt.Sprintf("Visa sponsorship: %s.", wp.VisaSponsorship))
		}
		if wp.SalaryExpectation != "" {
			parts = append(parts, fmt.Sprintf("Salary expectation: %s.", wp.SalaryExpectation))
		}
		add(domain.SectionWorkPreferences, strings.Join(parts, " "))
	}

	for _, achievement := range profile.Achievements {
		if strings.TrimSpace(achievement) == "" {
			continue
		}
		add(domain.SectionAchievements, fmt.Sprintf("Achievement: %s", achievement))
	}

	if len(profile.Interests) > 0 {
		interests := make([]string, 0, len(profile.Interests))
		for _, interest := range profile.Interests {
			if strings.TrimSpace(interest) != "" {
				interests = append(interests, interest)
			}
		}
		if len(interests) > 0 {
			add(domain.SectionInterests, fmt.Sprintf("Interests: %s.", strings.Join(interests, ", ")))
		}
	}

	return chunks
}
