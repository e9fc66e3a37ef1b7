package content

import "github.com/Sameer-B786/portfolio/internal/domain/portfolio"

// Skills are addressed by position, not id: categories by index in the
// sequence, skills by index within their category. Deleting shifts later
// indices, which the editing surface expects. Out-of-range indices are
// no-ops returning the input unchanged.

// AddSkillCategory appends a category. Titles are the grouping key and must
// stay unique; a duplicate reports false and leaves the sequence unchanged.
func AddSkillCategory(cats []portfolio.SkillCategory, title string) ([]portfolio.SkillCategory, bool) {
	for _, c := range cats {
		if c.Title == title {
			return cats, false
		}
	}
	out := make([]portfolio.SkillCategory, 0, len(cats)+1)
	out = append(out, cats...)
	out = append(out, portfolio.SkillCategory{Title: title, Skills: []portfolio.Skill{}})
	return out, true
}

// RenameSkillCategory changes a category title, refusing duplicates.
func RenameSkillCategory(cats []portfolio.SkillCategory, catIdx int, title string) ([]portfolio.SkillCategory, bool) {
	if catIdx < 0 || catIdx >= len(cats) {
		return cats, false
	}
	for i, c := range cats {
		if i != catIdx && c.Title == title {
			return cats, false
		}
	}
	out := cloneCategories(cats)
	out[catIdx].Title = title
	return out, true
}

func RemoveSkillCategory(cats []portfolio.SkillCategory, catIdx int) []portfolio.SkillCategory {
	if catIdx < 0 || catIdx >= len(cats) {
		return cats
	}
	out := make([]portfolio.SkillCategory, 0, len(cats)-1)
	for i, c := range cats {
		if i != catIdx {
			out = append(out, c)
		}
	}
	return out
}

func AddSkill(cats []portfolio.SkillCategory, catIdx int, skill portfolio.Skill) []portfolio.SkillCategory {
	if catIdx < 0 || catIdx >= len(cats) {
		return cats
	}
	out := cloneCategories(cats)
	out[catIdx].Skills = append(out[catIdx].Skills, skill)
	return out
}

func UpdateSkill(cats []portfolio.SkillCategory, catIdx, skillIdx int, field, value string) []portfolio.SkillCategory {
	if catIdx < 0 || catIdx >= len(cats) {
		return cats
	}
	if skillIdx < 0 || skillIdx >= len(cats[catIdx].Skills) {
		return cats
	}
	updated, ok := cats[catIdx].Skills[skillIdx].SetField(field, value)
	if !ok {
		return cats
	}
	out := cloneCategories(cats)
	out[catIdx].Skills[skillIdx] = updated
	return out
}

func DeleteSkill(cats []portfolio.SkillCategory, catIdx, skillIdx int) []portfolio.SkillCategory {
	if catIdx < 0 || catIdx >= len(cats) {
		return cats
	}
	skills := cats[catIdx].Skills
	if skillIdx < 0 || skillIdx >= len(skills) {
		return cats
	}
	out := cloneCategories(cats)
	remaining := make([]portfolio.Skill, 0, len(skills)-1)
	remaining = append(remaining, skills[:skillIdx]...)
	remaining = append(remaining, skills[skillIdx+1:]...)
	out[catIdx].Skills = remaining
	return out
}

func cloneCategories(cats []portfolio.SkillCategory) []portfolio.SkillCategory {
	out := make([]portfolio.SkillCategory, len(cats))
	for i, c := range cats {
		skills := make([]portfolio.Skill, len(c.Skills))
		copy(skills, c.Skills)
		c.Skills = skills
		out[i] = c
	}
	return out
}
