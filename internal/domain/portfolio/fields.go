package portfolio

// Field names accepted by SetField match the JSON keys of each record type.
// An unknown field reports false and leaves the record untouched, so a stale
// editing surface can never corrupt a record.

func (e Experience) SetField(name, value string) (Experience, bool) {
	switch name {
	case "role":
		e.Role = value
	case "company":
		e.Company = value
	case "period":
		e.Period = value
	case "description":
		e.Description = value
	default:
		return e, false
	}
	return e, true
}

func (e Education) SetField(name, value string) (Education, bool) {
	switch name {
	case "degree":
		e.Degree = value
	case "institution":
		e.Institution = value
	case "period":
		e.Period = value
	case "description":
		e.Description = value
	default:
		return e, false
	}
	return e, true
}

func (p Project) SetField(name, value string) (Project, bool) {
	switch name {
	case "title":
		p.Title = value
	case "description":
		p.Description = value
	case "tags":
		// Edited as one delimited string, stored as tokens.
		p.Tags = ParseTags(value)
	case "image":
		p.Image = value
	case "liveUrl":
		p.LiveURL = value
	case "repoUrl":
		p.RepoURL = value
	default:
		return p, false
	}
	return p, true
}

func (c Certificate) SetField(name, value string) (Certificate, bool) {
	switch name {
	case "title":
		c.Title = value
	case "issuer":
		c.Issuer = value
	case "date":
		c.Date = value
	case "url":
		c.URL = value
	case "image":
		c.Image = value
	default:
		return c, false
	}
	return c, true
}

func (s Skill) SetField(name, value string) (Skill, bool) {
	switch name {
	case "name":
		s.Name = value
	case "icon":
		s.Icon = value
	case "color":
		s.Color = value
	default:
		return s, false
	}
	return s, true
}
