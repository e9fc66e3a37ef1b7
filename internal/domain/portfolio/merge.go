package portfolio

import "encoding/json"

// storedModel is the decode-only shadow of PortfolioModel. Pointer fields
// distinguish "absent in the payload" from zero values, which is what the
// reconciliation below keys on. Unknown fields in the payload are ignored by
// the decoder, so documents written by newer code still load.
type storedModel struct {
	Name         *string          `json:"name"`
	Tagline      *string          `json:"tagline"`
	About        *string          `json:"about"`
	ResumeURL    *string          `json:"resumeUrl"`
	HeroImage    *string          `json:"heroImage"`
	Socials      *storedSocials   `json:"socials"`
	Experiences  *[]Experience    `json:"experiences"`
	Education    *[]Education     `json:"education"`
	Projects     *[]Project       `json:"projects"`
	Certificates *[]Certificate   `json:"certificates"`
	Skills       *[]SkillCategory `json:"skills"`
}

type storedSocials struct {
	Github   *string `json:"github"`
	Linkedin *string `json:"linkedin"`
	Twitter  *string `json:"twitter"`
	Email    *string `json:"email"`
}

// MergeWithDefaults reconciles a persisted payload against the current
// default model, field by field:
//
//   - top-level fields present in the payload override the default
//   - socials merge at the sub-field level
//   - collections are taken wholesale when present, never element-merged
//
// A payload that fails to parse yields (nil, err); the caller degrades to
// the defaults. The result is always structurally complete.
func MergeWithDefaults(payload []byte) (*PortfolioModel, error) {
	var stored storedModel
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, err
	}

	out := Default()

	if stored.Name != nil {
		out.Name = *stored.Name
	}
	if stored.Tagline != nil {
		out.Tagline = *stored.Tagline
	}
	if stored.About != nil {
		out.About = *stored.About
	}
	if stored.ResumeURL != nil {
		out.ResumeURL = *stored.ResumeURL
	}
	if stored.HeroImage != nil {
		out.HeroImage = *stored.HeroImage
	}

	if s := stored.Socials; s != nil {
		if s.Github != nil {
			out.Socials.Github = *s.Github
		}
		if s.Linkedin != nil {
			out.Socials.Linkedin = *s.Linkedin
		}
		if s.Twitter != nil {
			out.Socials.Twitter = *s.Twitter
		}
		if s.Email != nil {
			out.Socials.Email = *s.Email
		}
	}

	if stored.Experiences != nil {
		out.Experiences = *stored.Experiences
	}
	if stored.Education != nil {
		out.Education = *stored.Education
	}
	if stored.Projects != nil {
		out.Projects = *stored.Projects
	}
	if stored.Certificates != nil {
		out.Certificates = *stored.Certificates
	}
	if stored.Skills != nil {
		out.Skills = *stored.Skills
	}

	// Clone also normalizes collections back to non-nil sequences after the
	// wholesale replacements above.
	return out.Clone(), nil
}
