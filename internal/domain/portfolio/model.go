package portfolio

import (
	"context"
	"errors"
)

// Socials has a fixed shape: every link slot exists even when empty, so the
// rendering side never branches on missing keys.
type Socials struct {
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
	Twitter  string `json:"twitter"`
	Email    string `json:"email"`
}

type Experience struct {
	ID          int64  `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

type Education struct {
	ID          int64  `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

type Project struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
	LiveURL     string   `json:"liveUrl"`
	RepoURL     string   `json:"repoUrl"`
}

type Certificate struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	URL    string `json:"url"`
	Image  string `json:"image"`
}

// Skill entries are addressed by position inside their category, not by id.
type Skill struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// SkillCategory titles act as the grouping key and must stay unique within
// the skills sequence.
type SkillCategory struct {
	Title  string  `json:"title"`
	Skills []Skill `json:"skills"`
}

// PortfolioModel is the root aggregate. A single instance is owned by the
// content store; everything else works on copies. URI fields are stored
// untrusted and sanitized only at render time.
type PortfolioModel struct {
	Name         string          `json:"name"`
	Tagline      string          `json:"tagline"`
	About        string          `json:"about"`
	ResumeURL    string          `json:"resumeUrl"`
	HeroImage    string          `json:"heroImage"`
	Socials      Socials         `json:"socials"`
	Experiences  []Experience    `json:"experiences"`
	Education    []Education     `json:"education"`
	Projects     []Project       `json:"projects"`
	Certificates []Certificate   `json:"certificates"`
	Skills       []SkillCategory `json:"skills"`
}

// Record is the contract every identified collection element satisfies. The
// generic editor is parameterized over it instead of concrete types.
type Record interface {
	RecordID() int64
}

func (e Experience) RecordID() int64  { return e.ID }
func (e Education) RecordID() int64   { return e.ID }
func (p Project) RecordID() int64     { return p.ID }
func (c Certificate) RecordID() int64 { return c.ID }

var ErrStorageUnavailable = errors.New("storage unavailable")

// LoadReport describes how a load resolved. FromDefaults is a recoverable
// condition, not an error: absent or unreadable prior state degrades to the
// default model.
type LoadReport struct {
	FromDefaults bool
	Cause        error
}

// Store is the persistence port for the whole aggregate. Save writes the
// entire model atomically under one key and republishes the committed copy.
type Store interface {
	Load(ctx context.Context) (*PortfolioModel, LoadReport)
	Save(ctx context.Context, model *PortfolioModel) error
	Committed() *PortfolioModel
	Subscribe(fn func(*PortfolioModel))
}

// Clone returns a deep copy sharing no slices with the receiver. The edit
// session relies on this to keep its working copy independent of the
// committed model. Collections come out non-nil so two clones of the same
// model always compare structurally equal.
func (m *PortfolioModel) Clone() *PortfolioModel {
	if m == nil {
		return nil
	}
	out := *m
	out.Experiences = cloneSlice(m.Experiences)
	out.Education = cloneSlice(m.Education)
	out.Certificates = cloneSlice(m.Certificates)

	out.Projects = make([]Project, len(m.Projects))
	for i, p := range m.Projects {
		p.Tags = cloneSlice(p.Tags)
		out.Projects[i] = p
	}

	out.Skills = make([]SkillCategory, len(m.Skills))
	for i, cat := range m.Skills {
		cat.Skills = cloneSlice(cat.Skills)
		out.Skills[i] = cat
	}
	return &out
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
