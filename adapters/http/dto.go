package http

import (
	"github.com/Sameer-B786/portfolio/internal/domain/portfolio"
)

// The model's JSON tags are the wire shape, so records and the full model go
// out as-is; only the request envelopes live here.

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// SetFieldRequest replaces one top-level field or socials sub-field
// ("socials.github" style paths).
type SetFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// UpdateRecordRequest replaces one field of an identified record. For the
// tags field the value is a delimited string parsed into tokens.
type UpdateRecordRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type AddSkillCategoryRequest struct {
	Title string `json:"title" binding:"required"`
}

type RenameSkillCategoryRequest struct {
	Title string `json:"title" binding:"required"`
}

type AddSkillRequest struct {
	Name  string `json:"name" binding:"required"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type UpdateSkillRequest struct {
	Field string `json:"field" binding:"required,oneof=name icon color"`
	Value string `json:"value"`
}

type SetThemeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=dark light"`
}

// WorkingStateResponse is the editing surface's view: the working copy plus
// the divergence signal.
type WorkingStateResponse struct {
	Model    *portfolio.PortfolioModel `json:"model"`
	Dirty    bool                      `json:"dirty"`
	Autosave bool                      `json:"autosave"`
}

type AddRecordResponse struct {
	ID int64 `json:"id"`
}
