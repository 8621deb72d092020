package request

import "movie-catalog/internal/data/entity"

// MovieRequest is the body accepted for create and full-replace calls.
// AgeLimit is a pointer so an omitted value can be told apart from zero.
type MovieRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required"`
	AgeLimit    *int   `json:"ageLimit,omitempty" validate:"omitempty,min=1"`
}

// NewMovieRequest builds a request from an existing record, dropping its id.
func NewMovieRequest(m entity.Movie) MovieRequest {
	ageLimit := m.AgeLimit
	req := MovieRequest{
		Title:       m.Title,
		Description: m.Description,
	}
	if ageLimit != 0 {
		req.AgeLimit = &ageLimit
	}
	return req
}

// WithDefaults returns a copy with the default age limit filled in.
func (r MovieRequest) WithDefaults() MovieRequest {
	if r.AgeLimit == nil {
		ageLimit := entity.DefaultAgeLimit
		r.AgeLimit = &ageLimit
	}
	return r
}

// ToEntity converts the request into a draft record.
func (r MovieRequest) ToEntity() entity.Movie {
	m := entity.Movie{
		Title:       r.Title,
		Description: r.Description,
		AgeLimit:    entity.DefaultAgeLimit,
	}
	if r.AgeLimit != nil {
		m.AgeLimit = *r.AgeLimit
	}
	return m
}

// MoviePatch carries the optional fields of an edit. Unset fields keep their current value.
type MoviePatch struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=1"`
	AgeLimit    *int    `json:"ageLimit,omitempty" validate:"omitempty,min=1"`
}

// IsEmpty reports whether no field is set.
func (p MoviePatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.AgeLimit == nil
}

// Apply merges the patch over current and returns the full replacement record.
func (p MoviePatch) Apply(current entity.Movie) entity.Movie {
	if p.Title != nil {
		current.Title = *p.Title
	}
	if p.Description != nil {
		current.Description = *p.Description
	}
	if p.AgeLimit != nil {
		current.AgeLimit = *p.AgeLimit
	}
	return current
}
