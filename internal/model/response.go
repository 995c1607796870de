package model

// Response envelopes. Field order here is the serialization order for both
// JSON and XML, so the two formats stay key-for-key identical.

// HeroListResponse wraps the joined hero listing.
type HeroListResponse struct {
	Heroes []HeroDetail `json:"heroes"`
	Count  int          `json:"count"`
}

// HeroResponse wraps a single joined hero row.
type HeroResponse struct {
	Hero HeroDetail `json:"hero"`
}

// HeroSearchResponse wraps hero search results.
type HeroSearchResponse struct {
	Heroes []HeroSummary `json:"heroes"`
	Count  int           `json:"count"`
}

// RoleListResponse wraps the role listing.
type RoleListResponse struct {
	Roles []Role `json:"roles"`
	Count int    `json:"count"`
}

// RoleHeroesResponse wraps the heroes-by-role listing.
type RoleHeroesResponse struct {
	Heroes []RoleHero `json:"heroes"`
	Count  int        `json:"count"`
}

// StatsResponse wraps a single hero_stats row.
type StatsResponse struct {
	Stats HeroStats `json:"stats"`
}

// SpecialtyListResponse wraps the specialty listing.
type SpecialtyListResponse struct {
	Specialties []Specialty `json:"specialties"`
	Count       int         `json:"count"`
}

// CreatedResponse is returned by create endpoints with the new row id.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// MessageResponse carries a human-readable outcome for mutations and for
// auth failures.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries an error description for 4xx/5xx responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse is the successful login payload.
type TokenResponse struct {
	Token string `json:"token"`
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
