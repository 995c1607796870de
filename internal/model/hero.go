package model

// HeroInput is the JSON payload accepted by the hero create and update
// endpoints. All fields are pointers so that absent keys can be told apart
// from explicit zero values; absent optional fields are written as NULL.
type HeroInput struct {
	HeroName    *string `json:"hero_name"`
	Origin      *string `json:"origin"`
	Difficulty  *string `json:"difficulty"`
	RoleID      *int64  `json:"role_id"`
	HeroStatsID *int64  `json:"hero_stats_id"`
	SpecialtyID *int64  `json:"specialty_id"`
}

// Empty reports whether no field was supplied at all, i.e. the request body
// was {} or null.
func (in HeroInput) Empty() bool {
	return in.HeroName == nil && in.Origin == nil && in.Difficulty == nil &&
		in.RoleID == nil && in.HeroStatsID == nil && in.SpecialtyID == nil
}

// HeroDetail is a hero row joined against roles, specialties, and hero_stats.
// Joined fields are pointers: an unresolved foreign key serializes as null
// rather than being omitted.
type HeroDetail struct {
	ID              int64   `db:"id" json:"id"`
	HeroName        string  `db:"hero_name" json:"hero_name"`
	Origin          *string `db:"origin" json:"origin"`
	Difficulty      *string `db:"difficulty" json:"difficulty"`
	RoleName        *string `db:"role_name" json:"role_name"`
	RoleDescription *string `db:"role_description" json:"role_description"`
	SpecialtyName   *string `db:"specialty_name" json:"specialty_name"`
	HP              *int64  `db:"hp" json:"hp"`
	Mana            *int64  `db:"mana" json:"mana"`
	Attack          *int64  `db:"attack" json:"attack"`
	Defense         *int64  `db:"defense" json:"defense"`
	MovementSpeed   *int64  `db:"movement_speed" json:"movement_speed"`
}

// HeroSummary is the reduced row shape returned by hero search.
type HeroSummary struct {
	ID            int64   `db:"id" json:"id"`
	HeroName      string  `db:"hero_name" json:"hero_name"`
	Origin        *string `db:"origin" json:"origin"`
	Difficulty    *string `db:"difficulty" json:"difficulty"`
	RoleName      *string `db:"role_name" json:"role_name"`
	SpecialtyName *string `db:"specialty_name" json:"specialty_name"`
}

// RoleHero is a hero row inner-joined to its role, returned by the
// heroes-by-role endpoint. The join guarantees a role name.
type RoleHero struct {
	ID         int64   `db:"id" json:"id"`
	HeroName   string  `db:"hero_name" json:"hero_name"`
	Origin     *string `db:"origin" json:"origin"`
	Difficulty *string `db:"difficulty" json:"difficulty"`
	RoleName   string  `db:"role_name" json:"role_name"`
}
