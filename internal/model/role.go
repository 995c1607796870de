package model

// Role is a hero role (Tank, Mage, ...).
type Role struct {
	ID          int64  `db:"id" json:"id"`
	RoleName    string `db:"role_name" json:"role_name"`
	Description string `db:"description" json:"description"`
}

// Specialty is a hero specialty (Burst, Crowd Control, ...). The description
// is stored but unused by any downstream consumer.
type Specialty struct {
	ID            int64  `db:"id" json:"id"`
	SpecialtyName string `db:"specialty_name" json:"specialty_name"`
	Description   string `db:"description" json:"description"`
}

// HeroStatsInput is the JSON payload accepted by the hero-stats create
// endpoint. Absent fields are written as NULL, matching the permissive
// behavior of the store.
type HeroStatsInput struct {
	HP            *int64 `json:"hp"`
	Mana          *int64 `json:"mana"`
	Attack        *int64 `json:"attack"`
	Defense       *int64 `json:"defense"`
	MovementSpeed *int64 `json:"movement_speed"`
}

// Empty reports whether no stat field was supplied.
func (in HeroStatsInput) Empty() bool {
	return in.HP == nil && in.Mana == nil && in.Attack == nil &&
		in.Defense == nil && in.MovementSpeed == nil
}

// HeroStats is a hero_stats row.
type HeroStats struct {
	ID            int64  `db:"id" json:"id"`
	HP            *int64 `db:"hp" json:"hp"`
	Mana          *int64 `db:"mana" json:"mana"`
	Attack        *int64 `db:"attack" json:"attack"`
	Defense       *int64 `db:"defense" json:"defense"`
	MovementSpeed *int64 `db:"movement_speed" json:"movement_speed"`
}
