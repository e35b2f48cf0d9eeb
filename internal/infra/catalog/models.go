package catalog

// fileCatalog структура файла catalog.toml
type fileCatalog struct {
	Services []fileService `toml:"services"`
	Rooms    []fileRoom    `toml:"rooms"`
	Staff    []fileStaff   `toml:"staff"`
}

type fileService struct {
	ID                    int64   `toml:"id"`
	Name                  string  `toml:"name"`
	DurationMinutes       int     `toml:"duration_minutes"`
	Price                 float64 `toml:"price"`
	Category              string  `toml:"category"`
	RequiresCouplesRoom   bool    `toml:"requires_couples_room"`
	RequiresBodyScrubRoom bool    `toml:"requires_body_scrub_room"`
	IsPackage             bool    `toml:"is_package"`
}

type fileRoom struct {
	ID                    int64    `toml:"id"`
	Name                  string   `toml:"name"`
	Capabilities          []string `toml:"capabilities"`
	HasBodyScrubEquipment bool     `toml:"has_body_scrub_equipment"`
	IsCouplesRoom         bool     `toml:"is_couples_room"`
	IsActive              *bool    `toml:"is_active"` // по умолчанию true
}

type fileStaff struct {
	ID               int64              `toml:"id"`
	Name             string             `toml:"name"`
	CanPerform       []string           `toml:"can_perform"`
	DefaultRoomID    *int64             `toml:"default_room_id"`
	MinNoticeMinutes int                `toml:"min_notice_minutes"`
	IsActive         *bool              `toml:"is_active"` // по умолчанию true
	Schedule         map[string]fileDay `toml:"schedule"`
}

// fileDay смена на день недели; ключ - название дня в нижнем регистре
type fileDay struct {
	Available bool   `toml:"available"`
	Start     string `toml:"start"`
	End       string `toml:"end"`
}
