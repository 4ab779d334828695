package models

// ZoneStats - сводка по зонам для панели администратора
type ZoneStats struct {
	ByDangerLevel       map[DangerLevel]int64 `json:"by_danger_level"`
	CreatedBeforeWindow int64                 `json:"created_before_window"`
	CreatedInWindow     int64                 `json:"created_in_window"`
	WindowMinutes       int                   `json:"window_minutes"`
}
