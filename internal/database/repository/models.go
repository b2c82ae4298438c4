package repository

import "time"

// Selection represents one recorded pick from the directory.
type Selection struct {
	ID         string
	Code       string
	Name       string
	Prefix     string
	SelectedAt time.Time
}
