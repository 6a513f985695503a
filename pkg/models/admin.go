package models

// AdminRecord is the per-guild admin assignment stored in the admin file.
// ServerName is a display snapshot taken at assignment time and is not
// kept in sync with guild renames.
type AdminRecord struct {
	Admin      string `json:"admin"`
	ServerName string `json:"server_name"`
}
