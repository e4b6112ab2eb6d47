package domain

// Settings pins an owner to its storage directory. FolderName is assigned once
// at provisioning and never regenerated, otherwise already-uploaded media would
// be orphaned on disk.
type Settings struct {
	SettingName string `json:"setting_name"`
	Path        string `json:"path"`
	FolderName  string `json:"folder_name"`
}
