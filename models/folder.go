package models

// Folder is a dashboard folder record. The General folder (Grafana's
// implicit root) is represented by an empty UID and is never created at the
// destination.
type Folder struct {
	UID       string `json:"uid"`
	Title     string `json:"title"`
	ParentUID string `json:"parent_uid,omitempty"`
}

// GeneralFolderTitle is the title of Grafana's implicit root folder.
const GeneralFolderTitle = "General"
