package models

// TeacherProfile is one entry in the public teacher directory.
type TeacherProfile struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Designation   LocalizedText `json:"designation"`
	Qualification LocalizedText `json:"qualification"`
	Description   LocalizedText `json:"description"`
}

// StaffMember is one entry in the public staff directory.
type StaffMember struct {
	ID   int           `json:"id"`
	Name string        `json:"name"`
	Role LocalizedText `json:"role"`
}

// Notice is one notice-board announcement.
type Notice struct {
	ID   int           `json:"id"`
	Text LocalizedText `json:"text"`
}

// GalleryImage is one photo in the public gallery.
type GalleryImage struct {
	ID      int           `json:"id"`
	Album   LocalizedText `json:"album"`
	Src     string        `json:"src"`
	Caption LocalizedText `json:"caption"`
	Date    string        `json:"date"`
}

// InstitutionInfo carries the contact block shown across the public site.
type InstitutionInfo struct {
	Name     LocalizedText `json:"name"`
	Address  LocalizedText `json:"address"`
	Phone    string        `json:"phone"`
	WhatsApp string        `json:"whatsapp"`
	Email    string        `json:"email"`
}
