package models

// Weekdays lists the keys of Hours in display order.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// SiteSettings is the singleton business settings document.
type SiteSettings struct {
	BusinessName string      `json:"businessName"`
	Address      string      `json:"address"`
	Phone        string      `json:"phone"`
	Email        string      `json:"email"`
	Hours        Hours       `json:"hours"`
	Theme        Theme       `json:"theme"`
	SocialMedia  SocialMedia `json:"socialMedia"`
}

// Hours maps every weekday to a display string such as "9:00 AM - 7:00 PM".
type Hours struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
	Sunday    string `json:"sunday"`
}

// Theme holds the three site colors.
type Theme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// SocialMedia holds optional profile links.
type SocialMedia struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
}

// Day returns the hours for the given lower-case weekday key.
func (h Hours) Day(day string) string {
	switch day {
	case "monday":
		return h.Monday
	case "tuesday":
		return h.Tuesday
	case "wednesday":
		return h.Wednesday
	case "thursday":
		return h.Thursday
	case "friday":
		return h.Friday
	case "saturday":
		return h.Saturday
	case "sunday":
		return h.Sunday
	default:
		return ""
	}
}

// GalleryImage is one entry of the ordered gallery document.
type GalleryImage struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	CreatedAt string `json:"createdAt"`
}
