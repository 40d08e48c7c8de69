package models

// Course defines a catalog entry. CourseCode is a display identifier and is
// not guaranteed unique across the catalog.
type Course struct {
	ID         string `json:"id" example:"BBA101"`                    // Unique identifier for the course record
	Name       string `json:"name" example:"Principles of Management"`// Course title
	CourseCode string `json:"courseCode" example:"BBA101"`            // Display code shown in listings
	Credits    int    `json:"credits" example:"4"`                    // Credit weight (positive)
}
