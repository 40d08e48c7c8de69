package dto

// CourseRequest represents the course create/edit form
type CourseRequest struct {
	Name       string `json:"name" binding:"required"`
	CourseCode string `json:"courseCode" binding:"required"`
	Credits    int    `json:"credits" binding:"required,gt=0"`
}
