package dto

import "github.com/dishabharti/campus/internal/app/models"

// StudentResponse represents a student record without the stored credential
type StudentResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	StudentID    string              `json:"studentId"`
	Fees         models.Fees         `json:"fees"`
	Registration models.Registration `json:"registration"`
	Results      map[string]string   `json:"results"`
	Library      models.Library      `json:"library"`
}

// NewStudentResponse strips the password from a student record
func NewStudentResponse(st models.Student) StudentResponse {
	return StudentResponse{
		ID:           st.ID,
		Name:         st.Name,
		Email:        st.Email,
		StudentID:    st.StudentID,
		Fees:         st.Fees,
		Registration: st.Registration,
		Results:      st.Results,
		Library:      st.Library,
	}
}

// NewStudentResponses maps a student collection to responses, preserving order
func NewStudentResponses(students []models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, st := range students {
		out = append(out, NewStudentResponse(st))
	}
	return out
}

// CreateStudentRequest represents the admin "add student" form
type CreateStudentRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password"`
	TotalFees int    `json:"totalFees"`
	PaidFees  int    `json:"paidFees"`
}

// UpdateStudentRequest represents the admin profile/fees edit form. The whole
// form is applied or rejected as a unit.
type UpdateStudentRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
	PaidFees int    `json:"paidFees"`
	Fines    int    `json:"fines"`
}

// ResultRequest represents a semester grade entry
type ResultRequest struct {
	Semester string `json:"semester" binding:"required"`
	Grade    string `json:"grade" binding:"required"`
}

// BookRequest represents a library issue or return
type BookRequest struct {
	Title string `json:"title" binding:"required"`
}

// FeesUpdateRequest represents a fee payment plus fines adjustment
type FeesUpdateRequest struct {
	PaidFees int `json:"paidFees"`
	Fines    int `json:"fines"`
}
