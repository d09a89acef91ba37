package schemas

type CreateStudentRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	Email     string `json:"email" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Class     string `json:"class"`
}

type Student struct {
	StudentID string `json:"student_id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Class     string `json:"class"`
	CreatedAt string `json:"created_at"`
}

type CreateStudentResponse struct {
	Message string  `json:"message"`
	Student Student `json:"student"`
}
