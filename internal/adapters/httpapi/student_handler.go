package httpapi

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dojocrm/internal/domain"
	"dojocrm/internal/domain/entities"
	"dojocrm/internal/ports/input"
)

type StudentHandler struct {
	students input.StudentUseCase
}

func NewStudentHandler(students input.StudentUseCase) *StudentHandler {
	return &StudentHandler{students: students}
}

type studentRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Program string `json:"program"`
	Active  *bool  `json:"active"`
}

type studentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Program   string    `json:"program,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toStudentResponse(s entities.Student) studentResponse {
	return studentResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Program:   s.Program,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// Create handles POST /students.
func (h *StudentHandler) Create(c *gin.Context) {
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	student := &entities.Student{
		Name:    req.Name,
		Email:   req.Email,
		Program: req.Program,
	}
	if err := h.students.CreateStudent(c.Request.Context(), student); err != nil {
		if isValidationErr(err) {
			badRequest(c, err)
			return
		}
		log.Printf("create student: %v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusCreated, toStudentResponse(*student))
}

// Get handles GET /students/:id.
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.students.GetStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			notFound(c, err)
			return
		}
		log.Printf("get student %s: %v", c.Param("id"), err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, toStudentResponse(*student))
}

// List handles GET /students.
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.students.ListStudents(c.Request.Context())
	if err != nil {
		log.Printf("list students: %v", err)
		internalError(c)
		return
	}

	out := make([]studentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, toStudentResponse(s))
	}
	c.JSON(http.StatusOK, gin.H{"students": out, "count": len(out)})
}

// Update handles PUT /students/:id.
func (h *StudentHandler) Update(c *gin.Context) {
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	current, err := h.students.GetStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			notFound(c, err)
			return
		}
		log.Printf("get student %s: %v", c.Param("id"), err)
		internalError(c)
		return
	}

	student := &entities.Student{
		ID:      current.ID,
		Name:    req.Name,
		Email:   req.Email,
		Program: req.Program,
		Active:  current.Active,
	}
	if req.Active != nil {
		student.Active = *req.Active
	}
	if err := h.students.UpdateStudent(c.Request.Context(), student); err != nil {
		if isValidationErr(err) {
			badRequest(c, err)
			return
		}
		if errors.Is(err, domain.ErrStudentNotFound) {
			notFound(c, err)
			return
		}
		log.Printf("update student %s: %v", c.Param("id"), err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, toStudentResponse(*student))
}

// Delete handles DELETE /students/:id.
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.students.DeleteStudent(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			notFound(c, err)
			return
		}
		log.Printf("delete student %s: %v", c.Param("id"), err)
		internalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}
