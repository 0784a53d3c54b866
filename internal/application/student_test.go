package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dojocrm/internal/domain"
	"dojocrm/internal/domain/entities"
)

func TestStudentService_CreateStudent(t *testing.T) {
	t.Run("assigns id and activates", func(t *testing.T) {
		svc := NewStudentService(newFakeStudentRepo())
		student := &entities.Student{Name: "Aiko Tanaka", Email: "aiko@example.com", Program: "bjj-adults"}
		require.NoError(t, svc.CreateStudent(context.Background(), student))

		assert.NotEmpty(t, student.ID)
		assert.True(t, student.Active)

		stored, err := svc.GetStudent(context.Background(), student.ID)
		require.NoError(t, err)
		assert.Equal(t, "Aiko Tanaka", stored.Name)
	})

	t.Run("name required", func(t *testing.T) {
		svc := NewStudentService(newFakeStudentRepo())
		err := svc.CreateStudent(context.Background(), &entities.Student{Email: "x@example.com"})
		assert.ErrorIs(t, err, domain.ErrNameRequired)
	})
}

func TestStudentService_UpdateStudent(t *testing.T) {
	repo := newFakeStudentRepo(entities.Student{ID: "stu-1", Name: "Aiko Tanaka", Active: true})
	svc := NewStudentService(repo)

	t.Run("deactivation persists", func(t *testing.T) {
		err := svc.UpdateStudent(context.Background(), &entities.Student{
			ID: "stu-1", Name: "Aiko Tanaka", Active: false,
		})
		require.NoError(t, err)

		stored, err := svc.GetStudent(context.Background(), "stu-1")
		require.NoError(t, err)
		assert.False(t, stored.Active)
	})

	t.Run("unknown student", func(t *testing.T) {
		err := svc.UpdateStudent(context.Background(), &entities.Student{ID: "nope", Name: "Ghost"})
		assert.ErrorIs(t, err, domain.ErrStudentNotFound)
	})
}

func TestStudentService_DeleteStudent(t *testing.T) {
	repo := newFakeStudentRepo(entities.Student{ID: "stu-1", Name: "Aiko Tanaka", Active: true})
	svc := NewStudentService(repo)

	require.NoError(t, svc.DeleteStudent(context.Background(), "stu-1"))

	_, err := svc.GetStudent(context.Background(), "stu-1")
	assert.ErrorIs(t, err, domain.ErrStudentNotFound)
	assert.ErrorIs(t, svc.DeleteStudent(context.Background(), "stu-1"), domain.ErrStudentNotFound)
}
