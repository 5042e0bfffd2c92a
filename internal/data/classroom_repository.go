package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
	"github.com/nabin00012/codecommons-sub000/internal/model"
)

const classroomColumns = `
	c.id, c.name, c.description, c.code, c.semester, c.teacher_id,
	u.name AS teacher_name,
	(SELECT COUNT(*) FROM classroom_students cs WHERE cs.classroom_id = c.id)::int AS student_count,
	c.created_at, c.edited_at
`

type ClassroomRepository struct {
	db *pgxpool.Pool
}

func NewClassroomRepository(db *pgxpool.Pool) *ClassroomRepository {
	return &ClassroomRepository{db: db}
}

func (r *ClassroomRepository) CreateClassroom(ctx context.Context, classroom *model.Classroom) (*model.Classroom, error) {
	query := `
INSERT INTO classrooms (id, name, description, code, semester, teacher_id)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := r.db.Exec(ctx, query,
		classroom.Id,
		classroom.Name,
		classroom.Description,
		classroom.Code,
		classroom.Semester,
		classroom.TeacherId,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return r.GetClassroom(ctx, classroom.Id)
}

func (r *ClassroomRepository) GetClassroom(ctx context.Context, id uuid.UUID) (*model.Classroom, error) {
	query := `
SELECT ` + classroomColumns + `
FROM classrooms c
JOIN users u ON u.id = c.teacher_id
WHERE c.id = $1
`
	var classroom model.Classroom
	err := pgxscan.Get(ctx, r.db, &classroom, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &classroom, nil
}

func (r *ClassroomRepository) GetClassroomByCode(ctx context.Context, code string) (*model.Classroom, error) {
	query := `
SELECT ` + classroomColumns + `
FROM classrooms c
JOIN users u ON u.id = c.teacher_id
WHERE c.code = $1
`
	var classroom model.Classroom
	err := pgxscan.Get(ctx, r.db, &classroom, query, code)
	if err != nil {
		return nil, handleError(err)
	}
	return &classroom, nil
}

// ListClassroomsForUser returns classrooms the user owns or is enrolled in.
func (r *ClassroomRepository) ListClassroomsForUser(ctx context.Context, userId uuid.UUID) ([]*model.Classroom, error) {
	query := `
SELECT ` + classroomColumns + `
FROM classrooms c
JOIN users u ON u.id = c.teacher_id
WHERE c.teacher_id = $1
   OR EXISTS (
		SELECT 1 FROM classroom_students cs
		WHERE cs.classroom_id = c.id AND cs.student_id = $1
   )
ORDER BY c.created_at DESC
`
	var classrooms []*model.Classroom
	err := pgxscan.Select(ctx, r.db, &classrooms, query, userId)
	if err != nil {
		return nil, handleError(err)
	}
	return classrooms, nil
}

func (r *ClassroomRepository) DeleteClassroom(ctx context.Context, id uuid.UUID) error {
	query := `
DELETE FROM classrooms
WHERE id = $1
`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

func (r *ClassroomRepository) AddStudent(ctx context.Context, classroomId, studentId uuid.UUID) error {
	query := `
INSERT INTO classroom_students (classroom_id, student_id)
VALUES ($1, $2)
`
	_, err := r.db.Exec(ctx, query, classroomId, studentId)
	if err != nil {
		return handleError(err)
	}
	return nil
}

func (r *ClassroomRepository) IsStudent(ctx context.Context, classroomId, studentId uuid.UUID) (bool, error) {
	query := `
SELECT EXISTS (
	SELECT 1 FROM classroom_students
	WHERE classroom_id = $1 AND student_id = $2
)
`
	var enrolled bool
	err := pgxscan.Get(ctx, r.db, &enrolled, query, classroomId, studentId)
	if err != nil {
		return false, handleError(err)
	}
	return enrolled, nil
}

func (r *ClassroomRepository) ListStudents(ctx context.Context, classroomId uuid.UUID) ([]*model.UserPublic, error) {
	query := `
SELECT u.id, u.name, u.email, u.role, u.department, u.avatar_url
FROM classroom_students cs
JOIN users u ON u.id = cs.student_id
WHERE cs.classroom_id = $1
ORDER BY cs.joined_at
`
	var students []*model.UserPublic
	err := pgxscan.Select(ctx, r.db, &students, query, classroomId)
	if err != nil {
		return nil, handleError(err)
	}
	return students, nil
}

func (r *ClassroomRepository) AddMaterial(ctx context.Context, material *model.Material) (*model.Material, error) {
	query := `
INSERT INTO materials (id, classroom_id, title, content_type, size, file_key, file_url)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, classroom_id, title, content_type, size, file_key, file_url, uploaded_at
`
	var created model.Material
	err := pgxscan.Get(ctx, r.db, &created, query,
		material.Id,
		material.ClassroomId,
		material.Title,
		material.ContentType,
		material.Size,
		material.FileKey,
		material.FileURL,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &created, nil
}

func (r *ClassroomRepository) ListMaterials(ctx context.Context, classroomId uuid.UUID) ([]*model.Material, error) {
	query := `
SELECT id, classroom_id, title, content_type, size, file_key, file_url, uploaded_at
FROM materials
WHERE classroom_id = $1
ORDER BY uploaded_at DESC
`
	var materials []*model.Material
	err := pgxscan.Select(ctx, r.db, &materials, query, classroomId)
	if err != nil {
		return nil, handleError(err)
	}
	return materials, nil
}

func (r *ClassroomRepository) GetMaterial(ctx context.Context, classroomId, materialId uuid.UUID) (*model.Material, error) {
	query := `
SELECT id, classroom_id, title, content_type, size, file_key, file_url, uploaded_at
FROM materials
WHERE classroom_id = $1 AND id = $2
`
	var material model.Material
	err := pgxscan.Get(ctx, r.db, &material, query, classroomId, materialId)
	if err != nil {
		return nil, handleError(err)
	}
	return &material, nil
}
