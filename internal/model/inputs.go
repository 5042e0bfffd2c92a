package model

import (
	"io"
	"time"

	"github.com/google/uuid"
)

type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     Role   `json:"role" validate:"required,oneof=student teacher"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserInput struct {
	Name       *string `json:"name" validate:"omitempty,min=2,max=100"`
	Department *string `json:"department" validate:"omitempty,max=100"`
	AvatarURL  *string `json:"avatarUrl" validate:"omitempty,url"`
}

type RequestPasswordResetInput struct {
	Email string `json:"email" validate:"required,email"`
}

type ConfirmPasswordResetInput struct {
	Token    string `json:"token" validate:"required,uuid"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type CreateClassroomInput struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Semester    string `json:"semester" validate:"required,max=50"`
}

type JoinClassroomInput struct {
	Code string `json:"code" validate:"required,len=6"`
}

type CreateAssignmentInput struct {
	Title          string         `json:"title" validate:"required,min=2,max=200"`
	Description    string         `json:"description" validate:"max=5000"`
	DueDate        time.Time      `json:"dueDate" validate:"required"`
	Points         int            `json:"points" validate:"required,gt=0"`
	SubmissionType SubmissionType `json:"submissionType" validate:"required,oneof=code file text"`
	CodeTemplate   *string        `json:"codeTemplate"`
}

// FileUpload carries one multipart file from the handler to the service.
// The reader is only valid for the lifetime of the request.
type FileUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

type SubmitAssignmentInput struct {
	Content string
	File    *FileUpload
}

type GradeSubmissionInput struct {
	StudentId uuid.UUID `json:"studentId" validate:"required"`
	Grade     int       `json:"grade" validate:"gte=0"`
	Feedback  string    `json:"feedback" validate:"max=5000"`
}

type UploadMaterialInput struct {
	Title string
	File  *FileUpload
}

type CreateDiscussionInput struct {
	Title   string   `json:"title" validate:"required,min=2,max=200"`
	Content string   `json:"content" validate:"required,max=10000"`
	Tags    []string `json:"tags" validate:"max=10,dive,max=30"`
}

type UpdateDiscussionInput struct {
	Title   *string  `json:"title" validate:"omitempty,min=2,max=200"`
	Content *string  `json:"content" validate:"omitempty,max=10000"`
	Tags    []string `json:"tags" validate:"omitempty,max=10,dive,max=30"`
}

type CreateGroupInput struct {
	Name        string   `json:"name" validate:"required,min=2,max=200"`
	Description string   `json:"description" validate:"max=2000"`
	Tags        []string `json:"tags" validate:"max=10,dive,max=30"`
}

type CreateEventInput struct {
	Title       string    `json:"title" validate:"required,min=2,max=200"`
	Description string    `json:"description" validate:"max=2000"`
	Location    string    `json:"location" validate:"max=200"`
	StartsAt    time.Time `json:"startsAt" validate:"required"`
}

type CreateProjectInput struct {
	Title       string   `json:"title" validate:"required,min=2,max=200"`
	Description string   `json:"description" validate:"max=5000"`
	RepoURL     *string  `json:"repoUrl" validate:"omitempty,url"`
	Tags        []string `json:"tags" validate:"max=10,dive,max=30"`
}

type CreateCornerQuestionInput struct {
	Title    string   `json:"title" validate:"required,min=2,max=200"`
	Content  string   `json:"content" validate:"required,max=10000"`
	Language *string  `json:"language" validate:"omitempty,max=40"`
	Tags     []string `json:"tags" validate:"max=10,dive,max=30"`
}

type CreateCornerAnswerInput struct {
	Content string `json:"content" validate:"required,max=10000"`
}

type VoteInput struct {
	Value int `json:"value" validate:"required,oneof=-1 1"`
}

// ListParams is the shared pagination + search shape for community listings.
type ListParams struct {
	Search string
	Page   int
	Limit  int
}

func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 || p.Limit > 50 {
		p.Limit = 20
	}
	return p
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
