package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleTeacher
}

type SubmissionType string

const (
	SubmissionTypeCode SubmissionType = "code"
	SubmissionTypeFile SubmissionType = "file"
	SubmissionTypeText SubmissionType = "text"
)

func (s SubmissionType) String() string {
	return string(s)
}

func (s SubmissionType) IsValid() bool {
	return s == SubmissionTypeCode || s == SubmissionTypeFile || s == SubmissionTypeText
}

type SubmissionStatus string

const (
	SubmissionStatusSubmitted SubmissionStatus = "submitted"
	SubmissionStatusGraded    SubmissionStatus = "graded"
)

func (s SubmissionStatus) String() string {
	return string(s)
}

type User struct {
	Id           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	Department   *string   `db:"department" json:"department,omitempty"`
	AvatarURL    *string   `db:"avatar_url" json:"avatarUrl,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	EditedAt     time.Time `db:"edited_at" json:"editedAt"`
}

// UserPublic is the projection safe to return for other users.
type UserPublic struct {
	Id         uuid.UUID `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Email      string    `db:"email" json:"email"`
	Role       Role      `db:"role" json:"role"`
	Department *string   `db:"department" json:"department,omitempty"`
	AvatarURL  *string   `db:"avatar_url" json:"avatarUrl,omitempty"`
}

type PasswordReset struct {
	Token     uuid.UUID `db:"token"`
	UserId    uuid.UUID `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

type Classroom struct {
	Id           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Description  string    `db:"description" json:"description"`
	Code         string    `db:"code" json:"code"`
	Semester     string    `db:"semester" json:"semester"`
	TeacherId    uuid.UUID `db:"teacher_id" json:"teacherId"`
	TeacherName  string    `db:"teacher_name" json:"teacherName"`
	StudentCount int       `db:"student_count" json:"studentCount"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	EditedAt     time.Time `db:"edited_at" json:"editedAt"`
}

type Material struct {
	Id          uuid.UUID `db:"id" json:"id"`
	ClassroomId uuid.UUID `db:"classroom_id" json:"classroomId"`
	Title       string    `db:"title" json:"title"`
	ContentType string    `db:"content_type" json:"type"`
	Size        string    `db:"size" json:"size"`
	FileKey     string    `db:"file_key" json:"-"`
	FileURL     string    `db:"file_url" json:"fileUrl"`
	UploadedAt  time.Time `db:"uploaded_at" json:"uploadedOn"`
}

type Assignment struct {
	Id             uuid.UUID      `db:"id" json:"id"`
	ClassroomId    uuid.UUID      `db:"classroom_id" json:"classroomId"`
	Title          string         `db:"title" json:"title"`
	Description    string         `db:"description" json:"description"`
	DueDate        time.Time      `db:"due_date" json:"dueDate"`
	Points         int            `db:"points" json:"points"`
	SubmissionType SubmissionType `db:"submission_type" json:"submissionType"`
	CodeTemplate   *string        `db:"code_template" json:"codeTemplate,omitempty"`
	CreatedAt      time.Time      `db:"created_at" json:"createdAt"`
	EditedAt       time.Time      `db:"edited_at" json:"editedAt"`

	Submissions []*Submission `db:"-" json:"submissions,omitempty"`
	Questions   []*Question   `db:"-" json:"questions,omitempty"`
}

type Submission struct {
	Id           uuid.UUID        `db:"id" json:"id"`
	AssignmentId uuid.UUID        `db:"assignment_id" json:"assignmentId"`
	StudentId    uuid.UUID        `db:"student_id" json:"studentId"`
	StudentName  string           `db:"student_name" json:"studentName"`
	StudentEmail string           `db:"student_email" json:"studentEmail"`
	Content      *string          `db:"content" json:"content,omitempty"`
	FileURL      *string          `db:"file_url" json:"fileUrl,omitempty"`
	FileType     *string          `db:"file_type" json:"fileType,omitempty"`
	FileSize     *int64           `db:"file_size" json:"fileSize,omitempty"`
	Status       SubmissionStatus `db:"status" json:"status"`
	Grade        *int             `db:"grade" json:"grade,omitempty"`
	Feedback     *string          `db:"feedback" json:"feedback,omitempty"`
	SubmittedAt  time.Time        `db:"submitted_at" json:"submittedAt"`
	GradedAt     *time.Time       `db:"graded_at" json:"gradedAt,omitempty"`
}

type Question struct {
	Id           uuid.UUID `db:"id" json:"id"`
	AssignmentId uuid.UUID `db:"assignment_id" json:"assignmentId"`
	StudentId    uuid.UUID `db:"student_id" json:"studentId"`
	StudentName  string    `db:"student_name" json:"studentName"`
	Question     string    `db:"question" json:"question"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`

	Answers []*Answer `db:"-" json:"answers"`
}

type Answer struct {
	Id         uuid.UUID `db:"id" json:"id"`
	QuestionId uuid.UUID `db:"question_id" json:"questionId"`
	UserId     uuid.UUID `db:"user_id" json:"userId"`
	UserName   string    `db:"user_name" json:"userName"`
	Answer     string    `db:"answer" json:"answer"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

type Discussion struct {
	Id        uuid.UUID `db:"id" json:"id"`
	AuthorId  uuid.UUID `db:"author_id" json:"authorId"`
	Author    string    `db:"author" json:"author"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	Tags      []string  `db:"tags" json:"tags"`
	Likes     int       `db:"likes" json:"likes"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	EditedAt  time.Time `db:"edited_at" json:"editedAt"`
}

type Group struct {
	Id          uuid.UUID `db:"id" json:"id"`
	CreatorId   uuid.UUID `db:"creator_id" json:"creatorId"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Tags        []string  `db:"tags" json:"tags"`
	MemberCount int       `db:"member_count" json:"memberCount"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type Event struct {
	Id            uuid.UUID `db:"id" json:"id"`
	CreatorId     uuid.UUID `db:"creator_id" json:"creatorId"`
	Title         string    `db:"title" json:"title"`
	Description   string    `db:"description" json:"description"`
	Location      string    `db:"location" json:"location"`
	StartsAt      time.Time `db:"starts_at" json:"startsAt"`
	AttendeeCount int       `db:"attendee_count" json:"attendeeCount"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

type Project struct {
	Id          uuid.UUID `db:"id" json:"id"`
	AuthorId    uuid.UUID `db:"author_id" json:"authorId"`
	Author      string    `db:"author" json:"author"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	RepoURL     *string   `db:"repo_url" json:"repoUrl,omitempty"`
	Tags        []string  `db:"tags" json:"tags"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	EditedAt    time.Time `db:"edited_at" json:"editedAt"`
}

type CornerQuestion struct {
	Id          uuid.UUID `db:"id" json:"id"`
	AuthorId    uuid.UUID `db:"author_id" json:"authorId"`
	Author      string    `db:"author" json:"author"`
	Title       string    `db:"title" json:"title"`
	Content     string    `db:"content" json:"content"`
	Language    *string   `db:"language" json:"language,omitempty"`
	Tags        []string  `db:"tags" json:"tags"`
	Votes       int       `db:"votes" json:"votes"`
	AnswerCount int       `db:"answer_count" json:"answerCount"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type CornerAnswer struct {
	Id         uuid.UUID `db:"id" json:"id"`
	QuestionId uuid.UUID `db:"question_id" json:"questionId"`
	AuthorId   uuid.UUID `db:"author_id" json:"authorId"`
	Author     string    `db:"author" json:"author"`
	Content    string    `db:"content" json:"content"`
	Accepted   bool      `db:"accepted" json:"accepted"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}
