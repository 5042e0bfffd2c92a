package data

import (
	"fmt"
	"strings"

	"github.com/nabin00012/codecommons-sub000/internal/model"
)

var ErrNoFieldsToUpdate = fmt.Errorf("no fields to update")

func buildUserUpdateQuery(input *model.UpdateUserInput) (string, []any, error) {
	var set []string
	var args []any
	argIdx := 1

	if input.Name != nil {
		set = append(set, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, input.Name)
		argIdx++
	}
	if input.Department != nil {
		set = append(set, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, input.Department)
		argIdx++
	}
	if input.AvatarURL != nil {
		set = append(set, fmt.Sprintf("avatar_url = $%d", argIdx))
		args = append(args, input.AvatarURL)
		argIdx++
	}

	if len(set) == 0 {
		return "", nil, ErrNoFieldsToUpdate
	}
	set = append(set, "edited_at = NOW()")

	query := fmt.Sprintf(`
UPDATE users
SET %s
WHERE id = $%d
RETURNING
	id, name, email, password_hash, role,
	department, avatar_url, created_at, edited_at
`,
		strings.Join(set, ", "),
		argIdx,
	)
	return query, args, nil
}

func buildDiscussionUpdateQuery(input *model.UpdateDiscussionInput) (string, []any, error) {
	var set []string
	var args []any
	argIdx := 1

	if input.Title != nil {
		set = append(set, fmt.Sprintf("title = $%d", argIdx))
		args = append(args, input.Title)
		argIdx++
	}
	if input.Content != nil {
		set = append(set, fmt.Sprintf("content = $%d", argIdx))
		args = append(args, input.Content)
		argIdx++
	}
	if input.Tags != nil {
		set = append(set, fmt.Sprintf("tags = $%d", argIdx))
		args = append(args, input.Tags)
		argIdx++
	}

	if len(set) == 0 {
		return "", nil, ErrNoFieldsToUpdate
	}
	set = append(set, "edited_at = NOW()")

	query := fmt.Sprintf(`
UPDATE discussions
SET %s
WHERE id = $%d
RETURNING id, author_id,
	(SELECT name FROM users WHERE users.id = discussions.author_id) AS author,
	title, content, tags,
	(SELECT COUNT(*) FROM discussion_likes dl WHERE dl.discussion_id = discussions.id)::int AS likes,
	created_at, edited_at
`,
		strings.Join(set, ", "),
		argIdx,
	)
	return query, args, nil
}
