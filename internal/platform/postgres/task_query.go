package postgres

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/taskr-api/internal/domain"
)

const taskColumns = "id, user_id, title, description, status, created_at, updated_at"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes term safe to embed in a LIKE pattern so that it only
// ever matches itself.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// buildTaskListQuery returns the owner-scoped listing query for filter along
// with its positional arguments.
func buildTaskListQuery(userID uuid.UUID, filter domain.TaskFilter) (string, []any) {
	conditions := []string{"user_id = $1"}
	args := []any{userID}

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		n := len(args)
		conditions = append(conditions,
			fmt.Sprintf(`(title ILIKE $%d ESCAPE '\' OR description ILIKE $%d ESCAPE '\')`, n, n))
	}

	query := "SELECT " + taskColumns +
		" FROM tasks WHERE " + strings.Join(conditions, " AND ") +
		" ORDER BY created_at, id"

	return query, args
}
