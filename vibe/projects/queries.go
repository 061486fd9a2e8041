package projects

const (
	queryGet = `
		SELECT id, name, create_at, update_at
		FROM projects
		WHERE id = $1
	`

	queryList = `
		SELECT id, name, create_at, update_at
		FROM projects
		ORDER BY update_at DESC, create_at DESC, id DESC
	`

	queryCreate = `
		INSERT INTO projects (id, name)
		VALUES ($1, $2)
		RETURNING id, name, create_at, update_at
	`

	// seed message of a new project, always USER / RESULT
	queryCreateSeedMessage = `
		INSERT INTO messages (id, content, role, type, project_id)
		VALUES ($1, $2, 'USER', 'RESULT', $3)
	`
)
