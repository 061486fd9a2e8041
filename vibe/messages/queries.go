package messages

const (
	messageColumns = `
		m.id, m.content, m.role, m.type, m.project_id, m.create_at, m.update_at,
		f.id, f.message_id, f.sandbox_url, f.title, f.files, f.create_at, f.update_at
	`

	queryListByProject = `
		SELECT` + messageColumns + `
		FROM messages m
		LEFT JOIN fragments f ON f.message_id = m.id
		WHERE m.project_id = $1
		ORDER BY m.update_at ASC, m.create_at ASC, m.id ASC
	`

	// newest first, callers reverse to get chronological order
	queryListRecent = `
		SELECT` + messageColumns + `
		FROM messages m
		LEFT JOIN fragments f ON f.message_id = m.id
		WHERE m.project_id = $1
		ORDER BY m.update_at DESC, m.create_at DESC, m.id DESC
		LIMIT $2
	`

	queryCreate = `
		INSERT INTO messages (id, content, role, type, project_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, content, role, type, project_id, create_at, update_at
	`

	queryCreateFragment = `
		INSERT INTO fragments (id, message_id, sandbox_url, title, files)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, message_id, sandbox_url, title, files, create_at, update_at
	`

	queryTouchProject = `
		UPDATE projects SET update_at = NOW() WHERE id = $1
	`

	queryGetFragment = `
		SELECT id, message_id, sandbox_url, title, files, create_at, update_at
		FROM fragments
		WHERE id = $1
	`
)
