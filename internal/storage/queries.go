package storage

var schema = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		create_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		update_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS messages (
		id TEXT PRIMARY KEY,
		content TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('USER', 'ASSISTANT')),
		type TEXT NOT NULL CHECK (type IN ('RESULT', 'ERROR')),
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		create_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		update_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS fragments (
		id TEXT PRIMARY KEY,
		message_id TEXT NOT NULL UNIQUE REFERENCES messages(id) ON DELETE CASCADE,
		sandbox_url TEXT NOT NULL,
		title TEXT NOT NULL,
		files JSONB NOT NULL DEFAULT '{}'::jsonb,
		create_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		update_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_messages_project_update ON messages (project_id, update_at)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_update ON projects (update_at DESC)`,
}
