package agent

import (
	"strings"
)

const userPromptPrefix = "Write the following snippet: "

// holds all the context needed to build the system prompt
type SystemPromptContext struct {
	Conversations []Message
}

// assembles the complete system prompt
func buildSystemPrompt(ctx SystemPromptContext) string {
	var builder strings.Builder

	builder.WriteString(rolePrompt)
	builder.WriteString("\n\n")

	builder.WriteString("═══════════════════════════════════════════════════════════\n")
	builder.WriteString("ENVIRONMENT\n")
	builder.WriteString("═══════════════════════════════════════════════════════════\n\n")
	builder.WriteString(environmentPrompt)
	builder.WriteString("\n\n")

	if len(ctx.Conversations) > 0 {
		builder.WriteString("═══════════════════════════════════════════════════════════\n")
		builder.WriteString("PROJECT HISTORY\n")
		builder.WriteString("═══════════════════════════════════════════════════════════\n\n")
		builder.WriteString("Earlier turns of this project are included as messages. ")
		builder.WriteString("Keep existing files unless the user asks to change them, and return the full content of every file you touch.\n\n")
	}

	builder.WriteString("═══════════════════════════════════════════════════════════\n")
	builder.WriteString("RESPONSE FORMAT\n")
	builder.WriteString("═══════════════════════════════════════════════════════════\n\n")
	builder.WriteString(responseFormatPrompt)

	return builder.String()
}

const rolePrompt = `You are an expert next.js developer. You write readable and maintainable next.js code. You write simple next.js and react snippets.`

const environmentPrompt = `- The app runs in a sandboxed Next.js 15 project with the App Router, TypeScript and Tailwind CSS already configured.
- The dev server is already running on port 3000 with hot reload; never start it or run build commands.
- The main entry file is app/page.tsx. Add "use client" at the top of any file that uses React hooks or browser APIs.
- File paths are relative to the project root (for example "app/page.tsx", "components/header.tsx"). Never use absolute paths.
- Do not modify package.json or lock files; use only React, Next.js and Tailwind utilities.
- Build complete, realistic layouts with semantic HTML and accessible markup. No placeholders or TODO comments.`

const responseFormatPrompt = `Answer with ONE JSON object and nothing else:
{
  "title": "short 2-5 word title of the result",
  "summary": "one or two friendly sentences describing what you built",
  "files": {
    "app/page.tsx": "full file content"
  }
}

- "files" must contain at least one entry, each value the complete file content.
- Escape newlines and quotes so the object is valid JSON.
- Do not wrap the object in markdown unless you cannot avoid it.`

const retryPrompt = `your previous answer could not be parsed: %s.
return ONLY the JSON object with "title", "summary" and "files", without any explanation.`
