package prompts

import (
	_ "embed"
)

//go:embed prompts.yaml
var defaultPromptsYAML []byte

// Well-known prompt names used by the writer/critic flow.
const (
	WriterPrompt = "writer_prompt"
	CriticPrompt = "critic_prompt"
)
