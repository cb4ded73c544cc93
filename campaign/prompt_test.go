package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	p, err := BuildPrompt("Our new product launch")
	require.NoError(t, err)

	assert.Contains(t, p, `The content is: "Our new product launch"`)
	assert.Contains(t, p, "3 distinct posts")
	assert.Contains(t, p, `"platform", "caption", and "visual_idea"`)
	assert.Contains(t, p, "valid JSON array of exactly 3 objects")
	assert.Contains(t, p, "Do not include markdown ticks")
}

func TestBuildPrompt_verbatim(t *testing.T) {
	seed := `Fish & chips <b>"fresh"</b> {{.PostCount}}`

	p, err := BuildPrompt(seed)
	require.NoError(t, err)

	assert.Contains(t, p, seed)
}
