package campaign

import (
	"bytes"
	_ "embed"
	"text/template"

	"github.com/pkg/errors"
)

// PostCount is the number of posts requested from the model.
const PostCount = 3

//go:embed prompt.tmpl
var promptTemplate string

var promptTmpl = template.Must(template.New("prompt").Parse(promptTemplate))

type promptData struct {
	SeedContent string
	PostCount   int
}

// BuildPrompt embeds seed verbatim into the campaign instructions.
func BuildPrompt(seed string) (string, error) {
	var buf bytes.Buffer
	if err := promptTmpl.Execute(&buf, promptData{SeedContent: seed, PostCount: PostCount}); err != nil {
		return "", errors.Wrap(err, "failed rendering prompt")
	}

	return buf.String(), nil
}
