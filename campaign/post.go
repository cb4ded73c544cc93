package campaign

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// GenerateRequest is the inbound request body.
type GenerateRequest struct {
	SeedContent string `json:"seedContent"`
}

// Post is one generated social media post.
type Post struct {
	Platform   string `json:"platform"`
	Caption    string `json:"caption"`
	VisualIdea string `json:"visual_idea"`
}

// Campaign is the ordered list of posts produced by the model. Each entry is
// kept exactly as the model wrote it.
type Campaign []json.RawMessage

// ParseCampaign parses completion text into a Campaign. The text must be a
// JSON array; its elements are not validated.
func ParseCampaign(text string) (Campaign, error) {
	var c Campaign
	if err := json.Unmarshal([]byte(text), &c); err != nil {
		return nil, errors.Wrap(err, "completion is not a json array")
	}

	if c == nil {
		return nil, errors.New("completion is null")
	}

	return c, nil
}

// Posts decodes the entries that have the Post shape. Entries that do not are
// skipped.
func (c Campaign) Posts() []Post {
	posts := make([]Post, 0, len(c))
	for _, raw := range c {
		var p Post
		if err := json.Unmarshal(raw, &p); err != nil {
			continue
		}
		posts = append(posts, p)
	}

	return posts
}

// Platforms returns the platform of every decodable post.
func (c Campaign) Platforms() []string {
	var platforms []string
	for _, p := range c.Posts() {
		platforms = append(platforms, p.Platform)
	}

	return platforms
}
