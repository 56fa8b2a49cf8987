package dokv

import (
	"embed"
	"io/fs"
)

//go:embed topics/*.md topics/*.txt
var topicFiles embed.FS

// helpTopics returns the embedded topic files rooted at the topics directory
func helpTopics() fs.FS {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		panic(err)
	}
	return sub
}
