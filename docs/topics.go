// Package docs serves the embedded documentation topics behind `wd topic`.
package docs

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var docs embed.FS

// GetTopic returns the content of a documentation topic.
func GetTopic(topic string) (string, error) {
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of multiple topics concatenated together.
// "*" expands to every topic.
func GetTopics(topics ...string) (string, error) {
	expanded := make([]string, 0, len(topics))
	for _, topic := range topics {
		if topic == "*" {
			all, err := AllTopics()
			if err != nil {
				return "", err
			}
			expanded = append(expanded, all...)
			continue
		}
		expanded = append(expanded, topic)
	}

	var b bytes.Buffer
	for _, topic := range expanded {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// AllTopics lists the available topic names, sorted.
func AllTopics() ([]string, error) {
	entries, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	topics := make([]string, 0, len(entries))
	for _, e := range entries {
		topics = append(topics, strings.TrimSuffix(e, ".md"))
	}
	sort.Strings(topics)
	return topics, nil
}
