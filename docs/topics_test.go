package docs

import (
	"bufio"
	"os"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics extracts the topic names listed in readme.md.
func readmeTopics(t *testing.T) []string {
	t.Helper()
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topics []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			topics = append(topics, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return topics
}

func TestTopics(t *testing.T) {
	// The readme and the embedded topic files must agree: every listed topic
	// loads, and every topic file is listed.
	listed := readmeTopics(t)
	if len(listed) == 0 {
		t.Fatal("readme.md lists no topics")
	}

	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := AllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		if topic == "readme" {
			continue
		}
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is embedded but not listed in readme.md", topic)
		}
	}
}

func TestTopicsAreValidMarkdown(t *testing.T) {
	all, err := AllTopics()
	if err != nil {
		t.Fatal(err)
	}
	parser := goldmark.New().Parser()
	for _, topic := range all {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatal(err)
			}
			source := []byte(content)
			root := parser.Parse(text.NewReader(source))

			// Every topic opens with a level-1 heading.
			first := root.FirstChild()
			heading, ok := first.(*ast.Heading)
			if !ok || heading.Level != 1 {
				t.Errorf("topic %q does not start with an H1", topic)
			}
		})
	}
}

func TestGetTopics(t *testing.T) {
	out, err := GetTopics("import", "rates")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "import") || !strings.Contains(out, "rates") {
		t.Errorf("concatenation incomplete:\n%s", out)
	}

	all, err := GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	single, err := GetTopics("readme")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) <= len(single) {
		t.Error(`"*" must expand to every topic`)
	}

	if _, err := GetTopics("no-such-topic"); err == nil {
		t.Error("unknown topic must be an error")
	}
}
