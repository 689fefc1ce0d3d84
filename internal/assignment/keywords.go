package assignment

import "strings"

// techCategories maps a declared expertise area to the keywords that
// mark an issue as relevant to it. An expertise tag matches either
// literally or through its category's keyword list.
var techCategories = map[string][]string{
	"frontend": {"react", "vue", "angular", "css", "html", "ui", "ux", "component", "browser", "safari", "chrome"},
	"backend":  {"api", "server", "endpoint", "service", "handler", "middleware", "grpc", "rest"},
	"database": {"sql", "postgres", "mysql", "mongodb", "migration", "query", "index", "schema"},
	"devops":   {"docker", "kubernetes", "deploy", "pipeline", "terraform", "infra", "ci", "cd"},
	"security": {"auth", "login", "vulnerability", "xss", "csrf", "encryption", "token", "permission"},
	"testing":  {"test", "qa", "e2e", "flaky", "coverage", "regression"},
	"mobile":   {"ios", "android", "mobile", "swift", "kotlin", "tablet"},
}

// expertiseMatches reports whether one expertise tag is relevant to the
// issue text, either literally or via its technology category.
func expertiseMatches(tag, issueText string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return false
	}
	if strings.Contains(issueText, tag) {
		return true
	}
	for _, keyword := range techCategories[tag] {
		if strings.Contains(issueText, keyword) {
			return true
		}
	}
	return false
}
