// Package validator checks social-network XML for structural and semantic
// defects using a tag stack and two linear passes over the input lines. It
// never raises on malformed input; every defect becomes an entry in the
// returned report.
package validator

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/snxml/snxml/pkg/logging"
)

var (
	anyTagRe = regexp.MustCompile(`</?([a-zA-Z_][a-zA-Z0-9_]*)[^>]*>`)
	idRe     = regexp.MustCompile(`<id>(.*?)</id>`)
)

type stackEntry struct {
	name string
	line int
}

type followerRef struct {
	id   string
	line int
}

// checker holds the mutable state of one validation call. A fresh checker
// is built per call, so independent validations can run concurrently.
type checker struct {
	errors       []Error
	stack        []stackEntry
	userIDs      map[string]struct{} // user ids seen so far in pass 2
	allUserIDs   map[string]struct{} // every user id in the document (pass 1)
	followerRefs []followerRef

	// Parent of the current line's first <id> element, captured during the
	// tag walk. Compact lines like <follower><id>7</id></follower> pop the
	// follower before the line ends, so the post-line stack top is the
	// wrong element to classify the id against.
	idParent string
	idDepth  int
}

func newChecker() *checker {
	return &checker{
		userIDs:    make(map[string]struct{}),
		allUserIDs: make(map[string]struct{}),
	}
}

// ValidateString validates an in-memory document and returns its report.
func ValidateString(content string) *Report {
	logger := logging.GetLogger("validator")
	defer logging.LogOperationStart(logger, "validate")()

	c := newChecker()
	c.collectUserIDs(content)
	c.validateContent(content)
	c.sweepUnclosed()

	sort.SliceStable(c.errors, func(i, j int) bool {
		return c.errors[i].Line < c.errors[j].Line
	})

	logger.Debug().Int("errors", len(c.errors)).Msg("validation finished")
	return newReport(c.errors)
}

// ValidateFile reads path and validates its contents. Read failures are
// reported as a single file-kind error on line 0, never returned as a Go
// error, so the validator is total over any input.
func ValidateFile(path string) *Report {
	content, err := os.ReadFile(path)
	if err != nil {
		description := fmt.Sprintf("Error reading file: %v", err)
		if os.IsNotExist(err) {
			description = fmt.Sprintf("File not found: %s", path)
		}
		return newReport([]Error{{Line: 0, Description: description, Kind: KindFile}})
	}
	return ValidateString(string(content))
}

func (c *checker) addError(line int, kind Kind, format string, args ...interface{}) {
	c.errors = append(c.errors, Error{
		Line:        line,
		Description: fmt.Sprintf(format, args...),
		Kind:        kind,
	})
}

// collectUserIDs is pass 1: it gathers every user's own id so that pass 2
// can resolve forward follower references without a third pass. Only the
// first id after each <user> is the user's own; later ids inside the block
// belong to followers and followings and must not count as known users.
func (c *checker) collectUserIDs(content string) {
	awaitingID := false
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		if strings.Contains(line, "<user>") {
			awaitingID = true
		}
		if awaitingID {
			if m := idRe.FindStringSubmatch(line); m != nil {
				if id := strings.TrimSpace(m[1]); id != "" {
					c.allUserIDs[id] = struct{}{}
				}
				awaitingID = false
			}
		}
		if strings.Contains(line, "</user>") {
			awaitingID = false
		}
	}
}

// validateContent is pass 2: structural checks against the tag stack plus
// the per-line semantic checks.
func (c *checker) validateContent(content string) {
	for lineNum, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		num := lineNum + 1

		// Basic syntax: a tag delimiter without its counterpart poisons the
		// whole line, which is skipped for tag processing.
		if strings.Contains(line, "<") && !strings.Contains(line, ">") {
			c.addError(num, KindSyntax, "Malformed tag: missing closing '>'")
			continue
		}
		if strings.Contains(line, ">") && !strings.Contains(line, "<") {
			c.addError(num, KindSyntax, "Malformed tag: missing opening '<'")
			continue
		}

		c.processTags(line, num)
		c.checkIdentifiers(line, num)
		c.checkRequiredField(line, num, "name", "Empty user name")
		c.checkRequiredField(line, num, "body", "Empty post body")
	}

	// Deferred reference check against the pass-1 id set.
	for _, ref := range c.followerRefs {
		if _, ok := c.allUserIDs[ref.id]; !ok {
			c.addError(ref.line, KindSemantic,
				"Invalid follower reference: user ID '%s' does not exist", ref.id)
		}
	}
}

// processTags walks the line's tags in document order against the stack.
// Self-closing tags are skipped: they open nothing and close nothing. The
// first <id> opening also records its parent for checkIdentifiers.
func (c *checker) processTags(line string, num int) {
	c.idParent = ""
	c.idDepth = 0
	for _, m := range anyTagRe.FindAllString(line, -1) {
		switch {
		case strings.HasPrefix(m, "</"):
			c.processClosingTag(tagName(m), num)
		case strings.HasSuffix(m, "/>"):
			// self-closing
		default:
			name := tagName(m)
			if name == "id" && c.idParent == "" && len(c.stack) > 0 {
				c.idParent = c.stack[len(c.stack)-1].name
				c.idDepth = len(c.stack)
			}
			c.stack = append(c.stack, stackEntry{name: name, line: num})
		}
	}
}

func (c *checker) processClosingTag(name string, num int) {
	if len(c.stack) == 0 {
		c.addError(num, KindStructure,
			"Closing tag '</%s>' without matching opening tag", name)
		return
	}
	top := c.stack[len(c.stack)-1]
	if top.name != name {
		// Pop anyway so the rest of the document is judged against a
		// corrected stack instead of cascading the same mismatch.
		c.addError(num, KindStructure,
			"Mismatched tags: expected '</%s>' but found '</%s>'", top.name, name)
	}
	c.stack = c.stack[:len(c.stack)-1]
}

// checkIdentifiers applies the semantic id rules: empty ids, duplicate user
// ids, and deferred follower references. The parent element was recorded by
// processTags at the <id> opening, so compact lines that open and close the
// parent in one go are classified correctly.
func (c *checker) checkIdentifiers(line string, num int) {
	if !strings.Contains(line, "<id>") || c.idDepth < 2 {
		return
	}
	m := idRe.FindStringSubmatch(line)
	if m == nil {
		return
	}

	id := strings.TrimSpace(m[1])
	if id == "" {
		c.addError(num, KindSemantic, "Empty user ID")
		return
	}

	switch c.idParent {
	case "user":
		if _, dup := c.userIDs[id]; dup {
			c.addError(num, KindSemantic, "Duplicate user ID '%s'", id)
		} else {
			c.userIDs[id] = struct{}{}
		}
	case "follower":
		c.followerRefs = append(c.followerRefs, followerRef{id: id, line: num})
	}
}

// checkRequiredField flags <tag></tag> content that is empty or whitespace.
func (c *checker) checkRequiredField(line string, num int, tag, description string) {
	openTag, closeTag := "<"+tag+">", "</"+tag+">"
	start := strings.Index(line, openTag)
	if start < 0 {
		return
	}
	end := strings.Index(line[start:], closeTag)
	if end < 0 {
		return
	}
	content := line[start+len(openTag) : start+end]
	if strings.TrimSpace(content) == "" {
		c.addError(num, KindSemantic, description)
	}
}

// sweepUnclosed reports every entry left on the stack at end of input.
func (c *checker) sweepUnclosed() {
	for _, entry := range c.stack {
		c.addError(entry.line, KindStructure, "Unclosed tag '<%s>'", entry.name)
	}
	c.stack = nil
}

func tagName(raw string) string {
	m := anyTagRe.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return m[1]
}
