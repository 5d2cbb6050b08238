// Package document is the parsed-data layer above the raw-text core. It
// loads a social-network document into an element tree and exposes the
// users, posts, and follow relationships that the analytics and export
// commands consume. It plays no part in tokenization or validation.
package document

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/snxml/snxml/pkg/errors"
	"github.com/snxml/snxml/pkg/logging"
)

// User is one parsed user record.
type User struct {
	ID         string
	Name       string
	Posts      []Post
	Followers  []string
	Followings []string
}

// Post is one parsed post with its topics.
type Post struct {
	Body   string
	Topics []string
}

// Record is the flat export row produced for the json command.
type Record struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Posts     []string `json:"posts"`
	Followers []string `json:"followers"`
}

// Edge is one directed follow relationship: From follows To.
type Edge struct {
	From string
	To   string
}

// Document wraps a parsed element tree.
type Document struct {
	root *etree.Element
}

// Parse loads a document from raw text.
func Parse(content string) (*Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromString(content); err != nil {
		return nil, errors.Wrap(err, errors.ErrDocumentParse, "parsing document")
	}
	root := tree.Root()
	if root == nil {
		return nil, errors.New(errors.ErrDocumentParse, "document has no root element")
	}
	return &Document{root: root}, nil
}

// Users returns every user in document order.
func (d *Document) Users() []User {
	elems := d.root.FindElements("//user")
	logger := logging.GetLogger("document")
	logger.Debug().Int("users", len(elems)).Msg("extracted users")

	users := make([]User, 0, len(elems))
	for _, elem := range elems {
		id := userID(elem)
		if id == "" {
			continue
		}
		users = append(users, User{
			ID:         id,
			Name:       userName(elem, id),
			Posts:      posts(elem),
			Followers:  relatedIDs(elem, "followers", "follower"),
			Followings: relatedIDs(elem, "followings", "following"),
		})
	}
	return users
}

// Nodes returns the id-to-name table used as graph nodes.
func (d *Document) Nodes() map[string]string {
	nodes := make(map[string]string)
	for _, u := range d.Users() {
		nodes[u.ID] = u.Name
	}
	return nodes
}

// Edges returns every follow relationship. Both the nested follower
// structure and the <connections><friend user_id=…/> alternate are
// supported; an edge user→follower means the user follows that follower,
// matching the original data model.
func (d *Document) Edges() []Edge {
	var edges []Edge
	for _, elem := range d.root.FindElements("//user") {
		id := userID(elem)
		if id == "" {
			continue
		}
		for _, follower := range relatedIDs(elem, "followers", "follower") {
			edges = append(edges, Edge{From: id, To: follower})
		}
		if conns := elem.SelectElement("connections"); conns != nil {
			for _, friend := range conns.SelectElements("friend") {
				if friendID := friend.SelectAttrValue("user_id", ""); friendID != "" {
					edges = append(edges, Edge{From: id, To: friendID})
				}
			}
		}
	}
	return edges
}

// Records flattens the users into export rows.
func (d *Document) Records() []Record {
	users := d.Users()
	records := make([]Record, 0, len(users))
	for _, u := range users {
		bodies := make([]string, 0, len(u.Posts))
		for _, p := range u.Posts {
			bodies = append(bodies, p.Body)
		}
		records = append(records, Record{
			ID:        u.ID,
			Name:      u.Name,
			Posts:     bodies,
			Followers: u.Followers,
		})
	}
	return records
}

// SearchResult is one post matched by SearchPosts.
type SearchResult struct {
	UserID   string
	UserName string
	Body     string
	Topics   []string
}

// SearchPosts returns posts whose body contains word (case-insensitive) or
// whose topics include topic (exact match). Empty arguments match nothing;
// passing both requires both to match.
func (d *Document) SearchPosts(word, topic string) []SearchResult {
	if word == "" && topic == "" {
		return nil
	}
	var results []SearchResult
	for _, u := range d.Users() {
		for _, p := range u.Posts {
			if word != "" && !strings.Contains(strings.ToLower(p.Body), strings.ToLower(word)) {
				continue
			}
			if topic != "" && !containsString(p.Topics, topic) {
				continue
			}
			results = append(results, SearchResult{
				UserID:   u.ID,
				UserName: u.Name,
				Body:     p.Body,
				Topics:   p.Topics,
			})
		}
	}
	return results
}

// userID resolves a user's id with attribute-then-child precedence.
func userID(elem *etree.Element) string {
	if id := elem.SelectAttrValue("id", ""); id != "" {
		return strings.TrimSpace(id)
	}
	if child := elem.SelectElement("id"); child != nil {
		return strings.TrimSpace(child.Text())
	}
	return ""
}

func userName(elem *etree.Element, id string) string {
	if child := elem.SelectElement("name"); child != nil {
		if name := strings.TrimSpace(child.Text()); name != "" {
			return name
		}
	}
	return "User " + id
}

func posts(elem *etree.Element) []Post {
	var out []Post
	for _, postElem := range elem.FindElements(".//post") {
		post := Post{}
		if body := postElem.SelectElement("body"); body != nil {
			post.Body = strings.TrimSpace(body.Text())
		}
		for _, topicElem := range postElem.FindElements(".//topics/topic") {
			if topic := strings.TrimSpace(topicElem.Text()); topic != "" {
				post.Topics = append(post.Topics, topic)
			}
		}
		out = append(out, post)
	}
	return out
}

// relatedIDs collects <container><item><id>…</id></item></container> values.
func relatedIDs(elem *etree.Element, container, item string) []string {
	containerElem := elem.SelectElement(container)
	if containerElem == nil {
		return nil
	}
	var ids []string
	for _, itemElem := range containerElem.SelectElements(item) {
		if idElem := itemElem.SelectElement("id"); idElem != nil {
			if id := strings.TrimSpace(idElem.Text()); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
