package service

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log"
	"strings"

	"anoa.com/quarterdirectory/internal/model"
	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
)

const usersIndex = "users"

// UserSearch is the fuzzy user search collaborator of the listing service:
// free text in, candidate user ids out, best match first.
type UserSearch interface {
	Search(ctx context.Context, term string, limit int) ([]int64, error)
}

// UserIndexer maintains the search index the directory queries. The users
// table belongs to the host application, so the index is synchronized by a
// scheduled sweep rather than by write hooks.
type UserIndexer interface {
	IndexUsers(users []model.User) error
	DeleteUser(id int64) error
}

type MeiliUserSearch struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
}

func NewMeiliUserSearch(client meilisearch.ServiceManager) *MeiliUserSearch {
	s := &MeiliUserSearch{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
	s.initIndex()
	return s
}

func (s *MeiliUserSearch) initIndex() {
	searchable := []string{"username", "name"}
	if _, err := s.client.Index(usersIndex).UpdateSearchableAttributes(&searchable); err != nil {
		log.Printf("Failed to update users searchable attributes: %v", err)
	}

	log.Println("Meilisearch users index initialized")
}

type meiliUserDoc struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// cleanNameForIndex strips any markup a profile name picked up upstream
// before it lands in the index.
func (s *MeiliUserSearch) cleanNameForIndex(name string) string {
	sanitized := s.sanitizer.Sanitize(name)
	cleanText := html.UnescapeString(sanitized)
	return strings.Join(strings.Fields(cleanText), " ")
}

func (s *MeiliUserSearch) IndexUsers(users []model.User) error {
	if len(users) == 0 {
		return nil
	}

	docs := make([]meiliUserDoc, 0, len(users))
	for _, u := range users {
		docs = append(docs, meiliUserDoc{
			ID:       u.ID,
			Username: u.Username,
			Name:     s.cleanNameForIndex(u.Name),
		})
	}

	task, err := s.client.Index(usersIndex).AddDocuments(docs, strPtr("id"))
	if err != nil {
		return err
	}
	log.Printf("Indexed %d users, task id: %d", len(docs), task.TaskUID)
	return nil
}

func (s *MeiliUserSearch) DeleteUser(id int64) error {
	_, err := s.client.Index(usersIndex).DeleteDocument(fmt.Sprintf("%d", id))
	return err
}

func (s *MeiliUserSearch) Search(ctx context.Context, term string, limit int) ([]int64, error) {
	resp, err := s.client.Index(usersIndex).SearchWithContext(ctx, term, &meilisearch.SearchRequest{
		Limit: int64(limit),
	})
	if err != nil {
		return nil, err
	}

	// Re-marshal the hits rather than poking at the client's hit type.
	raw, err := json.Marshal(resp.Hits)
	if err != nil {
		return nil, err
	}

	var docs []meiliUserDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}
	return ids, nil
}

func strPtr(s string) *string {
	return &s
}
