package state_test

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"linkedlist-backend/internal/auth"
	"linkedlist-backend/internal/client"
	"linkedlist-backend/internal/database/models"
	"linkedlist-backend/internal/state"
)

var _ state.API = (*client.Client)(nil)

var errBoom = errors.New("boom")

// fakeAPI keeps links, notes and labels in maps and counts calls
type fakeAPI struct {
	mu         sync.Mutex
	links      []models.Link
	notes      map[string][]models.Note
	labels     []models.Label
	linkLabels map[string][]string
	me         *auth.MeResponse
	seq        int

	failLinksByLabel string
	failNext         error
	calls            map[string]int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		links: []models.Link{
			{ID: "link-3", Title: "Tailwind"},
			{ID: "link-2", Title: "SvelteKit"},
			{ID: "link-1", Title: "Svelte"},
		},
		notes: map[string][]models.Note{
			"link-1": {{ID: "note-1", LinkID: "link-1", Content: "first"}},
		},
		labels: []models.Label{
			{ID: "label-1", Name: "Svelte"},
			{ID: "label-2", Name: "Framework"},
			{ID: "label-3", Name: "CSS"},
		},
		linkLabels: map[string][]string{
			"link-1": {"label-1", "label-2"},
			"link-2": {"label-1", "label-2"},
			"link-3": {"label-3"},
		},
		me:    &auth.MeResponse{},
		calls: make(map[string]int),
	}
}

func (f *fakeAPI) enter(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	if err := f.failNext; err != nil {
		f.failNext = nil
		return err
	}
	return nil
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-new-%d", prefix, f.seq)
}

func (f *fakeAPI) GetLinks(ctx context.Context) ([]models.Link, error) {
	if err := f.enter("GetLinks"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Link(nil), f.links...), nil
}

func (f *fakeAPI) GetFullLink(ctx context.Context, id string) (*models.LinkFull, error) {
	if err := f.enter("GetFullLink"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.links {
		if l.ID != id {
			continue
		}
		full := &models.LinkFull{Link: l, Notes: append([]models.Note{}, f.notes[id]...), Labels: []models.Label{}}
		for _, labelID := range f.linkLabels[id] {
			for _, label := range f.labels {
				if label.ID == labelID {
					full.Labels = append(full.Labels, label)
				}
			}
		}
		return full, nil
	}
	return nil, &client.APIError{StatusCode: 404, Body: []byte(`{"error":"Link not found"}`)}
}

func (f *fakeAPI) CreateLink(ctx context.Context, in models.LinkInput) (*models.Link, error) {
	if err := f.enter("CreateLink"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	link := models.Link{ID: f.nextID("link"), URL: in.URL, Title: in.Title}
	f.links = append([]models.Link{link}, f.links...)
	return &link, nil
}

func (f *fakeAPI) UpdateLink(ctx context.Context, id string, patch models.LinkPatch) (*models.Link, error) {
	if err := f.enter("UpdateLink"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.links {
		if f.links[i].ID == id {
			patch.Apply(&f.links[i])
			link := f.links[i]
			return &link, nil
		}
	}
	return nil, &client.APIError{StatusCode: 404}
}

func (f *fakeAPI) DeleteLink(ctx context.Context, id string) error {
	return f.enter("DeleteLink")
}

func (f *fakeAPI) CreateNote(ctx context.Context, in models.NoteInput) (*models.Note, error) {
	if err := f.enter("CreateNote"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	note := models.Note{ID: f.nextID("note"), LinkID: in.LinkID, Content: in.Content, IsPublished: in.IsPublished}
	f.notes[in.LinkID] = append(f.notes[in.LinkID], note)
	return &note, nil
}

func (f *fakeAPI) UpdateNote(ctx context.Context, id string, patch models.NotePatch) (*models.Note, error) {
	if err := f.enter("UpdateNote"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for linkID, notes := range f.notes {
		for i := range notes {
			if notes[i].ID == id {
				patch.Apply(&f.notes[linkID][i])
				note := f.notes[linkID][i]
				return &note, nil
			}
		}
	}
	return nil, &client.APIError{StatusCode: 404}
}

func (f *fakeAPI) DeleteNote(ctx context.Context, id string) error {
	return f.enter("DeleteNote")
}

func (f *fakeAPI) GetLabels(ctx context.Context) ([]models.Label, error) {
	if err := f.enter("GetLabels"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Label(nil), f.labels...), nil
}

func (f *fakeAPI) CreateLabel(ctx context.Context, name string) (*models.Label, error) {
	if err := f.enter("CreateLabel"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	label := models.Label{ID: f.nextID("label"), Name: name}
	f.labels = append(f.labels, label)
	return &label, nil
}

func (f *fakeAPI) UpdateLabel(ctx context.Context, id, name string) (*models.Label, error) {
	if err := f.enter("UpdateLabel"); err != nil {
		return nil, err
	}
	return &models.Label{ID: id, Name: name}, nil
}

func (f *fakeAPI) DeleteLabel(ctx context.Context, id string) error {
	return f.enter("DeleteLabel")
}

func (f *fakeAPI) AddLabelToLink(ctx context.Context, linkID, labelID string) error {
	if err := f.enter("AddLabelToLink"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.linkLabels[linkID] = append(f.linkLabels[linkID], labelID)
	return nil
}

func (f *fakeAPI) RemoveLabelFromLink(ctx context.Context, linkID, labelID string) error {
	return f.enter("RemoveLabelFromLink")
}

func (f *fakeAPI) GetLinksByLabel(ctx context.Context, labelID string) ([]models.Link, error) {
	if err := f.enter("GetLinksByLabel"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if labelID == f.failLinksByLabel {
		return nil, errBoom
	}
	var out []models.Link
	for _, l := range f.links {
		for _, id := range f.linkLabels[l.ID] {
			if id == labelID {
				out = append(out, l)
			}
		}
	}
	return out, nil
}

func (f *fakeAPI) Me(ctx context.Context) (*auth.MeResponse, error) {
	if err := f.enter("Me"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.me, nil
}

func (f *fakeAPI) Logout(ctx context.Context) error {
	if err := f.enter("Logout"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.me = &auth.MeResponse{}
	return nil
}
