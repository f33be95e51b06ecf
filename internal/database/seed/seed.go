// Package seed holds the demo data set used by the in-memory backend and the
// initial data loader.
package seed

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demo []byte

type User struct {
	ID        string    `yaml:"id"`
	Email     string    `yaml:"email"`
	CreatedAt time.Time `yaml:"createdAt"`
}

type Link struct {
	ID          string    `yaml:"id"`
	UserID      string    `yaml:"userId"`
	URL         string    `yaml:"url"`
	Title       string    `yaml:"title"`
	Description *string   `yaml:"description"`
	IsPermanent bool      `yaml:"isPermanent"`
	IsPublic    bool      `yaml:"isPublic"`
	CreatedAt   time.Time `yaml:"createdAt"`
	UpdatedAt   time.Time `yaml:"updatedAt"`
}

type Note struct {
	ID          string    `yaml:"id"`
	LinkID      string    `yaml:"linkId"`
	Content     string    `yaml:"content"`
	IsPublished bool      `yaml:"isPublished"`
	CreatedAt   time.Time `yaml:"createdAt"`
	UpdatedAt   time.Time `yaml:"updatedAt"`
}

type Label struct {
	ID        string    `yaml:"id"`
	UserID    string    `yaml:"userId"`
	Name      string    `yaml:"name"`
	CreatedAt time.Time `yaml:"createdAt"`
}

type LinkLabel struct {
	LinkID  string `yaml:"linkId"`
	LabelID string `yaml:"labelId"`
}

// DataSet is a complete, internally consistent set of rows.
type DataSet struct {
	Users      []User      `yaml:"users"`
	Links      []Link      `yaml:"links"`
	Notes      []Note      `yaml:"notes"`
	Labels     []Label     `yaml:"labels"`
	LinkLabels []LinkLabel `yaml:"linkLabels"`
}

// Demo returns the embedded demo data set.
func Demo() (*DataSet, error) {
	return Parse(demo)
}

// LoadFile reads a data set from a YAML file.
func LoadFile(path string) (*DataSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and checks a YAML data set.
func Parse(data []byte) (*DataSet, error) {
	var ds DataSet
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate checks that every reference in the data set resolves.
func (ds *DataSet) Validate() error {
	users := make(map[string]bool, len(ds.Users))
	for _, u := range ds.Users {
		users[u.ID] = true
	}
	links := make(map[string]bool, len(ds.Links))
	for _, l := range ds.Links {
		if !users[l.UserID] {
			return fmt.Errorf("link %s references unknown user %s", l.ID, l.UserID)
		}
		links[l.ID] = true
	}
	for _, n := range ds.Notes {
		if !links[n.LinkID] {
			return fmt.Errorf("note %s references unknown link %s", n.ID, n.LinkID)
		}
	}
	labels := make(map[string]bool, len(ds.Labels))
	for _, l := range ds.Labels {
		if !users[l.UserID] {
			return fmt.Errorf("label %s references unknown user %s", l.ID, l.UserID)
		}
		labels[l.ID] = true
	}
	for _, ll := range ds.LinkLabels {
		if !links[ll.LinkID] || !labels[ll.LabelID] {
			return fmt.Errorf("link label %s/%s references unknown rows", ll.LinkID, ll.LabelID)
		}
	}
	return nil
}
