package model

import (
	"fmt"
	"strings"
	"time"
)

// EntityType is the kind of object a comment is attached to.
type EntityType string

const (
	EntityMarket  EntityType = "MARKET"
	EntityList    EntityType = "LIST"
	EntityComment EntityType = "COMMENT"
)

// Comment is a comment on a market, list or another comment.
type Comment struct {
	ID         string     `json:"id"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	Edited     bool       `json:"edited"`
	AuthorID   string     `json:"authorId"`
	ParentID   *string    `json:"parentId"`
	Hidden     bool       `json:"hidden"`
	EntityID   string     `json:"entityId"`
	EntityType EntityType `json:"entityType"`
	Author     *User      `json:"author,omitempty"`
	Reactions  []Reaction `json:"reactions"`
}

func (c Comment) Validate() error {
	const name = "Comment"
	if err := checkID(name, "id", c.ID); err != nil {
		return err
	}
	if err := firstErr(
		checkOptionalID(name, "authorId", &c.AuthorID),
		checkOptionalID(name, "parentId", c.ParentID),
		checkOptionalID(name, "entityId", &c.EntityID),
	); err != nil {
		return err
	}
	if c.Author != nil {
		if err := nested("author", c.Author.Validate()); err != nil {
			return err
		}
	}
	for i, r := range c.Reactions {
		if err := nested(fmt.Sprintf("reactions[%d]", i), r.Validate()); err != nil {
			return err
		}
	}
	return nil
}

// Reaction is an emoji reaction, written as ":code:".
type Reaction struct {
	ID        string `json:"id"`
	Emoji     string `json:"emoji"`
	UserID    string `json:"userId"`
	CommentID string `json:"commentId"`
	User      *User  `json:"user,omitempty"`
}

func (r Reaction) Validate() error {
	const name = "Reaction"
	if err := checkID(name, "id", r.ID); err != nil {
		return err
	}
	if err := firstErr(
		checkOptionalID(name, "userId", &r.UserID),
		checkOptionalID(name, "commentId", &r.CommentID),
	); err != nil {
		return err
	}
	if r.Emoji != "" && (len(r.Emoji) < 2 || !strings.HasPrefix(r.Emoji, ":") || !strings.HasSuffix(r.Emoji, ":")) {
		return &ValidationError{Model: name, Field: "emoji", Reason: fmt.Sprintf("%q is not of the form :code:", r.Emoji)}
	}
	if r.User != nil {
		if r.User.ID != "" && r.UserID != "" && r.User.ID != r.UserID {
			return &ValidationError{Model: name, Field: "user.id", Reason: fmt.Sprintf("%s does not match userId %s", r.User.ID, r.UserID)}
		}
		return nested("user", r.User.Validate())
	}
	return nil
}
