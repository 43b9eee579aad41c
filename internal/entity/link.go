// Package entity defines the entities and errors shared by the link registry,
// the click log and the analytics engine.
package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrAliasExists is returned when attempting to create a link with an alias that already exists.
	ErrAliasExists = errors.New("alias exists")
	// ErrLinkNotFound is returned when no link matches the requested alias, topic or owner.
	ErrLinkNotFound = errors.New("link not found")
	// ErrNoAnalyticsData is returned when links exist but no clicks were recorded for them.
	ErrNoAnalyticsData = errors.New("no analytics data")
	// ErrInvalidTopic is returned when a topic is not one of the known topics.
	ErrInvalidTopic = errors.New("invalid topic")
)

// Topic is the grouping tag attached to a link at creation.
type Topic string

const (
	TopicAcquisition Topic = "acquisition"
	TopicActivation  Topic = "activation"
	TopicRetention   Topic = "retention"
)

// DefaultTopic is assigned to links created without a topic.
const DefaultTopic = TopicAcquisition

// ParseTopic converts s into a Topic. An empty string yields DefaultTopic.
func ParseTopic(s string) (Topic, error) {
	switch t := Topic(s); t {
	case "":
		return DefaultTopic, nil
	case TopicAcquisition, TopicActivation, TopicRetention:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTopic, s)
	}
}

// Link represents a shortened URL.
type Link struct {
	ID          int64     // ID is the unique identifier of the link in the database.
	Alias       string    // Alias is the short identifier that resolves to OriginalURL.
	OriginalURL string    // OriginalURL is the full URL the alias redirects to.
	Topic       Topic     // Topic groups links for topic analytics.
	Owner       string    // Owner is the account that created the link, empty when anonymous.
	CreatedAt   time.Time // CreatedAt is the timestamp when the link was created.
}

// ShortURL joins baseURL and alias with a single slash.
func ShortURL(baseURL, alias string) string {
	return strings.TrimRight(baseURL, "/") + "/" + alias
}
