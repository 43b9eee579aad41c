// Package analytics folds click events into summaries. Everything here is a
// pure function of its arguments.
package analytics

import (
	"sort"
	"time"

	"github.com/vadimbarashkov/linkstats/internal/entity"
)

// Totals returns the number of events and the number of distinct client IPs.
// Events without a client IP share a single empty-IP value.
func Totals(events []entity.ClickEvent) (total, unique int) {
	ips := make(map[string]struct{}, len(events))
	for _, e := range events {
		ips[e.ClientIP] = struct{}{}
	}
	return len(events), len(ips)
}

// Stats computes totals and the daily series for events.
func Stats(now time.Time, loc *time.Location, events []entity.ClickEvent) entity.ClickStats {
	total, unique := Totals(events)

	timestamps := make([]time.Time, len(events))
	for i, e := range events {
		timestamps[i] = e.Timestamp
	}

	return entity.ClickStats{
		TotalClicks:  total,
		UniqueClicks: unique,
		ClicksByDate: DailySeries(now, loc, timestamps),
	}
}

type labelStats struct {
	clicks int
	agents map[string]struct{}
}

type labelFold map[string]*labelStats

func (f labelFold) add(label, userAgent string) {
	s, ok := f[label]
	if !ok {
		s = &labelStats{agents: make(map[string]struct{})}
		f[label] = s
	}
	s.clicks++
	s.agents[userAgent] = struct{}{}
}

func (f labelFold) list() []entity.Breakdown {
	out := make([]entity.Breakdown, 0, len(f))
	for label, s := range f {
		out = append(out, entity.Breakdown{
			Label:        label,
			UniqueClicks: s.clicks,
			UniqueUsers:  len(s.agents),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Label < out[j].Label
	})

	return out
}

// Breakdowns classifies every event and groups the clicks by OS label and by
// device class. Both lists are sorted by label.
func Breakdowns(events []entity.ClickEvent) (os, device []entity.Breakdown) {
	osFold, deviceFold := labelFold{}, labelFold{}

	for _, e := range events {
		osName, deviceName := Classify(e.UserAgent)
		osFold.add(osName, e.UserAgent)
		deviceFold.add(deviceName, e.UserAgent)
	}

	return osFold.list(), deviceFold.list()
}

// PerLink computes totals for each link from the events of all links.
// Every link gets an entry, in the given order; links without events have zero counts.
func PerLink(links []entity.Link, events []entity.ClickEvent) []entity.LinkClicks {
	byAlias := make(map[string][]entity.ClickEvent, len(links))
	for _, e := range events {
		byAlias[e.Alias] = append(byAlias[e.Alias], e)
	}

	out := make([]entity.LinkClicks, 0, len(links))
	for _, l := range links {
		total, unique := Totals(byAlias[l.Alias])
		out = append(out, entity.LinkClicks{
			Alias:        l.Alias,
			TotalClicks:  total,
			UniqueClicks: unique,
		})
	}

	return out
}

// Aliases returns the aliases of links in order.
func Aliases(links []entity.Link) []string {
	aliases := make([]string, len(links))
	for i, l := range links {
		aliases[i] = l.Alias
	}
	return aliases
}
