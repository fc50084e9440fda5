package adapter

import (
	"sort"

	"github.com/pdl-lex/gridbridge/event"
)

// SortChanged adapts sortChanged: the list of columns currently
// participating in a sort, derived from live column state and ordered by
// sort priority.
type SortChanged struct{}

func (a *SortChanged) Adapt(e event.Native, api API) event.Payload {
	entries := []SortEntry{}
	if api != nil {
		for _, c := range api.ColumnState() {
			if c.Sort == "" {
				continue
			}
			entries = append(entries, SortEntry{
				ColID:     c.ColID,
				Sort:      c.Sort,
				SortIndex: c.SortIndex,
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SortIndex < entries[j].SortIndex
	})

	return event.Payload{entries}
}

// FilterChanged adapts filterChanged: the complete current filter model,
// queried live.
type FilterChanged struct{}

func (a *FilterChanged) Adapt(e event.Native, api API) event.Payload {
	model := map[string]interface{}{}
	if api != nil {
		if m := api.FilterModel(); m != nil {
			model = m
		}
	}
	return event.Payload{model}
}

// PaginationChanged adapts paginationChanged: (current page index, total
// page count, page size), all queried live.
type PaginationChanged struct{}

func (a *PaginationChanged) Adapt(e event.Native, api API) event.Payload {
	if api == nil {
		return event.Payload{0, 0, 0}
	}
	return event.Payload{
		api.PaginationPage(),
		api.PaginationTotalPages(),
		api.PaginationPageSize(),
	}
}
