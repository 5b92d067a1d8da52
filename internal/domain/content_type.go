package domain

import "strings"

// ContentType is the RM API code describing what a package contains.
type ContentType string

// Package content types.
const (
	ContentAggregatedFullText ContentType = "AggregatedFullText"
	ContentAbstractAndIndex   ContentType = "AbstractAndIndex"
	ContentEBook              ContentType = "EBook"
	ContentEJournal           ContentType = "EJournal"
	ContentPrint              ContentType = "Print"
	ContentUnknown            ContentType = "Unknown"
	ContentOnlineReference    ContentType = "OnlineReference"
	ContentStreamingMedia     ContentType = "StreamingMedia"
	ContentMixedContent       ContentType = "MixedContent"
)

var contentTypes = []ContentType{
	ContentAggregatedFullText, ContentAbstractAndIndex, ContentEBook,
	ContentEJournal, ContentPrint, ContentUnknown, ContentOnlineReference,
	ContentStreamingMedia, ContentMixedContent,
}

// Label returns the human readable name. Codes the RM API adds later render
// as "Unknown".
func (c ContentType) Label() string {
	switch c {
	case ContentAggregatedFullText:
		return "Aggregated Full Text"
	case ContentAbstractAndIndex:
		return "Abstract and Index"
	case ContentEBook:
		return "E-Book"
	case ContentEJournal:
		return "E-Journal"
	case ContentPrint:
		return "Print"
	case ContentOnlineReference:
		return "Online Reference"
	case ContentStreamingMedia:
		return "Streaming Media"
	case ContentMixedContent:
		return "Mixed Content"
	}
	return "Unknown"
}

// ContentTypeFilter maps a filter[type] value on the package search to the
// RM API contenttype parameter.
func ContentTypeFilter(value string) (string, bool) {
	if value == "all" {
		return value, true
	}
	for _, c := range contentTypes {
		if strings.ToLower(string(c)) == value {
			return value, true
		}
	}
	return "", false
}
