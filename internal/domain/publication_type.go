package domain

import "strings"

// PublicationType is the RM API code for a title's publication type.
type PublicationType string

// Publication types.
const (
	PublicationJournal            PublicationType = "Journal"
	PublicationNewsletter         PublicationType = "Newsletter"
	PublicationReport             PublicationType = "Report"
	PublicationProceedings        PublicationType = "Proceedings"
	PublicationWebsite            PublicationType = "Website"
	PublicationNewspaper          PublicationType = "Newspaper"
	PublicationUnspecified        PublicationType = "Unspecified"
	PublicationBook               PublicationType = "Book"
	PublicationBookSeries         PublicationType = "BookSeries"
	PublicationDatabase           PublicationType = "Database"
	PublicationThesisDissertation PublicationType = "ThesisDissertation"
	PublicationStreamingAudio     PublicationType = "StreamingAudio"
	PublicationStreamingVideo     PublicationType = "StreamingVideo"
	PublicationAudioBook          PublicationType = "AudioBook"
)

var publicationTypes = []PublicationType{
	PublicationJournal, PublicationNewsletter, PublicationReport,
	PublicationProceedings, PublicationWebsite, PublicationNewspaper,
	PublicationUnspecified, PublicationBook, PublicationBookSeries,
	PublicationDatabase, PublicationThesisDissertation,
	PublicationStreamingAudio, PublicationStreamingVideo, PublicationAudioBook,
}

// Label returns the human readable name, or the raw code when unknown.
func (p PublicationType) Label() string {
	switch p {
	case PublicationJournal:
		return "Journal"
	case PublicationNewsletter:
		return "Newsletter"
	case PublicationReport:
		return "Report"
	case PublicationProceedings:
		return "Proceedings"
	case PublicationWebsite:
		return "Web Site"
	case PublicationNewspaper:
		return "Newspaper"
	case PublicationUnspecified:
		return "Unspecified"
	case PublicationBook:
		return "Book"
	case PublicationBookSeries:
		return "Book Series"
	case PublicationDatabase:
		return "Database"
	case PublicationThesisDissertation:
		return "Thesis & Dissertation"
	case PublicationStreamingAudio:
		return "Streaming Audio"
	case PublicationStreamingVideo:
		return "Streaming Video"
	case PublicationAudioBook:
		return "Audiobook"
	}
	return string(p)
}

// ParsePublicationLabel maps a client-facing label back to its RM API code.
func ParsePublicationLabel(label string) (PublicationType, error) {
	for _, p := range publicationTypes {
		if p.Label() == label {
			return p, nil
		}
	}
	return "", NewValidationError(ErrInvalidAttribute, TitleInvalidPublicationType,
		"unknown publication type "+label)
}

// PublicationTypeFilter maps a filter[type] value on a package's title list
// to the RM API resourcetype parameter.
func PublicationTypeFilter(value string) (string, bool) {
	if value == "all" {
		return value, true
	}
	for _, p := range publicationTypes {
		if strings.ToLower(string(p)) == value {
			return value, true
		}
	}
	return "", false
}
