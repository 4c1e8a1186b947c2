package model

import "time"

type HistoryKind string

const (
	HistoryResumeCreated  HistoryKind = "resume_created"
	HistoryResumeUpdated  HistoryKind = "resume_updated"
	HistoryResumeDeleted  HistoryKind = "resume_deleted"
	HistoryResumeExported HistoryKind = "resume_exported"
	HistoryATSScored      HistoryKind = "ats_scored"
	HistoryChatAsked      HistoryKind = "chat_asked"
	HistoryJobScraped     HistoryKind = "job_scraped"
	HistoryResourceViewed HistoryKind = "resource_viewed"
)

// HistoryKinds lists every accepted event kind.
var HistoryKinds = []HistoryKind{
	HistoryResumeCreated,
	HistoryResumeUpdated,
	HistoryResumeDeleted,
	HistoryResumeExported,
	HistoryATSScored,
	HistoryChatAsked,
	HistoryJobScraped,
	HistoryResourceViewed,
}

func (k HistoryKind) Valid() bool {
	for _, known := range HistoryKinds {
		if k == known {
			return true
		}
	}
	return false
}

type HistoryRecord struct {
	ID   string                 `json:"id"`
	Type HistoryKind            `json:"type"`
	At   time.Time              `json:"at"`
	Meta map[string]interface{} `json:"meta,omitempty"`
}

type CreateHistoryReq struct {
	Type HistoryKind            `json:"type" binding:"required,historykind"`
	Meta map[string]interface{} `json:"meta"`
}

type HistoryListRes struct {
	Records []HistoryRecord `json:"records"`
}
