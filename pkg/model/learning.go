package model

type LearningResource struct {
	ID          string `json:"id" yaml:"-"`
	Title       string `json:"title" yaml:"title"`
	Topic       string `json:"topic" yaml:"topic"`
	URL         string `json:"url" yaml:"url"`
	VideoID     string `json:"videoId" yaml:"-"`
	Description string `json:"description" yaml:"description"`
}

type ListResourcesQuery struct {
	Topic string `form:"topic"`
}

type VideoIDQuery struct {
	URL string `form:"url" binding:"notblank"`
}

type ResourceListRes struct {
	Resources []LearningResource `json:"resources"`
	Topics    []string           `json:"topics"`
}

type VideoIDRes struct {
	VideoID string `json:"videoId"`
}
