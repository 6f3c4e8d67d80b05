package file

import (
	"context"

	"terminal-quiz/internal/domain"
	"terminal-quiz/internal/record"
)

// TopicFile is the topic list, one topic per line and no header.
type TopicFile struct {
	path string
	rep  Reporter
}

func NewTopicFile(path string, rep Reporter) *TopicFile {
	return &TopicFile{path: path, rep: rep}
}

func (f *TopicFile) LoadTopics(ctx context.Context) ([]domain.Topic, error) {
	return LoadFile(ctx, f.path, record.ParseTopic, f.rep)
}
